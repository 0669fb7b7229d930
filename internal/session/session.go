// Package session owns running snake engines. A Session is the single owner of
// one engine: input from any goroutine only writes the pending direction, and
// ticks are serialized behind the session mutex.
package session

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

// ScoreSaver persists a finished game. *storage.Store implements it.
type ScoreSaver interface {
	SaveScore(variant string, score, length int) (int64, error)
}

// Options configures a Session. Zero values are usable.
type Options struct {
	ID          string
	Saver       ScoreSaver
	Logger      *log.Logger
	Difficulty  *config.DifficultyManager
	Preferences *config.Preferences
}

// Session drives one engine.
type Session struct {
	mu sync.Mutex

	id         string
	game       registry.Game
	saver      ScoreSaver
	logger     *log.Logger
	difficulty *config.DifficultyManager
	prefs      *config.Preferences

	paused     bool
	scoreSaved bool
	created    time.Time
}

// New wraps game in a session.
func New(game registry.Game, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	prefs := opts.Preferences
	if prefs == nil {
		p := config.DefaultPreferences()
		prefs = &p
	}
	difficulty := opts.Difficulty
	if difficulty == nil {
		difficulty = config.NewDifficultyManager(config.DifficultyConfig{})
	}

	return &Session{
		id:         opts.ID,
		game:       game,
		saver:      opts.Saver,
		logger:     logger.With("variant", game.ID()),
		difficulty: difficulty,
		prefs:      prefs,
		created:    time.Now(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Variant returns the engine variant id.
func (s *Session) Variant() string { return s.game.ID() }

// Title returns the engine display name.
func (s *Session) Title() string { return s.game.Title() }

// Created returns when the session was created.
func (s *Session) Created() time.Time { return s.created }

// Preferences returns the view preferences owned by this session's controller.
func (s *Session) Preferences() *config.Preferences { return s.prefs }

// Turn requests a direction for the next tick.
func (s *Session) Turn(d core.Direction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.SetPendingDirection(d)
}

// Input applies the actions of one frame in arrival order.
// Directions go to the engine, the rest are handled by the controller.
func (s *Session) Input(frame core.InputFrame) {
	if frame.Empty() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range frame.Actions() {
		if d, ok := a.Direction(); ok {
			s.game.SetPendingDirection(d)
			continue
		}
		switch a {
		case core.ActionPause:
			s.togglePause()
		case core.ActionRestart:
			if s.game.GameOver() {
				s.restart()
			}
		case core.ActionTheme:
			s.prefs.ToggleTheme()
		case core.ActionLocale:
			s.prefs.NextLocale()
		}
	}
}

// Tick advances the engine unless the session is paused. The first tick that
// ends the game saves the score.
func (s *Session) Tick() core.StepResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.paused {
		state := s.game.State()
		state.Paused = true
		return core.StepResult{State: state}
	}

	res := s.game.Tick()
	if res.Died {
		s.logger.Info("game over",
			"cause", res.Cause,
			"score", res.State.Score,
			"length", res.State.Length,
		)
		s.saveScore(res.State)
	}
	return res
}

func (s *Session) saveScore(state core.GameState) {
	if s.scoreSaved || state.Score <= 0 {
		return
	}
	s.scoreSaved = true

	if s.saver == nil {
		return
	}
	if _, err := s.saver.SaveScore(s.game.ID(), state.Score, state.Length); err != nil {
		s.logger.Warn("could not save score", "error", err)
	}
}

// Restart starts a new game.
func (s *Session) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restart()
}

func (s *Session) restart() {
	s.game.Restart()
	s.paused = false
	s.scoreSaved = false
	s.logger.Debug("game restarted")
}

// TogglePause stops or resumes ticking and returns the new paused state.
// A finished game cannot be paused.
func (s *Session) TogglePause() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.togglePause()
}

func (s *Session) togglePause() bool {
	if s.game.GameOver() {
		s.paused = false
		return false
	}
	s.paused = !s.paused
	return s.paused
}

// Paused reports whether ticking is suspended.
func (s *Session) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

// State returns the current summary.
func (s *Session) State() core.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.game.State()
	state.Paused = s.paused
	return state
}

// Snapshot returns a copy of the engine state.
func (s *Session) Snapshot() core.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.game.Snapshot()
	snap.Paused = s.paused
	snap.SpeedMs = s.interval().Milliseconds()
	return snap
}

// Interval returns the current tick period, adjusted for difficulty.
func (s *Session) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval()
}

func (s *Session) interval() time.Duration {
	return s.difficulty.Interval(s.game.Speed(), s.game.Score())
}

// Run ticks the session at its interval until ctx is cancelled. onTick, if
// set, is called after every tick outside the session lock.
func (s *Session) Run(ctx context.Context, onTick func(core.StepResult)) error {
	timer := time.NewTimer(s.Interval())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			res := s.Tick()
			if onTick != nil {
				onTick(res)
			}
			timer.Reset(s.Interval())
		}
	}
}
