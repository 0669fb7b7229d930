package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

type fakeSaver struct {
	mu    sync.Mutex
	calls []int
}

func (f *fakeSaver) SaveScore(variant string, score, length int) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, score)
	return int64(len(f.calls)), nil
}

func (f *fakeSaver) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func newTestSession(saver ScoreSaver, opts ...snake.Option) *Session {
	g := snake.New(append([]snake.Option{snake.WithSeed(42)}, opts...)...)
	return New(g, Options{ID: "test", Saver: saver})
}

func tickN(s *Session, n int) core.StepResult {
	var res core.StepResult
	for i := 0; i < n; i++ {
		res = s.Tick()
	}
	return res
}

func TestSessionTurnAndTick(t *testing.T) {
	s := newTestSession(nil)

	s.Turn(core.DirRight)
	res := s.Tick()
	if !res.Moved {
		t.Fatal("Tick() should move the snake")
	}
	if head := s.Snapshot().Head(); head != (core.Cell{X: 11, Y: 10}) {
		t.Errorf("Head = %v, expected (11,10)", head)
	}
}

func TestSessionPause(t *testing.T) {
	s := newTestSession(nil)

	if !s.TogglePause() {
		t.Fatal("TogglePause() should pause a running game")
	}
	before := s.Snapshot().Head()
	res := s.Tick()
	if res.Moved {
		t.Error("paused Tick() should not move")
	}
	if !res.State.Paused {
		t.Error("paused Tick() should report Paused")
	}
	if after := s.Snapshot().Head(); after != before {
		t.Errorf("Head moved while paused: %v -> %v", before, after)
	}
	if !s.Snapshot().Paused {
		t.Error("Snapshot().Paused should be true")
	}

	if s.TogglePause() {
		t.Fatal("second TogglePause() should resume")
	}
	if res := s.Tick(); !res.Moved {
		t.Error("resumed Tick() should move")
	}
}

func TestSessionInputFrame(t *testing.T) {
	s := newTestSession(nil)

	frame := core.NewInputFrame()
	frame.Set(core.ActionRight)
	frame.Set(core.ActionTheme)
	frame.Set(core.ActionLocale)
	s.Input(frame)

	prefs := s.Preferences()
	if prefs.Theme != config.ThemeLight {
		t.Errorf("Theme = %q, expected %q", prefs.Theme, config.ThemeLight)
	}
	if prefs.Locale == config.DefaultLocale {
		t.Error("Locale action should cycle the locale")
	}

	s.Tick()
	if d := s.Snapshot().Direction; d != core.DirRight {
		t.Errorf("Direction = %v, expected right", d)
	}
}

func TestSessionEmptyInputFrame(t *testing.T) {
	s := newTestSession(nil)
	before := *s.Preferences()

	s.Input(core.NewInputFrame())
	s.Tick()

	if *s.Preferences() != before {
		t.Errorf("Preferences changed by an empty frame: %+v", *s.Preferences())
	}
	if d := s.Snapshot().Direction; d != core.DirUp {
		t.Errorf("Direction = %v, expected up", d)
	}
}

func TestSessionRestartInputIgnoredWhileRunning(t *testing.T) {
	s := newTestSession(nil)
	tickN(s, 3)

	frame := core.NewInputFrame()
	frame.Set(core.ActionRestart)
	s.Input(frame)

	if ticks := s.Snapshot().Ticks; ticks != 3 {
		t.Errorf("Ticks = %d, expected 3 (restart ignored while running)", ticks)
	}
}

// eatThenCrash steers a fresh 20x20 game onto the initial food at (15,15)
// and then down into the bottom wall.
func eatThenCrash(t *testing.T, s *Session) core.StepResult {
	t.Helper()

	s.Turn(core.DirRight)
	tickN(s, 5)
	s.Turn(core.DirDown)
	tickN(s, 5)
	if s.State().Score == 0 {
		t.Fatal("expected to eat the initial food")
	}

	var res core.StepResult
	for i := 0; i < 10 && !res.Died; i++ {
		res = s.Tick()
	}
	if !res.Died {
		t.Fatal("expected to hit the bottom wall")
	}
	return res
}

func TestSessionSavesScoreOnce(t *testing.T) {
	saver := &fakeSaver{}
	s := newTestSession(saver)

	res := eatThenCrash(t, s)
	if res.Cause != core.CauseWall {
		t.Errorf("Cause = %q, expected wall", res.Cause)
	}
	s.Tick()
	s.Tick()

	if saver.count() != 1 {
		t.Fatalf("SaveScore called %d times, expected 1", saver.count())
	}
	if saver.calls[0] != res.State.Score {
		t.Errorf("saved score = %d, expected %d", saver.calls[0], res.State.Score)
	}
}

func TestSessionNoSaveForZeroScore(t *testing.T) {
	saver := &fakeSaver{}
	s := newTestSession(saver)

	res := tickN(s, 11)
	if !res.Died {
		t.Fatal("expected the fresh snake to hit the top wall on tick 11")
	}
	if saver.count() != 0 {
		t.Errorf("SaveScore called %d times for a zero score", saver.count())
	}
}

func TestSessionRestartAfterGameOver(t *testing.T) {
	saver := &fakeSaver{}
	s := newTestSession(saver)
	eatThenCrash(t, s)

	frame := core.NewInputFrame()
	frame.Set(core.ActionRestart)
	s.Input(frame)

	snap := s.Snapshot()
	if snap.Phase != core.PhaseRunning {
		t.Fatalf("Phase = %q after restart, expected running", snap.Phase)
	}
	if snap.Score != 0 || snap.Length != 1 {
		t.Errorf("restart should reset score and length, got %d/%d", snap.Score, snap.Length)
	}

	if s.scoreSaved {
		t.Error("restart should allow the next game to be saved")
	}
}

func TestSessionPauseIgnoredAfterGameOver(t *testing.T) {
	s := newTestSession(nil)
	tickN(s, 11)

	if s.TogglePause() {
		t.Error("TogglePause() should not pause a finished game")
	}
}

func TestSessionIntervalUsesDifficulty(t *testing.T) {
	g := snake.New(snake.WithSeed(1), snake.WithSpeed(200*time.Millisecond))
	dm := config.NewDifficultyManager(config.DifficultyConfig{
		Enabled:      true,
		InitialLevel: 1.0,
		Progression:  config.ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      config.ScalingConfig{SpeedMultiplier: 1.0},
	})
	s := New(g, Options{Difficulty: dm})

	if got := s.Interval(); got != 100*time.Millisecond {
		t.Errorf("Interval() = %v, expected 100ms", got)
	}
	if got := s.Snapshot().SpeedMs; got != 100 {
		t.Errorf("Snapshot().SpeedMs = %d, expected 100", got)
	}
}

func TestSessionRun(t *testing.T) {
	s := newTestSession(nil, snake.WithSpeed(time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	ticks := 0
	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx, func(core.StepResult) {
			mu.Lock()
			ticks++
			if ticks == 3 {
				cancel()
			}
			mu.Unlock()
		})
	}()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Run() error = %v, expected context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not stop after cancel")
	}

	mu.Lock()
	defer mu.Unlock()
	if ticks < 3 {
		t.Errorf("ticks = %d, expected at least 3", ticks)
	}
}
