package main

import (
	"os"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/registry"
	"github.com/vovakirdan/gridsnake/internal/session"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

// App bundles the resolved configuration shared by all commands.
type App struct {
	Config config.Config
	Logger *log.Logger
	DBPath string
	Seed   int64

	sessions atomic.Int64
}

// NewApp creates the command context.
func NewApp(cfg config.Config, logger *log.Logger, dbPath string, seed int64) *App {
	return &App{Config: cfg, Logger: logger, DBPath: dbPath, Seed: seed}
}

// OpenStore opens the scores database. Failure is logged and nil returned so
// the game still works without persistence.
func (a *App) OpenStore() *storage.Store {
	store, err := storage.Open(a.DBPath)
	if err != nil {
		a.Logger.Warn("could not open scores database", "path", a.DBPath, "error", err)
		return nil
	}
	return store
}

// Preferences returns the stored preferences, or the configured ones.
func (a *App) Preferences(store *storage.Store) config.Preferences {
	if store == nil {
		return a.Config.Preferences
	}
	prefs, err := store.LoadPreferences(a.Config.Preferences)
	if err != nil {
		a.Logger.Warn("could not load preferences", "error", err)
		return a.Config.Preferences
	}
	return prefs
}

// NewSession creates an engine for variant and wraps it in a session.
// An empty variant selects the one matching rules.collision.
func (a *App) NewSession(id, variant string, prefs *config.Preferences, store *storage.Store) (*session.Session, error) {
	if variant == "" {
		variant = a.Config.Variant()
	}

	game, err := registry.Create(variant, a.Config.Runtime(a.sessionSeed()))
	if err != nil {
		return nil, err
	}

	opts := session.Options{
		ID:          id,
		Logger:      a.Logger,
		Difficulty:  config.NewDifficultyManager(a.Config.Difficulty),
		Preferences: prefs,
	}
	if store != nil {
		opts.Saver = store
	}
	return session.New(game, opts), nil
}

// sessionSeed returns Seed for the first session, Seed+1 for the second and so
// on, so concurrent games started with --seed do not share a food sequence.
// A zero seed stays zero and each engine seeds itself from the clock.
func (a *App) sessionSeed() int64 {
	n := a.sessions.Add(1) - 1
	if a.Seed == 0 {
		return 0
	}
	return a.Seed + n
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (width, height int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
