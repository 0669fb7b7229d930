package main

import (
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/registry"
	"github.com/vovakirdan/gridsnake/internal/session"
)

func newTestApp(t *testing.T, cfg config.Config) *App {
	t.Helper()
	return NewApp(cfg, log.New(io.Discard), filepath.Join(t.TempDir(), "scores.db"), 1)
}

func TestNewSessionDefaultVariant(t *testing.T) {
	cfg := config.Default()
	cfg.Rules.Collision = "tail_exclusive"
	a := newTestApp(t, cfg)

	prefs := cfg.Preferences
	sess, err := a.NewSession("x", "", &prefs, nil)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	if sess.Variant() != "relaxed" {
		t.Errorf("Variant() = %q, expected relaxed", sess.Variant())
	}
	if sess.ID() != "x" {
		t.Errorf("ID() = %q, expected x", sess.ID())
	}
}

func TestNewSessionSeedsEachGame(t *testing.T) {
	a := newTestApp(t, config.Default())
	prefs := a.Config.Preferences

	var sessions []*session.Session
	for _, id := range []string{"a", "b", "c"} {
		sess, err := a.NewSession(id, "classic", &prefs, nil)
		if err != nil {
			t.Fatalf("NewSession(%q) error = %v", id, err)
		}
		sessions = append(sessions, sess)
	}

	for i, sess := range sessions {
		want, err := registry.Create("classic", a.Config.Runtime(int64(1+i)))
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		want.Restart()
		sess.Restart()
		if got := sess.Snapshot().Food; got != want.Snapshot().Food {
			t.Errorf("session %d food after restart = %v, expected %v (seed %d)", i, got, want.Snapshot().Food, 1+i)
		}
	}
}

func TestSessionSeedZeroStaysRandom(t *testing.T) {
	a := newTestApp(t, config.Default())
	a.Seed = 0
	for range 3 {
		if got := a.sessionSeed(); got != 0 {
			t.Fatalf("sessionSeed() = %d, expected 0", got)
		}
	}
}

func TestNewSessionUsesConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Board.Size = 10
	cfg.Timing.TickMs = 120
	a := newTestApp(t, cfg)

	prefs := cfg.Preferences
	sess, err := a.NewSession("", "classic", &prefs, nil)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}

	snap := sess.Snapshot()
	if snap.BoardSize != 10 {
		t.Errorf("BoardSize = %d, expected 10", snap.BoardSize)
	}
	if snap.Head() != (core.Cell{X: 5, Y: 5}) {
		t.Errorf("Head = %v, expected (5,5)", snap.Head())
	}
	if snap.SpeedMs != 120 {
		t.Errorf("SpeedMs = %d, expected 120", snap.SpeedMs)
	}
}

func TestNewSessionUnknownVariant(t *testing.T) {
	a := newTestApp(t, config.Default())

	prefs := config.DefaultPreferences()
	if _, err := a.NewSession("", "tron", &prefs, nil); !errors.Is(err, registry.ErrUnknownVariant) {
		t.Errorf("NewSession() error = %v, expected ErrUnknownVariant", err)
	}
}

func TestPreferencesFromStore(t *testing.T) {
	a := newTestApp(t, config.Default())

	store := a.OpenStore()
	if store == nil {
		t.Fatal("OpenStore() returned nil")
	}
	defer store.Close()

	if got := a.Preferences(store); got != a.Config.Preferences {
		t.Errorf("Preferences() = %+v, expected config defaults", got)
	}

	saved := config.Preferences{Theme: config.ThemeLight, Locale: "ar"}
	if err := store.SavePreferences(saved); err != nil {
		t.Fatalf("SavePreferences() error = %v", err)
	}
	if got := a.Preferences(store); got != saved {
		t.Errorf("Preferences() = %+v, expected %+v", got, saved)
	}
}

func TestWebAddr(t *testing.T) {
	t.Setenv("PORT", "9090")
	flagWebAddr = ""
	if got := webAddr(); got != ":9090" {
		t.Errorf("webAddr() = %q, expected :9090", got)
	}

	flagWebAddr = "127.0.0.1:7000"
	defer func() { flagWebAddr = "" }()
	if got := webAddr(); got != "127.0.0.1:7000" {
		t.Errorf("webAddr() = %q, expected the flag value", got)
	}
}
