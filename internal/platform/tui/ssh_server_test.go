package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/registry"
	"github.com/vovakirdan/gridsnake/internal/session"
)

func testFactory(variant string, prefs *config.Preferences) (*session.Session, error) {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	g, err := registry.Create(variant, cfg)
	if err != nil {
		return nil, err
	}
	return session.New(g, session.Options{Preferences: prefs}), nil
}

func updateApp(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	next, _ := m.Update(msg)
	app, ok := next.(AppModel)
	if !ok {
		t.Fatalf("Update returned %T, expected AppModel", next)
	}
	return app
}

func TestAppModelFlow(t *testing.T) {
	prefs := config.DefaultPreferences()
	m := NewAppModel(testFactory, nil, &prefs, 80, 24)

	m = updateApp(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("screen = %v after enter, expected game", m.screen)
	}
	if m.variant == "" {
		t.Error("selected variant should be remembered")
	}

	m = updateApp(t, m, runeKey("t"))
	if prefs.Theme != config.ThemeLight {
		t.Error("theme toggle in game should update the connection preferences")
	}

	m = updateApp(t, m, runeKey("p"))
	m = updateApp(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("screen = %v after esc on a paused game, expected menu", m.screen)
	}

	m = updateApp(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("screen = %v after tab, expected scores", m.screen)
	}

	m = updateApp(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("screen = %v after esc on scores, expected menu", m.screen)
	}

	m = updateApp(t, m, runeKey("q"))
	if !m.quitting {
		t.Error("q should quit from the menu")
	}
}

func TestAppModelFactoryError(t *testing.T) {
	prefs := config.DefaultPreferences()
	failing := func(string, *config.Preferences) (*session.Session, error) {
		return nil, registry.ErrUnknownVariant
	}
	m := NewAppModel(failing, nil, &prefs, 80, 24)

	m = updateApp(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenMenu {
		t.Errorf("screen = %v, expected to stay on the menu", m.screen)
	}
	if m.err == nil {
		t.Error("factory error should be kept for display")
	}
}
