package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/session"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

// Model is the Bubble Tea model for the play screen.
type Model struct {
	sess   *session.Session
	store  *storage.Store
	screen *core.Screen
	keys   KeyMap
	help   help.Model
	gen    uint64
	best   int

	exitOnBack   bool
	persistPrefs bool
	quitting     bool
	back         bool
}

// NewModel creates a play screen for sess. store may be nil.
func NewModel(sess *session.Session, store *storage.Store, width, height int) Model {
	h := help.New()
	h.Width = width

	m := Model{
		sess:   sess,
		store:  store,
		screen: core.NewScreen(width, boardRows(height)),
		keys:   DefaultKeyMap(),
		help:   h,
		gen:    nextTickGen(),
	}
	m.loadBest()
	return m
}

// boardRows leaves the last terminal row for the help line.
func boardRows(height int) int {
	return max(height-1, 1)
}

func (m *Model) loadBest() {
	if m.store == nil {
		return
	}
	if best, err := m.store.HighScore(m.sess.Variant()); err == nil {
		m.best = best
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.gen, m.sess.Interval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, boardRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen || m.quitting || m.back {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		state := m.sess.State()
		if state.GameOver || state.Paused {
			m.back = true
			if m.exitOnBack {
				return m, tea.Quit
			}
		}
		return m, nil
	}

	frame := core.NewInputFrame()
	frame.Set(action)
	m.sess.Input(frame)

	if m.persistPrefs && m.store != nil && (frame.Has(core.ActionTheme) || frame.Has(core.ActionLocale)) {
		//nolint:errcheck // Best-effort save, the game continues regardless
		m.store.SavePreferences(*m.sess.Preferences())
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.sess.Tick()
	if res.Died {
		m.best = max(m.best, res.State.Score)
	}
	return m, tickCmd(m.gen, m.sess.Interval())
}

// View renders the board, HUD and key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	prefs := m.sess.Preferences()
	palette := PaletteFor(prefs.Theme)

	DrawGame(m.screen, m.sess.Snapshot(), HUD{Locale: prefs.Locale, Best: m.best})
	return RenderScreen(m.screen, palette) + "\n" + palette.Muted.Render(m.help.View(m.keys))
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to leave the game.
func (m Model) BackToMenu() bool {
	return m.back
}

// Run plays sess in the current terminal. It returns true if the user left
// with the back key rather than quitting.
func Run(sess *session.Session, store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewModel(sess, store, width, height)
	model.exitOnBack = true
	model.persistPrefs = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
