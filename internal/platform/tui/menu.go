package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	items          []registry.VariantInfo
	cursor         int
	width          int
	height         int
	prefs          config.Preferences
	keys           KeyMap
	quitting       bool
	selected       *registry.VariantInfo
	openScoreboard bool
}

// NewMenuModel creates a menu listing every registered variant.
func NewMenuModel(prefs config.Preferences, width, height int) MenuModel {
	return MenuModel{
		items:  registry.List(),
		width:  width,
		height: height,
		prefs:  prefs,
		keys:   DefaultKeyMap(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	palette := PaletteFor(m.prefs.Theme)
	loc := m.prefs.Locale

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(palette.Title.Render(T(loc, MsgTitle)), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(T(loc, MsgSelectGame), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = palette.Selected.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: " + T(loc, MsgHighScores) + "  |  Q: Quit"
	b.WriteString(centerText(palette.Muted.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected variant, or nil if none was chosen.
func (m MenuModel) Selected() *registry.VariantInfo {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// centerText centers text within width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the outcome of RunMenu.
type MenuResult struct {
	Variant         string
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu in the current terminal.
func RunMenu(prefs config.Preferences, width, height int) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(prefs, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Quit: true}, nil
	}

	switch {
	case m.WantsScoreboard():
		return MenuResult{WantsScoreboard: true}, nil
	case m.Selected() != nil:
		return MenuResult{Variant: m.Selected().ID}, nil
	}
	return MenuResult{Quit: true}, nil
}
