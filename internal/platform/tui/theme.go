package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
)

// Palette maps semantic screen colors to lipgloss styles for one theme.
type Palette struct {
	cells map[core.Color]lipgloss.Style

	Title    lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
	Frame    lipgloss.Style
}

// Style returns the style for a screen color.
func (p Palette) Style(c core.Color) lipgloss.Style {
	if s, ok := p.cells[c]; ok {
		return s
	}
	return p.cells[core.ColorDefault]
}

func fg(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// DarkPalette is the default theme.
func DarkPalette() Palette {
	return Palette{
		cells: map[core.Color]lipgloss.Style{
			core.ColorDefault:   lipgloss.NewStyle(),
			core.ColorSnakeHead: fg("46").Bold(true), // Lime
			core.ColorSnakeBody: fg("34"),
			core.ColorFood:      fg("196").Bold(true),
			core.ColorBorder:    fg("240"),
			core.ColorHUD:       fg("255"),
			core.ColorAccent:    fg("226").Bold(true),
			core.ColorMuted:     fg("245"),
			core.ColorDanger:    fg("203").Bold(true),
		},
		Title:    fg("51").Bold(true),
		Selected: fg("226").Bold(true),
		Muted:    fg("245"),
		Frame:    fg("240"),
	}
}

// LightPalette suits terminals with a light background.
func LightPalette() Palette {
	return Palette{
		cells: map[core.Color]lipgloss.Style{
			core.ColorDefault:   lipgloss.NewStyle(),
			core.ColorSnakeHead: fg("22").Bold(true),
			core.ColorSnakeBody: fg("28"),
			core.ColorFood:      fg("160").Bold(true),
			core.ColorBorder:    fg("244"),
			core.ColorHUD:       fg("235"),
			core.ColorAccent:    fg("130").Bold(true),
			core.ColorMuted:     fg("242"),
			core.ColorDanger:    fg("124").Bold(true),
		},
		Title:    fg("25").Bold(true),
		Selected: fg("130").Bold(true),
		Muted:    fg("242"),
		Frame:    fg("244"),
	}
}

// PaletteFor returns the palette for a theme, dark for unknown values.
func PaletteFor(theme config.Theme) Palette {
	if theme == config.ThemeLight {
		return LightPalette()
	}
	return DarkPalette()
}
