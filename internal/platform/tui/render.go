package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Board glyphs. Each board cell is cellWidth columns wide so the grid looks
// square in a terminal.
const (
	cellWidth = 2
	headRune  = '@'
	bodyRune  = 'o'
	foodRune  = '*'
)

// HUD carries the view-only values drawn around the board.
type HUD struct {
	Locale string
	Best   int
}

// BoardRect returns where the framed board sits on a screen of the given width.
// Row 0 is left for the status line.
func BoardRect(screenW, boardSize int) core.Rect {
	w := boardSize*cellWidth + 2
	h := boardSize + 2
	return core.NewRect(max((screenW-w)/2, 0), 1, w, h)
}

// GameOverBanner is the three-row band across the middle of the board that is
// blanked when the game ends.
func GameOverBanner(frame core.Rect) core.Rect {
	return core.NewRect(frame.X+1, frame.Y+frame.H/2-1, max(frame.W-2, 0), 3)
}

// CellPos returns the screen position of a board cell inside frame.
func CellPos(frame core.Rect, c core.Cell) (x, y int) {
	return frame.X + 1 + c.X*cellWidth, frame.Y + 1 + c.Y
}

// DrawGame renders a snapshot with its status and message lines.
func DrawGame(s *core.Screen, snap core.Snapshot, hud HUD) {
	s.Clear()

	loc := hud.Locale
	status := fmt.Sprintf("%s: %d   %s: %d   %s: %d   %s: %dms",
		T(loc, MsgScore), snap.Score,
		T(loc, MsgLength), snap.Length,
		T(loc, MsgBest), max(hud.Best, snap.Score),
		T(loc, MsgSpeed), snap.SpeedMs,
	)
	s.DrawTextCentered(0, status, core.ColorHUD)

	frame := BoardRect(s.Width(), snap.BoardSize)
	s.DrawBox(frame, core.ColorBorder)

	x, y := CellPos(frame, snap.Food)
	s.SetColored(x, y, foodRune, core.ColorFood)

	for i := len(snap.Snake) - 1; i >= 0; i-- {
		x, y := CellPos(frame, snap.Snake[i])
		if i == 0 {
			s.SetColored(x, y, headRune, core.ColorSnakeHead)
		} else {
			s.SetColored(x, y, bodyRune, core.ColorSnakeBody)
		}
	}

	msgY := frame.Bottom()
	switch {
	case snap.Phase == core.PhaseGameOver:
		banner := GameOverBanner(frame)
		s.FillRect(banner, ' ', core.ColorDanger)
		s.DrawTextCentered(banner.Y+1, T(loc, MsgGameOver), core.ColorDanger)

		line := T(loc, MsgGameOver)
		if cause := CauseText(loc, snap.Cause); cause != "" {
			line += " - " + cause
		}
		line += ". " + T(loc, MsgRestart)
		s.DrawTextCentered(msgY, line, core.ColorDanger)
	case snap.Paused:
		s.DrawTextCentered(msgY, T(loc, MsgPaused), core.ColorAccent)
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color are rendered as one styled run.
func RenderScreen(s *core.Screen, p Palette) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(p.Style(color).Render(run.String()))
		}
	}
	return sb.String()
}
