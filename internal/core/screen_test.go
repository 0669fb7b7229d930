package core

import "testing"

// rowRunes reads row y back as plain text.
func rowRunes(s *Screen, y int) string {
	out := make([]rune, s.Width())
	for x := range out {
		out[x] = s.GetCell(x, y).Rune
	}
	return string(out)
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)
	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("NewScreen(12, 4) = %dx%d", s.Width(), s.Height())
	}
	for y := range s.Height() {
		for x := range s.Width() {
			if cell := s.GetCell(x, y); cell != (ScreenCell{Rune: ' '}) {
				t.Fatalf("cell (%d,%d) = %+v, expected blank", x, y, cell)
			}
		}
	}

	if neg := NewScreen(-3, -1); neg.Width() != 0 || neg.Height() != 0 {
		t.Errorf("negative size should clamp to 0x0, got %dx%d", neg.Width(), neg.Height())
	}
}

func TestSetColoredBounds(t *testing.T) {
	s := NewScreen(6, 3)
	s.SetColored(2, 1, '@', ColorSnakeHead)

	if cell := s.GetCell(2, 1); cell.Rune != '@' || cell.Color != ColorSnakeHead {
		t.Errorf("GetCell(2, 1) = %+v, expected head glyph", cell)
	}

	for _, p := range [][2]int{{-1, 0}, {6, 0}, {0, -1}, {0, 3}} {
		s.SetColored(p[0], p[1], 'x', ColorDanger)
		if cell := s.GetCell(p[0], p[1]); cell.Rune != ' ' || cell.Color != ColorDefault {
			t.Errorf("GetCell(%d, %d) out of bounds = %+v, expected blank", p[0], p[1], cell)
		}
	}
}

func TestClearResetsGlyphsAndColors(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawTextColored(0, 0, "oooo", ColorSnakeBody)
	s.Clear()

	for x := range 4 {
		if cell := s.GetCell(x, 0); cell.Rune != ' ' || cell.Color != ColorDefault {
			t.Fatalf("cell %d after Clear = %+v", x, cell)
		}
	}
}

func TestDrawTextColoredClips(t *testing.T) {
	s := NewScreen(8, 1)
	s.DrawTextColored(5, 0, "Score", ColorHUD)

	if got := rowRunes(s, 0); got != "     Sco" {
		t.Errorf("row = %q, expected clipped text", got)
	}
	if s.GetCell(7, 0).Color != ColorHUD {
		t.Error("clipped text should keep its color")
	}

	s.DrawTextColored(-2, 0, "ab12", ColorAccent)
	if got := rowRunes(s, 0)[:2]; got != "12" {
		t.Errorf("left clip = %q, expected \"12\"", got)
	}
}

func TestDrawTextCenteredCountsRunes(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "PAUSA", ColorAccent)
	if got := rowRunes(s, 0); got != "  PAUSA   " {
		t.Errorf("row = %q", got)
	}

	s.Clear()
	s.DrawTextCentered(0, "Очки", ColorHUD)
	if got := rowRunes(s, 0); got != "   Очки   " {
		t.Errorf("multibyte row = %q", got)
	}
}

func TestDrawBoxFramesBoard(t *testing.T) {
	s := NewScreen(8, 5)
	s.DrawBox(NewRect(1, 0, 6, 4), ColorBorder)

	want := []string{
		" ┌────┐ ",
		" │    │ ",
		" │    │ ",
		" └────┘ ",
		"        ",
	}
	for y, line := range want {
		if got := rowRunes(s, y); got != line {
			t.Errorf("row %d = %q, expected %q", y, got, line)
		}
	}
	if s.GetCell(1, 0).Color != ColorBorder || s.GetCell(2, 1).Color != ColorDefault {
		t.Error("only the outline should take the border color")
	}
}

func TestFillRectBanner(t *testing.T) {
	s := NewScreen(8, 4)
	s.DrawTextColored(0, 1, "oooooooo", ColorSnakeBody)
	s.FillRect(NewRect(2, 1, 4, 2), ' ', ColorDanger)

	if got := rowRunes(s, 1); got != "oo    oo" {
		t.Errorf("row 1 = %q, expected the band blanked", got)
	}
	if s.GetCell(3, 2).Color != ColorDanger {
		t.Error("band should take the fill color")
	}
	if s.GetCell(1, 1).Color != ColorSnakeBody || s.GetCell(6, 1).Color != ColorSnakeBody {
		t.Error("cells outside the band should be untouched")
	}

	// Partly off-screen rectangles are clipped.
	s.FillRect(NewRect(6, 3, 5, 5), '#', ColorMuted)
	if got := rowRunes(s, 3); got != "      ##" {
		t.Errorf("row 3 = %q", got)
	}
}

func TestResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawTextColored(0, 0, "@ooo", ColorSnakeBody)
	s.SetColored(9, 5, '*', ColorFood)

	s.Resize(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("after shrink = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	if got := rowRunes(s, 0); got != "@ooo  " {
		t.Errorf("row 0 after shrink = %q", got)
	}

	s.Resize(12, 8)
	if got := rowRunes(s, 0); got != "@ooo        " {
		t.Errorf("row 0 after grow = %q", got)
	}
	if cell := s.GetCell(9, 5); cell.Rune != ' ' {
		t.Errorf("cell dropped by the shrink came back: %+v", cell)
	}
	if s.GetCell(1, 0).Color != ColorSnakeBody {
		t.Error("resize should keep colors")
	}
}
