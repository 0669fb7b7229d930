package core

// Color is a semantic foreground color for a screen cell.
// Views map it to concrete terminal colors through the active theme.
type Color uint8

const (
	ColorDefault Color = iota
	ColorSnakeHead
	ColorSnakeBody
	ColorFood
	ColorBorder
	ColorHUD
	ColorAccent
	ColorMuted
	ColorDanger
)
