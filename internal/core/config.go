package core

import "time"

// DefaultTickInterval is the fixed period between engine ticks.
const DefaultTickInterval = 200 * time.Millisecond

// RuntimeConfig is handed to views and engine factories at start-up.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	BoardSize    int           // Board edge length in cells
	TickInterval time.Duration // Period between engine ticks
	FoodPoints   int           // Score awarded per food
	Seed         int64         // RNG seed, 0 means time based
}

// DefaultConfig returns a RuntimeConfig with the classic game values.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		BoardSize:    DefaultBoardSize,
		TickInterval: DefaultTickInterval,
		FoodPoints:   10,
	}
}

// GameState is the summary a controller needs after every tick.
type GameState struct {
	Score    int  // Current score
	Length   int  // Snake length
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the controller has stopped ticking
}

// DeathCause names the collision that ended a game.
type DeathCause string

const (
	CauseNone DeathCause = ""
	CauseWall DeathCause = "wall"
	CauseSelf DeathCause = "self"
)

// StepResult is returned by every engine tick.
type StepResult struct {
	Moved bool       // Head advanced one cell
	Ate   bool       // Head reached the food this tick
	Died  bool       // This tick ended the game
	Cause DeathCause // Set when Died is true
	State GameState
}
