// Package config provides YAML-based configuration loading, difficulty
// presets and user preferences for gridsnake.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Board limits accepted by Validate.
const (
	MinBoardSize = 5
	MaxBoardSize = 100
	MinTickMs    = 10
)

// Config is the complete gridsnake configuration.
type Config struct {
	Board       BoardConfig      `yaml:"board"`
	Timing      TimingConfig     `yaml:"timing"`
	Scoring     ScoringConfig    `yaml:"scoring"`
	Rules       RulesConfig      `yaml:"rules"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
	Preferences Preferences      `yaml:"preferences"`
}

// BoardConfig defines the playfield.
type BoardConfig struct {
	Size int `yaml:"size"`
}

// TimingConfig defines the game loop period.
type TimingConfig struct {
	TickMs int `yaml:"tick_ms"`
}

// ScoringConfig defines how points are awarded.
type ScoringConfig struct {
	FoodPoints int `yaml:"food_points"`
}

// RulesConfig selects rule variants.
type RulesConfig struct {
	Collision string `yaml:"collision"` // "strict" or "tail_exclusive"
}

// DifficultyConfig defines the speed progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = base speed, 1.0 = max speed
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score" or "none"
	MaxAt int    `yaml:"max_at"` // Score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Extra speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset validates a preset name. Empty means no preset.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfig, s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config for a difficulty preset.
func (c *Config) ApplyPreset(preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		c.Difficulty.Enabled = false
		c.Difficulty.InitialLevel = 0
	default:
		c.Difficulty.Enabled = true
		c.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if c.Board.Size < MinBoardSize || c.Board.Size > MaxBoardSize {
		return fmt.Errorf("%w: board.size %d outside [%d, %d]", ErrInvalidConfig, c.Board.Size, MinBoardSize, MaxBoardSize)
	}
	if c.Timing.TickMs < MinTickMs {
		return fmt.Errorf("%w: timing.tick_ms %d below %d", ErrInvalidConfig, c.Timing.TickMs, MinTickMs)
	}
	if c.Scoring.FoodPoints <= 0 {
		return fmt.Errorf("%w: scoring.food_points must be positive", ErrInvalidConfig)
	}
	if _, err := snake.ParseCollisionPolicy(c.Rules.Collision); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch c.Difficulty.Progression.Type {
	case "", "score", "none":
	default:
		return fmt.Errorf("%w: difficulty.progression.type %q", ErrInvalidConfig, c.Difficulty.Progression.Type)
	}
	return c.Preferences.Validate()
}

// TickInterval returns the base period between ticks.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickMs) * time.Millisecond
}

// Variant maps the configured collision rule to a registered variant id.
func (c Config) Variant() string {
	if c.Rules.Collision == "tail_exclusive" {
		return "relaxed"
	}
	return "classic"
}

// Runtime builds the engine-facing runtime config.
func (c Config) Runtime(seed int64) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.BoardSize = c.Board.Size
	rc.TickInterval = c.TickInterval()
	rc.FoodPoints = c.Scoring.FoodPoints
	rc.Seed = seed
	return rc
}
