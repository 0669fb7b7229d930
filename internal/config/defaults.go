package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration: a 20x20 board, a fixed 200 ms
// tick and 10 points per food.
func Default() Config {
	return Config{
		Board:   BoardConfig{Size: 20},
		Timing:  TimingConfig{TickMs: 200},
		Scoring: ScoringConfig{FoodPoints: 10},
		Rules:   RulesConfig{Collision: "strict"},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
		Preferences: DefaultPreferences(),
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
