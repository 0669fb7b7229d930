package config

import (
	"time"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// MinTickInterval is the fastest tick the difficulty curve may reach.
const MinTickInterval = 50 * time.Millisecond

// DifficultyManager derives the tick period from the current score.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: core.ClampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty level in [0, 1] for a score.
func (d *DifficultyManager) Level(score int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}
	progress := core.ClampF(float64(score)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Interval returns the tick period for a score. The base period is divided by
// 1 + level*speed_multiplier and never drops below MinTickInterval.
// With progression disabled and level 0 the base period is returned unchanged.
func (d *DifficultyManager) Interval(base time.Duration, score int) time.Duration {
	level := d.Level(score)
	factor := 1.0 + level*d.cfg.Scaling.SpeedMultiplier
	if factor <= 1.0 {
		return base
	}

	interval := time.Duration(float64(base) / factor)
	if interval < MinTickInterval {
		interval = MinTickInterval
	}
	return interval
}
