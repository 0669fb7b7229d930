package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(DefaultYAML()) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Embedded YAML = %+v, expected %+v", cfg, Default())
	}
}

func TestParsePartialOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("board:\n  size: 30\nrules:\n  collision: tail_exclusive\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Board.Size != 30 {
		t.Errorf("Board.Size = %d, expected 30", cfg.Board.Size)
	}
	if cfg.Timing.TickMs != 200 {
		t.Errorf("Timing.TickMs = %d, expected default 200", cfg.Timing.TickMs)
	}
	if cfg.Variant() != "relaxed" {
		t.Errorf("Variant() = %q, expected relaxed", cfg.Variant())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"board too small", func(c *Config) { c.Board.Size = 2 }},
		{"board too large", func(c *Config) { c.Board.Size = 500 }},
		{"tick too fast", func(c *Config) { c.Timing.TickMs = 1 }},
		{"zero food points", func(c *Config) { c.Scoring.FoodPoints = 0 }},
		{"unknown collision", func(c *Config) { c.Rules.Collision = "ghost" }},
		{"unknown progression", func(c *Config) { c.Difficulty.Progression.Type = "time" }},
		{"unknown theme", func(c *Config) { c.Preferences.Theme = "sepia" }},
		{"unknown locale", func(c *Config) { c.Preferences.Locale = "fr" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}

	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("timing:\n  tick_ms: 120\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.TickInterval() != 120*time.Millisecond {
		t.Errorf("TickInterval() = %v, expected 120ms", cfg.TickInterval())
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("board:\n  size: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestRuntime(t *testing.T) {
	rc := Default().Runtime(99)
	if rc.BoardSize != 20 || rc.FoodPoints != 10 || rc.Seed != 99 {
		t.Errorf("Runtime() = %+v", rc)
	}
	if rc.TickInterval != 200*time.Millisecond {
		t.Errorf("Runtime().TickInterval = %v, expected 200ms", rc.TickInterval)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := Default()
	cfg.ApplyPreset(DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("Hard preset = %+v", cfg.Difficulty)
	}

	cfg.ApplyPreset(DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("Fixed preset should disable progression")
	}

	if _, err := ParseDifficultyPreset("insane"); err == nil {
		t.Error("ParseDifficultyPreset should reject unknown presets")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Board.Size = 25
	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if back.Board.Size != 25 {
		t.Errorf("Board.Size = %d after round trip", back.Board.Size)
	}
}
