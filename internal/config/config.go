// Package config provides YAML-based game configuration loading and
// difficulty presets for blockfall.
package config

import "fmt"

// BlockfallConfig contains all tunable settings for a blockfall run.
// Durations are in seconds.
type BlockfallConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Timing     TimingConfig     `yaml:"timing"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig sets the playfield size.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// TimingConfig controls gravity, auto-shift and the line-clear pause.
type TimingConfig struct {
	FallInterval     float64 `yaml:"fall_interval"`      // gravity at level 0
	MinFallInterval  float64 `yaml:"min_fall_interval"`  // gravity never gets faster than this
	AutoShiftDelay   float64 `yaml:"auto_shift_delay"`   // held left/right repeat delay
	SoftDropInterval float64 `yaml:"soft_drop_interval"` // soft-drop step interval
	ClearDelay       float64 `yaml:"clear_delay"`        // 0 collapses cleared rows immediately
}

// GameplayConfig holds rules that are not timing related.
type GameplayConfig struct {
	StartLevel  int    `yaml:"start_level"`
	TopOut      string `yaml:"top_out"` // "reset" or "game_over"
	StartPaused bool   `yaml:"start_paused"`
}

// DifficultyConfig selects a named preset. An empty preset keeps
// gameplay.start_level as written.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// Validate reports settings the game cannot start with.
func (c BlockfallConfig) Validate() error {
	if c.Board.Rows < 4 || c.Board.Cols < 4 {
		return fmt.Errorf("config: board %dx%d is too small", c.Board.Rows, c.Board.Cols)
	}
	if c.Timing.FallInterval <= 0 || c.Timing.MinFallInterval <= 0 {
		return fmt.Errorf("config: fall intervals must be positive")
	}
	if c.Gameplay.StartLevel < 0 {
		return fmt.Errorf("config: negative start level %d", c.Gameplay.StartLevel)
	}
	switch c.Gameplay.TopOut {
	case "", "reset", "game_over":
	default:
		return fmt.Errorf("config: unknown top_out policy %q", c.Gameplay.TopOut)
	}
	if c.Difficulty.Preset != "" && !c.Difficulty.Preset.Valid() {
		return fmt.Errorf("config: unknown difficulty preset %q", c.Difficulty.Preset)
	}
	return nil
}
