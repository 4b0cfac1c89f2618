package core

import (
	"errors"
	"fmt"
)

// TopOutPolicy decides what happens when a new piece spawns into the stack.
type TopOutPolicy string

const (
	// TopOutReset silently restarts the game with a fresh board.
	TopOutReset TopOutPolicy = "reset"
	// TopOutGameOver stops the engine until Reset is called.
	TopOutGameOver TopOutPolicy = "game_over"
)

// Level progression constants.
const (
	LinesPerLevel    = 10
	LevelSpeedup     = 0.01 // seconds removed per level reached
	minBoardRows     = 4
	minBoardCols     = 4
	defaultBaseFall  = 1.0
	defaultFallFloor = 0.02
)

// lineScores is the base score for clearing 1..4 rows at once.
var lineScores = [4]int{40, 100, 300, 1200}

// Config contains everything the engine needs at construction.
// Durations are in seconds.
type Config struct {
	Rows int
	Cols int

	StartLevel       int
	FallInterval     float64 // gravity interval at level 0
	MinFallInterval  float64 // floor for the gravity interval
	AutoShiftDelay   float64 // delay before held left/right repeats
	SoftDropInterval float64 // minimum interval between soft-drop steps
	ClearDelay       float64 // pause before full rows collapse; 0 collapses immediately

	TopOut      TopOutPolicy
	StartPaused bool
	Seed        int64 // seed for the default random piece source
}

// DefaultConfig returns the reference 21x10 configuration.
func DefaultConfig() Config {
	return Config{
		Rows:             21,
		Cols:             10,
		StartLevel:       0,
		FallInterval:     defaultBaseFall,
		MinFallInterval:  defaultFallFloor,
		AutoShiftDelay:   0.1,
		SoftDropInterval: 0.04,
		ClearDelay:       0.4,
		TopOut:           TopOutReset,
	}
}

// ErrInvalidConfig is wrapped by every error returned from Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the configuration for values the engine cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Rows < minBoardRows || c.Cols < minBoardCols:
		return fmt.Errorf("core: board %dx%d smaller than %dx%d: %w",
			c.Rows, c.Cols, minBoardRows, minBoardCols, ErrInvalidConfig)
	case c.StartLevel < 0:
		return fmt.Errorf("core: negative start level %d: %w", c.StartLevel, ErrInvalidConfig)
	case c.FallInterval <= 0 || c.MinFallInterval <= 0:
		return fmt.Errorf("core: fall intervals must be positive: %w", ErrInvalidConfig)
	case c.AutoShiftDelay < 0 || c.SoftDropInterval < 0 || c.ClearDelay < 0:
		return fmt.Errorf("core: negative timing value: %w", ErrInvalidConfig)
	}
	switch c.TopOut {
	case TopOutReset, TopOutGameOver:
	default:
		return fmt.Errorf("core: unknown top-out policy %q: %w", c.TopOut, ErrInvalidConfig)
	}
	return nil
}

// FallIntervalForLevel returns the gravity interval after levelling from 0 to
// level, applying the per-level speedup at each step and clamping to floor.
func FallIntervalForLevel(base float64, level int, floor float64) float64 {
	interval := base
	for l := 1; l <= level; l++ {
		interval = speedUp(interval, l, floor)
	}
	return max(interval, floor)
}

func speedUp(interval float64, level int, floor float64) float64 {
	return max(interval-float64(level)*LevelSpeedup, floor)
}

// LineScore returns the points for clearing n rows at the given level.
// Clears larger than four rows score as four.
func LineScore(n, level int) int {
	if n <= 0 {
		return 0
	}
	n = min(n, len(lineScores))
	return (level + 1) * lineScores[n-1]
}
