package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW    int   // Screen width in characters
	ScreenH    int   // Screen height in characters
	TickRate   int   // Simulation ticks per second (default 60)
	Seed       int64 // RNG seed for deterministic gameplay
	StartLevel int   // Level the game starts at; negative keeps the game's own setting
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		Seed:       0, // 0 means use current time in platform layer
		StartLevel: -1,
	}
}

// TickSeconds returns the simulated duration of one tick.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int
	Lines    int
	Level    int
	GameOver bool
	Paused   bool
}

// Notice is a platform-level event raised by a game during a tick.
// The platform logs notices and records finished runs.
type Notice struct {
	Kind  string // e.g. "lines_cleared", "level_up", "top_out"
	Value int    // lines cleared, new level, or final score

	// Set for "top_out" only: the totals of the run that just ended.
	Lines   int
	Level   int
	Seconds float64
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State   GameState
	Notices []Notice
}
