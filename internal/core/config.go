package core

// RuntimeConfig is handed to a game variant when it starts: terminal
// dimensions for sizing the bubble field, the fixed physics rate, and the
// RNG seed that makes a whole session (equations, distractors, bubble drift)
// reproducible.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in cells
	ScreenH  int   // Terminal height in cells; the HUD rows come out of this
	TickRate int   // Physics ticks per second (default 60)
	Seed     int64 // RNG seed; same seed, same session
}

// DefaultConfig returns a RuntimeConfig sized for a common 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is what a variant reports back to the platform after a tick:
// the running score and whether the session is over or paused.
type GameState struct {
	Score    int  // Current score, never negative
	GameOver bool // Session ended (timeout or quit)
	Paused   bool // Simulation frozen, countdown included
}

// StepResult carries the outcome of one simulation tick.
type StepResult struct {
	State GameState
}
