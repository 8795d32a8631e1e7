package core

import "time"

// RuntimeConfig is passed to games when they are reset.
// Games use it to adapt to the screen and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed, 0 lets the platform pick one

	// MoveCooldown is the input guard window after an accepted move.
	MoveCooldown time.Duration
}

// DefaultConfig returns a RuntimeConfig with the stock values.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickRate:     60,
		Seed:         0,
		MoveCooldown: 200 * time.Millisecond,
	}
}

// CooldownTicks converts MoveCooldown to whole simulation ticks, rounding up
// so the guard never expires early.
func (c RuntimeConfig) CooldownTicks() int {
	if c.MoveCooldown <= 0 || c.TickRate <= 0 {
		return 0
	}
	scaled := c.MoveCooldown * time.Duration(c.TickRate)
	return int((scaled + time.Second - 1) / time.Second)
}

// GameState is what a game reports to the platform after each tick.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
	// Moved is true when this tick applied a move that changed the board.
	Moved bool
}
