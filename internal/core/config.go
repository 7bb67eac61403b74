package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to the display and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int           // Screen width in characters
	ScreenH  int           // Screen height in characters
	TickRate int           // Simulation ticks per second (default 30)
	Seed     int64         // RNG seed for deterministic gameplay
	EndDelay time.Duration // How long the final frame stays up before exit
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
		EndDelay: time.Second,
	}
}

// Outcome describes how a game ended.
type Outcome int

const (
	OutcomeNone Outcome = iota // Still running
	OutcomeWon
	OutcomeLost
	OutcomeQuit
)

// String returns the outcome name used in storage and logs.
func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	case OutcomeQuit:
		return "quit"
	default:
		return "running"
	}
}

// Ranked reports whether a run with this outcome belongs in the high score table.
func (o Outcome) Ranked() bool {
	return o == OutcomeWon || o == OutcomeLost
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int     // Current score
	Cycle    int     // Number of simulation ticks run so far
	GameOver bool    // Whether the game has ended
	Outcome  Outcome // Why the game ended (OutcomeNone while running)
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
