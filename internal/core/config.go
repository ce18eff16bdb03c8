package core

import "time"

const defaultTickRate = 60

// RuntimeConfig is what the front end knows when it starts a run: the
// terminal size, the frame rate and the seed.
type RuntimeConfig struct {
	ScreenW  int   // Terminal columns
	ScreenH  int   // Terminal rows
	TickRate int   // Frames per second; zero means 60
	Seed     int64 // Zero asks the front end for a time-based seed
}

// DefaultConfig returns an 80x24 terminal at 60 frames per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: defaultTickRate,
	}
}

// TickInterval is the duration of one frame.
func (c RuntimeConfig) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = defaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// Outcome describes how a run ended.
type Outcome string

const (
	OutcomeNone   Outcome = ""
	OutcomeWon    Outcome = "won"
	OutcomeKilled Outcome = "killed"
	OutcomeQuit   Outcome = "quit"
)

// GameState is the summary the front end reads after every step.
type GameState struct {
	Score    int     // Potions collected across the run
	Level    int     // Ordinal of the current level, starting at 1
	GameOver bool    // The run has stopped
	Paused   bool
	Outcome  Outcome // Set once GameOver is true
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
