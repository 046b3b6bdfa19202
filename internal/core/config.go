package core

// RuntimeConfig contains host settings passed to a game at initialization.
type RuntimeConfig struct {
	TickRate int   // Host frames per second (input sampling rate, default 60)
	Seed     int64 // RNG seed for deterministic simulation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score  int  // Food eaten in the current round
	Length int  // Current chain length
	Round  int  // 1-based round counter
	Paused bool // Whether the game is paused
}

// Event is something that happened during a simulation step that a host
// may want to observe (e.g. "grew", "game over").
type Event interface {
	String() string
}

// StepResult is returned by Game.Step() after each frame.
// Contains the updated game state and any events raised by ticks that ran.
type StepResult struct {
	State  GameState
	Events []Event
}

// BoardState is the read-only view a host draws from after each frame.
// Coordinates are board cells with y growing upward; the host maps them to
// its own display space.
type BoardState struct {
	Width    int
	Height   int
	Segments []Position // head first
	Heading  Position   // unit step of the head's facing
	Food     []Position
}
