// Package registry provides a global registry of playable variants.
// Variants register themselves in init() functions, allowing hosts to
// discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Game is the interface every variant implements. Games contain pure logic
// with no terminal dependencies; the host handles input mapping, timing and
// drawing.
type Game interface {
	// ID returns a unique identifier (e.g., "snake", "snake_legacy").
	// Used for CLI arguments.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts the simulation from scratch.
	// Called once at start and again when the player restarts.
	Reset(cfg core.RuntimeConfig)

	// Step samples one frame of input and runs the ticks that are due.
	Step(in core.InputFrame) core.StepResult

	// State returns the current summary (score, length, round, paused).
	State() core.GameState

	// BoardState returns the drawable board view.
	BoardState() core.BoardState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

// entry pairs a factory with the metadata captured when it was registered.
type entry struct {
	factory Factory
	info    GameInfo
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
//
// The title is read once from a throwaway instance and cached, so List
// never builds games. Titles must not depend on runtime settings.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{
		factory: f,
		info:    GameInfo{ID: id, Title: f().Title()},
	}
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a fresh game by its ID. Every call returns a new
// instance, so hosts may run several games side by side.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
