// Package config provides YAML-based simulation configuration loading and
// preset management.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// SnakeConfig contains all constants for a snake simulation. Values are
// read once at startup and never reloaded.
type SnakeConfig struct {
	Board     SnakeBoard     `yaml:"board"`
	Start     SnakeStart     `yaml:"start"`
	Timing    SnakeTiming    `yaml:"timing"`
	Food      SnakeFood      `yaml:"food"`
	Collision SnakeCollision `yaml:"collision"`
}

// SnakeBoard defines the play area in cells.
type SnakeBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeStart defines where the head appears at the start of every round.
// The body is placed one cell below (y-1).
type SnakeStart struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// SnakeTiming defines the simulation cadences.
type SnakeTiming struct {
	MoveInterval time.Duration `yaml:"move_interval"` // movement tick
	FoodInterval time.Duration `yaml:"food_interval"` // expiry + spawn tick
	FoodTTL      time.Duration `yaml:"food_ttl"`      // measured in whole seconds
}

// SnakeFood defines food placement behavior.
type SnakeFood struct {
	SpawnRetries int    `yaml:"spawn_retries"` // redraws when the drawn cell is occupied
	Policy       string `yaml:"policy"`        // "single" or "stack"
}

// SnakeCollision defines self-collision behavior.
type SnakeCollision struct {
	Tail string `yaml:"tail"` // "vacate" or "block"
}

// Food and tail policy names.
const (
	FoodPolicySingle = "single"
	FoodPolicyStack  = "stack"
	TailPolicyVacate = "vacate"
	TailPolicyBlock  = "block"
)

// Validate checks the config for values the simulation cannot run with.
func (c SnakeConfig) Validate() error {
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		return fmt.Errorf("%w: board must be positive, got %dx%d", ErrInvalid, c.Board.Width, c.Board.Height)
	}
	if c.Start.X < 0 || c.Start.X >= c.Board.Width || c.Start.Y < 1 || c.Start.Y >= c.Board.Height {
		return fmt.Errorf("%w: start (%d, %d) leaves the snake off a %dx%d board",
			ErrInvalid, c.Start.X, c.Start.Y, c.Board.Width, c.Board.Height)
	}
	if c.Timing.MoveInterval <= 0 {
		return fmt.Errorf("%w: move_interval must be positive, got %s", ErrInvalid, c.Timing.MoveInterval)
	}
	if c.Timing.FoodInterval <= 0 {
		return fmt.Errorf("%w: food_interval must be positive, got %s", ErrInvalid, c.Timing.FoodInterval)
	}
	if c.Timing.FoodTTL < time.Second {
		return fmt.Errorf("%w: food_ttl must be at least 1s, got %s", ErrInvalid, c.Timing.FoodTTL)
	}
	if c.Food.SpawnRetries < 0 {
		return fmt.Errorf("%w: spawn_retries must not be negative, got %d", ErrInvalid, c.Food.SpawnRetries)
	}
	switch c.Food.Policy {
	case FoodPolicySingle, FoodPolicyStack:
	default:
		return fmt.Errorf("%w: unknown food policy %q", ErrInvalid, c.Food.Policy)
	}
	switch c.Collision.Tail {
	case TailPolicyVacate, TailPolicyBlock:
	default:
		return fmt.Errorf("%w: unknown tail policy %q", ErrInvalid, c.Collision.Tail)
	}
	return nil
}

// Preset represents a named adjustment to the loaded config.
type Preset string

const (
	PresetNone    Preset = ""
	PresetClassic Preset = "classic" // tail vacates, single food
	PresetLegacy  Preset = "legacy"  // tail blocks, food stacks
	PresetEasy    Preset = "easy"    // slower movement, longer-lived food
	PresetHard    Preset = "hard"    // faster movement, short-lived food
)

// Presets lists the accepted preset names.
func Presets() []Preset {
	return []Preset{PresetClassic, PresetLegacy, PresetEasy, PresetHard}
}

// ApplyPreset modifies the config according to a preset.
func ApplyPreset(cfg *SnakeConfig, preset Preset) error {
	switch preset {
	case PresetNone:
	case PresetClassic:
		cfg.Collision.Tail = TailPolicyVacate
		cfg.Food.Policy = FoodPolicySingle
	case PresetLegacy:
		cfg.Collision.Tail = TailPolicyBlock
		cfg.Food.Policy = FoodPolicyStack
		cfg.Timing.FoodInterval = 4 * time.Second
	case PresetEasy:
		cfg.Timing.MoveInterval = 200 * time.Millisecond
		cfg.Timing.FoodTTL = 8 * time.Second
	case PresetHard:
		cfg.Timing.MoveInterval = 100 * time.Millisecond
		cfg.Timing.FoodTTL = 3 * time.Second
	default:
		return fmt.Errorf("%w: unknown preset %q", ErrInvalid, preset)
	}
	return nil
}
