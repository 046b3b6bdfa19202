package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration: a 20x20 board,
// head at (3, 3), 150ms moves, food every second living 5 seconds.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: SnakeBoard{
			Width:  20,
			Height: 20,
		},
		Start: SnakeStart{
			X: 3,
			Y: 3,
		},
		Timing: SnakeTiming{
			MoveInterval: 150 * time.Millisecond,
			FoodInterval: time.Second,
			FoodTTL:      5 * time.Second,
		},
		Food: SnakeFood{
			SpawnRetries: 4,
			Policy:       FoodPolicySingle,
		},
		Collision: SnakeCollision{
			Tail: TailPolicyVacate,
		},
	}
}

// DefaultYAML returns the embedded default YAML, suitable as a template.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
