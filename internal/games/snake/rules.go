package snake

import (
	"fmt"
	"time"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
)

// Rules are the fixed constants of a simulation.
type Rules struct {
	Board        Board
	Start        core.Position
	MoveInterval time.Duration
	FoodInterval time.Duration
	FoodTTL      time.Duration
	SpawnRetries int
	Tail         TailPolicy
	Food         FoodPolicy
}

// DefaultRules returns the rules built from config.DefaultSnakeConfig.
func DefaultRules() Rules {
	r, err := RulesFromConfig(config.DefaultSnakeConfig())
	if err != nil {
		panic(fmt.Sprintf("snake: default config is invalid: %v", err))
	}
	return r
}

// RulesFromConfig validates cfg and converts it to Rules.
func RulesFromConfig(cfg config.SnakeConfig) (Rules, error) {
	if err := cfg.Validate(); err != nil {
		return Rules{}, err
	}

	r := Rules{
		Board:        Board{Width: cfg.Board.Width, Height: cfg.Board.Height},
		Start:        core.Pos(cfg.Start.X, cfg.Start.Y),
		MoveInterval: cfg.Timing.MoveInterval,
		FoodInterval: cfg.Timing.FoodInterval,
		FoodTTL:      cfg.Timing.FoodTTL,
		SpawnRetries: cfg.Food.SpawnRetries,
		Tail:         TailVacates,
		Food:         FoodSingle,
	}
	if cfg.Collision.Tail == config.TailPolicyBlock {
		r.Tail = TailBlocks
	}
	if cfg.Food.Policy == config.FoodPolicyStack {
		r.Food = FoodStack
	}
	return r, nil
}
