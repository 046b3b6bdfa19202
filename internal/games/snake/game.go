package snake

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

// Variant selects which rule set a registered game uses.
type Variant string

const (
	VariantClassic Variant = "snake"
	VariantLegacy  Variant = "snake_legacy"
)

// Package-level settings shared by every registered game. Hosts set them
// once at startup, before creating games.
var (
	settingsMu sync.RWMutex
	baseConfig = config.DefaultSnakeConfig()
	baseLogger = log.New(io.Discard)
)

// SetConfig sets the config every new game starts from.
func SetConfig(cfg config.SnakeConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("snake: %w", err)
	}
	settingsMu.Lock()
	baseConfig = cfg
	settingsMu.Unlock()
	return nil
}

// SetLogger sets the logger handed to every new round. nil discards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	settingsMu.Lock()
	baseLogger = l
	settingsMu.Unlock()
}

func settings() (config.SnakeConfig, *log.Logger) {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return baseConfig, baseLogger
}

// Game adapts a Round to the registry.Game interface.
type Game struct {
	variant Variant
	round   *Round
}

// New creates a classic game: the vacated tail cell is safe and at most
// one food item is alive.
func New() *Game {
	return &Game{variant: VariantClassic}
}

// NewLegacy creates a game with the legacy rules: the vacated tail cell
// blocks and food keeps spawning while older food is alive. Timing comes
// from the configured settings; the slower legacy food interval is only
// applied by the legacy preset.
func NewLegacy() *Game {
	return &Game{variant: VariantLegacy}
}

func init() {
	registry.Register(string(VariantClassic), func() registry.Game {
		return New()
	})
	registry.Register(string(VariantLegacy), func() registry.Game {
		return NewLegacy()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantLegacy {
		return "Snake (Legacy rules)"
	}
	return "Snake"
}

// Rules returns the rules a new round of this game would use.
func (g *Game) Rules() Rules {
	cfg, _ := settings()
	if g.variant == VariantLegacy {
		// Only the policies; timing stays as configured.
		cfg.Collision.Tail = config.TailPolicyBlock
		cfg.Food.Policy = config.FoodPolicyStack
	}
	rules, err := RulesFromConfig(cfg)
	if err != nil {
		return DefaultRules()
	}
	return rules
}

// Reset starts a fresh simulation with a new clock.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	_, logger := settings()
	g.round = NewRound(g.Rules(), cfg.Seed,
		WithClock(core.NewPausableClock()),
		WithLogger(logger.With("game", g.ID())),
	)
}

// Round returns the underlying simulation, or nil before Reset.
func (g *Game) Round() *Round {
	return g.round
}

func (g *Game) ensureRound() *Round {
	if g.round == nil {
		g.Reset(core.DefaultConfig())
	}
	return g.round
}

// Step advances the simulation by one host frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	return g.ensureRound().Step(in)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.ensureRound().State()
}

// BoardState returns the drawable board view.
func (g *Game) BoardState() core.BoardState {
	return g.ensureRound().BoardState()
}
