package snake

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

// restoreSettings puts the package-level config and logger back after t.
func restoreSettings(t *testing.T) {
	t.Helper()
	cfg, logger := settings()
	t.Cleanup(func() {
		settingsMu.Lock()
		baseConfig, baseLogger = cfg, logger
		settingsMu.Unlock()
	})
}

func TestVariantsAreRegistered(t *testing.T) {
	tests := []struct {
		id    string
		title string
		tail  TailPolicy
		food  FoodPolicy
	}{
		{"snake", "Snake", TailVacates, FoodSingle},
		{"snake_legacy", "Snake (Legacy rules)", TailBlocks, FoodStack},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			g, err := registry.Create(tc.id)
			if err != nil {
				t.Fatalf("Create(%q) failed: %v", tc.id, err)
			}
			if g.ID() != tc.id || g.Title() != tc.title {
				t.Errorf("got %q / %q", g.ID(), g.Title())
			}

			sg, ok := g.(*Game)
			if !ok {
				t.Fatalf("Create(%q) returned %T", tc.id, g)
			}
			rules := sg.Rules()
			if rules.Tail != tc.tail || rules.Food != tc.food {
				t.Errorf("rules tail/food = %s/%s, expected %s/%s", rules.Tail, rules.Food, tc.tail, tc.food)
			}
		})
	}
}

func TestGameResetAndStep(t *testing.T) {
	g := New()
	if g.Round() != nil {
		t.Fatal("Round() should be nil before Reset")
	}

	g.Reset(core.RuntimeConfig{TickRate: 60, Seed: 7})

	st := g.State()
	if st.Length != 2 || st.Round != 1 || st.Score != 0 || st.Paused {
		t.Errorf("initial state = %+v", st)
	}

	bs := g.BoardState()
	if len(bs.Segments) != 2 || bs.Segments[0] != core.Pos(3, 3) {
		t.Errorf("initial segments = %v", bs.Segments)
	}

	res := g.Step(core.NewInputFrame())
	if res.State.Length != 2 {
		t.Errorf("Step() state = %+v", res.State)
	}
}

func TestGameStepWithoutReset(t *testing.T) {
	g := NewLegacy()
	g.Step(core.NewInputFrame())
	if g.Round() == nil {
		t.Fatal("Step() should start a round on demand")
	}
}

func TestLegacyRulesKeepConfiguredTiming(t *testing.T) {
	restoreSettings(t)

	cfg := config.DefaultSnakeConfig()
	cfg.Timing.FoodInterval = 2 * time.Second
	cfg.Timing.MoveInterval = 120 * time.Millisecond
	if err := SetConfig(cfg); err != nil {
		t.Fatalf("SetConfig() failed: %v", err)
	}

	rules := NewLegacy().Rules()
	if rules.FoodInterval != 2*time.Second || rules.MoveInterval != 120*time.Millisecond {
		t.Errorf("legacy timing = %v/%v, expected 120ms/2s", rules.MoveInterval, rules.FoodInterval)
	}
	if rules.Tail != TailBlocks || rules.Food != FoodStack {
		t.Errorf("legacy tail/food = %s/%s", rules.Tail, rules.Food)
	}
}

func TestSetConfig(t *testing.T) {
	restoreSettings(t)

	bad := config.DefaultSnakeConfig()
	bad.Board.Width = 0
	if err := SetConfig(bad); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("SetConfig(invalid) = %v, expected ErrInvalid", err)
	}

	cfg := config.DefaultSnakeConfig()
	cfg.Board.Width = 30
	cfg.Start.X = 10
	if err := SetConfig(cfg); err != nil {
		t.Fatalf("SetConfig() failed: %v", err)
	}

	g := New()
	g.Reset(core.DefaultConfig())
	if bs := g.BoardState(); bs.Width != 30 || bs.Segments[0] != core.Pos(10, 3) {
		t.Errorf("board %dx%d head %v, expected 30 wide starting at (10, 3)", bs.Width, bs.Height, bs.Segments[0])
	}

	SetLogger(nil)
	if _, l := settings(); l == nil {
		t.Error("SetLogger(nil) should install a discard logger")
	}
}
