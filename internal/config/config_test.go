package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseSnake(DefaultYAML())
	if err != nil {
		t.Fatalf("ParseSnake(embedded) failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded defaults %+v differ from DefaultSnakeConfig() %+v", cfg, DefaultSnakeConfig())
	}
}

func TestParseSnakePartialOverride(t *testing.T) {
	data := []byte(`
board:
  width: 30
timing:
  move_interval: 80ms
collision:
  tail: block
`)
	cfg, err := ParseSnake(data)
	if err != nil {
		t.Fatalf("ParseSnake() failed: %v", err)
	}

	if cfg.Board.Width != 30 {
		t.Errorf("Board.Width = %d, expected 30", cfg.Board.Width)
	}
	if cfg.Board.Height != 20 {
		t.Errorf("Board.Height = %d, expected default 20", cfg.Board.Height)
	}
	if cfg.Timing.MoveInterval != 80*time.Millisecond {
		t.Errorf("MoveInterval = %s, expected 80ms", cfg.Timing.MoveInterval)
	}
	if cfg.Timing.FoodTTL != 5*time.Second {
		t.Errorf("FoodTTL = %s, expected default 5s", cfg.Timing.FoodTTL)
	}
	if cfg.Collision.Tail != TailPolicyBlock {
		t.Errorf("Collision.Tail = %q, expected %q", cfg.Collision.Tail, TailPolicyBlock)
	}
}

func TestParseSnakeEmptyIsDefault(t *testing.T) {
	cfg, err := ParseSnake(nil)
	if err != nil {
		t.Fatalf("ParseSnake(nil) failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("empty input should yield defaults, got %+v", cfg)
	}
}

func TestParseSnakeRejectsUnknownKeys(t *testing.T) {
	_, err := ParseSnake([]byte("board:\n  widht: 10\n"))
	if err == nil {
		t.Fatal("expected an error for a misspelled key")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
	}{
		{"zero width", func(c *SnakeConfig) { c.Board.Width = 0 }},
		{"negative height", func(c *SnakeConfig) { c.Board.Height = -1 }},
		{"start off board", func(c *SnakeConfig) { c.Start.X = 20 }},
		{"body off board", func(c *SnakeConfig) { c.Start.Y = 0 }},
		{"zero move interval", func(c *SnakeConfig) { c.Timing.MoveInterval = 0 }},
		{"zero food interval", func(c *SnakeConfig) { c.Timing.FoodInterval = 0 }},
		{"sub-second ttl", func(c *SnakeConfig) { c.Timing.FoodTTL = 500 * time.Millisecond }},
		{"negative retries", func(c *SnakeConfig) { c.Food.SpawnRetries = -1 }},
		{"unknown food policy", func(c *SnakeConfig) { c.Food.Policy = "many" }},
		{"unknown tail policy", func(c *SnakeConfig) { c.Collision.Tail = "ghost" }},
	}

	if err := DefaultSnakeConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate, got %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultSnakeConfig()
	if err := ApplyPreset(&cfg, PresetLegacy); err != nil {
		t.Fatalf("ApplyPreset(legacy) failed: %v", err)
	}
	if cfg.Collision.Tail != TailPolicyBlock || cfg.Food.Policy != FoodPolicyStack {
		t.Errorf("legacy preset should set block/stack, got %q/%q", cfg.Collision.Tail, cfg.Food.Policy)
	}
	if cfg.Timing.FoodInterval != 4*time.Second {
		t.Errorf("legacy preset food interval = %s, expected 4s", cfg.Timing.FoodInterval)
	}

	if err := ApplyPreset(&cfg, PresetClassic); err != nil {
		t.Fatalf("ApplyPreset(classic) failed: %v", err)
	}
	if cfg.Collision.Tail != TailPolicyVacate || cfg.Food.Policy != FoodPolicySingle {
		t.Errorf("classic preset should set vacate/single, got %q/%q", cfg.Collision.Tail, cfg.Food.Policy)
	}

	for _, p := range Presets() {
		c := DefaultSnakeConfig()
		if err := ApplyPreset(&c, p); err != nil {
			t.Errorf("ApplyPreset(%q) failed: %v", p, err)
		}
		if err := c.Validate(); err != nil {
			t.Errorf("preset %q produced an invalid config: %v", p, err)
		}
	}

	if err := ApplyPreset(&cfg, "turbo"); !errors.Is(err, ErrInvalid) {
		t.Errorf("unknown preset should fail with ErrInvalid, got %v", err)
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("board:\n  width: 12\n  height: 9\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Board.Width != 12 || cfg.Board.Height != 9 {
		t.Errorf("board = %dx%d, expected 12x9", cfg.Board.Width, cfg.Board.Height)
	}
}

func TestLoadSnakeCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSnake(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected an error for a missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board:\n  width: -3\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := LoadSnake(bad); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid for an invalid custom config, got %v", err)
	}
}
