package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/platform/tui"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the terminal",
	Long: `Start playing the given variant (default: snake).

Variants:
  snake         - Moving into the cell the tail just left is safe,
                  at most one food item at a time
  snake_legacy  - The vacated tail cell still blocks, food keeps
                  spawning while older food is alive. Timing follows
                  the config; add --preset legacy for 4s food

Controls:
  Arrows/WASD/hjkl  - Steer
  P/Esc             - Pause
  R                 - Restart
  Q/Ctrl+C          - Quit

Examples:
  snake play
  snake play snake_legacy
  snake play --preset easy
  snake play --config ./my-snake.yaml --log-file snake.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := string(snake.VariantClassic)
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see available variants.")
		os.Exit(1)
	}

	needW, needH := tui.BoardSize(loadedCfg.Board.Width, loadedCfg.Board.Height)
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (w < needW || h < needH) {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the board needs %dx%d\n", w, h, needW, needH)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	cfg := core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	logger.Info("starting game", "variant", gameID, "fps", flagFPS, "seed", flagSeed)

	if err := tui.Run(game, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
