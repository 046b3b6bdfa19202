// snake runs the grid snake simulation in the terminal, over SSH, or
// headless.
//
// Usage:
//
//	snake play [variant]   - Play in the terminal (default variant: snake)
//	snake serve            - Start SSH server for remote play
//	snake sim              - Run a headless simulation and print the result
//	snake list             - List variants and presets
//	snake config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Host frame rate (default: 60)
//	--seed <value>       - RNG seed for reproducible food placement
//	--config <path>      - Custom config YAML
//	--preset <name>      - classic, legacy, easy or hard
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagPreset   string
	flagLogLevel string
	flagLogFile  string
)

// Set up by the root pre-run hook.
var (
	logger    *log.Logger
	logFile   *os.File
	loadedCfg config.SnakeConfig
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Grid snake - steer, eat, grow, don't crash",
	Long: `Grid snake is a snake simulation on a fixed 20x20 board. The snake moves
one cell per movement tick, grows by eating food and starts over after
hitting a wall or itself.

Available commands:
  play     - Play in the terminal
  serve    - Start SSH server for remote play
  sim      - Run a headless simulation
  list     - List variants and presets
  config   - Print the effective configuration

Examples:
  snake play
  snake play snake_legacy
  snake play --preset hard
  snake sim --moves 500 --seed 42
  snake serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Host frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Preset: classic, legacy, easy, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads the config, applies the preset and installs the logger
// before any subcommand runs.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}
	if err := config.ApplyPreset(&cfg, config.Preset(flagPreset)); err != nil {
		return err
	}
	if err := snake.SetConfig(cfg); err != nil {
		return err
	}
	loadedCfg = cfg

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = os.Stderr
	switch {
	case flagLogFile != "":
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return fmt.Errorf("cannot open log file: %w", openErr)
		}
		logFile = f
		out = f
	case cmd.Name() == "play":
		// Keep the alternate screen clean
		out = io.Discard
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "gridsnake",
		Level:           level,
	})
	snake.SetLogger(logger)
	logger.Debug("config loaded",
		"board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		"move_interval", cfg.Timing.MoveInterval,
		"tail", cfg.Collision.Tail,
		"food", cfg.Food.Policy,
	)
	return nil
}
