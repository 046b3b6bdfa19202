package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/platform/tui"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

var (
	flagMoves    int
	flagTurnOdds int
	flagSimGame  string
	flagShowEach bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Runs the simulation without a terminal UI on a manual clock, one
movement tick per step, turning at random. Prints every event and the final
board. The same --seed always gives the same run.

Examples:
  snake sim
  snake sim --moves 1000 --seed 7
  snake sim --variant snake_legacy --turn-odds 3 --show-each`,
	Run: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagMoves, "moves", 200, "Number of movement ticks to run")
	simCmd.Flags().IntVar(&flagTurnOdds, "turn-odds", 4, "Turn on average once every N moves (0 = never turn)")
	simCmd.Flags().StringVar(&flagSimGame, "variant", "snake", "Variant to simulate")
	simCmd.Flags().BoolVar(&flagShowEach, "show-each", false, "Print the board after every move")
}

func runSim(_ *cobra.Command, _ []string) {
	g, err := registry.Create(flagSimGame)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	sg, ok := g.(*snake.Game)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: %q is not a snake variant\n", flagSimGame)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rules := sg.Rules()
	clk := core.NewManualClock(0)
	round := snake.NewRound(rules, seed,
		snake.WithClock(clk),
		snake.WithLogger(logger.With("game", sg.ID())),
	)
	turns := rand.New(rand.NewSource(seed + 1))

	fmt.Printf("Simulating %d moves of %s (seed %d)\n\n", flagMoves, sg.Title(), seed)

	for i := 0; i < flagMoves; i++ {
		clk.Advance(rules.MoveInterval)

		in := core.NewInputFrame()
		if flagTurnOdds > 0 && turns.Intn(flagTurnOdds) == 0 {
			in.Set(randomTurn(turns))
		}

		res := round.Step(in)
		for _, e := range res.Events {
			fmt.Printf("move %4d  %s\n", i+1, e)
		}
		if flagShowEach {
			printBoard(round, sg.Title())
		}
	}

	snap := round.Snapshot()
	fmt.Println()
	fmt.Print(snap.DebugString())
	if snap.LastLength > 0 {
		fmt.Printf("Last round length: %d\n", snap.LastLength)
	}
	fmt.Println()
	printBoard(round, sg.Title())
}

func randomTurn(rng *rand.Rand) core.Action {
	dirs := [...]core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}
	return dirs[rng.Intn(len(dirs))]
}

func printBoard(r *snake.Round, title string) {
	bs := r.BoardState()
	s := core.NewScreen(tui.BoardSize(bs.Width, bs.Height))
	tui.DrawBoard(s, title, bs, r.State())
	for y := 0; y < s.Height(); y++ {
		fmt.Println(strings.TrimRight(s.Row(y), " "))
	}
}
