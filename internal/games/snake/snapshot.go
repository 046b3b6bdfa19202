package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Snapshot captures the complete simulation state for determinism tests,
// headless output and hosts.
type Snapshot struct {
	Tick       uint64
	Round      int
	Score      int
	LastLength int
	Paused     bool
	Dir        Direction
	Segments   []core.Position // head first
	Food       []Food
}

// Snapshot returns a copy of the current state.
func (r *Round) Snapshot() Snapshot {
	return Snapshot{
		Tick:       r.tick,
		Round:      r.roundNo,
		Score:      r.score,
		LastLength: r.lastLength,
		Paused:     r.paused,
		Dir:        r.snake.Direction(),
		Segments:   r.snake.Positions(),
		Food:       r.food.Items(),
	}
}

// BoardState returns the drawable view of the board.
func (r *Round) BoardState() core.BoardState {
	items := r.food.Items()
	food := make([]core.Position, len(items))
	for i, f := range items {
		food[i] = f.Pos
	}
	return core.BoardState{
		Width:    r.rules.Board.Width,
		Height:   r.rules.Board.Height,
		Segments: r.snake.Positions(),
		Heading:  r.snake.Direction().Delta(),
		Food:     food,
	}
}

// Head returns the head position recorded in the snapshot.
func (s Snapshot) Head() core.Position {
	if len(s.Segments) == 0 {
		return core.Position{}
	}
	return s.Segments[0]
}

// DebugString returns a compact textual dump of the snapshot.
func (s Snapshot) DebugString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Round: %d, Tick: %d, Score: %d\n", s.Round, s.Tick, s.Score)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s, Head: (%d, %d)\n",
		len(s.Segments), s.Dir, s.Head().X, s.Head().Y)
	for _, f := range s.Food {
		fmt.Fprintf(&b, "Food: (%d, %d) since %s\n", f.Pos.X, f.Pos.Y, f.CreatedAt)
	}
	return b.String()
}
