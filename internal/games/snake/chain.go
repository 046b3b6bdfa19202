package snake

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// ErrCorruptChain is returned when the segment chain is missing segments it
// must have. Callers should treat it as fatal for the round.
var ErrCorruptChain = errors.New("snake: corrupted segment chain")

// TailPolicy decides whether the cell the tail leaves during a move counts
// as body for self-collision.
type TailPolicy int

const (
	// TailVacates treats the pre-move tail cell as free.
	TailVacates TailPolicy = iota
	// TailBlocks checks against every pre-move segment, tail included.
	TailBlocks
)

func (p TailPolicy) String() string {
	if p == TailBlocks {
		return "block"
	}
	return "vacate"
}

// Segment is one link of the chain.
type Segment struct {
	Pos core.Position
}

// Move is the outcome of one Advance.
type Move struct {
	Head     core.Position // head after the move
	LastTail core.Position // tail before the move; where growth lands
}

// Snake is the ordered segment chain. Index 0 is the head, which alone
// carries the facing direction.
type Snake struct {
	segments []Segment
	dir      Direction
	prev     []core.Position // pre-move snapshot from the last Advance
}

// NewSnake creates a two-segment snake with its head at start.
func NewSnake(start core.Position) *Snake {
	s := &Snake{}
	s.Reset(start)
	return s
}

// Reset replaces the chain with the head at start facing up and one body
// segment directly below it.
func (s *Snake) Reset(start core.Position) {
	s.segments = append(s.segments[:0],
		Segment{Pos: start},
		Segment{Pos: start.Sub(DirUp.Delta())},
	)
	s.dir = DirUp
	s.prev = s.prev[:0]
}

// Len returns the number of segments including the head.
func (s *Snake) Len() int {
	return len(s.segments)
}

// Direction returns the head's facing.
func (s *Snake) Direction() Direction {
	return s.dir
}

// Segment returns the position of segment i.
func (s *Snake) Segment(i int) (core.Position, error) {
	if i < 0 || i >= len(s.segments) {
		return core.Position{}, fmt.Errorf("%w: no segment %d of %d", ErrCorruptChain, i, len(s.segments))
	}
	return s.segments[i].Pos, nil
}

// Head returns the head position. The chain is never empty between resets.
func (s *Snake) Head() core.Position {
	if len(s.segments) == 0 {
		return core.Position{}
	}
	return s.segments[0].Pos
}

// Positions returns a copy of all segment positions, head first.
func (s *Snake) Positions() []core.Position {
	out := make([]core.Position, len(s.segments))
	for i, seg := range s.segments {
		out[i] = seg.Pos
	}
	return out
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p core.Position) bool {
	for _, seg := range s.segments {
		if seg.Pos == p {
			return true
		}
	}
	return false
}

// SetDirection turns the head unless d would reverse it onto its neck or is
// not a defined direction. Rejected requests are silently ignored.
func (s *Snake) SetDirection(d Direction) bool {
	if !d.Valid() || d == s.dir.Opposite() {
		return false
	}
	s.dir = d
	return true
}

// Advance moves the head one cell in its direction and shifts every other
// segment into the pre-move position of the segment ahead of it.
func (s *Snake) Advance() (Move, error) {
	if len(s.segments) < 2 {
		return Move{}, fmt.Errorf("%w: advance with %d segments", ErrCorruptChain, len(s.segments))
	}

	s.prev = s.prev[:0]
	for _, seg := range s.segments {
		s.prev = append(s.prev, seg.Pos)
	}

	s.segments[0].Pos = s.prev[0].Add(s.dir.Delta())
	for i := 1; i < len(s.segments); i++ {
		s.segments[i].Pos = s.prev[i-1]
	}

	return Move{
		Head:     s.segments[0].Pos,
		LastTail: s.prev[len(s.prev)-1],
	}, nil
}

// IsSelfCollision reports whether head hits the body as it stood before the
// last Advance. Under TailVacates the old tail cell is not counted.
func (s *Snake) IsSelfCollision(head core.Position, policy TailPolicy) bool {
	cells := s.prev
	if policy == TailVacates && len(cells) > 0 {
		cells = cells[:len(cells)-1]
	}
	for _, p := range cells {
		if p == head {
			return true
		}
	}
	return false
}

// Grow appends a segment at the tail end. at must be the LastTail of the
// Advance that triggered the growth.
func (s *Snake) Grow(at core.Position) {
	s.segments = append(s.segments, Segment{Pos: at})
}
