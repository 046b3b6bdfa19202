package snake

import "github.com/vovakirdan/gridsnake/internal/core"

// Direction represents the head's facing.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Valid reports whether d is one of the four defined directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// Opposite returns the reverse direction. Undefined values are returned as is.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return d
}

// Delta returns the unit step for d. Up is +y.
func (d Direction) Delta() core.Position {
	switch d {
	case DirUp:
		return core.Pos(0, 1)
	case DirDown:
		return core.Pos(0, -1)
	case DirLeft:
		return core.Pos(-1, 0)
	case DirRight:
		return core.Pos(1, 0)
	}
	return core.Position{}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// directionPriority maps directional actions to directions. Its order
// resolves frames that carry several directions but no LastDirection,
// such as frames built directly from an Actions map.
var directionPriority = []struct {
	action core.Action
	dir    Direction
}{
	{core.ActionLeft, DirLeft},
	{core.ActionDown, DirDown},
	{core.ActionUp, DirUp},
	{core.ActionRight, DirRight},
}

// DirectionFromInput returns the requested direction in the frame, if any.
// The latest directional key of the frame wins.
func DirectionFromInput(in core.InputFrame) (Direction, bool) {
	if last := in.LastDirection; last.IsDirectional() && in.Has(last) {
		for _, p := range directionPriority {
			if p.action == last {
				return p.dir, true
			}
		}
	}
	for _, p := range directionPriority {
		if in.Has(p.action) {
			return p.dir, true
		}
	}
	return 0, false
}
