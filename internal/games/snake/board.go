package snake

import "github.com/vovakirdan/gridsnake/internal/core"

// Rand is the subset of *rand.Rand used for placement.
type Rand interface {
	Intn(n int) int
}

// Board is the fixed play area. Cells run from (0, 0) to (Width-1, Height-1).
type Board struct {
	Width  int
	Height int
}

// Bounds returns the board area as a rectangle anchored at the origin.
func (b Board) Bounds() core.Rect {
	return core.NewRect(0, 0, b.Width, b.Height)
}

// Area returns the number of cells on the board.
func (b Board) Area() int {
	return b.Bounds().Area()
}

// IsOutOfBounds reports whether p lies outside the board. A head outside
// the board is a wall collision.
func (b Board) IsOutOfBounds(p core.Position) bool {
	return !b.Bounds().ContainsPos(p)
}

// RandomCell draws a uniformly distributed cell on the board.
func (b Board) RandomCell(rng Rand) core.Position {
	return core.Pos(rng.Intn(b.Width), rng.Intn(b.Height))
}
