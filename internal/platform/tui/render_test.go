package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/gridsnake/internal/core"
)

func TestDrawBoard(t *testing.T) {
	bs := core.BoardState{
		Width:    5,
		Height:   4,
		Segments: []core.Position{core.Pos(0, 0), core.Pos(1, 0)},
		Heading:  core.Pos(1, 0),
		Food:     []core.Position{core.Pos(4, 3)},
	}
	w, h := BoardSize(bs.Width, bs.Height)
	s := core.NewScreen(w, h)

	DrawBoard(s, "Snake", bs, core.GameState{Score: 2, Length: 2, Round: 1})

	if !strings.HasPrefix(s.Row(0), "Snake  score 2  len 2  round 1") {
		t.Errorf("status = %q", s.Row(0))
	}

	// A 5-wide board is 12 columns framed, centered in the 50-column status width

	tests := []struct {
		name  string
		x, y  int
		rune  rune
		color core.Color
	}{
		{"top-left corner", 19, 1, '┌', core.ColorGray},
		{"bottom-right corner", 30, 6, '┘', core.ColorGray},
		{"head at bottom row", 20, 5, '▶', core.ColorBrightGreen},
		{"body", 22, 5, '█', core.ColorGreen},
		{"body second column", 23, 5, '█', core.ColorGreen},
		{"food at top row", 28, 2, '●', core.ColorBrightRed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cell := s.GetCell(tc.x, tc.y)
			if cell.Rune != tc.rune || cell.Color != tc.color {
				t.Errorf("cell (%d, %d) = %q/%d, expected %q/%d",
					tc.x, tc.y, cell.Rune, cell.Color, tc.rune, tc.color)
			}
		})
	}
}

func TestDrawBoardPaused(t *testing.T) {
	bs := core.BoardState{Width: 20, Height: 20}
	w, h := BoardSize(bs.Width, bs.Height)
	s := core.NewScreen(w, h)

	DrawBoard(s, "Snake", bs, core.GameState{Paused: true})

	// 42-column frame at x=4, rows 1..22; the banner sits mid-frame
	row := s.Row(12)
	if got := strings.Index(row, " PAUSED "); got != 21 {
		t.Errorf("PAUSED at column %d of %q, expected 21", got, row)
	}
}

func TestDrawBoardSkipsOffBoardCells(t *testing.T) {
	bs := core.BoardState{
		Width:    3,
		Height:   3,
		Segments: []core.Position{core.Pos(-1, 0), core.Pos(0, 0)},
		Food:     []core.Position{core.Pos(3, 3)},
	}
	w, h := BoardSize(bs.Width, bs.Height)
	s := core.NewScreen(w, h)

	DrawBoard(s, "Snake", bs, core.GameState{})

	if strings.ContainsAny(s.String(), "●■▲▼◀▶") {
		t.Errorf("off-board cells should not be drawn:\n%s", s.String())
	}
	// One body cell, two columns wide
	if got := strings.Count(s.String(), "█"); got != cellWidth {
		t.Errorf("drew %d body columns, expected %d", got, cellWidth)
	}
}

func TestHeadGlyph(t *testing.T) {
	tests := []struct {
		heading core.Position
		glyph   rune
	}{
		{core.Pos(0, 1), '▲'},
		{core.Pos(0, -1), '▼'},
		{core.Pos(-1, 0), '◀'},
		{core.Pos(1, 0), '▶'},
		{core.Pos(0, 0), '■'},
	}

	for _, tc := range tests {
		if got := headGlyph(tc.heading); got != tc.glyph {
			t.Errorf("headGlyph(%v) = %q, expected %q", tc.heading, got, tc.glyph)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 0, 'c', core.ColorRed)
	s.SetColored(0, 1, 'd', core.Color(200))

	out := RenderScreen(s)

	for _, want := range []string{"ab", "c", "d"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() output %q is missing %q", out, want)
		}
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("RenderScreen() has %d newlines, expected 1", got)
	}
}
