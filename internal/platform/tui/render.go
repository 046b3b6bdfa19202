package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// cellWidth is the number of terminal columns per board cell. Terminal
// cells are roughly twice as tall as wide.
const cellWidth = 2

// minStatusWidth keeps the status line readable on small boards.
const minStatusWidth = 50

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// BoardSize returns the screen size needed to draw a board of w x h cells
// plus the status line.
func BoardSize(w, h int) (int, int) {
	return core.Max(w*cellWidth+2, minStatusWidth), h + 3
}

// headGlyph picks the head rune from the heading vector. Up is +y.
func headGlyph(heading core.Position) rune {
	switch heading {
	case core.Pos(0, 1):
		return '▲'
	case core.Pos(0, -1):
		return '▼'
	case core.Pos(-1, 0):
		return '◀'
	case core.Pos(1, 0):
		return '▶'
	}
	return '■'
}

// DrawBoard draws the status line and the bordered board, centered
// horizontally, into s. Board row y is drawn at screen row height-1-y so
// that up is up.
func DrawBoard(s *core.Screen, title string, bs core.BoardState, st core.GameState) {
	s.Clear()

	status := fmt.Sprintf("%s  score %d  len %d  round %d", title, st.Score, st.Length, st.Round)
	s.DrawText(0, 0, status)

	frameW := bs.Width*cellWidth + 2
	frame := core.NewRect(core.Max((s.Width()-frameW)/2, 0), 1, frameW, bs.Height+2)
	cells := core.NewRect(0, 0, bs.Width, bs.Height)
	s.DrawBox(frame, core.ColorGray)

	toScreen := func(p core.Position) (int, int) {
		return frame.X + 1 + p.X*cellWidth, frame.Y + 1 + (bs.Height - 1 - p.Y)
	}
	put := func(p core.Position, r rune, c core.Color) {
		if !cells.ContainsPos(p) {
			return
		}
		x, y := toScreen(p)
		s.SetColored(x, y, r, c)
		for i := 1; i < cellWidth; i++ {
			fill := r
			if r != '█' {
				fill = ' '
			}
			s.SetColored(x+i, y, fill, c)
		}
	}

	for _, f := range bs.Food {
		put(f, '●', core.ColorBrightRed)
	}
	for i := len(bs.Segments) - 1; i >= 1; i-- {
		put(bs.Segments[i], '█', core.ColorGreen)
	}
	if len(bs.Segments) > 0 {
		put(bs.Segments[0], headGlyph(bs.Heading), core.ColorBrightGreen)
	}

	if st.Paused {
		s.DrawTextCentered(frame.Y+frame.H/2, " PAUSED ")
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
