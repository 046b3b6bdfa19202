// Package tui provides the Bubble Tea host for the simulation: the frame
// loop, key mapping, board drawing and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// maxTickRate caps the host frame rate.
const maxTickRate = 240

// TickMsg is sent once per host frame. The game decides which of its own
// cadences are due.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
// Rates are clamped to [1, maxTickRate].
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func tickInterval(tickRate int) time.Duration {
	return time.Second / time.Duration(core.Clamp(tickRate, 1, maxTickRate))
}
