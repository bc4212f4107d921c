// Package tui provides the Bubble Tea integration for the nibbles platform.
// It handles the terminal UI loop, input mapping, recording and playback.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// minPeriod bounds the tick rate of the terminal loop.
const minPeriod = 5 * time.Millisecond

// tickCmd returns a Bubble Tea command that sends a tick message after period.
func tickCmd(period time.Duration) tea.Cmd {
	if period < minPeriod {
		period = minPeriod
	}
	return tea.Tick(period, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
