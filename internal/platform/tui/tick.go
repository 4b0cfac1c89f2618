// Package tui runs blockfall in a terminal with Bubble Tea: the start menu,
// the play loop with held-key emulation, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the wall-clock time of a simulation tick. The key tracker
// releases held keys against it.
type TickMsg time.Time

// tickCmd schedules the next tick. A non-positive rate runs at 60 Hz.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
