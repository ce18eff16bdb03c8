// Package tui runs The Alchemist in the terminal with Bubble Tea. It owns
// the frame loop, input mapping, the menus and the run history screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the wall-clock time of a frame. The game measures every
// cooldown and banner against it.
type TickMsg time.Time

// tickCmd schedules the next frame.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
