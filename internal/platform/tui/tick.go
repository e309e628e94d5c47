// Package tui provides the Bubble Tea front end for flouhou.
// It drives a host.Session from a tick timer and key presses and renders its
// frames with half-block characters.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// TickMsg is sent to trigger a simulation tick of one session.
type TickMsg struct {
	Session uuid.UUID
	At      time.Time
}

// tickCmd returns a Bubble Tea command that sends the next tick for a session
// at the specified rate.
func tickCmd(session uuid.UUID, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 16
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Session: session, At: t}
	})
}
