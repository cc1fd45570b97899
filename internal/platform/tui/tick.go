// Package tui provides the Bubble Tea front end: the game view, the title
// menu, the settings editor, help and results screens, and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FallTickMsg asks the game to move the active piece down one row.
// Gen is the session generation the tick was scheduled for; a tick from an
// earlier generation belongs to a piece that has already locked, and a tick
// for another session belongs to a game that has already ended.
type FallTickMsg struct {
	Session string
	Gen     uint64
}

// fallTickCmd schedules one fall tick after interval.
func fallTickCmd(interval time.Duration, session string, gen uint64) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return FallTickMsg{Session: session, Gen: gen}
	})
}
