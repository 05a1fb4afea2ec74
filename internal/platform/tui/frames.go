// Package tui plays the game in a terminal with Bubble Tea, locally or over
// SSH, and browses recorded sessions.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/all-my-doggies/internal/game"
)

// frameMsg carries a snapshot rendered by the loop.
type frameMsg game.Snapshot

// loopDoneMsg reports that the loop has stopped and Frames is closed.
type loopDoneMsg struct{}

// waitForFrame returns a command that blocks until the next snapshot.
func waitForFrame(frames <-chan game.Snapshot) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-frames
		if !ok {
			return loopDoneMsg{}
		}
		return frameMsg(s)
	}
}
