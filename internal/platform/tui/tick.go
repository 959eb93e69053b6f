// Package tui provides the Bubble Tea integration for the calma games.
// It handles the terminal UI loop, mouse and key mapping, the session
// shell (menu, settings, history) and SSH serving.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/calma/internal/platform/shell"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// CongratsMsg fires a moment after the fanfare of a completed round.
type CongratsMsg struct{ round int }

func congratsCmd(round int) tea.Cmd {
	return tea.Tick(shell.CongratsDelay, func(time.Time) tea.Msg {
		return CongratsMsg{round: round}
	})
}
