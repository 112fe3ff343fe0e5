// Package tui provides the Bubble Tea integration for gridtap. It owns the
// terminal loop, maps keys and mouse presses to cell taps, and drives the
// engine's two clocks: the fixed 100ms countdown tick and the one-shot
// reaction deadline. Both arrive as messages on the single Bubble Tea update
// loop, so engine events are naturally serialized.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gridtap/internal/engine"
)

// TickMsg advances the survival countdown by one fixed interval.
type TickMsg time.Time

// tickCmd returns a command that sends the next countdown tick.
func tickCmd() tea.Cmd {
	return tea.Tick(engine.TickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// DeadlineMsg fires when the reaction window for a spawn generation elapses.
// The generation lets the engine discard expirations from superseded spawns.
type DeadlineMsg struct {
	Gen uint64
}

// deadlineCmd returns a one-shot command for the given spawn generation.
func deadlineCmd(gen uint64, window time.Duration) tea.Cmd {
	return tea.Tick(window, func(time.Time) tea.Msg {
		return DeadlineMsg{Gen: gen}
	})
}
