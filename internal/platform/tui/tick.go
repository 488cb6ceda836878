// Package tui runs PopStar in the terminal with Bubble Tea, locally or over
// SSH. It owns the tick loop, input mapping, sound and score persistence.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Loop identifies the tick loop that scheduled it.
type TickMsg struct {
	Time time.Time
	Loop uint64
}

var loopCounter atomic.Uint64

// newLoopID returns a fresh tick loop identifier. Ticks of a game model that
// was left keep arriving for one interval and must not drive a new one.
func newLoopID() uint64 {
	return loopCounter.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}
