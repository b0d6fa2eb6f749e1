package core

import (
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
)

// TickMsg is sent on every timer interval to drive time-based redraws.
type TickMsg struct {
	Time time.Time
	ID   string // distinguishes multiple timers
}

// Timer emits TickMsg on a fixed interval for as long as it runs. The
// clock face redraws on a 500ms cadence through one of these.
type Timer struct {
	id       string
	interval time.Duration
	running  bool
}

// NewTimer creates a timer with the given tick interval.
func NewTimer(id string, interval time.Duration) *Timer {
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	return &Timer{id: id, interval: interval}
}

// Start begins ticking.
func (t *Timer) Start() tea.Cmd {
	t.running = true
	return t.tick()
}

// Stop halts the timer; the in-flight tick is ignored on arrival.
func (t *Timer) Stop() {
	t.running = false
}

// IsRunning reports whether the timer is ticking.
func (t *Timer) IsRunning() bool {
	return t.running
}

// Update continues the tick loop when this timer's TickMsg arrives.
func (t *Timer) Update(msg tea.Msg) tea.Cmd {
	if tick, ok := msg.(TickMsg); ok && tick.ID == t.id && t.running {
		return t.tick()
	}
	return nil
}

func (t *Timer) tick() tea.Cmd {
	return tea.Tick(t.interval, func(tm time.Time) tea.Msg {
		return TickMsg{Time: tm, ID: t.id}
	})
}
