package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandy-marrero/pebble-says/internal/game"
)

// timerMsg is delivered when a slot's timer elapses. The generation guards
// against stale ticks: a tea.Tick cannot be revoked once issued, so ticks
// from timers that were since rearmed or cancelled arrive with an old
// generation and are dropped.
type timerMsg struct {
	slot game.Slot
	gen  uint64
}

type slotState struct {
	gen  uint64
	fire func()
}

// schedule implements game.Scheduler on top of tea.Tick. Schedule and Cancel
// are called synchronously from within Update, so no locking is needed; the
// produced commands are collected and drained into the Bubble Tea runtime
// after each engine entry.
type schedule struct {
	slots   [game.NumSlots]slotState
	pending []tea.Cmd
}

// Schedule arms a slot, replacing any pending timer on it.
func (s *schedule) Schedule(slot game.Slot, d time.Duration, fire func()) {
	st := &s.slots[slot]
	st.gen++
	st.fire = fire
	gen := st.gen
	s.pending = append(s.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return timerMsg{slot: slot, gen: gen}
	}))
}

// Cancel empties a slot. Cancelling an elapsed or empty slot is a no-op.
func (s *schedule) Cancel(slot game.Slot) {
	st := &s.slots[slot]
	st.gen++
	st.fire = nil
}

// deliver runs a slot's callback if the message is current. The slot is
// emptied before the callback runs so a cancel issued from inside it sees no
// timer.
func (s *schedule) deliver(msg timerMsg) {
	st := &s.slots[msg.slot]
	if msg.gen != st.gen || st.fire == nil {
		return
	}
	fire := st.fire
	st.fire = nil
	fire()
}

// drain hands the accumulated tick commands to the runtime.
func (s *schedule) drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Batch(cmds...)
}
