package game

import "time"

// Slot identifies one of the four independent timer categories. At most one
// timer per slot is ever pending; arming a slot replaces whatever was pending
// on it.
type Slot int

const (
	// SlotPlayback paces the display/pause alternation of sequence playback.
	SlotPlayback Slot = iota
	// SlotFeedback clears the pad pulse after a button press and restores
	// the input prompt after a "Good" acknowledgment.
	SlotFeedback
	// SlotTransition ends the between-rounds celebration.
	SlotTransition
	// SlotFlash paces the celebration strobe.
	SlotFlash

	// NumSlots is the number of timer categories.
	NumSlots int = iota
)

func (s Slot) String() string {
	switch s {
	case SlotPlayback:
		return "playback"
	case SlotFeedback:
		return "feedback"
	case SlotTransition:
		return "transition"
	case SlotFlash:
		return "flash"
	default:
		return "unknown"
	}
}

// Scheduler arms one-shot timers on behalf of the engine. Implementations
// must deliver fires on the same logical thread as button events, must let
// Schedule replace a still-pending timer on the same slot, and must treat
// Cancel of an elapsed or empty slot as a no-op.
type Scheduler interface {
	Schedule(slot Slot, d time.Duration, fire func())
	Cancel(slot Slot)
}
