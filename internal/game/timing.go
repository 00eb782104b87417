package game

import "time"

const (
	baseShowMS = 700
	minShowMS  = 200

	// PauseDuration is the fixed gap between played-back steps.
	PauseDuration = 300 * time.Millisecond

	// padPulseDuration is how long a pressed pad stays lit.
	padPulseDuration = 150 * time.Millisecond

	// promptRevertDelay follows the pad pulse, putting the "Your turn"
	// prompt back 200ms after a mid-round "Good" acknowledgment.
	promptRevertDelay = 50 * time.Millisecond

	// defaultFlashInterval is the celebration strobe tick rate.
	defaultFlashInterval = 140 * time.Millisecond
)

// ShowDuration returns how long each step stays visible during playback for a
// round of the given sequence length. The ramp is steeper early and gentler
// later, floored at 200ms. Derived once per round, not per step.
func ShowDuration(length int) time.Duration {
	var ms int
	switch {
	case length <= 1:
		ms = baseShowMS
	case length <= 3:
		ms = baseShowMS - 60*(length-1)
	default:
		ms = baseShowMS - 60*2 - 35*(length-3)
	}
	if ms < minShowMS {
		ms = minShowMS
	}
	return time.Duration(ms) * time.Millisecond
}
