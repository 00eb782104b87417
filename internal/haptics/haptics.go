// Package haptics maps the game's vibration cues onto audio pulses. A
// terminal has no vibration motor, so pulses become short generated buzz
// tones played through the speaker.
package haptics

// Kind selects a pulse pattern.
type Kind int

const (
	// Short is the per-press acknowledgment.
	Short Kind = iota
	// Double marks a completed round.
	Double
	// Long marks a wrong press or the final milestone.
	Long
)

func (k Kind) String() string {
	switch k {
	case Short:
		return "short"
	case Double:
		return "double"
	case Long:
		return "long"
	default:
		return "unknown"
	}
}

// Sink receives pulse requests. Implementations are fire-and-forget and never
// fail from the caller's perspective.
type Sink interface {
	Pulse(Kind)
}

// Nop discards every pulse. Used when audio is disabled or unavailable.
type Nop struct{}

// Pulse implements Sink.
func (Nop) Pulse(Kind) {}
