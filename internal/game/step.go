// Package game implements the memory-sequence recall state machine: the
// growing random sequence, timed playback, input judging, and the round
// transition celebration. It is single-threaded and timer-driven; all
// presentation and timer plumbing is injected through the Presenter,
// haptics.Sink, and Scheduler contracts so the package stays free of any
// terminal or audio imports.
package game

// Step is one symbol of the recall sequence, mapped to a physical button.
type Step int

const (
	StepUp Step = iota
	StepSelect
	StepDown
)

// NumSteps is the size of the step alphabet.
const NumSteps = 3

// String returns the display name shown during playback.
func (s Step) String() string {
	switch s {
	case StepUp:
		return "Up"
	case StepSelect:
		return "Select"
	case StepDown:
		return "Down"
	default:
		return "?"
	}
}
