package game

// Phase is the session's top-level state. It replaces the showing /
// transitioning / game-over flag trio with a single enum so that impossible
// flag combinations cannot be represented.
type Phase int

const (
	// PhaseIdle is never entered after New; it exists so the zero value of
	// a Session is distinguishable from a live one.
	PhaseIdle Phase = iota
	// PhaseShowing means the sequence is being played back; input is dropped.
	PhaseShowing
	// PhaseAwaitingInput means the player is entering the sequence.
	PhaseAwaitingInput
	// PhaseTransitioning is the between-rounds celebration; input is dropped.
	PhaseTransitioning
	// PhaseGameOver covers the start screen, a loss, and a win. Only Select
	// leaves it, by restarting.
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseShowing:
		return "showing"
	case PhaseAwaitingInput:
		return "awaiting_input"
	case PhaseTransitioning:
		return "transitioning"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// showPhase alternates within playback: a step is displayed, then cleared for
// a fixed pause before the next one.
type showPhase int

const (
	showDisplay showPhase = iota
	showPause
)

// Session holds all mutable state of one game. Exactly one session is live at
// a time, owned by the Engine; it is only ever touched from the single
// logical thread that delivers timer fires and button events.
//
// Invariants: inputCursor <= seq.Len(); showCursor <= seq.Len() while showing.
type Session struct {
	seq         Sequence
	inputCursor int
	showCursor  int
	show        showPhase
	round       int
	phase       Phase
	won         bool
}
