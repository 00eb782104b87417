package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"

	"github.com/sandy-marrero/pebble-says/internal/haptics"
)

// Engine drives one game session. It owns the Session exclusively and mutates
// it only in response to a button event or a timer fire, both delivered on a
// single logical thread. Nothing here blocks; waiting is always a scheduled
// callback.
type Engine struct {
	log       zerolog.Logger
	rng       *rand.Rand
	presenter Presenter
	haptics   haptics.Sink
	timers    Scheduler

	sess Session

	showDur       time.Duration // held for the whole round's playback
	flashInterval time.Duration
	flashPhase    int
	flashCycles   int

	pulsed       Step // pad lit by input feedback
	pulseLit     bool
	revertPrompt bool // a "Good" is on screen and must give way to the prompt
}

// Options configures an Engine. The zero value is usable: logging is
// discarded, the RNG is entropy-seeded, and the flash interval defaults.
type Options struct {
	Log           zerolog.Logger
	Rand          *rand.Rand
	FlashInterval time.Duration
}

// New creates an engine on the start screen: empty sequence, round 0, game
// over until the player presses Select.
func New(p Presenter, h haptics.Sink, t Scheduler, opts Options) *Engine {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	interval := opts.FlashInterval
	if interval <= 0 {
		interval = defaultFlashInterval
	}
	e := &Engine{
		log:           opts.Log,
		rng:           rng,
		presenter:     p,
		haptics:       h,
		timers:        t,
		flashInterval: interval,
	}
	e.sess.phase = PhaseGameOver
	e.presenter.ShowText(MsgPressSelect)
	return e
}

// Phase returns the session's current phase.
func (e *Engine) Phase() Phase { return e.sess.phase }

// Round returns the current round number (equal to the sequence length while
// a game is in progress, 0 on the start screen).
func (e *Engine) Round() int { return e.sess.round }

// Length returns the current sequence length.
func (e *Engine) Length() int { return e.sess.seq.Len() }

// Won reports whether the session ended by reaching the maximum length.
func (e *Engine) Won() bool { return e.sess.won }

// Celebrating reports whether the between-rounds celebration is running.
func (e *Engine) Celebrating() bool { return e.sess.phase == PhaseTransitioning }

// FlashPhase returns the celebration strobe counter. The overlay color
// alternates by its parity.
func (e *Engine) FlashPhase() int { return e.flashPhase }

// StepAt returns the sequence step at index i.
func (e *Engine) StepAt(i int) Step { return e.sess.seq.At(i) }

// PressUp handles an Up button press.
func (e *Engine) PressUp() { e.handleInput(StepUp) }

// PressDown handles a Down button press.
func (e *Engine) PressDown() { e.handleInput(StepDown) }

// PressSelect handles a Select press. On the game-over screen it restarts the
// session; otherwise it is judged like any other input. Restart is
// deliberately Select-only: Up and Down stay dead while game over.
func (e *Engine) PressSelect() {
	if e.sess.phase == PhaseGameOver {
		e.restart()
		return
	}
	e.handleInput(StepSelect)
}

// Teardown cancels every outstanding timer. The engine is not reusable
// afterwards.
func (e *Engine) Teardown() {
	for s := Slot(0); int(s) < NumSlots; s++ {
		e.timers.Cancel(s)
	}
}

func (e *Engine) restart() {
	e.sess.seq.Reset()
	e.sess.round = 0
	e.sess.won = false
	e.sess.seq.AddRandom(e.rng)
	e.log.Info().Int("len", e.sess.seq.Len()).Msg("new game")
	e.BeginRound()
}

// BeginRound resets the cursors and starts playback for the current sequence
// length. The first playback tick runs synchronously; there is no delay
// before the first step appears.
func (e *Engine) BeginRound() {
	e.sess.inputCursor = 0
	e.sess.showCursor = 0
	e.sess.show = showDisplay
	e.sess.phase = PhaseShowing
	e.sess.round = e.sess.seq.Len()
	e.revertPrompt = false
	e.showDur = ShowDuration(e.sess.seq.Len())
	e.log.Info().
		Int("round", e.sess.round).
		Dur("show", e.showDur).
		Msg("begin round")
	e.playbackTick()
}

// playbackTick is the sequence timer callback. In the display phase it
// presents the current step; in the pause phase it clears the cue and
// advances. Once the cursor runs past the sequence the session flips to
// awaiting input.
func (e *Engine) playbackTick() {
	if e.sess.phase != PhaseShowing {
		return
	}

	if e.sess.showCursor >= e.sess.seq.Len() {
		e.sess.phase = PhaseAwaitingInput
		for s := Step(0); int(s) < NumSteps; s++ {
			e.presenter.SetHighlight(s, false)
		}
		e.presenter.ShowText(MsgYourTurn)
		return
	}

	step := e.sess.seq.At(e.sess.showCursor)
	if e.sess.show == showDisplay {
		e.presenter.ShowText(step.String())
		e.presenter.SetHighlight(step, true)
		e.sess.show = showPause
		e.timers.Schedule(SlotPlayback, e.showDur, e.playbackTick)
	} else {
		e.presenter.ShowText("")
		e.presenter.SetHighlight(step, false)
		e.sess.show = showDisplay
		e.sess.showCursor++
		e.timers.Schedule(SlotPlayback, PauseDuration, e.playbackTick)
	}
}

// handleInput judges one button press against the expected step. Presses
// outside the awaiting-input phase are dropped silently; that covers
// playback, the celebration, and the game-over screen.
func (e *Engine) handleInput(pressed Step) {
	if e.sess.phase != PhaseAwaitingInput {
		e.log.Debug().
			Stringer("button", pressed).
			Stringer("phase", e.sess.phase).
			Msg("input dropped")
		return
	}
	if e.sess.inputCursor >= e.sess.seq.Len() {
		// No open slot; cannot happen while the cursor invariant holds.
		return
	}

	expected := e.sess.seq.At(e.sess.inputCursor)
	e.log.Info().
		Stringer("button", pressed).
		Stringer("expected", expected).
		Int("idx", e.sess.inputCursor).
		Msg("press")

	e.pulsePad(pressed)

	if pressed != expected {
		e.haptics.Pulse(haptics.Long)
		e.endGame()
		return
	}

	e.haptics.Pulse(haptics.Short)
	e.sess.inputCursor++

	if e.sess.inputCursor < e.sess.seq.Len() {
		e.presenter.ShowText(MsgGood)
		e.revertPrompt = true
		return
	}

	// Round complete.
	if e.sess.seq.Len() == MaxSequence {
		e.sess.phase = PhaseGameOver
		e.sess.won = true
		e.log.Info().Int("len", e.sess.seq.Len()).Msg("won at max length")
		e.presenter.ShowText(MsgWin)
		return
	}
	e.sess.seq.AddRandom(e.rng)
	e.sess.round = e.sess.seq.Len()
	e.log.Info().Int("len", e.sess.seq.Len()).Msg("round complete")
	e.startTransition()
}

// pulsePad lights the pressed pad for a brief pulse regardless of
// correctness. A pad still lit from a previous press is cleared first so a
// rapid second press cannot strand a highlight.
func (e *Engine) pulsePad(pressed Step) {
	if e.pulseLit {
		e.presenter.SetHighlight(e.pulsed, false)
	}
	e.pulsed = pressed
	e.pulseLit = true
	e.presenter.SetHighlight(pressed, true)
	e.timers.Schedule(SlotFeedback, padPulseDuration, e.clearPulse)
}

// clearPulse ends the pad pulse. If a "Good" acknowledgment is on screen it
// chains a second feedback timer to restore the prompt, so the slot never has
// two timers pending at once.
func (e *Engine) clearPulse() {
	if e.pulseLit {
		e.presenter.SetHighlight(e.pulsed, false)
		e.pulseLit = false
	}
	if e.revertPrompt && e.sess.phase == PhaseAwaitingInput {
		e.timers.Schedule(SlotFeedback, promptRevertDelay, e.revertToPrompt)
	}
}

func (e *Engine) revertToPrompt() {
	e.revertPrompt = false
	if e.sess.phase == PhaseAwaitingInput {
		e.presenter.ShowText(MsgYourTurn)
	}
}

func (e *Engine) endGame() {
	e.sess.phase = PhaseGameOver
	e.revertPrompt = false
	e.timers.Cancel(SlotPlayback)
	e.log.Info().
		Int("round", e.sess.round).
		Int("len", e.sess.seq.Len()).
		Msg("game over")
	e.presenter.ShowText(MsgGameOver)
}

// startTransition runs the between-rounds celebration: a double haptic pulse
// with milestone extras, the length banner, the flash strobe, and a single
// completion timer that hands control back to BeginRound.
func (e *Engine) startTransition() {
	e.sess.phase = PhaseTransitioning

	length := e.sess.seq.Len()
	e.haptics.Pulse(haptics.Double)
	switch {
	case length == 4 || length == 6:
		e.haptics.Pulse(haptics.Short)
	case length == MaxSequence:
		e.haptics.Pulse(haptics.Long)
	}

	e.presenter.ShowBanner(fmt.Sprintf("Length %d", length))

	cycles := 3
	switch {
	case length == 4 || length == 6:
		cycles = 5
	case length == MaxSequence:
		cycles = 7
	}
	e.startFlash(cycles)

	// Slightly longer than the strobe so it finishes before the next round.
	dur := time.Duration(150*cycles+200) * time.Millisecond
	e.timers.Schedule(SlotTransition, dur, e.finishTransition)
}

func (e *Engine) finishTransition() {
	e.timers.Cancel(SlotFlash)
	e.flashPhase = 0
	e.presenter.RequestRedraw()
	e.BeginRound()
}

func (e *Engine) startFlash(cycles int) {
	e.flashPhase = 0
	e.flashCycles = cycles
	e.presenter.RequestRedraw()
	e.timers.Schedule(SlotFlash, e.flashInterval, e.flashTick)
}

func (e *Engine) flashTick() {
	e.flashPhase++
	e.presenter.RequestRedraw()
	if e.flashPhase >= e.flashCycles {
		return
	}
	e.timers.Schedule(SlotFlash, e.flashInterval, e.flashTick)
}
