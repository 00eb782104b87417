package game

import "math/rand/v2"

// MaxSequence is the winning sequence length.
const MaxSequence = 8

// Sequence is the recall sequence for one session. It is append-only while a
// game is in progress and reset to empty on restart.
type Sequence struct {
	steps [MaxSequence]Step
	n     int
}

// Len returns the current length.
func (s *Sequence) Len() int { return s.n }

// At returns the step at index i. Callers keep i within [0, Len()).
func (s *Sequence) At(i int) Step { return s.steps[i] }

// AddRandom appends one uniformly random step. Silently does nothing once the
// sequence is at MaxSequence.
func (s *Sequence) AddRandom(rng *rand.Rand) {
	if s.n >= MaxSequence {
		return
	}
	s.steps[s.n] = Step(rng.IntN(NumSteps))
	s.n++
}

// Reset empties the sequence.
func (s *Sequence) Reset() { s.n = 0 }
