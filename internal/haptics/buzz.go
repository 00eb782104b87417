package haptics

import (
	"math"

	"github.com/gopxl/beep"
)

// buzzStreamer generates a low square-wave buzz with a slight decay so the
// pulse does not click at full amplitude for its whole length. It streams
// forever; callers bound it with beep.Take.
type buzzStreamer struct {
	sr     beep.SampleRate
	freq   float64
	volume float64
	phase  float64
	pos    int
}

func newBuzzStreamer(sr beep.SampleRate, freq, volume float64) *buzzStreamer {
	return &buzzStreamer{sr: sr, freq: freq, volume: volume}
}

func (g *buzzStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		var val float64
		if g.phase < 0.5 {
			val = 1.0
		} else {
			val = -1.0
		}

		// Exponential decay over roughly the first half second.
		decay := math.Exp(-3.0 * float64(g.pos) / float64(g.sr))
		val *= g.volume * 0.5 * decay

		samples[i][0] = val
		samples[i][1] = val

		g.phase += g.freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *buzzStreamer) Err() error { return nil }
