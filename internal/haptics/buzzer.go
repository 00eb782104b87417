package haptics

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Pulse patterns. Double is two shorts with a gap between them.
const (
	shortPulse = 100 * time.Millisecond
	longPulse  = 400 * time.Millisecond
	doubleGap  = 60 * time.Millisecond

	buzzFreq = 120.0
)

// Buzzer plays pulses through the speaker. All methods are safe to call
// before Init or after a failed Init; they simply do nothing.
type Buzzer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewBuzzer creates a buzzer with the given volume in [0, 1].
func NewBuzzer(volume float64) *Buzzer {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	return &Buzzer{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Init opens the speaker and starts the mixer.
func (b *Buzzer) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}
	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// Close silences the buzzer. The speaker itself has no close; clearing the
// mixer is enough to stop all output.
func (b *Buzzer) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
	b.initialized = false
}

// Pulse implements Sink.
func (b *Buzzer) Pulse(k Kind) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	s := pulseStreamer(k, b.volume)
	speaker.Lock()
	b.mixer.Add(s)
	speaker.Unlock()
}

// pulseStreamer builds the finite streamer for one pulse kind.
func pulseStreamer(k Kind, volume float64) beep.Streamer {
	switch k {
	case Double:
		return beep.Seq(
			buzz(shortPulse, volume),
			beep.Silence(sampleRate.N(doubleGap)),
			buzz(shortPulse, volume),
		)
	case Long:
		return buzz(longPulse, volume)
	default:
		return buzz(shortPulse, volume)
	}
}

func buzz(d time.Duration, volume float64) beep.Streamer {
	return beep.Take(sampleRate.N(d), newBuzzStreamer(sampleRate, buzzFreq, volume))
}
