package haptics

import (
	"testing"

	"github.com/gopxl/beep"
)

// drain streams a finite streamer to exhaustion and returns the sample count.
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; ; i++ {
		if i > 10000 {
			t.Fatal("streamer did not terminate")
		}
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestBuzzStreamerInRange(t *testing.T) {
	g := newBuzzStreamer(sampleRate, buzzFreq, 1.0)

	samples := make([][2]float64, 256)
	n, ok := g.Stream(samples)
	if !ok || n != 256 {
		t.Fatalf("Stream() = %d, %v, want 256, true", n, ok)
	}
	for i := 0; i < n; i++ {
		for ch := 0; ch < 2; ch++ {
			if v := samples[i][ch]; v < -1.0 || v > 1.0 {
				t.Fatalf("sample %d channel %d out of range: %f", i, ch, v)
			}
		}
	}
	if g.Err() != nil {
		t.Errorf("Err() = %v, want nil", g.Err())
	}
}

func TestPulseStreamerLengths(t *testing.T) {
	shortN := sampleRate.N(shortPulse)
	tests := []struct {
		kind Kind
		want int
	}{
		{Short, shortN},
		{Long, sampleRate.N(longPulse)},
		{Double, 2*shortN + sampleRate.N(doubleGap)},
	}

	for _, tt := range tests {
		got := drain(t, pulseStreamer(tt.kind, 0.5))
		if got != tt.want {
			t.Errorf("%v pulse = %d samples, want %d", tt.kind, got, tt.want)
		}
	}
}

func TestBuzzerSafeBeforeInit(t *testing.T) {
	b := NewBuzzer(0.8)
	// Must be silent no-ops, not panics.
	b.Pulse(Short)
	b.Pulse(Double)
	b.Close()
}

func TestNewBuzzerClampsVolume(t *testing.T) {
	if b := NewBuzzer(-1); b.volume != 0 {
		t.Errorf("volume = %f, want 0", b.volume)
	}
	if b := NewBuzzer(2); b.volume != 1 {
		t.Errorf("volume = %f, want 1", b.volume)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Short, "short"},
		{Double, "double"},
		{Long, "long"},
		{Kind(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestNopSink(t *testing.T) {
	var s Sink = Nop{}
	s.Pulse(Short) // nothing to assert beyond not panicking
}
