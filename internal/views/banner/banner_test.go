package banner

import (
	"strings"
	"testing"
)

func TestSetRestartsSpring(t *testing.T) {
	m := New(false)
	m.Set("Length 4")

	if m.pos != -dropHeight {
		t.Errorf("pos = %f after Set, want %f", m.pos, float64(-dropHeight))
	}

	// The spring settles toward zero.
	for i := 0; i < 200; i++ {
		m.Tick()
	}
	if m.pos < -0.5 || m.pos > 0.5 {
		t.Errorf("pos = %f after settling, want ~0", m.pos)
	}
}

func TestViewContainsText(t *testing.T) {
	m := New(false)
	m.Set("Length 6")

	for phase := 0; phase < 8; phase++ {
		if v := m.View(60, 18, phase); !strings.Contains(v, "Length 6") {
			t.Errorf("phase %d: view missing banner text", phase)
		}
	}
}

func TestMonoAlternatesFill(t *testing.T) {
	m := New(true)
	m.Set("Length 2")

	// Both parities must still render the text; only the fill differs.
	on := m.View(40, 10, 0)
	off := m.View(40, 10, 1)
	if !strings.Contains(on, "Length 2") || !strings.Contains(off, "Length 2") {
		t.Error("mono banner should render text in both phases")
	}
}
