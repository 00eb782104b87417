// Package banner renders the between-rounds celebration: the length banner
// dropped in on a spring, over a full-screen flash whose color alternates
// with the strobe phase.
package banner

import (
	"math"
	"strings"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"github.com/sandy-marrero/pebble-says/internal/theme"
)

const dropHeight = 4

var (
	styleOnFlash = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#111827")).
			Padding(0, 2)

	styleOffFlash = lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.ColorBright).
			Padding(0, 2)
)

// Model holds the banner text and its drop-in spring.
type Model struct {
	Text string
	Mono bool

	spring harmonica.Spring
	pos    float64
	vel    float64
}

// New creates a banner model.
func New(mono bool) Model {
	return Model{
		Mono:   mono,
		spring: harmonica.NewSpring(harmonica.FPS(30), 8.0, 0.6),
	}
}

// Set replaces the banner text and restarts the drop-in animation.
func (m *Model) Set(text string) {
	m.Text = text
	m.pos = -dropHeight
	m.vel = 0
}

// Tick advances the spring one animation frame.
func (m *Model) Tick() {
	m.pos, m.vel = m.spring.Update(m.pos, m.vel, 0)
}

// View renders the celebration as a full frame of the given size for the
// current strobe phase.
func (m Model) View(width, height, phase int) string {
	color, filled := theme.FlashColor(phase, m.Mono)

	style := styleOffFlash
	if filled {
		style = styleOnFlash
	}
	text := style.Render(m.Text)

	// The spring settles from above center; extra lines below pull the
	// text up while it is still in flight.
	if lift := int(math.Round(-m.pos)); lift > 0 {
		text += strings.Repeat("\n", lift)
	}

	if !filled {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, text)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, text,
		lipgloss.WithWhitespaceBackground(color))
}
