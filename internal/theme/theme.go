// Package theme provides the Lip Gloss color palette and reusable styles for
// the game. It is a leaf package with no internal imports to avoid import
// cycles.
package theme

import "github.com/charmbracelet/lipgloss"

// Pad colors, one per symbol.
var (
	ColorUp     = lipgloss.Color("#dc2626")
	ColorSelect = lipgloss.Color("#2563eb")
	ColorDown   = lipgloss.Color("#16a34a")
)

// Celebration flash colors.
var (
	ColorFlashA = lipgloss.Color("#f9fafb") // white phases
	ColorFlashB = lipgloss.Color("#f59e0b") // yellow phases
)

// UI chrome colors.
var (
	ColorBorder = lipgloss.Color("#4b5563")
	ColorDimmed = lipgloss.Color("#6b7280")
	ColorBright = lipgloss.Color("#f9fafb")
	ColorDanger = lipgloss.Color("#dc2626")
	ColorGood   = lipgloss.Color("#22c55e")
)

// Reusable styles.
var (
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBright)

	StyleMessage = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBright)

	StyleDimmed = lipgloss.NewStyle().
			Foreground(ColorDimmed)

	StyleBorder = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)
)

// PadColor returns the pad color for a symbol index (Up, Select, Down).
func PadColor(idx int) lipgloss.Color {
	switch idx {
	case 0:
		return ColorUp
	case 1:
		return ColorSelect
	case 2:
		return ColorDown
	default:
		return ColorDimmed
	}
}

// FlashColor returns the overlay color for a strobe phase, and whether the
// overlay is filled at all. In mono mode the flash alternates on and off; in
// color mode it alternates white and yellow.
func FlashColor(phase int, mono bool) (lipgloss.Color, bool) {
	if mono {
		return ColorFlashA, phase%2 == 0
	}
	if phase%4 < 2 {
		return ColorFlashA, true
	}
	return ColorFlashB, true
}
