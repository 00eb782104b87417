// Package board renders the main game face: title, central message, info
// line, and the three button pads.
package board

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sandy-marrero/pebble-says/internal/theme"
)

// Pad labels, top to bottom: Up, Select, Down.
var padLabels = [3]string{"U", "S", "D"}

const padWidth = 5

// Model holds the board's presentation state. The engine writes Message and
// Pads through the Presenter; Info is derived from session state by the app.
type Model struct {
	Title   string
	Message string
	Info    string
	Pads    [3]bool

	Width  int
	Height int
}

// New creates a board showing the start screen.
func New() Model {
	return Model{Title: "Pebble Says"}
}

// View renders the board.
func (m Model) View() string {
	width := m.Width
	if width < 40 {
		width = 40
	}
	height := m.Height
	if height < 12 {
		height = 12
	}

	pads := m.renderPads()
	padCol := lipgloss.Place(padWidth+2, height, lipgloss.Center, lipgloss.Center, pads)

	textW := width - padWidth - 2
	center := lipgloss.JoinVertical(lipgloss.Center,
		theme.StyleTitle.Render(m.Title),
		"",
		theme.StyleMessage.Render(m.Message),
		"",
		theme.StyleDimmed.Render(m.Info),
	)
	textCol := lipgloss.Place(textW, height, lipgloss.Center, lipgloss.Center, center)

	return lipgloss.JoinHorizontal(lipgloss.Top, textCol, padCol)
}

// renderPads draws the three pads stacked vertically. A lit pad fills with
// its color; an unlit one shows the colored letter on a plain background.
func (m Model) renderPads() string {
	var rows []string
	for i, label := range padLabels {
		color := theme.PadColor(i)
		style := lipgloss.NewStyle().
			Width(padWidth).
			Align(lipgloss.Center).
			Bold(true)
		if m.Pads[i] {
			style = style.Background(color).Foreground(theme.ColorBright)
		} else {
			style = style.Foreground(color)
		}
		rows = append(rows, style.Render(label))
	}
	return strings.Join(rows, "\n\n")
}
