// Package help renders the key/rules overlay from embedded markdown.
package help

import (
	_ "embed"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/sandy-marrero/pebble-says/internal/theme"
)

//go:embed help.md
var source string

const wrapWidth = 56

var (
	renderOnce sync.Once
	rendered   string
)

// Model holds the overlay dimensions.
type Model struct {
	Width  int
	Height int
}

// New creates a help model.
func New() Model {
	return Model{}
}

// View renders the help panel centered in the frame. The markdown is rendered
// once and cached; on a render error the raw source is shown instead.
func (m Model) View() string {
	renderOnce.Do(func() {
		out, err := glamour.Render(source, "dark")
		if err != nil {
			out = source
		}
		rendered = strings.TrimRight(out, "\n")
	})

	content := lipgloss.JoinVertical(lipgloss.Left,
		rendered,
		"",
		theme.StyleDimmed.Render("esc:close"),
	)
	panel := theme.StyleBorder.Width(wrapWidth).Padding(0, 1).Render(content)
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, panel)
}
