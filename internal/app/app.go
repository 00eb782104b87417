// Package app wires the game engine to the terminal: it is the presentation
// adapter and host shell. Keys become button presses, tea.Tick messages
// become timer fires, and the engine's display writes become the view.
package app

import (
	"fmt"
	"math/rand/v2"
	"time"

	bhelp "github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/sandy-marrero/pebble-says/internal/game"
	"github.com/sandy-marrero/pebble-says/internal/haptics"
	"github.com/sandy-marrero/pebble-says/internal/views/banner"
	"github.com/sandy-marrero/pebble-says/internal/views/board"
	"github.com/sandy-marrero/pebble-says/internal/views/help"
)

// Options configures the root model.
type Options struct {
	Log           zerolog.Logger
	Rand          *rand.Rand
	FlashInterval time.Duration
	Mono          bool
}

// Model is the root Bubble Tea model.
type Model struct {
	eng    *game.Engine
	timers *schedule
	disp   *display

	keys   KeyMap
	footer bhelp.Model

	board    board.Model
	banner   banner.Model
	helpView help.Model
	showHelp bool

	width  int
	height int
}

// New creates the root model and a fresh engine on the start screen.
func New(sink haptics.Sink, opts Options) Model {
	disp := &display{}
	timers := &schedule{}
	eng := game.New(disp, sink, timers, game.Options{
		Log:           opts.Log,
		Rand:          opts.Rand,
		FlashInterval: opts.FlashInterval,
	})
	return Model{
		eng:      eng,
		timers:   timers,
		disp:     disp,
		keys:     DefaultKeyMap(),
		footer:   bhelp.New(),
		board:    board.New(),
		banner:   banner.New(opts.Mono),
		helpView: help.New(),
	}
}

// Init implements tea.Model. The engine sits on the start screen until the
// player presses Select, so there is nothing to kick off.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.footer.Width = msg.Width
		m.helpView.Width = msg.Width
		m.helpView.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case timerMsg:
		m.timers.deliver(msg)
		if msg.slot == game.SlotFlash {
			m.banner.Tick()
		}
		m.syncBanner()
		return m, m.timers.drain()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Help):
			m.showHelp = false
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.eng.PressUp()

	case key.Matches(msg, m.keys.Select):
		m.eng.PressSelect()

	case key.Matches(msg, m.keys.Down):
		m.eng.PressDown()

	default:
		return m, nil
	}

	m.syncBanner()
	return m, m.timers.drain()
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.eng.Teardown()
	return m, tea.Quit
}

// syncBanner restarts the banner drop-in when the engine set new text.
func (m *Model) syncBanner() {
	if m.disp.bannerNew {
		m.banner.Set(m.disp.banner)
		m.disp.bannerNew = false
	}
}

// View renders the full frame.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	if m.showHelp {
		return m.helpView.View()
	}

	footer := m.footer.View(m.keys)
	bodyH := m.height - lipgloss.Height(footer)
	if bodyH < 1 {
		bodyH = 1
	}

	var body string
	if m.eng.Celebrating() {
		body = m.banner.View(m.width, bodyH, m.eng.FlashPhase())
	} else {
		b := m.board
		b.Width = m.width
		b.Height = bodyH
		b.Message = m.disp.message
		b.Pads = m.disp.pads
		b.Info = m.infoLine()
		body = b.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

// infoLine mirrors the original info layer: empty on the initial start
// screen, restart instructions after a finished game, the round number
// otherwise.
func (m Model) infoLine() string {
	if m.eng.Phase() == game.PhaseGameOver {
		if m.eng.Length() == 0 {
			return ""
		}
		return fmt.Sprintf("Press Select to Restart\nRound: %d", m.eng.Round())
	}
	return fmt.Sprintf("Round: %d", m.eng.Round())
}
