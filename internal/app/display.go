package app

import "github.com/sandy-marrero/pebble-says/internal/game"

// display implements game.Presenter. Bubble Tea copies the root model by
// value on every Update, so everything the engine mutates lives behind this
// shared pointer.
type display struct {
	message   string
	pads      [game.NumSteps]bool
	banner    string
	bannerNew bool
}

func (d *display) ShowText(msg string) { d.message = msg }

func (d *display) SetHighlight(step game.Step, on bool) { d.pads[step] = on }

func (d *display) ShowBanner(msg string) {
	d.banner = msg
	d.bannerNew = true
}

// RequestRedraw is a no-op: the view is recomputed after every message.
func (d *display) RequestRedraw() {}
