package game

// Presenter receives display updates from the engine. All methods are
// fire-and-forget: they are assumed synchronous and non-failing, so the
// engine never inspects a result.
type Presenter interface {
	// ShowText sets the central message line.
	ShowText(msg string)
	// SetHighlight lights or clears the pad for one symbol.
	SetHighlight(step Step, on bool)
	// ShowBanner sets the celebration banner text.
	ShowBanner(msg string)
	// RequestRedraw signals that the celebration overlay changed. Hosts
	// that redraw after every event may ignore it.
	RequestRedraw()
}

// Messages shown on the central text line.
const (
	MsgPressSelect = "Press Select"
	MsgYourTurn    = "Your turn"
	MsgGood        = "Good"
	MsgGameOver    = "Game Over"
	MsgWin         = "You win!"
)
