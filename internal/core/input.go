package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionPause          // P, Escape - pause/unpause game
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - quit request, forces the session to end
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// Besides semantic actions it carries at most one bubble tap, either as a
// screen coordinate (mouse click) or as a spawn-order ordinal (digit key).
// Taps are applied at the start of the tick, never mid-tick, so the physics
// pass always sees a consistent bubble set.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// TapX, TapY is the tapped screen cell when HasTap is true.
	TapX, TapY int
	HasTap     bool

	// TapOrdinal selects a bubble by its 1-based spawn order (digit keys).
	// Zero means no ordinal tap this frame.
	TapOrdinal int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetTap records a tap at the given screen cell.
// A second tap in the same frame is dropped; the round accepts at most one
// transition per tick anyway.
func (f *InputFrame) SetTap(x, y int) {
	if f.HasTap || f.TapOrdinal != 0 {
		return
	}
	f.TapX = x
	f.TapY = y
	f.HasTap = true
}

// SetTapOrdinal records a tap on the bubble with the given 1-based spawn order.
func (f *InputFrame) SetTapOrdinal(n int) {
	if f.HasTap || f.TapOrdinal != 0 || n <= 0 {
		return
	}
	f.TapOrdinal = n
}

// Clear resets all actions and taps for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.HasTap = false
	f.TapX = 0
	f.TapY = 0
	f.TapOrdinal = 0
}
