package core

// Action represents a semantic player intent, abstracted from physical key
// presses and mouse clicks. The platform maps input to actions; the
// controller only ever sees actions.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // Left arrow, A, H - slide left
	ActionRight            // Right arrow, D, L - slide right
	ActionDown             // Down arrow, S, J - slide down
	ActionUp               // Up arrow, W, K - slide up
	ActionShuffle          // Enter - discard the grid and start a new round
	ActionFlip             // F - show the other side of the tiles
	ActionAnimation        // N - toggle the add/remove sweep
	ActionGrow             // + - request a bigger grid for the next round
	ActionShrink           // - - request a smaller grid for the next round
	ActionHelp             // ? - show or hide the full key help
	ActionQuit             // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	case ActionUp:
		return "Up"
	case ActionShuffle:
		return "Shuffle"
	case ActionFlip:
		return "Flip"
	case ActionAnimation:
		return "Animation"
	case ActionGrow:
		return "Grow"
	case ActionShrink:
		return "Shrink"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action is one of the four slide directions.
func (a Action) IsMove() bool {
	return a >= ActionLeft && a <= ActionUp
}

// InputFrame collects the input received between two simulation ticks.
type InputFrame struct {
	// Actions in arrival order. Slides are order-dependent, so unlike a set
	// every key press is kept.
	Actions []Action

	// Picks holds tile ids resolved from mouse clicks, in arrival order.
	Picks []int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Push appends an action to the frame. ActionNone is dropped.
func (f *InputFrame) Push(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Pick appends a picked tile id to the frame.
func (f *InputFrame) Pick(id int) {
	f.Picks = append(f.Picks, id)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Empty reports whether nothing was received.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Picks) == 0
}

// Clear resets the frame for the next tick, keeping the allocated storage.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
	f.Picks = f.Picks[:0]
}
