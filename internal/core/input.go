package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, H
	ActionRight          // Right arrow, D, L
	ActionUp             // Up arrow, W, K
	ActionDown           // Down arrow, S, J
	ActionQuit           // Q, Ctrl+C, window close
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
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
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionQuit:
		return "Quit"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// InputFrame holds the key-down actions buffered between two simulation ticks.
// Actions keep their arrival order and repeats are preserved: two presses of
// Left in one frame are two moves.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{}
	for _, a := range actions {
		f.Push(a)
	}
	return f
}

// Push appends an action. ActionNone is ignored.
func (f *InputFrame) Push(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Actions returns the buffered actions in arrival order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.actions {
		if got == a {
			return true
		}
	}
	return false
}

// Len returns the number of buffered actions.
func (f InputFrame) Len() int {
	return len(f.actions)
}

// Clear resets the frame for the next tick, keeping the backing storage.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{actions: make([]Action, len(f.actions))}
	copy(clone.actions, f.actions)
	return clone
}
