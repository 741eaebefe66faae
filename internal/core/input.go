package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games react to intents rather than raw keys.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - cursor up
	ActionDown           // S, Down arrow - cursor down
	ActionLeft           // A, Left arrow - cursor left
	ActionRight          // D, Right arrow - cursor right
	ActionConfirm        // Space, Enter - select a token or swap with the selection
	ActionCancel         // X, Backspace - drop the current selection
	ActionHint           // H - show a productive swap
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionConfirm: "Confirm",
	ActionCancel:  "Cancel",
	ActionHint:    "Hint",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// Direction returns the cursor offset for a movement action.
// The y axis points up, matching the board's row 0 at the bottom.
func (a Action) Direction() (dx, dy int, ok bool) {
	switch a {
	case ActionUp:
		return 0, 1, true
	case ActionDown:
		return 0, -1, true
	case ActionLeft:
		return -1, 0, true
	case ActionRight:
		return 1, 0, true
	}
	return 0, 0, false
}

// InputFrame represents the input of one player during one simulation tick.
type InputFrame struct {
	// Actions holds the actions triggered this frame.
	Actions map[Action]bool
	// Order lists the actions in the order they arrived, so several key
	// presses between two ticks are replayed faithfully.
	Order []Action
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
	f.Order = append(f.Order, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.Order = f.Order[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Order = append([]Action(nil), f.Order...)
	return clone
}

// FrameOf builds a frame from a list of actions.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}
