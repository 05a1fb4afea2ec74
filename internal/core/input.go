package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - walk up (held)
	ActionDown           // S, Down arrow - walk down (held)
	ActionLeft           // A, Left arrow - walk left (held)
	ActionRight          // D, Right arrow - walk right (held)
	ActionConfirm        // Enter - confirm selection in menu
	ActionPause          // Space - pause/unpause game
	ActionFeed           // F - feed the dog
	ActionQuit           // Q - exit game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionFeed:
		return "Feed"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Held reports whether the action describes a key being held down (movement)
// rather than a one-shot press.
func (a Action) Held() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		return true
	default:
		return false
	}
}

// InputFrame represents the input state during one rendered frame.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
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

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// HeldOnly returns a copy keeping only held actions.
// The loop hands this to every tick after the first one of a frame, so
// one-shot presses such as Pause are seen exactly once.
func (f InputFrame) HeldOnly() InputFrame {
	held := NewInputFrame()
	for k, v := range f.Actions {
		if v && k.Held() {
			held.Actions[k] = true
		}
	}
	return held
}

// Direction returns the unit movement direction requested by held actions.
// Opposing keys cancel out.
func (f InputFrame) Direction() Vec2 {
	var d Vec2
	if f.Has(ActionLeft) {
		d.X--
	}
	if f.Has(ActionRight) {
		d.X++
	}
	if f.Has(ActionUp) {
		d.Y--
	}
	if f.Has(ActionDown) {
		d.Y++
	}
	if l := d.Len(); l > 0 {
		d = d.Scale(1 / l)
	}
	return d
}
