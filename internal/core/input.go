package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action uint8

const (
	ActionNone      Action = iota
	ActionLeft             // Left arrow, A
	ActionRight            // Right arrow, D
	ActionSoftDrop         // Down arrow, S
	ActionHardDrop         // Space
	ActionRotateCW         // Up arrow, X, W
	ActionRotateCCW        // Z, Ctrl
	ActionHold             // C, Shift
	ActionPause            // P, Escape
	ActionConfirm          // Enter - confirm selection in menu
	ActionBack             // B - go back to menu
	ActionRestart          // R - restart game after game over
	ActionQuit             // Q, Ctrl+C - exit game/session
	numActions
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
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionHold:
		return "Hold"
	case ActionPause:
		return "Pause"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ActionSet is a bitset of actions.
type ActionSet uint16

// Add returns the set with a added.
func (s ActionSet) Add(a Action) ActionSet {
	if a == ActionNone || a >= numActions {
		return s
	}
	return s | 1<<a
}

// Has reports whether a is in the set.
func (s ActionSet) Has(a Action) bool {
	return s&(1<<a) != 0
}

// InputFrame is the input state for one simulation tick.
// Held lists every action whose key is currently down; Pressed lists the
// actions that went down this tick. Pressed is always a subset of Held.
type InputFrame struct {
	Held    ActionSet
	Pressed ActionSet
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Press marks an action as newly pressed (and therefore held) this tick.
func (f *InputFrame) Press(a Action) {
	f.Pressed = f.Pressed.Add(a)
	f.Held = f.Held.Add(a)
}

// Hold marks an action as held without a new press.
func (f *InputFrame) Hold(a Action) {
	f.Held = f.Held.Add(a)
}

// Has returns true if the action was pressed this tick.
func (f InputFrame) Has(a Action) bool {
	return f.Pressed.Has(a)
}

// Down returns true if the action is held or was pressed this tick.
func (f InputFrame) Down(a Action) bool {
	return f.Held.Has(a) || f.Pressed.Has(a)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Held = 0
	f.Pressed = 0
}
