package core

// Action represents a semantic game action, abstracted from physical key presses.
// The platform maps keys to actions; the engine only ever sees actions.
type Action int

const (
	ActionNone        Action = iota
	ActionLeft               // Left arrow - shift piece left
	ActionRight              // Right arrow - shift piece right
	ActionDown               // Down arrow - soft drop one row
	ActionUp                 // Up arrow - instant drop
	ActionRotateLeft         // A - rotate counter-clockwise
	ActionRotateRight        // D - rotate clockwise
	ActionHardDrop           // Space - instant drop
	ActionPause              // P - pause/unpause
	ActionQuit               // X - abandon the piece and leave to the title screen
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
	case ActionRotateLeft:
		return "RotateLeft"
	case ActionRotateRight:
		return "RotateRight"
	case ActionHardDrop:
		return "HardDrop"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Drops reports whether the action ends the piece's turn immediately.
func (a Action) Drops() bool {
	return a == ActionUp || a == ActionHardDrop
}
