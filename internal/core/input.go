package core

// Action represents a semantic game action, abstracted from physical key presses
// and mouse clicks.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // Move the square up
	ActionDown              // Move the square down
	ActionLeft              // Move the square left
	ActionRight             // Move the square right
	ActionStart             // Start button
	ActionPause             // Pause/Resume button
	ActionSelect            // Duration button (index carried separately)
	ActionDismiss           // Close the game-over notice
	ActionScreenshot        // Ctrl+S - save the surface as text
	ActionQuit              // Q, Ctrl+C - exit
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
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionSelect:
		return "Select"
	case ActionDismiss:
		return "Dismiss"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
