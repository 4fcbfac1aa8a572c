package core

import "fmt"

// Action represents a semantic player action, abstracted from physical key
// presses and mouse buttons.
type Action int

const (
	ActionNone       Action = iota
	ActionOpen              // Left mouse release, Space, Enter - open (or chord) a cell
	ActionFlag              // Right mouse press, F - toggle a flag
	ActionRestart           // R - start a new field
	ActionQuit              // Q, Ctrl+C - exit the session
	ActionUp                // Up, K, W - move the cursor
	ActionDown              // Down, J, S
	ActionLeft              // Left, H, A
	ActionRight             // Right, L, D
	ActionScreenshot        // Ctrl+S - save the board to a text file
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionOpen:
		return "Open"
	case ActionFlag:
		return "Flag"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}

// Event is one discrete request for the game. X and Y are only meaningful
// for ActionOpen and ActionFlag.
type Event struct {
	Action Action
	X, Y   int
}

// OpenAt returns an event opening the cell at (x, y).
func OpenAt(x, y int) Event {
	return Event{Action: ActionOpen, X: x, Y: y}
}

// FlagAt returns an event toggling the flag at (x, y).
func FlagAt(x, y int) Event {
	return Event{Action: ActionFlag, X: x, Y: y}
}

// Restart returns an event starting a new field.
func Restart() Event {
	return Event{Action: ActionRestart}
}

// Quit returns an event ending the session.
func Quit() Event {
	return Event{Action: ActionQuit}
}

// String formats the event for logs.
func (e Event) String() string {
	switch e.Action {
	case ActionOpen, ActionFlag:
		return fmt.Sprintf("%s(%d,%d)", e.Action, e.X, e.Y)
	default:
		return e.Action.String()
	}
}
