package core

import (
	"maps"
	"time"
)

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - walk north
	ActionDown           // S, Down arrow - walk south
	ActionLeft           // A, Left arrow - walk west
	ActionRight          // D, Right arrow - walk east
	ActionAttack         // Space - swing the weapon
	ActionRestart        // R key - restart the current level
	ActionQuit           // Q, Ctrl+C - exit the program
	ActionPause          // P - pause/unpause game
	ActionStop           // Escape - end the run
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
	case ActionAttack:
		return "Attack"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionStop:
		return "Stop"
	default:
		return "Unknown"
	}
}

// MovementActions lists the actions that steer the player.
var MovementActions = []Action{ActionUp, ActionDown, ActionLeft, ActionRight}

// InputFrame represents the input state for a single simulation tick.
//
// Actions holds key-down edges, Released holds key-up edges and Held holds
// every action whose key is currently down (including the ones that went
// down this frame). Time is the frame timestamp; every cooldown and timer
// in the simulation is measured against it.
type InputFrame struct {
	Actions  map[Action]bool
	Released map[Action]bool
	Held     map[Action]bool
	Time     time.Time
}

// NewInputFrame creates an empty input frame stamped with t.
func NewInputFrame(t time.Time) InputFrame {
	return InputFrame{
		Actions:  make(map[Action]bool),
		Released: make(map[Action]bool),
		Held:     make(map[Action]bool),
		Time:     t,
	}
}

// Set marks an action as pressed this frame. A pressed action is also held.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	f.Hold(a)
}

// Hold marks an action as held without producing a key-down edge.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Release records a key-up edge for the action.
func (f *InputFrame) Release(a Action) {
	if f.Released == nil {
		f.Released = make(map[Action]bool)
	}
	f.Released[a] = true
	delete(f.Held, a)
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// IsHeld returns true if the action's key is down.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a]
}

// WasReleased returns true if the action's key went up this frame.
func (f InputFrame) WasReleased(a Action) bool {
	return f.Released[a]
}

// Clear resets the edges for the next frame. Held keys survive.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.Released)
}

// Clone returns a deep copy, so the platform can keep editing its frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame(f.Time)
	maps.Copy(clone.Actions, f.Actions)
	maps.Copy(clone.Released, f.Released)
	maps.Copy(clone.Held, f.Held)
	return clone
}
