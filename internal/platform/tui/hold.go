package tui

import (
	"time"

	"github.com/juan-ignacio-sanchez/the-alchemist/internal/core"
)

// opposite pairs movement actions that cancel each other.
var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// HoldTracker turns the terminal's key presses into input frames with held
// keys. Terminals report key repeats but never key releases, so a movement
// or attack key counts as held until no repeat arrived for the timeout.
// Only the first press of a hold produces an edge.
type HoldTracker struct {
	timeout time.Duration
	last    map[core.Action]time.Time
	frame   core.InputFrame
}

// NewHoldTracker creates a tracker releasing keys after timeout.
func NewHoldTracker(timeout time.Duration) *HoldTracker {
	return &HoldTracker{
		timeout: timeout,
		last:    make(map[core.Action]time.Time),
		frame:   core.NewInputFrame(time.Time{}),
	}
}

func isHoldable(a core.Action) bool {
	_, ok := opposite[a]
	return ok || a == core.ActionAttack
}

// Press records a key press at now. Pressing a direction releases its
// opposite at once.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	if isHoldable(a) {
		if _, ok := h.last[a]; !ok {
			h.frame.Set(a)
		}
		h.last[a] = now
		h.frame.Hold(a)
		if o, ok := opposite[a]; ok && h.frame.IsHeld(o) {
			h.frame.Release(o)
			delete(h.last, o)
		}
		return
	}
	h.frame.Set(a)
}

// Frame returns the input for the tick at now and starts the next one.
func (h *HoldTracker) Frame(now time.Time) core.InputFrame {
	for a, at := range h.last {
		if now.Sub(at) > h.timeout {
			h.frame.Release(a)
			delete(h.last, a)
		}
	}
	h.frame.Time = now
	out := h.frame.Clone()

	h.frame.Clear()
	for a := range h.frame.Held {
		if _, ok := h.last[a]; !ok {
			delete(h.frame.Held, a)
		}
	}
	return out
}

// Reset forgets every key.
func (h *HoldTracker) Reset() {
	clear(h.last)
	h.frame = core.NewInputFrame(time.Time{})
}
