package core

import (
	"testing"
	"time"
)

func TestInputFrameEdges(t *testing.T) {
	f := NewInputFrame(time.Unix(0, 0))
	f.Set(ActionAttack)
	f.Hold(ActionLeft)

	if !f.Has(ActionAttack) || !f.IsHeld(ActionAttack) {
		t.Error("a pressed action should be both pressed and held")
	}
	if f.Has(ActionLeft) {
		t.Error("a held action should not produce a press edge")
	}

	f.Clear()
	if f.Has(ActionAttack) {
		t.Error("Clear should drop press edges")
	}
	if !f.IsHeld(ActionLeft) {
		t.Error("Clear should keep held keys")
	}

	f.Release(ActionLeft)
	if f.IsHeld(ActionLeft) || !f.WasReleased(ActionLeft) {
		t.Error("Release should drop the held key and record an up edge")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame(time.Unix(5, 0))
	f.Set(ActionUp)
	c := f.Clone()
	c.Set(ActionDown)

	if f.Has(ActionDown) {
		t.Error("clone should not share maps with the original")
	}
	if !c.Time.Equal(f.Time) {
		t.Error("clone should keep the timestamp")
	}
}

func TestActionString(t *testing.T) {
	if ActionAttack.String() != "Attack" {
		t.Errorf("ActionAttack.String() = %q", ActionAttack.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
