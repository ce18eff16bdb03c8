package entity

import (
	"math"

	"github.com/juan-ignacio-sanchez/the-alchemist/internal/config"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/core"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/physics"
)

// SwingState is the phase of a sword swing.
type SwingState int

const (
	SwingStatic SwingState = iota
	SwingDown
	SwingUp
)

// String returns a human-readable name for the swing state.
func (s SwingState) String() string {
	switch s {
	case SwingStatic:
		return "static"
	case SwingDown:
		return "swinging-down"
	case SwingUp:
		return "swinging-up"
	default:
		return "unknown"
	}
}

// Weapon is the sword carried by the player. It only takes part in the
// game once a blue potion activates it.
type Weapon struct {
	owner *Player
	cfg   config.WeaponConfig

	State  SwingState
	Angle  float64
	Step   float64
	Active bool

	removed bool
}

// NewWeapon creates an inactive, static sword held by owner.
func NewWeapon(cfg config.AlchemistConfig, owner *Player) *Weapon {
	return &Weapon{
		owner: owner,
		cfg:   cfg.Weapon,
		State: SwingStatic,
		Step:  cfg.Weapon.BaseStep,
	}
}

func (w *Weapon) Kind() Kind { return KindWeapon }

// Alive reports whether the sword is still in play. It leaves play for good
// when its owner dies.
func (w *Weapon) Alive() bool { return !w.removed }

// Activate puts the sword in the player's hand.
func (w *Weapon) Activate() {
	if !w.removed {
		w.Active = true
	}
}

// Armed reports whether the sword can hit anything this tick.
func (w *Weapon) Armed() bool {
	return w.Active && !w.removed && w.State != SwingStatic
}

// Trigger starts a swing on an attack key-down edge. It reports whether a
// swing started.
func (w *Weapon) Trigger(in core.InputFrame) bool {
	if !w.Active || w.removed || w.State != SwingStatic {
		return false
	}
	if !w.owner.Alive() {
		return false
	}
	if !in.Has(core.ActionAttack) {
		return false
	}
	w.State = SwingDown
	return true
}

// Update advances the swing. The step grows by Ramp every swinging tick so
// the sword accelerates through its arc.
func (w *Weapon) Update() {
	if w.removed {
		return
	}
	if !w.owner.Alive() {
		w.removed = true
		w.Active = false
		return
	}

	switch w.State {
	case SwingDown:
		w.Angle += w.Step
		w.Step += w.cfg.Ramp
		if w.Angle >= w.cfg.MaxAngle {
			w.State = SwingUp
		}
	case SwingUp:
		w.Angle -= w.Step
		w.Step += w.cfg.Ramp
		if w.Angle <= 0 {
			w.rest()
		}
	default:
		w.rest()
	}
}

func (w *Weapon) rest() {
	w.State = SwingStatic
	w.Angle = 0
	w.Step = w.cfg.BaseStep
}

// Center returns where the sword is drawn. The blade is held in front of
// the owner and orbits its handle by the swing angle, mirrored by facing.
func (w *Weapon) Center() physics.Vec {
	facing := w.owner.Facing.Sign()
	ow, oh := w.owner.Size()
	hand := w.owner.Pos().Add(physics.V(facing*ow/1.5, -oh/4))
	handle := physics.V(0, -w.cfg.Height/2)
	return hand.Add(handle.Rotate(facing * w.Angle).Sub(handle))
}

// HitBox returns the bounding box of the rotated blade.
func (w *Weapon) HitBox() physics.Box {
	rad := w.Angle * math.Pi / 180
	sin, cos := math.Abs(math.Sin(rad)), math.Abs(math.Cos(rad))
	return physics.BoxAt(
		w.Center(),
		w.cfg.Width*cos+w.cfg.Height*sin,
		w.cfg.Width*sin+w.cfg.Height*cos,
	)
}
