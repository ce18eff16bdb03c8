package entity

import (
	"time"

	"github.com/juan-ignacio-sanchez/the-alchemist/internal/config"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/core"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/physics"
)

// WalkChange reports a transition of the player's walking state.
type WalkChange int

const (
	WalkUnchanged WalkChange = iota
	WalkStarted
	WalkStopped
)

// Player is the character steered by the held movement keys.
type Player struct {
	body      physics.Body
	w, h      float64
	force     float64
	friction  float64
	walkFrame time.Duration

	Facing    Facing
	Walking   bool
	Direction physics.Vec
	alive     bool

	frame     int
	frameAt   time.Time
	frameInit bool
}

// NewPlayer creates a living player centered on pos.
func NewPlayer(cfg config.AlchemistConfig, pos physics.Vec, bounds physics.Bounds) *Player {
	body := physics.NewBody(pos, bounds)
	body.Damping = cfg.Physics.BounceDamping
	return &Player{
		body:      body,
		w:         cfg.Player.Width,
		h:         cfg.Player.Height,
		force:     cfg.Physics.PlayerForce,
		friction:  cfg.Physics.PlayerFriction,
		walkFrame: cfg.Player.WalkFrame,
		Facing:    FacingEast,
		alive:     true,
	}
}

func (p *Player) Kind() Kind          { return KindPlayer }
func (p *Player) Alive() bool         { return p.alive }
func (p *Player) Body() *physics.Body { return &p.body }

// Pos returns the player's center.
func (p *Player) Pos() physics.Vec { return p.body.Pos }

// Size returns the sprite width and height.
func (p *Player) Size() (float64, float64) { return p.w, p.h }

// HitBox returns the player's footprint.
func (p *Player) HitBox() physics.Box {
	return physics.BoxAt(p.body.Pos, p.w, p.h)
}

// Frame returns the current walk-cycle frame, 0 or 1.
func (p *Player) Frame() int { return p.frame }

// Kill marks the player dead. Dead players ignore movement input.
func (p *Player) Kill() {
	p.alive = false
	p.Walking = false
	p.Direction = physics.Vec{}
}

// Steer derives the walking direction from the held movement keys.
// Releasing every movement key stops the player dead.
func (p *Player) Steer(in core.InputFrame) WalkChange {
	if !p.alive {
		return WalkUnchanged
	}

	var dir physics.Vec
	if in.IsHeld(core.ActionLeft) {
		dir.X--
	}
	if in.IsHeld(core.ActionRight) {
		dir.X++
	}
	if in.IsHeld(core.ActionUp) {
		dir.Y--
	}
	if in.IsHeld(core.ActionDown) {
		dir.Y++
	}
	p.Direction = dir

	held := false
	for _, a := range core.MovementActions {
		if in.IsHeld(a) {
			held = true
			break
		}
	}

	switch {
	case held && !p.Walking:
		p.Walking = true
		return WalkStarted
	case !held && p.Walking:
		p.Walking = false
		p.body.Stop()
		return WalkStopped
	}
	return WalkUnchanged
}

// Update applies the walking force and friction, integrates, and keeps the
// player inside the arena. It reports whether a wall was hit.
func (p *Player) Update(now time.Time) bool {
	if !p.Direction.IsZero() {
		p.body.ApplyForce(p.Direction.Normalize().Scale(p.force))
		switch {
		case p.Direction.X > 0:
			p.Facing = FacingEast
		case p.Direction.X < 0:
			p.Facing = FacingWest
		}
	}
	p.body.ApplyFriction(p.friction)
	p.body.Integrate()
	knocked := p.body.ResolveBounds()
	p.advanceFrame(now)
	return knocked
}

func (p *Player) advanceFrame(now time.Time) {
	if !p.Walking {
		p.frame = 0
		p.frameInit = false
		return
	}
	if !p.frameInit {
		p.frameAt = now
		p.frameInit = true
		return
	}
	if now.Sub(p.frameAt) >= p.walkFrame {
		p.frame = 1 - p.frame
		p.frameAt = now
	}
}
