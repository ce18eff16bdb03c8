package entity

import (
	"time"

	"github.com/juan-ignacio-sanchez/the-alchemist/internal/config"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/core"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/physics"
)

// ImageState tracks the hurt flash of an enemy sprite.
type ImageState int

const (
	ImageNormal ImageState = iota
	ImageHurt
	ImageReturningToNormal
)

// Enemy pursues the player and dies after losing all its hearts.
type Enemy struct {
	body  physics.Body
	Spec  config.EnemyKind
	Color core.Color

	Hearts int
	Facing Facing
	Image  ImageState

	invulnerable core.Cooldown
	lastPlayer   physics.Vec
	alive        bool

	pursuitMin       float64
	pursuitMax       float64
	pursuitBoost     float64
	knockback        float64
	particleFriction float64
	particles        config.ParticleConfig
}

// NewEnemy creates a living enemy of the given kind centered on pos.
func NewEnemy(cfg config.AlchemistConfig, kind config.EnemyKind, pos physics.Vec, bounds physics.Bounds) *Enemy {
	body := physics.NewBody(bounds.Clamp(pos), bounds)
	body.Damping = cfg.Physics.BounceDamping
	return &Enemy{
		body:             body,
		Spec:             kind,
		Color:            core.ParseColor(kind.Color),
		Hearts:           cfg.Combat.Hearts,
		Facing:           FacingWest,
		invulnerable:     core.NewCooldown(cfg.Combat.Invulnerability),
		alive:            true,
		pursuitMin:       cfg.Physics.PursuitMin,
		pursuitMax:       cfg.Physics.PursuitMax,
		pursuitBoost:     cfg.Physics.PursuitBoost,
		knockback:        cfg.Combat.Knockback,
		particles:        cfg.Particles,
		particleFriction: cfg.Physics.ParticleFriction,
	}
}

func (e *Enemy) Kind() Kind          { return KindEnemy }
func (e *Enemy) Alive() bool         { return e.alive }
func (e *Enemy) Body() *physics.Body { return &e.body }

// Pos returns the enemy's center.
func (e *Enemy) Pos() physics.Vec { return e.body.Pos }

// HitBox returns the enemy's footprint.
func (e *Enemy) HitBox() physics.Box {
	return physics.BoxAt(e.body.Pos, e.Spec.Width, e.Spec.Height)
}

// Invulnerable reports whether a hit at now would be ignored.
func (e *Enemy) Invulnerable(now time.Time) bool {
	return e.invulnerable.Active(now)
}

// PursuitForce returns the steering force toward target. Its base magnitude
// is clamped to [pursuitMin, pursuitMax] and boosted when the enemy is
// moving away from the target on either axis.
func (e *Enemy) PursuitForce(target physics.Vec) physics.Vec {
	toward := target.Sub(e.body.Pos)
	force := toward.ClampLen(e.pursuitMin, e.pursuitMax)
	if physics.DifferentQuadrants(e.body.Vel, toward) {
		force = force.Scale(e.pursuitBoost)
	}
	return force
}

// Update runs one pursuit tick. It returns the fragments of the enemy when
// it died this tick, and whether it bounced off a wall.
func (e *Enemy) Update(target physics.Vec, now time.Time, rng Rand) (fragments []*Particle, knocked bool) {
	if !e.alive {
		return nil, false
	}
	if e.Image == ImageReturningToNormal {
		e.Image = ImageNormal
	}
	if e.UpdateImageState(now) {
		return e.Die(e.lastPlayer, rng), false
	}

	e.body.ApplyForce(e.PursuitForce(target))
	e.body.Integrate()
	knocked = e.body.ResolveBounds()
	switch {
	case e.body.Vel.X > 0:
		e.Facing = FacingEast
	case e.body.Vel.X < 0:
		e.Facing = FacingWest
	}
	return nil, knocked
}

// UpdateImageState moves a lapsed hurt flash to ReturningToNormal and
// reports whether the enemy is out of hearts and due to die.
func (e *Enemy) UpdateImageState(now time.Time) bool {
	if e.Invulnerable(now) {
		return false
	}
	if e.Image == ImageHurt {
		e.Image = ImageReturningToNormal
	}
	return e.Hearts <= 0
}

// Hurt lands a hit unless the enemy is inside its invulnerability window.
// A landed hit costs a heart, replaces the enemy's velocity with a push
// away from the player and chips red fragments off the sprite.
func (e *Enemy) Hurt(player physics.Vec, now time.Time, rng Rand) ([]*Particle, bool) {
	if !e.alive || !e.invulnerable.TryFire(now) {
		return nil, false
	}
	e.Hearts--
	e.body.ApplyForce(e.body.Vel.Neg())
	e.body.ApplyForce(e.body.Pos.Sub(player).Normalize().Scale(e.knockback))
	e.Image = ImageHurt
	e.lastPlayer = player

	fragments := Shatter(ShatterSpec{
		Box:      e.HitBox(),
		Piece:    e.particles.PieceSize,
		Stride:   e.particles.HurtStride,
		Color:    core.ColorBrightRed,
		Friction: e.particleFriction,
	}, e.body.Pos.Sub(player), rng)
	return fragments, true
}

// Die removes the enemy from play and breaks its sprite into fragments
// pushed away from the player.
func (e *Enemy) Die(player physics.Vec, rng Rand) []*Particle {
	if !e.alive {
		return nil
	}
	e.alive = false
	return Shatter(ShatterSpec{
		Box:      e.HitBox(),
		Piece:    e.particles.PieceSize,
		Stride:   e.particles.DeathStride,
		Color:    e.Color,
		Friction: e.particleFriction,
	}, e.body.Pos.Sub(player), rng)
}

// Freeze stops the enemy and leaves it drifting on a tiny constant push.
func (e *Enemy) Freeze(nudge float64) {
	e.body.Stop()
	e.body.ApplyForce(physics.V(nudge, nudge))
}
