// Package entity defines the simulated objects of an arena: the player, the
// pursuing enemies, potions, the sword and the disintegration particles.
//
// Each concrete type reports a Kind so the world can dispatch on it without
// type assertions, and exposes the capabilities it has through the Movable
// and Drawable interfaces.
package entity

import (
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/physics"
)

// Kind discriminates the concrete entity types.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindItem
	KindWeapon
	KindParticle
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindItem:
		return "item"
	case KindWeapon:
		return "weapon"
	case KindParticle:
		return "particle"
	default:
		return "unknown"
	}
}

// Entity is anything that lives in the arena.
type Entity interface {
	Kind() Kind
	Alive() bool
}

// Movable entities own a kinematic body.
type Movable interface {
	Entity
	Body() *physics.Body
}

// Drawable entities occupy a hit-box that is also their render footprint.
type Drawable interface {
	Entity
	HitBox() physics.Box
}

// Facing is the horizontal direction a walker looks at.
type Facing int

const (
	FacingEast Facing = 1
	FacingWest Facing = -1
)

// Sign returns +1 for east and -1 for west.
func (f Facing) Sign() float64 {
	if f == FacingWest {
		return -1
	}
	return 1
}

// Rand is the randomness source used for spawns and particles.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// randRange returns an integer in [lo, hi], both inclusive.
func randRange(r Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}
