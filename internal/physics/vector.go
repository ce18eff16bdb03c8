// Package physics holds the kinematic primitives shared by every moving
// entity: a 2D vector, a force-integrated body with arena bounds, and
// floating point hit-boxes.
package physics

import "math"

// Vec is a 2D vector in arena units.
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{x, y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec) Scale(s float64) Vec {
	return Vec{v.X * s, v.Y * s}
}

// Neg returns -v.
func (v Vec) Neg() Vec {
	return Vec{-v.X, -v.Y}
}

// Len returns the magnitude of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector in v's direction. The zero vector
// normalizes to itself.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}

// WithLen returns v rescaled to length l.
func (v Vec) WithLen(l float64) Vec {
	return v.Normalize().Scale(l)
}

// Rotate returns v rotated by deg degrees. With Y pointing down a positive
// angle turns clockwise on screen.
func (v Vec) Rotate(deg float64) Vec {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vec{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Distance returns the distance between v and o.
func (v Vec) Distance(o Vec) float64 {
	return v.Sub(o).Len()
}

// ClampLen keeps v's direction and limits its magnitude to [lo, hi].
// The zero vector has no direction and stays zero.
func (v Vec) ClampLen(lo, hi float64) Vec {
	l := v.Len()
	switch {
	case l == 0:
		return v
	case l > hi:
		return v.WithLen(hi)
	case l < lo:
		return v.WithLen(lo)
	}
	return v
}

// DifferentQuadrants reports whether any nonzero component of v has the
// opposite sign of the same component of o.
func DifferentQuadrants(v, o Vec) bool {
	return v.X != math.Copysign(v.X, o.X) || v.Y != math.Copysign(v.Y, o.Y)
}
