package physics

// Forces shared by the movable entities.
const (
	DefaultBounceDamping = 0.2
	PlayerFriction       = 0.10
	ParticleFriction     = 0.99
	GravityY             = 0.002
)

// Bounds is the playable rectangle a body is kept inside.
type Bounds struct {
	Min, Max Vec
}

// ArenaBounds returns the playable area of a w x h surface: full width,
// a 70 unit top margin for the HUD and a 20 unit bottom margin.
func ArenaBounds(w, h float64) Bounds {
	return Bounds{
		Min: Vec{0, 70},
		Max: Vec{w, h - 20},
	}
}

// Contains reports whether p lies inside the bounds, edges included.
func (b Bounds) Contains(p Vec) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Clamp returns p moved to the nearest point inside the bounds.
func (b Bounds) Clamp(p Vec) Vec {
	return Vec{clamp(p.X, b.Min.X, b.Max.X), clamp(p.Y, b.Min.Y, b.Max.Y)}
}

// Body is a point mass integrated once per tick. Pos is the center of the
// entity that owns it.
type Body struct {
	Pos    Vec
	Vel    Vec
	Force  Vec // accumulated this tick
	Bounds Bounds

	// Damping scales the reflected velocity after a boundary hit.
	Damping float64
	// Knocks counts boundary hits.
	Knocks int
}

// NewBody creates a body at pos kept inside bounds.
func NewBody(pos Vec, bounds Bounds) Body {
	return Body{Pos: pos, Bounds: bounds, Damping: DefaultBounceDamping}
}

// ApplyForce accumulates f into the pending force.
func (b *Body) ApplyForce(f Vec) {
	b.Force = b.Force.Add(f)
}

// ApplyFriction adds a force of -k*velocity while the body is moving.
func (b *Body) ApplyFriction(k float64) {
	if b.Vel.IsZero() {
		return
	}
	b.ApplyForce(b.Vel.Scale(-k))
}

// ApplyGravity adds the constant downward pull. No shipped entity opts in.
func (b *Body) ApplyGravity() {
	b.ApplyForce(Vec{0, GravityY})
}

// Integrate advances one tick: the pending force feeds velocity, velocity
// feeds position, and the pending force is cleared.
func (b *Body) Integrate() {
	b.Vel = b.Vel.Add(b.Force)
	b.Pos = b.Pos.Add(b.Vel)
	b.Force = Vec{}
}

// Stop zeroes velocity and the pending force.
func (b *Body) Stop() {
	b.Vel = Vec{}
	b.Force = Vec{}
}

// ResolveBounds clamps the position into Bounds. Each clamped axis has its
// velocity reflected and damped. It reports whether a boundary was hit.
func (b *Body) ResolveBounds() bool {
	hit := false
	if b.Pos.X < b.Bounds.Min.X || b.Pos.X > b.Bounds.Max.X {
		b.Pos.X = clamp(b.Pos.X, b.Bounds.Min.X, b.Bounds.Max.X)
		b.Vel.X *= -b.Damping
		hit = true
	}
	if b.Pos.Y < b.Bounds.Min.Y || b.Pos.Y > b.Bounds.Max.Y {
		b.Pos.Y = clamp(b.Pos.Y, b.Bounds.Min.Y, b.Bounds.Max.Y)
		b.Vel.Y *= -b.Damping
		hit = true
	}
	if hit {
		b.Knocks++
	}
	return hit
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
