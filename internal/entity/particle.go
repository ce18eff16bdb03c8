package entity

import (
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/core"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/physics"
)

// Particle is a square sprite fragment flung away from a hit or a death.
// It dies when it leaves the surface or travels past its decay distance.
type Particle struct {
	body     physics.Body
	Origin   physics.Vec
	Size     float64
	Color    core.Color
	Decay    float64
	push     physics.Vec
	friction float64
	alive    bool
}

// NewParticle creates a fragment at pos driven by a randomized version of
// the push vector.
func NewParticle(pos physics.Vec, size float64, color core.Color, push physics.Vec, friction float64, rng Rand) *Particle {
	// Short trails and gentle pushes dominate: 10 in 11 and 5 in 6.
	decay := float64(randRange(rng, 250, 400))
	if rng.Intn(11) < 10 {
		decay = float64(randRange(rng, 100, 200))
	}
	angle := float64(randRange(rng, -15000, 15000)) / 1000
	magnitude := float64(randRange(rng, 100, 2500)) / 1000
	if rng.Intn(6) < 5 {
		magnitude = float64(randRange(rng, 10, 100)) / 1000
	}

	return &Particle{
		body:     physics.Body{Pos: pos},
		Origin:   pos,
		Size:     size,
		Color:    color,
		Decay:    decay,
		push:     push.Rotate(angle).Scale(magnitude),
		friction: friction,
		alive:    true,
	}
}

func (p *Particle) Kind() Kind          { return KindParticle }
func (p *Particle) Alive() bool         { return p.alive }
func (p *Particle) Body() *physics.Body { return &p.body }

// HitBox returns the fragment's footprint.
func (p *Particle) HitBox() physics.Box {
	return physics.BoxAt(p.body.Pos, p.Size, p.Size)
}

// Update pushes the fragment and kills it once it leaves surface or
// drifts past its decay distance.
func (p *Particle) Update(surface physics.Box) {
	if !p.alive {
		return
	}
	p.body.ApplyForce(p.push)
	p.body.ApplyFriction(p.friction)
	p.body.Integrate()
	if !surface.ContainsBox(p.HitBox()) || p.Origin.Distance(p.body.Pos) > p.Decay {
		p.alive = false
	}
}

// ShatterSpec describes how a sprite is cut into fragments.
type ShatterSpec struct {
	Box      physics.Box
	Piece    float64
	Stride   int
	Color    core.Color
	Friction float64
}

// Shatter slices the box into a grid of Piece-sized squares, keeping every
// Stride-th column and row, and launches each along push.
func Shatter(spec ShatterSpec, push physics.Vec, rng Rand) []*Particle {
	if spec.Piece <= 0 {
		return nil
	}
	stride := spec.Stride
	if stride < 1 {
		stride = 1
	}
	cols := int(spec.Box.W / spec.Piece)
	rows := int(spec.Box.H / spec.Piece)

	var out []*Particle
	for x := 0; x < cols; x += stride {
		for y := 0; y < rows; y += stride {
			pos := physics.V(
				spec.Box.Left()+float64(x)*spec.Piece+spec.Piece/2,
				spec.Box.Top()+float64(y)*spec.Piece+spec.Piece/2,
			)
			out = append(out, NewParticle(pos, spec.Piece, spec.Color, push, spec.Friction, rng))
		}
	}
	return out
}
