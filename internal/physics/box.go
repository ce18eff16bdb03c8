package physics

// Box is an axis-aligned hit-box described by its center and size.
type Box struct {
	Center Vec
	W, H   float64
}

// BoxAt returns a w x h box centered on c.
func BoxAt(c Vec, w, h float64) Box {
	return Box{Center: c, W: w, H: h}
}

// Left returns the x coordinate of the left edge.
func (b Box) Left() float64 { return b.Center.X - b.W/2 }

// Right returns the x coordinate of the right edge.
func (b Box) Right() float64 { return b.Center.X + b.W/2 }

// Top returns the y coordinate of the top edge.
func (b Box) Top() float64 { return b.Center.Y - b.H/2 }

// Bottom returns the y coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Center.Y + b.H/2 }

// Scale shrinks or grows the box around its center.
func (b Box) Scale(ratio float64) Box {
	return Box{Center: b.Center, W: b.W * ratio, H: b.H * ratio}
}

// Intersects reports whether the boxes overlap. Touching edges do not count.
func (b Box) Intersects(o Box) bool {
	if b.Left() >= o.Right() || o.Left() >= b.Right() {
		return false
	}
	if b.Top() >= o.Bottom() || o.Top() >= b.Bottom() {
		return false
	}
	return true
}

// ContainsBox reports whether o lies fully inside b.
func (b Box) ContainsBox(o Box) bool {
	return o.Left() >= b.Left() && o.Right() <= b.Right() &&
		o.Top() >= b.Top() && o.Bottom() <= b.Bottom()
}
