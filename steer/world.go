package steer

import "math"

// Bounds is the toroidal world extent. Positions live in [0, Width) x [0, Height).
type Bounds struct {
	Width, Height float32
}

// ShortestDisplacement returns the minimum-magnitude displacement from 'from'
// to 'to', accounting for wrap-around on both axes. Each component is
// guaranteed to be at most half the corresponding world dimension.
func (b Bounds) ShortestDisplacement(from, to Vec2) Vec2 {
	return Vec2{
		X: toroidalDelta(to.X, from.X, b.Width),
		Y: toroidalDelta(to.Y, from.Y, b.Height),
	}
}

// Wrap maps p into [0, Width) x [0, Height) and reports whether a wrap
// occurred. A wrap breaks spatial continuity, so callers that keep trailing
// visualizations should reset them when this returns true.
func (b Bounds) Wrap(p Vec2) (Vec2, bool) {
	wrapped := false
	if p.X < 0 || p.X >= b.Width {
		p.X = mod(p.X, b.Width)
		wrapped = true
	}
	if p.Y < 0 || p.Y >= b.Height {
		p.Y = mod(p.Y, b.Height)
		wrapped = true
	}
	return p, wrapped
}

// toroidalDelta computes the shortest signed distance from 'from' to 'to'
// in a toroidal space of the given size.
func toroidalDelta(to, from, size float32) float32 {
	d := to - from
	if d > size/2 {
		d -= size
	} else if d < -size/2 {
		d += size
	}
	return d
}

// mod computes the positive modulo (Go's % can return negative).
func mod(x, m float32) float32 {
	r := float32(math.Mod(float64(x), float64(m)))
	if r < 0 {
		r += m
	}
	return r
}
