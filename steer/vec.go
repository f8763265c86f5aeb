// Package steer implements classical steering behaviors for 2D ships in a
// toroidal world: seek, flee, arrive, wander, pursuit, evade, and waypoint
// path following. It is a pure library driven by a host loop; dt is always
// an explicit parameter and nothing here reads wall-clock time.
package steer

import "math"

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float32
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Len returns the vector magnitude.
func (v Vec2) Len() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// LenSq returns the squared magnitude.
func (v Vec2) LenSq() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns the unit vector in the direction of v.
// The zero vector normalizes to the zero vector.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// ClampLen returns v with its magnitude saturated at max.
func (v Vec2) ClampLen(max float32) Vec2 {
	if max <= 0 {
		return Vec2{}
	}
	lsq := v.LenSq()
	if lsq <= max*max {
		return v
	}
	l := float32(math.Sqrt(float64(lsq)))
	return Vec2{v.X / l * max, v.Y / l * max}
}

// Perp returns the left-hand perpendicular (-Y, X).
func (v Vec2) Perp() Vec2 {
	return Vec2{-v.Y, v.X}
}

// Dist returns the distance between v and o.
func (v Vec2) Dist(o Vec2) float32 {
	return o.Sub(v).Len()
}
