package steer

import (
	"math"
	"math/rand"
)

// WanderMemory is the cross-tick state for continuous wander. Angle is in
// radians and accumulates unbounded; cosine/sine periodicity wraps it
// naturally.
type WanderMemory struct {
	Angle          float32
	CircleDistance float32
	CircleRadius   float32
	Jitter         float32
}

// WanderDebug exposes the wander circle and rim target for visualization.
// It is recomputed every tick and never retained.
type WanderDebug struct {
	CircleCenter Vec2
	CircleRadius float32
	Target       Vec2
}

// Wander steers toward a jittering point on a circle projected ahead of the
// ship along its heading, producing organic random motion.
func (s *State) Wander(m *WanderMemory, rng *rand.Rand, dt float32) WanderDebug {
	center := headingVec(s.Heading).Scale(m.CircleDistance)
	m.Angle += (rng.Float32()*2 - 1) * m.Jitter * dt
	rim := Vec2{
		X: float32(math.Cos(float64(m.Angle))),
		Y: float32(math.Sin(float64(m.Angle))),
	}.Scale(m.CircleRadius)

	desired := center.Add(rim).Normalize().Scale(s.Limits.MaxSpeed)
	s.applyForce(desired, dt)

	worldCenter := s.Pos.Add(center)
	return WanderDebug{
		CircleCenter: worldCenter,
		CircleRadius: m.CircleRadius,
		Target:       worldCenter.Add(rim),
	}
}
