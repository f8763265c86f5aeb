package steer

import "math/rand"

// RoamPhase is the state of the state-based wander controller.
type RoamPhase uint8

const (
	// RoamWandering means no destination is held; a fresh one is sampled on
	// the next advance and the controller flips to RoamSeeking immediately.
	RoamWandering RoamPhase = iota
	// RoamSeeking means the ship is force-integrating toward Target at full
	// speed, with no braking before the arrival threshold.
	RoamSeeking
)

// Roam is the two-state wander controller: sample a uniformly random point
// within the map bounds, drive to it at full speed, repeat.
type Roam struct {
	Phase            RoamPhase
	Target           Vec2
	ArrivalThreshold float32
	Margin           float32 // inset from the world edges when sampling
}

// Advance runs one tick of the controller. Entering RoamWandering samples a
// target and transitions to RoamSeeking in the same tick; arrival within
// ArrivalThreshold drops back to RoamWandering so the next tick re-samples.
func (r *Roam) Advance(s *State, bounds Bounds, rng *rand.Rand, dt float32) {
	if r.Phase == RoamWandering {
		r.Target = r.samplePoint(bounds, rng)
		r.Phase = RoamSeeking
	}

	desired := r.Target.Sub(s.Pos).Normalize().Scale(s.Limits.MaxSpeed)
	s.applyForce(desired, dt)

	if s.Pos.Dist(r.Target) < r.ArrivalThreshold {
		r.Phase = RoamWandering
	}
}

// samplePoint picks a uniform random point inside the bounds, inset by Margin.
func (r *Roam) samplePoint(bounds Bounds, rng *rand.Rand) Vec2 {
	w := bounds.Width - 2*r.Margin
	h := bounds.Height - 2*r.Margin
	if w <= 0 || h <= 0 {
		return Vec2{bounds.Width / 2, bounds.Height / 2}
	}
	return Vec2{
		X: r.Margin + rng.Float32()*w,
		Y: r.Margin + rng.Float32()*h,
	}
}
