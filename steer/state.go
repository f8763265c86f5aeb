package steer

import "math"

// Limits holds a ship's kinematic constants.
type Limits struct {
	MaxSpeed float32 // world units per second
	MaxForce float32 // max steering correction per second
	Mass     float32
	TurnRate float32 // degrees per second
}

// State is the mutable physical state of one ship. It is owned by exactly
// one ship and mutated only by the integration step and explicit resets.
// Heading is in degrees, 0 = +X, counter-clockwise positive; the invariant
// |Vel| <= MaxSpeed holds after every integration step.
type State struct {
	Pos     Vec2
	Vel     Vec2
	Heading float32
	Limits  Limits
}

// Snapshot is a read-only view of another ship for the current tick.
// Cross-reads are stale-by-one-tick by design.
type Snapshot struct {
	Pos Vec2
	Vel Vec2
}

// Snapshot captures the cross-readable part of the state.
func (s *State) Snapshot() Snapshot {
	return Snapshot{Pos: s.Pos, Vel: s.Vel}
}

// Speed returns the current velocity magnitude.
func (s *State) Speed() float32 {
	return s.Vel.Len()
}

// applyForce runs the shared force-integration step: the steering correction
// is saturated at MaxForce, the resulting velocity at MaxSpeed, and heading
// turns toward the direction of travel at the bounded angular rate.
func (s *State) applyForce(desired Vec2, dt float32) {
	mass := s.Limits.Mass
	if mass <= 0 {
		mass = 1
	}
	steering := desired.Sub(s.Vel).ClampLen(s.Limits.MaxForce)
	s.Vel = s.Vel.Add(steering.Scale(dt / mass)).ClampLen(s.Limits.MaxSpeed)
	s.Pos = s.Pos.Add(s.Vel.Scale(dt))
	s.turnToward(s.Vel, dt)
}

// turnToward rotates heading toward the bearing of dir by at most
// TurnRate*dt degrees. A degenerate direction leaves heading unchanged.
func (s *State) turnToward(dir Vec2, dt float32) {
	if dir.LenSq() < 1e-6 {
		return
	}
	target := bearingDeg(dir)
	diff := normalizeDeg(target - s.Heading)
	step := s.Limits.TurnRate * dt
	if diff > step {
		diff = step
	} else if diff < -step {
		diff = -step
	}
	s.Heading = normalizeDeg(s.Heading + diff)
}

// bearingDeg returns the heading in degrees for a direction vector.
func bearingDeg(dir Vec2) float32 {
	return float32(math.Atan2(float64(dir.Y), float64(dir.X)) * 180 / math.Pi)
}

// headingVec returns the unit vector for a heading in degrees.
func headingVec(deg float32) Vec2 {
	rad := float64(deg) * math.Pi / 180
	return Vec2{float32(math.Cos(rad)), float32(math.Sin(rad))}
}

// normalizeDeg wraps an angle to [-180, 180).
func normalizeDeg(a float32) float32 {
	for a >= 180 {
		a -= 360
	}
	for a < -180 {
		a += 360
	}
	return a
}
