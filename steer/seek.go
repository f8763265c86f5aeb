package steer

// arriveEpsilon is the distance below which Arrive zeroes velocity outright.
const arriveEpsilon = 0.1

// SeekDirect moves straight toward target at full speed. The velocity is set
// directly rather than force-integrated; heading still turns at the bounded
// rate. A target equal to the current position produces no movement.
func (s *State) SeekDirect(target Vec2, dt float32) {
	dir := target.Sub(s.Pos).Normalize()
	s.Vel = dir.Scale(s.Limits.MaxSpeed)
	s.Pos = s.Pos.Add(s.Vel.Scale(dt))
	s.turnToward(dir, dt)
}

// SeekHeading is the heading-first seek: the ship rotates toward the target
// bearing at the bounded rate, then moves forward along its new heading at
// full speed.
func (s *State) SeekHeading(target Vec2, dt float32) {
	delta := target.Sub(s.Pos)
	s.turnToward(delta, dt)
	s.Vel = headingVec(s.Heading).Scale(s.Limits.MaxSpeed)
	s.Pos = s.Pos.Add(s.Vel.Scale(dt))
}

// Flee force-integrates away from a threat point.
func (s *State) Flee(threat Vec2, dt float32) {
	desired := s.Pos.Sub(threat).Normalize().Scale(s.Limits.MaxSpeed)
	s.applyForce(desired, dt)
}

// FleeFrom flees another ship, perceiving it across the wrap seam via the
// toroidal shortest displacement.
func (s *State) FleeFrom(threat Snapshot, bounds Bounds, dt float32) {
	disp := bounds.ShortestDisplacement(s.Pos, threat.Pos)
	desired := disp.Scale(-1).Normalize().Scale(s.Limits.MaxSpeed)
	s.applyForce(desired, dt)
}

// Arrive seeks the target with a speed that decays linearly to zero inside
// slowingRadius. Within arriveEpsilon of the target the velocity is forced
// to exactly zero and no integration happens this tick. Returns true once
// arrived.
func (s *State) Arrive(target Vec2, slowingRadius, dt float32) bool {
	delta := target.Sub(s.Pos)
	dist := delta.Len()
	if dist < arriveEpsilon {
		s.Vel = Vec2{}
		return true
	}
	speed := s.Limits.MaxSpeed
	if slowingRadius > 0 && dist < slowingRadius {
		speed *= dist / slowingRadius
	}
	desired := delta.Scale(speed / dist)
	s.applyForce(desired, dt)
	return false
}
