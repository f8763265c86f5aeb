package steer

// Evade intercept-time clamp, in seconds.
const (
	evadeMinLead = 0.1
	evadeMaxLead = 2.0
	evadeSideMix = 0.3
)

// Pursue force-integrates toward the quarry's current position, perceived
// through the wrap seam.
func (s *State) Pursue(quarry Snapshot, bounds Bounds, dt float32) {
	disp := bounds.ShortestDisplacement(s.Pos, quarry.Pos)
	desired := disp.Normalize().Scale(s.Limits.MaxSpeed)
	s.applyForce(desired, dt)
}

// PursueIntercept aims at a single-pass linear prediction of where the quarry
// will be. The intercept time uses the pursuer's own max speed; there is no
// iterative refinement. Returns the predicted position for visualization.
func (s *State) PursueIntercept(quarry Snapshot, bounds Bounds, dt float32) Vec2 {
	disp := bounds.ShortestDisplacement(s.Pos, quarry.Pos)
	var lead float32
	if s.Limits.MaxSpeed > 0 {
		lead = disp.Len() / s.Limits.MaxSpeed
	}
	predicted := quarry.Pos.Add(quarry.Vel.Scale(lead))

	desired := bounds.ShortestDisplacement(s.Pos, predicted).Normalize().Scale(s.Limits.MaxSpeed)
	s.applyForce(desired, dt)
	return predicted
}

// Evade mirrors the improved pursuit: predict where the threat will be, then
// run the other way with a 30% sideways component so the retreat is not
// purely linear. The intercept time is clamped to [0.1, 2.0] seconds using
// the combined closing speed, saturating even when that speed is zero.
// Returns the predicted position for visualization.
func (s *State) Evade(quarry Snapshot, bounds Bounds, dt float32) Vec2 {
	disp := bounds.ShortestDisplacement(s.Pos, quarry.Pos)

	combined := s.Limits.MaxSpeed + quarry.Vel.Len()
	var lead float32 = evadeMaxLead
	if combined > 0 {
		lead = clampf(disp.Len()/combined, evadeMinLead, evadeMaxLead)
	}
	predicted := quarry.Pos.Add(quarry.Vel.Scale(lead))

	away := bounds.ShortestDisplacement(s.Pos, predicted)
	if away.Len() < 0.1 {
		// Degenerate prediction; fall back to the unpredicted displacement.
		away = disp
	}

	desired := away.Scale(-1).Normalize().
		Add(away.Perp().Normalize().Scale(evadeSideMix)).
		Normalize().Scale(s.Limits.MaxSpeed)
	s.applyForce(desired, dt)
	return predicted
}

// EvadeLead returns the clamped intercept time Evade would use against the
// given quarry, without advancing the state.
func (s *State) EvadeLead(quarry Snapshot, bounds Bounds) float32 {
	combined := s.Limits.MaxSpeed + quarry.Vel.Len()
	if combined <= 0 {
		return evadeMaxLead
	}
	dist := bounds.ShortestDisplacement(s.Pos, quarry.Pos).Len()
	return clampf(dist/combined, evadeMinLead, evadeMaxLead)
}

// clampf restricts x to [min, max].
func clampf(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
