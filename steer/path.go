package steer

import "math"

// PathPolicy selects the waypoint traversal rule. All policies share the same
// seek-to-current-waypoint integration and differ only in snap radius and
// index update.
type PathPolicy uint8

const (
	// PathLoopPrecise advances cyclically with a small snap radius.
	PathLoopPrecise PathPolicy = iota
	// PathLoopSmooth advances cyclically with a large snap radius, cutting
	// corners earlier.
	PathLoopSmooth
	// PathPingPong reverses direction at the path ends instead of looping.
	PathPingPong
)

// PathShape selects the generated waypoint polygon.
type PathShape uint8

const (
	ShapeRectangle PathShape = iota
	ShapeHexagon
)

// Path owns an ordered waypoint list and the traversal cursor. The waypoint
// set is generated once and cached until explicitly invalidated.
type Path struct {
	Waypoints   []Vec2
	ActiveIndex int
	Direction   int // +1 or -1, ping-pong only

	SnapRadius       float32 // precise policy
	SmoothSnapRadius float32 // smooth and ping-pong policies
}

// GeneratePath builds the fixed waypoint polygon: a 4-point rectangle inset
// from the bounds by margin, or a 6-point hexagon of the given radius around
// the world center. The cursor starts at index 0 with direction +1.
func GeneratePath(bounds Bounds, shape PathShape, margin, radius float32) []Vec2 {
	switch shape {
	case ShapeHexagon:
		center := Vec2{bounds.Width / 2, bounds.Height / 2}
		maxR := min32(bounds.Width, bounds.Height)/2 - margin
		if radius <= 0 || radius > maxR {
			radius = maxR
		}
		pts := make([]Vec2, 6)
		for i := range pts {
			a := float64(i) * math.Pi / 3
			pts[i] = Vec2{
				X: center.X + radius*float32(math.Cos(a)),
				Y: center.Y + radius*float32(math.Sin(a)),
			}
		}
		return pts
	default:
		return []Vec2{
			{margin, margin},
			{bounds.Width - margin, margin},
			{bounds.Width - margin, bounds.Height - margin},
			{margin, bounds.Height - margin},
		}
	}
}

// Reset rearms the cursor after regeneration or invalidation.
func (p *Path) Reset() {
	p.ActiveIndex = 0
	p.Direction = 1
}

// Empty reports whether the cached waypoint set is missing.
func (p *Path) Empty() bool {
	return p == nil || len(p.Waypoints) == 0
}

// Active returns the current waypoint.
func (p *Path) Active() Vec2 {
	return p.Waypoints[p.ActiveIndex]
}

// snapFor returns the arrival radius for a policy.
func (p *Path) snapFor(policy PathPolicy) float32 {
	if policy == PathLoopPrecise {
		return p.SnapRadius
	}
	return p.SmoothSnapRadius
}

// Follow seeks the active waypoint with the shared force-integration step and
// advances the cursor when the ship comes within the policy's snap radius.
func (p *Path) Follow(s *State, policy PathPolicy, dt float32) {
	if p.Empty() {
		return
	}

	target := p.Active()
	desired := target.Sub(s.Pos).Normalize().Scale(s.Limits.MaxSpeed)
	s.applyForce(desired, dt)

	if s.Pos.Dist(target) < p.snapFor(policy) {
		p.advance(policy)
	}
}

// advance moves the cursor: cyclic for the loop policies, bouncing off the
// ends for ping-pong. The bounce never revisits an endpoint twice and never
// leaves [0, N-1].
func (p *Path) advance(policy PathPolicy) {
	n := len(p.Waypoints)
	if n < 2 {
		p.ActiveIndex = 0
		return
	}
	if policy != PathPingPong {
		p.ActiveIndex = (p.ActiveIndex + 1) % n
		return
	}

	if p.Direction == 0 {
		p.Direction = 1
	}
	p.ActiveIndex += p.Direction
	if p.ActiveIndex >= n {
		p.ActiveIndex = n - 2
		p.Direction = -1
	} else if p.ActiveIndex < 0 {
		p.ActiveIndex = 1
		p.Direction = 1
	}
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
