package steer

import (
	"errors"
	"math/rand"
)

// Missing-dependency conditions. Both degrade the tick to idle and are
// warnings for the caller, never fatal: the worst outcome is a stationary
// ship.
var (
	ErrMissingTarget = errors.New("steer: behavior requires a target point")
	ErrMissingQuarry = errors.New("steer: behavior requires a quarry snapshot")
)

// Tuning bundles the per-ship steering constants. All values are plain
// numbers so the engine stays decoupled from any config source.
type Tuning struct {
	SlowingRadius float32

	WanderCircleDistance float32
	WanderCircleRadius   float32
	WanderJitter         float32

	RoamArrivalThreshold float32
	RoamMargin           float32

	PathShape            PathShape
	PathMargin           float32
	PathRadius           float32
	WaypointRadius       float32
	SmoothWaypointRadius float32
	KeepPathVisible      bool
}

// Inputs bundles the collaborator values resolved for one tick: the click
// target from the input source and the other ship's snapshot. Nil means the
// collaborator had nothing to offer this tick.
type Inputs struct {
	Target *Vec2
	Quarry *Snapshot
}

// Outputs carries the per-tick visualization values. Everything here is
// recomputed or cleared every tick and never retained by the engine.
type Outputs struct {
	Wrapped bool

	Wander     *WanderDebug
	Prediction *Vec2

	Waypoints      []Vec2
	ActiveWaypoint int
}

// Engine owns one ship's cross-tick steering state: wander memory, the roam
// state machine, and the cached path. The physical State is owned by the
// caller and passed in each tick.
type Engine struct {
	tuning Tuning
	rng    *rand.Rand

	wander WanderMemory
	roam   Roam
	path   *Path
}

// NewEngine creates a steering engine with the given tuning. The rng drives
// wander jitter and roam target sampling; pass a seeded source for replayable
// runs.
func NewEngine(t Tuning, rng *rand.Rand) *Engine {
	return &Engine{
		tuning: t,
		rng:    rng,
		wander: WanderMemory{
			CircleDistance: t.WanderCircleDistance,
			CircleRadius:   t.WanderCircleRadius,
			Jitter:         t.WanderJitter,
		},
		roam: Roam{
			ArrivalThreshold: t.RoamArrivalThreshold,
			Margin:           t.RoamMargin,
		},
	}
}

// Roam exposes the roam state machine for inspection.
func (e *Engine) Roam() *Roam {
	return &e.roam
}

// Path exposes the cached path, which may be nil.
func (e *Engine) Path() *Path {
	return e.path
}

// InvalidatePath drops the cached waypoint set; the next path behavior tick
// regenerates it with the cursor reset.
func (e *Engine) InvalidatePath() {
	e.path = nil
}

// Advance runs one tick: dispatch the behavior, integrate the state, wrap the
// position, and report the visualization channels. dt is a pure parameter.
// A missing collaborator degrades the tick to idle and is reported as a
// non-fatal error alongside valid outputs.
func (e *Engine) Advance(s *State, b Behavior, dt float32, bounds Bounds, in Inputs) (Outputs, error) {
	var out Outputs
	var err error

	switch b {
	case SeekBasic:
		if in.Target == nil {
			s.Vel = Vec2{}
			err = ErrMissingTarget
		} else {
			s.SeekDirect(*in.Target, dt)
		}
	case SeekSteering:
		if in.Target == nil {
			s.Vel = Vec2{}
			err = ErrMissingTarget
		} else {
			s.SeekHeading(*in.Target, dt)
		}
	case FleeTarget:
		switch {
		case in.Target != nil:
			s.Flee(*in.Target, dt)
		case in.Quarry != nil:
			s.FleeFrom(*in.Quarry, bounds, dt)
		default:
			s.Vel = Vec2{}
			err = ErrMissingTarget
		}
	case Arrive:
		if in.Target == nil {
			s.Vel = Vec2{}
			err = ErrMissingTarget
		} else {
			s.Arrive(*in.Target, e.tuning.SlowingRadius, dt)
		}
	case Wander:
		wd := s.Wander(&e.wander, e.rng, dt)
		out.Wander = &wd
	case Roaming:
		e.roam.Advance(s, bounds, e.rng, dt)
	case PursuitBasic:
		if in.Quarry == nil {
			s.Vel = Vec2{}
			err = ErrMissingQuarry
		} else {
			s.Pursue(*in.Quarry, bounds, dt)
		}
	case PursuitImproved:
		if in.Quarry == nil {
			s.Vel = Vec2{}
			err = ErrMissingQuarry
		} else {
			p := s.PursueIntercept(*in.Quarry, bounds, dt)
			out.Prediction = &p
		}
	case Evade:
		if in.Quarry == nil {
			s.Vel = Vec2{}
			err = ErrMissingQuarry
		} else {
			p := s.Evade(*in.Quarry, bounds, dt)
			out.Prediction = &p
		}
	case PathPrecise, PathSmooth, PathPatrol:
		e.ensurePath(bounds)
		e.path.Follow(s, policyFor(b), dt)
	default:
		// Idle and anything unknown: no movement, wrap check still runs.
		s.Vel = Vec2{}
	}

	if b.IsPath() {
		out.Waypoints = e.path.Waypoints
		out.ActiveWaypoint = e.path.ActiveIndex
	} else if e.path != nil {
		if e.tuning.KeepPathVisible {
			out.Waypoints = e.path.Waypoints
			out.ActiveWaypoint = e.path.ActiveIndex
		} else {
			e.path = nil
		}
	}

	s.Pos, out.Wrapped = bounds.Wrap(s.Pos)
	return out, err
}

// ensurePath regenerates the cached waypoint set if it is missing or empty,
// resetting the cursor to index 0 and direction +1.
func (e *Engine) ensurePath(bounds Bounds) {
	if !e.path.Empty() {
		return
	}
	e.path = &Path{
		Waypoints:        GeneratePath(bounds, e.tuning.PathShape, e.tuning.PathMargin, e.tuning.PathRadius),
		SnapRadius:       e.tuning.WaypointRadius,
		SmoothSnapRadius: e.tuning.SmoothWaypointRadius,
	}
	e.path.Reset()
}

// policyFor maps a path behavior to its traversal policy.
func policyFor(b Behavior) PathPolicy {
	switch b {
	case PathSmooth:
		return PathLoopSmooth
	case PathPatrol:
		return PathPingPong
	default:
		return PathLoopPrecise
	}
}
