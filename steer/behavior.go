package steer

import "fmt"

// Behavior identifies the steering algorithm driving a ship this tick. The
// set is closed; dispatch is an exhaustive switch and anything unknown
// resolves to Idle.
type Behavior uint8

const (
	Idle Behavior = iota
	SeekBasic
	SeekSteering
	FleeTarget
	Arrive
	Wander
	Roaming // state-based wander
	PursuitBasic
	PursuitImproved
	Evade
	PathPrecise
	PathSmooth
	PathPatrol

	behaviorCount
)

var behaviorNames = [behaviorCount]string{
	Idle:            "idle",
	SeekBasic:       "seek-basic",
	SeekSteering:    "seek-steering",
	FleeTarget:      "flee",
	Arrive:          "arrive",
	Wander:          "wander",
	Roaming:         "roam",
	PursuitBasic:    "pursuit-basic",
	PursuitImproved: "pursuit-improved",
	Evade:           "evade",
	PathPrecise:     "path-precise",
	PathSmooth:      "path-smooth",
	PathPatrol:      "path-patrol",
}

func (b Behavior) String() string {
	if b >= behaviorCount {
		return "idle"
	}
	return behaviorNames[b]
}

// ParseBehavior maps a behavior name back to its identifier.
func ParseBehavior(name string) (Behavior, error) {
	for b, n := range behaviorNames {
		if n == name {
			return Behavior(b), nil
		}
	}
	return Idle, fmt.Errorf("steer: unknown behavior %q", name)
}

// Behaviors lists every selectable behavior in display order.
func Behaviors() []Behavior {
	out := make([]Behavior, behaviorCount)
	for i := range out {
		out[i] = Behavior(i)
	}
	return out
}

// IsPath reports whether b follows waypoints.
func (b Behavior) IsPath() bool {
	return b == PathPrecise || b == PathSmooth || b == PathPatrol
}

// NeedsTarget reports whether b requires a world target point.
func (b Behavior) NeedsTarget() bool {
	return b == SeekBasic || b == SeekSteering || b == Arrive
}

// NeedsQuarry reports whether b requires another ship's snapshot.
func (b Behavior) NeedsQuarry() bool {
	return b == PursuitBasic || b == PursuitImproved || b == Evade
}

// Viz is the side-table of visualization channels active for a behavior.
// Inactive channels are cleared by the host each tick.
type Viz struct {
	WanderCircle bool
	Prediction   bool
	Path         bool
}

// Viz returns the visualization channels for b.
func (b Behavior) Viz() Viz {
	return Viz{
		WanderCircle: b == Wander,
		Prediction:   b == PursuitImproved || b == Evade,
		Path:         b.IsPath(),
	}
}

// Complement derives the escort ship's behavior from the primary's selection.
// The escort has no selector of its own: when the primary hunts it runs or
// roams, when the primary evades it gives chase.
func Complement(primary Behavior) Behavior {
	switch primary {
	case PursuitBasic:
		return Roaming
	case PursuitImproved:
		return FleeTarget
	case Evade:
		return PursuitBasic
	case Idle:
		return Idle
	default:
		return Wander
	}
}
