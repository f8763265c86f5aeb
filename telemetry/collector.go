package telemetry

// Collector accumulates per-tick motion samples and events within time
// windows and produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float32

	// Current window tracking
	windowStartTick int32

	// Samples for current window
	speeds       []float64
	escortSpeeds []float64
	turns        []float64 // |heading change| per second

	// Event counters for current window
	behaviorTicks    map[string]int
	wraps            int
	waypointArrivals int
	roamTargets      int
	missingDeps      int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec float64, dt float32) *Collector {
	ticksPerWindow := int32(windowDurationSec / float64(dt))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
		behaviorTicks:       make(map[string]int),
	}
}

// RecordTick records one tick of primary-ship motion under a behavior.
func (c *Collector) RecordTick(behavior string, speed, turnPerSec float64) {
	c.behaviorTicks[behavior]++
	c.speeds = append(c.speeds, speed)
	c.turns = append(c.turns, turnPerSec)
}

// RecordEscortTick records one tick of escort-ship motion.
func (c *Collector) RecordEscortTick(speed float64) {
	c.escortSpeeds = append(c.escortSpeeds, speed)
}

// RecordWrap records a world-wrap crossing.
func (c *Collector) RecordWrap() {
	c.wraps++
}

// RecordWaypointArrival records a path waypoint being reached.
func (c *Collector) RecordWaypointArrival() {
	c.waypointArrivals++
}

// RecordRoamTarget records the state-based wander picking a fresh target.
func (c *Collector) RecordRoamTarget() {
	c.roamTargets++
}

// RecordMissingDependency records a tick degraded by an absent collaborator.
func (c *Collector) RecordMissingDependency() {
	c.missingDeps++
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
// currentBehavior is the behavior selected at window end.
func (c *Collector) Flush(currentTick int32, currentBehavior string) WindowStats {
	speedMean, speedStd, speedMax := MotionStats(c.speeds)
	turnMean, _, _ := MotionStats(c.turns)
	escortMean, _, _ := MotionStats(c.escortSpeeds)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * float64(c.dt),

		Behavior:      currentBehavior,
		BehaviorTicks: c.behaviorTicks[currentBehavior],

		SpeedMean: speedMean,
		SpeedStd:  speedStd,
		SpeedMax:  speedMax,
		TurnMean:  turnMean,

		EscortSpeedMean: escortMean,

		Wraps:            c.wraps,
		WaypointArrivals: c.waypointArrivals,
		RoamTargets:      c.roamTargets,
		MissingDeps:      c.missingDeps,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.speeds = c.speeds[:0]
	c.escortSpeeds = c.escortSpeeds[:0]
	c.turns = c.turns[:0]
	c.behaviorTicks = make(map[string]int)
	c.wraps = 0
	c.waypointArrivals = 0
	c.roamTargets = 0
	c.missingDeps = 0

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
