package game

import "github.com/pthm-cable/skiff/steer"

// TrailPoint is one recorded position with the simulation time it was laid.
type TrailPoint struct {
	Pos steer.Vec2
	At  float64
}

// Trail is a ship's breadcrumb history. Points expire after a fixed duration
// and are spaced at least MinPointDistance apart so a stationary ship does
// not pile points up. A world wrap resets the trail so no segment is drawn
// across the seam.
type Trail struct {
	points   []TrailPoint
	duration float64
	minDist  float32
}

// NewTrail creates an empty trail.
func NewTrail(duration float64, minDist float32) *Trail {
	return &Trail{duration: duration, minDist: minDist}
}

// Record appends a point at the given simulation time, dropping expired
// points from the front. Points closer than the minimum spacing to the last
// recorded point are skipped.
func (t *Trail) Record(p steer.Vec2, now float64) {
	t.prune(now)

	if n := len(t.points); n > 0 {
		if p.Dist(t.points[n-1].Pos) < t.minDist {
			return
		}
	}
	t.points = append(t.points, TrailPoint{Pos: p, At: now})
}

// prune drops points older than the trail duration.
func (t *Trail) prune(now float64) {
	cutoff := now - t.duration
	i := 0
	for i < len(t.points) && t.points[i].At < cutoff {
		i++
	}
	if i > 0 {
		t.points = t.points[i:]
	}
}

// Reset clears the trail.
func (t *Trail) Reset() {
	t.points = t.points[:0]
}

// Points returns the live points, oldest first.
func (t *Trail) Points() []TrailPoint {
	return t.points
}
