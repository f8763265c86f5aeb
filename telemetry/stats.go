package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated motion statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Behavior selected at window end and how many ticks of the window ran it
	Behavior      string `csv:"behavior"`
	BehaviorTicks int    `csv:"behavior_ticks"`

	// Primary ship motion
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedMax  float64 `csv:"speed_max"`
	TurnMean  float64 `csv:"turn_mean"` // mean |heading change| per second

	// Escort ship motion
	EscortSpeedMean float64 `csv:"escort_speed_mean"`

	// Events during window
	Wraps            int `csv:"wraps"`
	WaypointArrivals int `csv:"waypoint_arrivals"`
	RoamTargets      int `csv:"roam_targets"`
	MissingDeps      int `csv:"missing_deps"`
}

// MotionStats summarizes a sample series.
func MotionStats(samples []float64) (mean, std, max float64) {
	if len(samples) == 0 {
		return 0, 0, 0
	}
	mean = stat.Mean(samples, nil)
	if len(samples) > 1 {
		std = stat.StdDev(samples, nil)
	}
	for _, v := range samples {
		if v > max {
			max = v
		}
	}
	return mean, std, max
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.String("behavior", s.Behavior),
		slog.Int("behavior_ticks", s.BehaviorTicks),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_std", s.SpeedStd),
		slog.Float64("speed_max", s.SpeedMax),
		slog.Float64("turn_mean", s.TurnMean),
		slog.Float64("escort_speed_mean", s.EscortSpeedMean),
		slog.Int("wraps", s.Wraps),
		slog.Int("waypoint_arrivals", s.WaypointArrivals),
		slog.Int("roam_targets", s.RoamTargets),
		slog.Int("missing_deps", s.MissingDeps),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"behavior", s.Behavior,
		"behavior_ticks", s.BehaviorTicks,
		"speed_mean", s.SpeedMean,
		"speed_std", s.SpeedStd,
		"speed_max", s.SpeedMax,
		"turn_mean", s.TurnMean,
		"escort_speed_mean", s.EscortSpeedMean,
		"wraps", s.Wraps,
		"waypoint_arrivals", s.WaypointArrivals,
		"roam_targets", s.RoamTargets,
		"missing_deps", s.MissingDeps,
	)
}
