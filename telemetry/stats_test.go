package telemetry

import (
	"math"
	"testing"
)

func TestMotionStats(t *testing.T) {
	samples := []float64{1, 2, 3, 4, 5}
	mean, std, max := MotionStats(samples)

	if math.Abs(mean-3) > 0.001 {
		t.Errorf("mean = %v, want 3", mean)
	}
	// Sample standard deviation of 1..5 is sqrt(2.5)
	if math.Abs(std-math.Sqrt(2.5)) > 0.001 {
		t.Errorf("std = %v, want %v", std, math.Sqrt(2.5))
	}
	if max != 5 {
		t.Errorf("max = %v, want 5", max)
	}
}

func TestMotionStatsEmpty(t *testing.T) {
	mean, std, max := MotionStats(nil)
	if mean != 0 || std != 0 || max != 0 {
		t.Error("empty sample set should return all zeros")
	}
}

func TestMotionStatsSingle(t *testing.T) {
	mean, std, max := MotionStats([]float64{7})
	if mean != 7 || std != 0 || max != 7 {
		t.Errorf("single sample: mean=%v std=%v max=%v, want 7, 0, 7", mean, std, max)
	}
}
