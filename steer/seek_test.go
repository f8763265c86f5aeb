package steer

import (
	"math"
	"testing"
)

func testLimits() Limits {
	return Limits{MaxSpeed: 5, MaxForce: 5, Mass: 1, TurnRate: 720}
}

func TestForceIntegrationClampsSpeed(t *testing.T) {
	s := &State{Pos: Vec2{0, 0}, Limits: testLimits()}

	// Many ticks of maximum-demand steering must never exceed MaxSpeed.
	for i := 0; i < 50; i++ {
		s.applyForce(Vec2{1000, -500}, 0.1)
		if s.Speed() > s.Limits.MaxSpeed+0.001 {
			t.Fatalf("tick %d: speed %f exceeds max %f", i, s.Speed(), s.Limits.MaxSpeed)
		}
	}
}

func TestForceIntegrationClampsForce(t *testing.T) {
	s := &State{Limits: Limits{MaxSpeed: 100, MaxForce: 2, Mass: 1, TurnRate: 360}}

	// With mass 1 and dt 1 the per-tick velocity change is bounded by MaxForce.
	prev := s.Vel
	s.applyForce(Vec2{1000, 0}, 1)
	dv := s.Vel.Sub(prev).Len()
	if dv > s.Limits.MaxForce+0.001 {
		t.Errorf("velocity change %f exceeds max force %f", dv, s.Limits.MaxForce)
	}
}

func TestSeekDirectAtTargetIsStationary(t *testing.T) {
	s := &State{Pos: Vec2{10, 10}, Vel: Vec2{1, 1}, Limits: testLimits()}
	s.SeekDirect(Vec2{10, 10}, 0.1)

	if s.Vel.Len() != 0 {
		t.Errorf("velocity = %f, want 0 for degenerate target", s.Vel.Len())
	}
	if s.Pos.X != 10 || s.Pos.Y != 10 {
		t.Errorf("position moved to (%f,%f)", s.Pos.X, s.Pos.Y)
	}
}

func TestSeekDirectMovesAtFullSpeed(t *testing.T) {
	s := &State{Pos: Vec2{0, 0}, Limits: testLimits()}
	s.SeekDirect(Vec2{100, 0}, 1)

	if math.Abs(float64(s.Pos.X-5)) > 0.001 || s.Pos.Y != 0 {
		t.Errorf("position = (%f,%f), want (5,0)", s.Pos.X, s.Pos.Y)
	}
}

func TestSeekSteeringScenario(t *testing.T) {
	// Ship at origin, target at (10,0), maxSpeed 5, dt 1: after one tick the
	// ship faces +x and has advanced 5 units along it.
	s := &State{Pos: Vec2{0, 0}, Heading: 90, Limits: testLimits()}
	s.SeekHeading(Vec2{10, 0}, 1)

	if math.Abs(float64(normalizeDeg(s.Heading))) > 0.01 {
		t.Errorf("heading = %f, want ~0 (facing +x)", s.Heading)
	}
	if math.Abs(float64(s.Pos.X-5)) > 0.001 || math.Abs(float64(s.Pos.Y)) > 0.001 {
		t.Errorf("position = (%f,%f), want (5,0)", s.Pos.X, s.Pos.Y)
	}
}

func TestSeekSteeringTurnIsBounded(t *testing.T) {
	s := &State{Pos: Vec2{0, 0}, Heading: 180, Limits: Limits{MaxSpeed: 5, MaxForce: 5, Mass: 1, TurnRate: 90}}
	s.SeekHeading(Vec2{10, 0}, 0.5)

	// 180 -> 0 needs 180 degrees; at 90 deg/s and dt 0.5 only 45 may pass.
	turned := absf(normalizeDeg(s.Heading - 180))
	if turned > 45.001 {
		t.Errorf("turned %f degrees in one tick, limit is 45", turned)
	}
}

func TestFleeMovesAway(t *testing.T) {
	s := &State{Pos: Vec2{50, 50}, Limits: testLimits()}
	s.Flee(Vec2{60, 50}, 1)

	if s.Pos.X >= 50 {
		t.Errorf("x = %f, expected movement away from threat at +x", s.Pos.X)
	}
}

func TestFleeFromCrossesSeam(t *testing.T) {
	b := Bounds{Width: 100, Height: 100}
	// Threat at x=95 is toroidally just behind a ship at x=5, so the ship
	// must flee in +x, not -x.
	s := &State{Pos: Vec2{5, 50}, Limits: testLimits()}
	s.FleeFrom(Snapshot{Pos: Vec2{95, 50}}, b, 1)

	if s.Vel.X <= 0 {
		t.Errorf("vel.x = %f, want positive (fleeing through the seam)", s.Vel.X)
	}
}

func TestArriveZeroesVelocityInsideEpsilon(t *testing.T) {
	s := &State{Pos: Vec2{10, 10}, Vel: Vec2{3, 0}, Limits: testLimits()}
	arrived := s.Arrive(Vec2{10.05, 10}, 20, 0.1)

	if !arrived {
		t.Error("expected arrival inside epsilon")
	}
	if s.Vel.X != 0 || s.Vel.Y != 0 {
		t.Errorf("velocity = (%f,%f), want exactly zero", s.Vel.X, s.Vel.Y)
	}
	if s.Pos.X != 10 {
		t.Errorf("position integrated after arrival: x = %f", s.Pos.X)
	}
}

func TestArriveSlowsInsideRadius(t *testing.T) {
	limits := testLimits()
	far := &State{Pos: Vec2{0, 0}, Vel: Vec2{5, 0}, Limits: limits}
	near := &State{Pos: Vec2{90, 0}, Vel: Vec2{5, 0}, Limits: limits}

	for i := 0; i < 10; i++ {
		far.Arrive(Vec2{100, 0}, 20, 0.1)
		near.Arrive(Vec2{100, 0}, 20, 0.1)
	}

	if near.Speed() >= far.Speed() {
		t.Errorf("near speed %f should be below far speed %f", near.Speed(), far.Speed())
	}
}

func TestTurnTowardShortestPath(t *testing.T) {
	cases := []struct {
		name             string
		heading, bearing float32
		step             float32
		want             float32
	}{
		{"clockwise", 10, -10, 30, -10},
		{"counter", -10, 10, 30, 10},
		{"across 180", 170, -170, 30, -170},
		{"bounded", 0, 90, 30, 30},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := &State{Heading: tc.heading, Limits: Limits{TurnRate: tc.step}}
			s.turnToward(headingVec(tc.bearing), 1)
			if absf(normalizeDeg(s.Heading-tc.want)) > 0.01 {
				t.Errorf("heading = %f, want %f", s.Heading, tc.want)
			}
		})
	}
}
