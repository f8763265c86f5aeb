package steer

import (
	"math"
	"testing"
)

func TestPursueCrossesSeam(t *testing.T) {
	b := Bounds{Width: 100, Height: 100}
	s := &State{Pos: Vec2{5, 50}, Limits: testLimits()}

	// Quarry at x=95 is closest backwards through the seam.
	s.Pursue(Snapshot{Pos: Vec2{95, 50}}, b, 1)

	if s.Vel.X >= 0 {
		t.Errorf("vel.x = %f, want negative (chasing through the seam)", s.Vel.X)
	}
}

func TestPursueInterceptLeadsMovingQuarry(t *testing.T) {
	b := Bounds{Width: 1000, Height: 1000}
	s := &State{Pos: Vec2{100, 100}, Limits: testLimits()}
	quarry := Snapshot{Pos: Vec2{200, 100}, Vel: Vec2{0, 3}}

	predicted := s.PursueIntercept(quarry, b, 1.0/60)

	// T = dist / maxSpeed = 100 / 5 = 20s, so the prediction leads 60 units +y.
	if math.Abs(float64(predicted.X-200)) > 0.001 {
		t.Errorf("predicted.x = %f, want 200", predicted.X)
	}
	if math.Abs(float64(predicted.Y-160)) > 0.001 {
		t.Errorf("predicted.y = %f, want 160 (100 + 3*20)", predicted.Y)
	}
	if s.Vel.Y <= 0 {
		t.Errorf("vel.y = %f, pursuit should aim above the quarry", s.Vel.Y)
	}
}

func TestPursueInterceptStationaryQuarry(t *testing.T) {
	b := Bounds{Width: 1000, Height: 1000}
	s := &State{Pos: Vec2{100, 100}, Limits: testLimits()}
	quarry := Snapshot{Pos: Vec2{300, 100}}

	predicted := s.PursueIntercept(quarry, b, 1.0/60)

	// Zero quarry velocity degenerates to plain pursuit.
	if predicted != quarry.Pos {
		t.Errorf("predicted = %v, want the quarry position", predicted)
	}
}

func TestEvadeLeadClamp(t *testing.T) {
	b := Bounds{Width: 1000, Height: 1000}

	cases := []struct {
		name      string
		selfSpeed float32
		quarryVel Vec2
		dist      float32
		want      float32
	}{
		{"far slow", 1, Vec2{}, 400, 2.0},
		{"point blank", 100, Vec2{50, 0}, 1, 0.1},
		{"zero combined speed", 0, Vec2{}, 100, 2.0},
		{"mid range", 10, Vec2{10, 0}, 10, 0.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := &State{Pos: Vec2{100, 100}, Limits: Limits{MaxSpeed: tc.selfSpeed, MaxForce: 5, Mass: 1, TurnRate: 360}}
			quarry := Snapshot{Pos: Vec2{100 + tc.dist, 100}, Vel: tc.quarryVel}
			lead := s.EvadeLead(quarry, b)
			if math.Abs(float64(lead-tc.want)) > 0.001 {
				t.Errorf("lead = %f, want %f", lead, tc.want)
			}
			if lead < evadeMinLead || lead > evadeMaxLead {
				t.Errorf("lead %f outside [%f, %f]", lead, float32(evadeMinLead), float32(evadeMaxLead))
			}
		})
	}
}

func TestEvadeMovesAwayWithSideComponent(t *testing.T) {
	b := Bounds{Width: 1000, Height: 1000}
	s := &State{Pos: Vec2{500, 500}, Limits: testLimits()}
	quarry := Snapshot{Pos: Vec2{530, 500}, Vel: Vec2{}}

	s.Evade(quarry, b, 1)

	// Retreat is mostly -x but blended with a perpendicular component, so
	// it must not be purely linear.
	if s.Vel.X >= 0 {
		t.Errorf("vel.x = %f, want negative (away from quarry)", s.Vel.X)
	}
	if s.Vel.Y == 0 {
		t.Error("vel.y = 0, expected a sideways component in the retreat")
	}
}

func TestEvadeDegeneratePredictionFallsBack(t *testing.T) {
	b := Bounds{Width: 1000, Height: 1000}
	s := &State{Pos: Vec2{500, 500}, Limits: testLimits()}

	// Quarry moving so its predicted position lands on top of the evader:
	// 20 units away closing at 100 u/s with lead clamped to >= 0.1.
	quarry := Snapshot{Pos: Vec2{520, 500}, Vel: Vec2{-200, 0}}

	s.Evade(quarry, b, 1)

	// The fallback uses the unpredicted displacement (+x), so the ship still
	// retreats in -x instead of standing still.
	if s.Vel.Len() == 0 {
		t.Fatal("evade produced no motion for a degenerate prediction")
	}
	if s.Vel.X >= 0 {
		t.Errorf("vel.x = %f, want negative via fallback displacement", s.Vel.X)
	}
}
