package game

import (
	"testing"

	"github.com/pthm-cable/skiff/components"
	"github.com/pthm-cable/skiff/config"
	"github.com/pthm-cable/skiff/steer"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	config.MustInit("")
	return NewGameWithOptions(Options{Seed: 1, Headless: true})
}

func (g *Game) shipPos(role components.Role) steer.Vec2 {
	query := g.shipFilter.Query()
	var out steer.Vec2
	for query.Next() {
		pos, _, _, _, ship := query.Get()
		if ship.Role == role {
			out = steer.Vec2{X: pos.X, Y: pos.Y}
		}
	}
	return out
}

func TestHeadlessWanderMovesShips(t *testing.T) {
	g := newTestGame(t)
	g.SetBehavior(steer.Wander)

	p0 := g.shipPos(components.RolePrimary)
	e0 := g.shipPos(components.RoleEscort)

	for i := 0; i < 300; i++ {
		g.UpdateHeadless()
	}

	if g.Tick() != 300 {
		t.Fatalf("tick = %d, want 300", g.Tick())
	}
	if g.shipPos(components.RolePrimary) == p0 {
		t.Error("primary ship never moved under wander")
	}
	if g.shipPos(components.RoleEscort) == e0 {
		t.Error("escort ship never moved under complement behavior")
	}
}

func TestSeekClosesOnTarget(t *testing.T) {
	g := newTestGame(t)

	start := g.shipPos(components.RolePrimary)
	target := steer.Vec2{X: start.X + 80, Y: start.Y + 50}
	g.SetTarget(target)
	g.SetBehavior(steer.SeekBasic)

	for i := 0; i < 600; i++ {
		g.UpdateHeadless()
	}

	// A direct seeker oscillates around the target within one tick of travel.
	maxStep := float32(config.Cfg().Ship.MoveSpeed) * config.Cfg().Derived.DT32
	if d := g.shipPos(components.RolePrimary).Dist(target); d > maxStep*2 {
		t.Errorf("distance to target = %v, want within %v", d, maxStep*2)
	}
}

func TestMissingTargetKeepsShipStill(t *testing.T) {
	g := newTestGame(t)
	g.SetBehavior(steer.SeekBasic)

	p0 := g.shipPos(components.RolePrimary)
	for i := 0; i < 60; i++ {
		g.UpdateHeadless()
	}

	if g.shipPos(components.RolePrimary) != p0 {
		t.Error("primary moved despite missing target")
	}
}

func TestEscortFollowsComplement(t *testing.T) {
	g := newTestGame(t)
	g.SetBehavior(steer.Evade)

	// Evading primary makes the escort give chase; both must be in motion.
	for i := 0; i < 120; i++ {
		g.UpdateHeadless()
	}

	e0 := g.shipPos(components.RoleEscort)
	g.UpdateHeadless()
	if g.shipPos(components.RoleEscort) == e0 {
		t.Error("escort stationary while primary evades")
	}
}
