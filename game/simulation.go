package game

import (
	"log/slog"
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/skiff/components"
	"github.com/pthm-cable/skiff/config"
	"github.com/pthm-cable/skiff/steer"
)

// shipView is one ship's identity plus the snapshot taken at tick start.
// Both ships steer against these snapshots, so cross-reads within a tick
// always see the other ship's previous position.
type shipView struct {
	entity ecs.Entity
	id     uint32
	role   components.Role
	snap   steer.Snapshot
}

// simulationStep runs a single tick: snapshot both ships, advance each
// steering engine against the frozen snapshots, then record telemetry.
func (g *Game) simulationStep() {
	dt := config.Cfg().Derived.DT32

	views := g.snapshotShips()

	for _, v := range views {
		g.stepShip(v, views, dt)
	}

	if g.collector.ShouldFlush(g.tick) {
		g.flushStats()
	}

	g.tick++
}

// snapshotShips captures every ship's position and velocity before any
// ship moves this tick.
func (g *Game) snapshotShips() []shipView {
	var views []shipView

	query := g.shipFilter.Query()
	for query.Next() {
		pos, vel, _, _, ship := query.Get()
		views = append(views, shipView{
			entity: query.Entity(),
			id:     ship.ID,
			role:   ship.Role,
			snap: steer.Snapshot{
				Pos: steer.Vec2{X: pos.X, Y: pos.Y},
				Vel: steer.Vec2{X: vel.X, Y: vel.Y},
			},
		})
	}

	return views
}

// stepShip advances one ship through its steering engine and writes the
// result back to the ECS components.
func (g *Game) stepShip(v shipView, views []shipView, dt float32) {
	helm, ok := g.helms[v.id]
	if !ok {
		return
	}

	behavior := g.selected
	in := steer.Inputs{Target: g.clickTarget}
	if v.role == components.RoleEscort {
		behavior = steer.Complement(g.selected)
		in.Target = nil
	}
	if other := g.otherShip(v, views); other != nil {
		in.Quarry = &other.snap
	}

	pos := g.posMap.Get(v.entity)
	vel := g.velMap.Get(v.entity)
	rot := g.rotMap.Get(v.entity)

	state := steer.State{
		Pos:     steer.Vec2{X: pos.X, Y: pos.Y},
		Vel:     steer.Vec2{X: vel.X, Y: vel.Y},
		Heading: rot.Heading,
		Limits:  g.limits,
	}
	prevHeading := state.Heading

	out, err := helm.Advance(&state, behavior, dt, g.bounds, in)
	if err != nil {
		g.collector.RecordMissingDependency()
	}

	pos.X, pos.Y = state.Pos.X, state.Pos.Y
	vel.X, vel.Y = state.Vel.X, state.Vel.Y
	rot.Heading = state.Heading

	if trail := g.trails[v.id]; trail != nil {
		if out.Wrapped {
			trail.Reset()
		}
		trail.Record(state.Pos, float64(g.tick)*float64(dt))
	}
	if out.Wrapped {
		g.collector.RecordWrap()
	}

	g.detectEvents(v.id, behavior, helm, out)

	turnPerSec := float64(absDeg(state.Heading-prevHeading)) / float64(dt)
	if v.role == components.RolePrimary {
		g.collector.RecordTick(behavior.String(), float64(state.Speed()), turnPerSec)
		g.primaryOut = out
	} else {
		g.collector.RecordEscortTick(float64(state.Speed()))
	}
}

// otherShip returns the view of the other ship, or nil when alone.
func (g *Game) otherShip(v shipView, views []shipView) *shipView {
	for i := range views {
		if views[i].id != v.id {
			return &views[i]
		}
	}
	return nil
}

// detectEvents compares this tick's steering outputs against the ship's
// previous tick to count waypoint arrivals and fresh roam targets.
func (g *Game) detectEvents(id uint32, behavior steer.Behavior, helm *steer.Engine, out steer.Outputs) {
	track, ok := g.tracks[id]
	if !ok {
		return
	}

	if behavior.IsPath() {
		if track.hadPath && out.ActiveWaypoint != track.prevWaypoint {
			g.collector.RecordWaypointArrival()
		}
		track.hadPath = true
		track.prevWaypoint = out.ActiveWaypoint
	} else {
		track.hadPath = false
	}

	if behavior == steer.Roaming {
		target := helm.Roam().Target
		if !track.hadRoamTarget || target != track.prevRoamTarget {
			g.collector.RecordRoamTarget()
		}
		track.hadRoamTarget = true
		track.prevRoamTarget = target
	} else {
		track.hadRoamTarget = false
	}
}

// flushStats closes the current telemetry window and routes the stats to
// slog and the CSV output.
func (g *Game) flushStats() {
	stats := g.collector.Flush(g.tick, g.selected.String())

	if g.logStats {
		stats.LogStats()
	}
	if err := g.output.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
}

// absDeg returns the magnitude of a heading change, shortest way around.
func absDeg(d float32) float32 {
	d = float32(math.Mod(float64(d)+180, 360))
	if d < 0 {
		d += 360
	}
	return float32(math.Abs(float64(d - 180)))
}
