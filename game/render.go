package game

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/skiff/components"
	"github.com/pthm-cable/skiff/config"
	"github.com/pthm-cable/skiff/steer"
)

var (
	primaryColor = rl.SkyBlue
	escortColor  = rl.Orange
	pathColor    = rl.NewColor(120, 200, 140, 255)
	overlayColor = rl.NewColor(200, 200, 220, 160)
)

// Draw renders the world, the overlays for the active behavior, and the HUD.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(12, 14, 26, 255))

	g.drawTrails()
	g.drawTarget()
	g.drawOverlays()
	g.drawShips()
	g.drawHUD()

	if g.selector != nil {
		if sel := g.selector.Draw(); sel != g.selected {
			g.SetBehavior(sel)
		}
	}

	rl.EndDrawing()
}

// drawTrails renders each ship's breadcrumb history, fading with age.
func (g *Game) drawTrails() {
	cfg := config.Cfg()
	now := float64(g.tick) * cfg.Physics.DT

	query := g.shipFilter.Query()
	for query.Next() {
		_, _, _, _, ship := query.Get()

		trail := g.trails[ship.ID]
		if trail == nil {
			continue
		}
		base := primaryColor
		if ship.Role == components.RoleEscort {
			base = escortColor
		}

		points := trail.Points()
		for i := 1; i < len(points); i++ {
			age := now - points[i].At
			alpha := 1 - float32(age/cfg.Trail.Duration)
			if alpha < 0 {
				alpha = 0
			}
			a := rl.Vector2{X: points[i-1].Pos.X, Y: points[i-1].Pos.Y}
			b := rl.Vector2{X: points[i].Pos.X, Y: points[i].Pos.Y}
			rl.DrawLineV(a, b, rl.Fade(base, alpha*0.6))
		}
	}
}

// drawTarget marks the click target with a small crosshair.
func (g *Game) drawTarget() {
	if g.clickTarget == nil {
		return
	}
	x, y := g.clickTarget.X, g.clickTarget.Y
	rl.DrawLineV(rl.Vector2{X: x - 6, Y: y}, rl.Vector2{X: x + 6, Y: y}, rl.White)
	rl.DrawLineV(rl.Vector2{X: x, Y: y - 6}, rl.Vector2{X: x, Y: y + 6}, rl.White)
	rl.DrawCircleLines(int32(x), int32(y), 10, rl.Fade(rl.White, 0.5))
}

// drawOverlays renders the visualization channels reported by the primary
// ship's last steering tick.
func (g *Game) drawOverlays() {
	out := g.primaryOut

	if wd := out.Wander; wd != nil {
		rl.DrawCircleLines(int32(wd.CircleCenter.X), int32(wd.CircleCenter.Y), wd.CircleRadius, overlayColor)
		rl.DrawLineV(
			rl.Vector2{X: wd.CircleCenter.X, Y: wd.CircleCenter.Y},
			rl.Vector2{X: wd.Target.X, Y: wd.Target.Y},
			overlayColor,
		)
		rl.DrawCircleV(rl.Vector2{X: wd.Target.X, Y: wd.Target.Y}, 3, overlayColor)
	}

	if p := out.Prediction; p != nil {
		if pos, ok := g.primaryPos(); ok {
			rl.DrawLineV(
				rl.Vector2{X: pos.X, Y: pos.Y},
				rl.Vector2{X: p.X, Y: p.Y},
				rl.Fade(rl.Red, 0.7),
			)
		}
		rl.DrawLineV(rl.Vector2{X: p.X - 5, Y: p.Y - 5}, rl.Vector2{X: p.X + 5, Y: p.Y + 5}, rl.Red)
		rl.DrawLineV(rl.Vector2{X: p.X - 5, Y: p.Y + 5}, rl.Vector2{X: p.X + 5, Y: p.Y - 5}, rl.Red)
	}

	g.drawPath(out.Waypoints, out.ActiveWaypoint)
}

// drawPath renders the waypoint loop. Segments longer than half the world
// extent would cross the seam, so they are skipped.
func (g *Game) drawPath(waypoints []steer.Vec2, active int) {
	n := len(waypoints)
	if n == 0 {
		return
	}

	for i := 0; i < n; i++ {
		a := waypoints[i]
		b := waypoints[(i+1)%n]
		if absf(a.X-b.X) > g.bounds.Width/2 || absf(a.Y-b.Y) > g.bounds.Height/2 {
			continue
		}
		rl.DrawLineV(rl.Vector2{X: a.X, Y: a.Y}, rl.Vector2{X: b.X, Y: b.Y}, rl.Fade(pathColor, 0.5))
	}

	for i, wp := range waypoints {
		if i == active {
			rl.DrawCircleV(rl.Vector2{X: wp.X, Y: wp.Y}, 6, pathColor)
		} else {
			rl.DrawCircleLines(int32(wp.X), int32(wp.Y), 5, pathColor)
		}
	}
}

// drawShips renders both ships as oriented triangles.
func (g *Game) drawShips() {
	query := g.shipFilter.Query()
	for query.Next() {
		pos, _, rot, body, ship := query.Get()

		color := primaryColor
		if ship.Role == components.RoleEscort {
			color = escortColor
		}
		drawOrientedTriangle(pos.X, pos.Y, rot.Heading, body.Radius, color)
	}
}

// drawOrientedTriangle draws a triangle with its nose on the heading.
// Heading is in degrees, 0 = +X, counter-clockwise positive.
func drawOrientedTriangle(x, y, headingDeg, radius float32, color rl.Color) {
	heading := float64(headingDeg) * math.Pi / 180

	frontX := x + float32(math.Cos(heading))*radius*1.5
	frontY := y + float32(math.Sin(heading))*radius*1.5

	backAngle := heading + math.Pi*0.8
	backLeftX := x + float32(math.Cos(backAngle))*radius
	backLeftY := y + float32(math.Sin(backAngle))*radius

	backAngle = heading - math.Pi*0.8
	backRightX := x + float32(math.Cos(backAngle))*radius
	backRightY := y + float32(math.Sin(backAngle))*radius

	v1 := rl.Vector2{X: frontX, Y: frontY}
	v2 := rl.Vector2{X: backLeftX, Y: backLeftY}
	v3 := rl.Vector2{X: backRightX, Y: backRightY}

	// DrawTriangle requires counter-clockwise winding (v1, v3, v2)
	rl.DrawTriangle(v1, v3, v2, color)
	rl.DrawTriangleLines(v1, v2, v3, rl.White)
}

// drawHUD renders the status text.
func (g *Game) drawHUD() {
	rl.DrawText(fmt.Sprintf("Tick: %d", g.tick), 10, 10, 20, rl.White)
	rl.DrawText(
		fmt.Sprintf("Behavior: %s  Escort: %s", g.selected, steer.Complement(g.selected)),
		10, 35, 20, rl.White,
	)
	rl.DrawText(fmt.Sprintf("Speed: %dx  [</>]", g.stepsPerUpdate), 10, 60, 20, rl.White)

	if g.clickTarget == nil && g.selected.NeedsTarget() {
		rl.DrawText("Click to set a target", 10, 85, 20, rl.Yellow)
	}
	if g.paused {
		rl.DrawText("PAUSED", 10, 110, 20, rl.Yellow)
	}
}

// primaryPos returns the primary ship's current position.
func (g *Game) primaryPos() (steer.Vec2, bool) {
	var out steer.Vec2
	var found bool

	query := g.shipFilter.Query()
	for query.Next() {
		pos, _, _, _, ship := query.Get()
		if ship.Role == components.RolePrimary {
			out = steer.Vec2{X: pos.X, Y: pos.Y}
			found = true
		}
	}
	return out, found
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
