package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/skiff/steer"
)

// handleInput processes mouse and keyboard input. The viewport maps 1:1
// onto the world, so the mouse position is already a world point.
func (g *Game) handleInput() {
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && !g.mouseOverPanel() {
		m := rl.GetMousePosition()
		g.SetTarget(steer.Vec2{X: m.X, Y: m.Y})
	}
	if rl.IsMouseButtonPressed(rl.MouseRightButton) || rl.IsKeyPressed(rl.KeyC) {
		g.ClearTarget()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	// Speed control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
		g.stepsPerUpdate++
	}

	// Digits map to the first ten behaviors, Tab cycles through all of them.
	for i, key := range digitKeys {
		if rl.IsKeyPressed(key) {
			g.SetBehavior(steer.Behavior(i))
		}
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.SetBehavior(steer.Behavior((int(g.selected) + 1) % len(steer.Behaviors())))
	}

	if rl.IsKeyPressed(rl.KeyR) {
		for _, helm := range g.helms {
			helm.InvalidatePath()
		}
	}
	if rl.IsKeyPressed(rl.KeyV) && g.selector != nil {
		g.selector.Toggle()
	}
}

var digitKeys = []int32{
	rl.KeyZero, rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour,
	rl.KeyFive, rl.KeySix, rl.KeySeven, rl.KeyEight, rl.KeyNine,
}

// mouseOverPanel reports whether the cursor sits on the selector panel, so
// panel clicks do not also place a target.
func (g *Game) mouseOverPanel() bool {
	if g.selector == nil {
		return false
	}
	return g.selector.Contains(rl.GetMousePosition())
}
