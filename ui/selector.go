// Package ui provides the behavior selector panel.
package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/skiff/steer"
)

// SelectorPanel is the per-tick behavior selector: one toggle per behavior,
// yielding the currently selected identifier. The steering core only ever
// sees the resulting Behavior value.
type SelectorPanel struct {
	x, y     int32
	width    int32
	visible  bool
	selected steer.Behavior
}

// NewSelectorPanel creates a selector panel anchored at the given position.
func NewSelectorPanel(x, y, width int32, initial steer.Behavior) *SelectorPanel {
	return &SelectorPanel{
		x:        x,
		y:        y,
		width:    width,
		visible:  true,
		selected: initial,
	}
}

// Selected returns the behavior chosen for this tick.
func (p *SelectorPanel) Selected() steer.Behavior {
	return p.selected
}

// Select sets the behavior directly (keyboard shortcuts bypass the panel).
func (p *SelectorPanel) Select(b steer.Behavior) {
	p.selected = b
}

// Toggle switches panel visibility.
func (p *SelectorPanel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

const (
	padding    = int32(8)
	lineHeight = int32(26)
)

// height returns the panel height for the current behavior set.
func (p *SelectorPanel) height() int32 {
	return int32(len(steer.Behaviors()))*lineHeight + padding*3 + 20
}

// Contains reports whether the point sits inside the visible panel.
func (p *SelectorPanel) Contains(pt rl.Vector2) bool {
	if !p.visible {
		return false
	}
	return pt.X >= float32(p.x) && pt.X <= float32(p.x+p.width) &&
		pt.Y >= float32(p.y) && pt.Y <= float32(p.y+p.height())
}

// Draw renders the panel and handles clicks. Returns the selected behavior.
func (p *SelectorPanel) Draw() steer.Behavior {
	if !p.visible {
		return p.selected
	}

	behaviors := steer.Behaviors()
	panelHeight := p.height()

	rl.DrawRectangle(p.x, p.y, p.width, panelHeight, rl.Fade(rl.Black, 0.6))
	rl.DrawText("Behavior", p.x+padding, p.y+padding, 16, rl.White)

	y := p.y + padding + 20
	for _, b := range behaviors {
		bounds := rl.Rectangle{
			X:      float32(p.x + padding),
			Y:      float32(y),
			Width:  float32(p.width - padding*2),
			Height: float32(lineHeight - 4),
		}
		if gui.Toggle(bounds, b.String(), p.selected == b) && p.selected != b {
			p.selected = b
		}
		y += lineHeight
	}

	return p.selected
}
