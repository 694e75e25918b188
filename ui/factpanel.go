// Package ui draws the 2D overlays on top of the 3D view.
package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/orrery/scene"
)

const (
	panelWidth   = 360
	panelPadding = 10
	lineHeight   = 22
	headerHeight = 24
)

// FactPanel shows the focused body's name and facts in the lower right corner.
type FactPanel struct {
	screenW, screenH float32
}

// NewFactPanel creates a panel anchored to the given screen size.
func NewFactPanel(screenW, screenH float32) *FactPanel {
	return &FactPanel{screenW: screenW, screenH: screenH}
}

// Draw renders the overlay. A nil overlay draws nothing.
func (p *FactPanel) Draw(ov *scene.Overlay) {
	if ov == nil {
		return
	}

	height := float32(headerHeight + panelPadding*2 + lineHeight*len(ov.Facts))
	bounds := rl.Rectangle{
		X:      p.screenW - panelWidth - 20,
		Y:      p.screenH - height - 40,
		Width:  panelWidth,
		Height: height,
	}

	gui.Panel(bounds, ov.Name)

	y := bounds.Y + headerHeight + panelPadding
	for _, fact := range ov.Facts {
		gui.Label(rl.Rectangle{
			X:      bounds.X + panelPadding,
			Y:      y,
			Width:  bounds.Width - panelPadding*2,
			Height: lineHeight,
		}, "- "+fact)
		y += lineHeight
	}
}
