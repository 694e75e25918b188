package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Legend is the key help shown at the bottom of the screen.
const Legend = "[F] focus  [1-9] select  [Space] pause  [Esc] quit"

// HUDData holds all the data needed to render the HUD.
type HUDData struct {
	Title        string
	Mode         string
	Target       string
	Tick         int64
	FPS          int32
	Paused       bool
	ScreenWidth  int32
	ScreenHeight int32
}

// HUD renders the heads-up display.
type HUD struct{}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Camera: %s | Target: %s | Tick: %d | FPS: %d", data.Mode, data.Target, data.Tick, data.FPS),
		10, 35, 16, rl.LightGray,
	)

	if data.Paused {
		text := "PAUSED"
		w := rl.MeasureText(text, 24)
		rl.DrawText(text, (data.ScreenWidth-w)/2, 20, 24, rl.Yellow)
	}

	rl.DrawText(Legend, 10, data.ScreenHeight-25, 14, rl.Gray)
}
