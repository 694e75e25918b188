package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/orrery/input"
)

// pollEvents drains raylib's key queue in press order. A window close
// request is reported after the keys of the same frame.
func (g *Game) pollEvents() []input.Event {
	g.events = g.events[:0]
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		g.events = append(g.events, input.KeyDown(key))
	}
	if rl.WindowShouldClose() {
		g.events = append(g.events, input.QuitEvent())
	}
	return g.events
}
