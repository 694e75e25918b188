// Package game runs the interactive viewer: it owns the simulation state and
// wires input, composition, rendering and the overlays together.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/orrery/config"
	"github.com/pthm-cable/orrery/input"
	"github.com/pthm-cable/orrery/renderer"
	"github.com/pthm-cable/orrery/scene"
	"github.com/pthm-cable/orrery/sim"
	"github.com/pthm-cable/orrery/telemetry"
	"github.com/pthm-cable/orrery/texture"
	"github.com/pthm-cable/orrery/ui"
)

// Game holds the complete viewer state. All methods run on the window thread.
type Game struct {
	cfg *config.Config
	log *slog.Logger

	state    *sim.State
	composer *scene.Composer
	keymap   input.Keymap

	// Rendering
	textures *renderer.TextureLoader
	backend  *renderer.Backend
	hud      *ui.HUD
	facts    *ui.FactPanel
	frame    scene.Frame

	// Telemetry
	perf        *telemetry.PerfCollector
	output      *telemetry.OutputManager
	lastPerfLog float64

	events []input.Event
}

// New creates the viewer. The window must already be open: textures are
// uploaded here.
func New(cfg *config.Config, log *slog.Logger) (*Game, error) {
	if log == nil {
		log = slog.Default()
	}

	textures := renderer.NewTextureLoader()
	resolver := texture.NewResolver(cfg.Textures.Dir, textures, log)
	refs := resolver.ResolveAll(cfg.Derived.BodyNames)

	state, err := sim.FromConfig(cfg, refs, log)
	if err != nil {
		textures.Unload()
		return nil, fmt.Errorf("building simulation: %w", err)
	}

	output, err := telemetry.NewOutputManager(cfg.Telemetry.OutputDir)
	if err != nil {
		textures.Unload()
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		log.Warn("failed to write config snapshot", "error", err)
	}

	seed := cfg.Stars.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	stars := scene.NewStarField(rand.New(rand.NewSource(seed)), cfg.Stars.Count, cfg.Stars.Spread)

	g := &Game{
		cfg:      cfg,
		log:      log,
		state:    state,
		composer: scene.NewComposer(scene.StyleFromConfig(cfg), stars),
		keymap:   Keymap(cfg),
		textures: textures,
		backend:  renderer.NewBackend(cfg.Screen.Fovy, textures),
		hud:      ui.NewHUD(),
		facts:    ui.NewFactPanel(cfg.Derived.ScreenW32, cfg.Derived.ScreenH32),
		perf:     telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		output:   output,
	}

	log.Info("viewer ready",
		"bodies", state.BodyCount(),
		"stars", len(stars),
		"star_seed", seed,
		"target", cfg.Derived.BodyNames[state.Camera().Target],
		"output_dir", output.Dir(),
	)
	return g, nil
}

// Keymap builds the key bindings from config.
func Keymap(cfg *config.Config) input.Keymap {
	return input.Keymap{
		Quit:       cfg.Keys.Quit,
		Pause:      cfg.Keys.Pause,
		Focus:      cfg.Keys.Focus,
		SelectBase: cfg.Keys.SelectBase,
	}
}

// Update drains input, steps the simulation once and composes the frame.
func (g *Game) Update() {
	g.perf.StartTick()

	g.perf.StartPhase(telemetry.PhaseInput)
	cmds := g.keymap.Commands(g.pollEvents())

	g.perf.StartPhase(telemetry.PhaseSimulate)
	g.state.Step(rl.GetTime(), cmds)

	g.perf.StartPhase(telemetry.PhaseCompose)
	g.frame = g.composer.Compose(g.state.Snapshot())
}

// Draw renders the composed frame and the overlays, then records timings.
func (g *Game) Draw() {
	g.perf.StartPhase(telemetry.PhaseRender)

	rl.BeginDrawing()
	g.backend.Draw(g.frame)
	g.facts.Draw(g.frame.Overlay)
	g.drawHUD()
	rl.EndDrawing()

	sample := g.perf.EndTick()
	g.recordFrame(sample)
}

// Done reports whether the viewer should exit.
func (g *Game) Done() bool {
	return g.state.Quit()
}

// Tick returns the number of completed simulation steps.
func (g *Game) Tick() int64 {
	return g.state.Tick()
}

// Unload releases GPU resources and closes telemetry output.
func (g *Game) Unload() {
	g.backend.Unload()
	if err := g.output.Close(); err != nil {
		g.log.Warn("failed to close telemetry output", "error", err)
	}
}

func (g *Game) drawHUD() {
	cam := g.state.Camera()
	g.hud.Draw(ui.HUDData{
		Title:        g.cfg.Screen.Title,
		Mode:         cam.Mode.String(),
		Target:       g.cfg.Derived.BodyNames[cam.Target],
		Tick:         g.state.Tick(),
		FPS:          rl.GetFPS(),
		Paused:       g.state.Paused(),
		ScreenWidth:  int32(g.cfg.Screen.Width),
		ScreenHeight: int32(g.cfg.Screen.Height),
	})
}
