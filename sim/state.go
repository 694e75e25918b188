// Package sim owns the simulation state: bodies, clock, camera and the
// pause/quit flags. One goroutine owns a State; nothing here locks.
package sim

import (
	"fmt"
	"log/slog"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/orrery/camera"
	"github.com/pthm-cable/orrery/components"
	"github.com/pthm-cable/orrery/config"
	"github.com/pthm-cable/orrery/input"
	"github.com/pthm-cable/orrery/orbit"
	"github.com/pthm-cable/orrery/systems"
	"github.com/pthm-cable/orrery/texture"
	"github.com/pthm-cable/orrery/timebase"
)

// BodySpec declares one body at startup.
type BodySpec struct {
	Name        string
	Distance    float64
	Radius      float64
	Speed       float64 // degrees per tick
	Inclination float64 // degrees
	Color       components.RGB
	Satellite   bool
	Rings       bool
	Facts       []string
}

// Options configures a new State.
type Options struct {
	Bodies        []BodySpec
	Textures      []texture.Ref // parallel to Bodies; missing entries mean no texture
	Camera        camera.Params
	InitialTarget int
	SunSpinSpeed  float64 // degrees per tick
	Logger        *slog.Logger
}

// State is the simulation aggregate.
type State struct {
	world    *ecs.World
	entities []ecs.Entity // declaration order

	bodyMap      *ecs.Map[components.Body]
	orbitMap     *ecs.Map[components.Orbit]
	transformMap *ecs.Map[components.Transform]
	surfaceMap   *ecs.Map[components.Surface]

	orbits *systems.OrbitSystem

	base  timebase.Base
	clock timebase.Clock

	camera *camera.Controller

	sunRotation  float64
	sunSpinSpeed float64

	facts [][]string

	paused bool
	quit   bool
	tick   int64

	log *slog.Logger
}

// New builds the body entities and the initial camera state.
func New(opts Options) (*State, error) {
	if len(opts.Bodies) == 0 {
		return nil, fmt.Errorf("sim: no bodies")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	world := ecs.NewWorld()
	s := &State{
		world:        world,
		bodyMap:      ecs.NewMap[components.Body](world),
		orbitMap:     ecs.NewMap[components.Orbit](world),
		transformMap: ecs.NewMap[components.Transform](world),
		surfaceMap:   ecs.NewMap[components.Surface](world),
		orbits:       systems.NewOrbitSystem(world),
		camera:       camera.New(opts.Camera, len(opts.Bodies), opts.InitialTarget),
		sunSpinSpeed: opts.SunSpinSpeed,
		log:          opts.Logger,
	}

	mapper := ecs.NewMap4[components.Body, components.Orbit, components.Transform, components.Surface](world)
	for i, spec := range opts.Bodies {
		body := components.Body{
			Index:     i,
			Name:      spec.Name,
			Radius:    spec.Radius,
			Color:     spec.Color,
			Satellite: spec.Satellite,
			Rings:     spec.Rings,
		}
		orb := components.Orbit{
			Distance:    spec.Distance,
			Speed:       spec.Speed,
			Inclination: spec.Inclination,
		}
		tr := components.Transform{Position: orbit.Position(0, spec.Distance, spec.Inclination)}
		surf := components.Surface{Texture: texture.None()}
		if i < len(opts.Textures) {
			surf.Texture = opts.Textures[i]
		}

		s.entities = append(s.entities, mapper.NewEntity(&body, &orb, &tr, &surf))
		s.facts = append(s.facts, spec.Facts)
	}

	return s, nil
}

// FromConfig builds a State from loaded configuration.
func FromConfig(cfg *config.Config, textures []texture.Ref, log *slog.Logger) (*State, error) {
	specs := make([]BodySpec, len(cfg.Bodies))
	for i, b := range cfg.Bodies {
		specs[i] = BodySpec{
			Name:        b.Name,
			Distance:    b.Distance,
			Radius:      b.Radius,
			Speed:       b.Speed,
			Inclination: b.Inclination,
			Color:       components.RGBFromSlice(b.Color),
			Satellite:   b.Satellite,
			Rings:       b.Rings,
			Facts:       b.Facts,
		}
	}
	return New(Options{
		Bodies:        specs,
		Textures:      textures,
		Camera:        CameraParams(cfg),
		InitialTarget: cfg.Camera.InitialTarget,
		SunSpinSpeed:  cfg.Sun.SpinSpeed,
		Logger:        log,
	})
}

// CameraParams converts the camera section of the config.
func CameraParams(cfg *config.Config) camera.Params {
	g, f := cfg.Camera.Global, cfg.Camera.Focus
	return camera.Params{
		GlobalRadius:     g.Radius,
		GlobalBaseHeight: g.BaseHeight,
		SwayAmplitude:    g.SwayAmplitude,
		SwayFrequency:    g.SwayFrequency,
		GlobalSpeed:      g.Speed,
		FocusRadius:      f.Radius,
		FocusHeight:      f.Height,
		FocusSpeed:       f.Speed,
	}
}

// Apply dispatches a single command.
func (s *State) Apply(cmd input.Command) {
	switch cmd.Kind {
	case input.Quit:
		s.quit = true
	case input.TogglePause:
		s.paused = !s.paused
	case input.ToggleFocusMode:
		s.camera.ToggleFocus()
	case input.SelectTarget:
		if !s.camera.Select(cmd.Index) {
			s.log.Debug("selection ignored", "index", cmd.Index, "bodies", len(s.entities))
			return
		}
	}
	s.log.Debug("command applied", "command", cmd.String(), "mode", s.camera.Mode.String(), "target", s.camera.Target, "paused", s.paused)
}

// Step applies the tick's commands in arrival order, then advances the clock
// and, unless paused, every orbit angle, the sun spin and the active camera angle.
func (s *State) Step(nowSeconds float64, cmds []input.Command) {
	for _, c := range cmds {
		s.Apply(c)
	}

	s.clock = s.base.Tick(nowSeconds)

	s.orbits.Update(s.paused)
	if !s.paused {
		s.sunRotation = orbit.Wrap(s.sunRotation + s.sunSpinSpeed)
	}
	s.camera.Advance(s.paused)

	s.tick++
}

// Quit reports whether a Quit command has been applied.
func (s *State) Quit() bool { return s.quit }

// Paused reports whether the simulation is paused.
func (s *State) Paused() bool { return s.paused }

// Tick returns the number of steps taken.
func (s *State) Tick() int64 { return s.tick }

// Clock returns the clock of the last step.
func (s *State) Clock() timebase.Clock { return s.clock }

// Camera returns the camera controller.
func (s *State) Camera() *camera.Controller { return s.camera }

// SunRotation returns the accumulated sun spin in degrees.
func (s *State) SunRotation() float64 { return s.sunRotation }

// BodyCount returns the number of bodies.
func (s *State) BodyCount() int { return len(s.entities) }

// Body returns a read-only view of body i.
func (s *State) Body(i int) BodyView {
	e := s.entities[i]
	return BodyView{
		Body:     *s.bodyMap.Get(e),
		Orbit:    *s.orbitMap.Get(e),
		Position: s.transformMap.Get(e).Position,
		Texture:  s.surfaceMap.Get(e).Texture,
		Facts:    s.facts[i],
	}
}

// Snapshot copies everything the composer needs for one frame.
func (s *State) Snapshot() Snapshot {
	bodies := make([]BodyView, len(s.entities))
	for i := range s.entities {
		bodies[i] = s.Body(i)
	}
	return Snapshot{
		Tick:        s.tick,
		Clock:       s.clock,
		Camera:      *s.camera,
		SunRotation: s.sunRotation,
		Paused:      s.paused,
		Bodies:      bodies,
	}
}

// BodyView is a copy of one body's components.
type BodyView struct {
	components.Body
	components.Orbit
	Position r3.Vec
	Texture  texture.Ref
	Facts    []string
}

// Spin returns the displayed self-rotation of the body.
func (b BodyView) Spin() float64 {
	return orbit.Spin(b.Angle)
}

// Snapshot is an immutable copy of the state for one frame.
type Snapshot struct {
	Tick        int64
	Clock       timebase.Clock
	Camera      camera.Controller
	SunRotation float64
	Paused      bool
	Bodies      []BodyView
}

// FocusBody returns the body the camera targets, and false if there are no bodies.
func (s Snapshot) FocusBody() (BodyView, bool) {
	t := s.Camera.Target
	if t < 0 || t >= len(s.Bodies) {
		return BodyView{}, false
	}
	return s.Bodies[t], true
}

// View computes the camera view against the bodies' current positions.
func (s Snapshot) View() camera.View {
	var target r3.Vec
	if b, ok := s.FocusBody(); ok {
		target = b.Position
	}
	return s.Camera.View(s.Clock.Elapsed, target)
}
