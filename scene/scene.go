// Package scene turns a simulation snapshot into an ordered list of draw
// operations. Composition is pure: it reads the snapshot and never mutates it.
package scene

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/orrery/camera"
	"github.com/pthm-cable/orrery/components"
	"github.com/pthm-cable/orrery/config"
	"github.com/pthm-cable/orrery/orbit"
	"github.com/pthm-cable/orrery/sim"
)

// Layout constants.
const (
	TexturedScale = 1.2 // focused textured bodies are drawn larger
	LabelOffset   = 1.5 // label height above the body surface
	MaxFacts      = 3

	SunDetail       = 48
	BodyDetail      = 32
	TexturedDetail  = 64
	SatelliteDetail = 16
	FanPoints       = 360
)

// Fixed colors for derived geometry.
var (
	SatelliteColor = components.RGB{R: 0.8, G: 0.8, B: 0.85}
	RingColor      = components.RGB{R: 0.9, G: 0.8, B: 0.6}
)

// RingAlpha is the opacity of the ring system.
const RingAlpha = 0.7

// Style holds the configurable look of the scene.
type Style struct {
	SunRadius   float64
	SunColor    components.RGB
	SunEmissive components.RGB
	HaloRadius  float64
	HaloColor   components.RGB
	HaloAlpha   float64

	OrbitSegments int
	OrbitColor    components.RGB
}

// DefaultStyle returns the stock look.
func DefaultStyle() Style {
	return Style{
		SunRadius:     5,
		SunColor:      components.RGB{R: 1.0, G: 0.9, B: 0.3},
		SunEmissive:   components.RGB{R: 0.9, G: 0.8, B: 0.3},
		HaloRadius:    11,
		HaloColor:     components.RGB{R: 1.0, G: 0.9, B: 0.4},
		HaloAlpha:     0.25,
		OrbitSegments: 240,
		OrbitColor:    components.RGB{R: 0.35, G: 0.35, B: 0.35},
	}
}

// StyleFromConfig reads the sun and orbit ring sections.
func StyleFromConfig(cfg *config.Config) Style {
	return Style{
		SunRadius:     cfg.Sun.Radius,
		SunColor:      components.RGBFromSlice(cfg.Sun.Color),
		SunEmissive:   components.RGBFromSlice(cfg.Sun.Emissive),
		HaloRadius:    cfg.Sun.HaloRadius,
		HaloColor:     components.RGBFromSlice(cfg.Sun.HaloColor),
		HaloAlpha:     cfg.Sun.HaloAlpha,
		OrbitSegments: cfg.OrbitRing.Segments,
		OrbitColor:    components.RGBFromSlice(cfg.OrbitRing.Color),
	}
}

// NewStarField generates n points uniformly inside the cube [-spread, spread]^3.
func NewStarField(rng *rand.Rand, n int, spread float64) []r3.Vec {
	stars := make([]r3.Vec, n)
	for i := range stars {
		stars[i] = r3.Vec{
			X: (rng.Float64()*2 - 1) * spread,
			Y: (rng.Float64()*2 - 1) * spread,
			Z: (rng.Float64()*2 - 1) * spread,
		}
	}
	return stars
}

// Composer builds frames. The star field is fixed at construction.
type Composer struct {
	style Style
	stars []r3.Vec
}

// NewComposer creates a composer with a pre-generated star field.
func NewComposer(style Style, stars []r3.Vec) *Composer {
	return &Composer{style: style, stars: stars}
}

// Stars returns the fixed star field.
func (c *Composer) Stars() []r3.Vec {
	return c.stars
}

// Compose builds the frame for a snapshot.
func (c *Composer) Compose(s sim.Snapshot) Frame {
	intro := s.Clock.Intro
	st := c.style

	ops := make([]Op, 0, 3+3*len(s.Bodies))

	// Star field
	ops = append(ops, StarsOp{Points: c.stars, Brightness: intro})

	// Sun and halo
	ops = append(ops,
		SphereOp{
			Radius:   st.SunRadius,
			Color:    st.SunColor.Scale(intro),
			Emissive: st.SunEmissive.Scale(intro),
			Spin:     s.SunRotation,
			Detail:   SunDetail,
		},
		DiscOp{
			Radius: st.HaloRadius,
			Color:  st.HaloColor,
			Alpha:  st.HaloAlpha * intro,
			Points: FanPoints,
		},
	)

	// Orbit ring, body, label for each body in declaration order
	for _, b := range s.Bodies {
		ops = append(ops, LineLoopOp{
			Points: orbit.Loop(b.Distance, b.Inclination, st.OrbitSegments),
			Color:  st.OrbitColor,
		})
		ops = append(ops, c.bodyOp(s, b, intro))
		ops = append(ops, LabelOp{
			Text:       b.Name,
			Position:   r3.Add(b.Position, r3.Vec{Y: b.Radius + LabelOffset}),
			Brightness: intro,
		})
	}

	f := Frame{
		Background: Background(s.Clock.Elapsed),
		View:       s.View(),
		Ops:        ops,
		Paused:     s.Paused,
	}
	if ov, ok := overlay(s); ok {
		f.Overlay = &ov
	}
	return f
}

// bodyOp builds the body sphere and its attached geometry.
func (c *Composer) bodyOp(s sim.Snapshot, b sim.BodyView, intro float64) SphereOp {
	op := SphereOp{
		Center: b.Position,
		Radius: b.Radius,
		Color:  b.Color.Scale(intro),
		Spin:   b.Spin(),
		Detail: BodyDetail,
	}
	// Only the focused body shows its texture, and only its own.
	if s.Camera.Focused(b.Index) && b.Texture.Valid() {
		op.Radius = b.Radius * TexturedScale
		op.Color = components.RGB{R: 1, G: 1, B: 1}
		op.Texture = b.Texture
		op.Detail = TexturedDetail
	}

	if b.Rings {
		inner, outer := orbit.RingBand(b.Radius)
		op.Children = append(op.Children, AnnulusOp{
			Inner:  inner,
			Outer:  outer,
			Color:  RingColor,
			Alpha:  RingAlpha,
			Points: FanPoints,
		})
	}
	if b.Satellite {
		op.Children = append(op.Children, SphereOp{
			Center: orbit.SatelliteOffset(b.Angle, b.Radius),
			Radius: orbit.SatelliteRadius,
			Color:  SatelliteColor.Scale(intro),
			Detail: SatelliteDetail,
		})
	}
	return op
}

func overlay(s sim.Snapshot) (Overlay, bool) {
	if s.Camera.Mode != camera.Focus {
		return Overlay{}, false
	}
	b, ok := s.FocusBody()
	if !ok {
		return Overlay{}, false
	}
	facts := b.Facts
	if len(facts) > MaxFacts {
		facts = facts[:MaxFacts]
	}
	return Overlay{Name: b.Name, Facts: append([]string(nil), facts...)}, true
}

// Background returns the clear color, a dark blue that sways slowly with time.
func Background(elapsed float64) components.RGB {
	return components.RGB{B: 0.02 + 0.01*math.Sin(elapsed*0.2)}
}
