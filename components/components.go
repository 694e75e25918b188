// Package components defines ECS components for celestial bodies.
package components

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/orrery/texture"
)

// RGB is a linear color with channels in [0, 1].
type RGB struct {
	R, G, B float64
}

// Scale multiplies every channel by f.
func (c RGB) Scale(f float64) RGB {
	return RGB{R: c.R * f, G: c.G * f, B: c.B * f}
}

// RGBFromSlice builds a color from a config triple. Missing channels are 0.
func RGBFromSlice(v []float64) RGB {
	var c RGB
	if len(v) > 0 {
		c.R = v[0]
	}
	if len(v) > 1 {
		c.G = v[1]
	}
	if len(v) > 2 {
		c.B = v[2]
	}
	return c
}

// Body holds the static identity and look of a body.
type Body struct {
	Index     int // declaration order, also the selection index
	Name      string
	Radius    float64
	Color     RGB
	Satellite bool // carries the single moon
	Rings     bool // carries the ring system
}

// Orbit holds the orbital parameters and the only mutable orbital state, Angle.
type Orbit struct {
	Distance    float64
	Speed       float64 // degrees per tick
	Inclination float64 // degrees
	Angle       float64 // degrees, [0, 360)
}

// Transform caches the world position computed from Orbit this tick.
type Transform struct {
	Position r3.Vec
}

// Surface holds the texture resolved at startup.
type Surface struct {
	Texture texture.Ref
}
