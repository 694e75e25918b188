// Package camera provides the two-mode orbiting camera for the 3D view.
package camera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/orrery/orbit"
)

// Mode is the camera state.
type Mode uint8

const (
	GlobalOrbit Mode = iota // circle the whole system
	Focus                   // circle one selected body
)

func (m Mode) String() string {
	if m == Focus {
		return "focus"
	}
	return "global"
}

// Params holds the tunables for both modes.
type Params struct {
	GlobalRadius     float64 // eye distance from origin
	GlobalBaseHeight float64
	SwayAmplitude    float64 // height sway in global mode
	SwayFrequency    float64 // radians per elapsed second
	GlobalSpeed      float64 // degrees per tick

	FocusRadius float64 // eye distance from target (horizontal)
	FocusHeight float64 // eye height above target
	FocusSpeed  float64 // degrees per tick
}

// DefaultParams returns the stock camera tuning.
func DefaultParams() Params {
	return Params{
		GlobalRadius:     180,
		GlobalBaseHeight: 80,
		SwayAmplitude:    15,
		SwayFrequency:    0.3,
		GlobalSpeed:      0.20,
		FocusRadius:      40,
		FocusHeight:      20,
		FocusSpeed:       0.06,
	}
}

// View is an eye/look-at/up triple.
type View struct {
	Eye, Target, Up r3.Vec
}

var up = r3.Vec{Y: 1}

// Controller is the camera state machine.
type Controller struct {
	Mode        Mode
	GlobalAngle float64 // degrees
	FocusAngle  float64 // degrees
	Target      int     // focus body index

	// Number of selectable bodies
	Count int

	Params Params
}

// New creates a controller in global mode targeting the given body.
func New(params Params, count, target int) *Controller {
	c := &Controller{
		Mode:   GlobalOrbit,
		Count:  count,
		Params: params,
	}
	if target >= 0 && target < count {
		c.Target = target
	}
	return c
}

// ToggleFocus flips between global and focus mode. The target is kept.
func (c *Controller) ToggleFocus() {
	if c.Mode == Focus {
		c.Mode = GlobalOrbit
	} else {
		c.Mode = Focus
	}
}

// Select sets the focus target regardless of mode. Out of range indices are
// ignored and reported as false. The focus angle is not reset.
func (c *Controller) Select(i int) bool {
	if i < 0 || i >= c.Count {
		return false
	}
	c.Target = i
	return true
}

// Focused reports whether the camera is tracking body i.
func (c *Controller) Focused(i int) bool {
	return c.Mode == Focus && c.Target == i
}

// Advance moves the active mode's orbit angle by one tick unless paused.
func (c *Controller) Advance(paused bool) {
	if c.Mode == Focus {
		c.FocusAngle = orbit.Advance(c.FocusAngle, c.Params.FocusSpeed, paused)
	} else {
		c.GlobalAngle = orbit.Advance(c.GlobalAngle, c.Params.GlobalSpeed, paused)
	}
}

// View computes the view for the current state. elapsed is wall-clock seconds
// (drives the global height sway, which ignores pause). target is the live
// position of the focus body.
func (c *Controller) View(elapsed float64, target r3.Vec) View {
	p := c.Params
	if c.Mode == Focus {
		a := c.FocusAngle * math.Pi / 180
		eye := r3.Add(target, r3.Vec{
			X: math.Cos(a) * p.FocusRadius,
			Y: p.FocusHeight,
			Z: math.Sin(a) * p.FocusRadius,
		})
		return View{Eye: eye, Target: target, Up: up}
	}

	a := c.GlobalAngle * math.Pi / 180
	eye := r3.Vec{
		X: math.Cos(a) * p.GlobalRadius,
		Y: p.GlobalBaseHeight + p.SwayAmplitude*math.Sin(elapsed*p.SwayFrequency),
		Z: math.Sin(a) * p.GlobalRadius,
	}
	return View{Eye: eye, Target: r3.Vec{}, Up: up}
}

// Forward returns the unit view direction.
func (v View) Forward() r3.Vec {
	d := r3.Sub(v.Target, v.Eye)
	if r3.Norm(d) == 0 {
		return r3.Vec{Z: -1}
	}
	return r3.Unit(d)
}

// InFront reports whether p lies in the half-space the view looks into.
func (v View) InFront(p r3.Vec) bool {
	return r3.Dot(r3.Sub(p, v.Eye), v.Forward()) > 0
}
