// Package orbit holds the kinematic orbit math: angle advance, tilted-plane
// positions, and the geometry derived from a parent body (satellite, ring band).
//
// Angles are in degrees. Nothing here is integrated over time; every position is
// a pure function of the current angle, so repeated evaluation never drifts.
package orbit

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Satellite and ring constants, relative to the parent body.
const (
	SatelliteAngleFactor    = 5.0  // satellite angle = parent angle * 5
	SatelliteDistanceFactor = 3.0  // satellite distance = parent radius * 3
	SatelliteRadius         = 0.6
	RingInnerFactor         = 1.6
	RingOuterFactor         = 2.4
	SpinFactor              = 3.0 // displayed body spin = orbit angle * 3
)

// xAxis is the reference axis orbital planes are tilted about.
var xAxis = r3.Vec{X: 1}

// Advance returns angle+speed wrapped into [0, 360), or angle unchanged when paused.
func Advance(angle, speed float64, paused bool) float64 {
	if paused {
		return angle
	}
	return Wrap(angle + speed)
}

// Wrap normalizes degrees into [0, 360).
func Wrap(deg float64) float64 {
	r := math.Mod(deg, 360)
	if r < 0 {
		r += 360
	}
	// -tiny + 360 rounds to 360
	if r >= 360 {
		r = 0
	}
	return r
}

// Position computes the world position of a body on a circular orbit of the given
// distance, tilted about the X axis by inclination degrees.
func Position(angle, distance, inclination float64) r3.Vec {
	a := radians(angle)
	x := math.Cos(a) * distance
	z := math.Sin(a) * distance

	inc := radians(inclination)
	return r3.Vec{
		X: x,
		Y: -z * math.Sin(inc),
		Z: z * math.Cos(inc),
	}
}

// SatelliteOffset is the satellite position relative to its parent's center.
// The satellite orbits in the parent's untilted plane.
func SatelliteOffset(parentAngle, parentRadius float64) r3.Vec {
	return Position(parentAngle*SatelliteAngleFactor, parentRadius*SatelliteDistanceFactor, 0)
}

// Satellite returns the satellite's world position given its parent's live position.
func Satellite(parentPos r3.Vec, parentAngle, parentRadius float64) r3.Vec {
	return r3.Add(parentPos, SatelliteOffset(parentAngle, parentRadius))
}

// RingBand returns the inner and outer radius of a ring system around a body.
func RingBand(bodyRadius float64) (inner, outer float64) {
	return bodyRadius * RingInnerFactor, bodyRadius * RingOuterFactor
}

// Spin returns the cosmetic self-rotation shown for a body at the given orbit angle.
func Spin(orbitAngle float64) float64 {
	return Wrap(orbitAngle * SpinFactor)
}

// Loop returns the closed polyline tracing an orbit: segments points evenly spaced
// in angle, tilted the same way as Position. The closing edge is implicit.
func Loop(distance, inclination float64, segments int) []r3.Vec {
	if segments < 3 {
		segments = 3
	}
	rot := r3.NewRotation(radians(inclination), xAxis)
	pts := make([]r3.Vec, segments)
	for i := range pts {
		t := 2 * math.Pi * float64(i) / float64(segments)
		flat := r3.Vec{X: math.Cos(t) * distance, Z: math.Sin(t) * distance}
		pts[i] = rot.Rotate(flat)
	}
	return pts
}

// Circle returns points+1 vertices around a circle of radius r in the XZ plane,
// with the first vertex repeated at the end. Used for fans and strips.
func Circle(r float64, points int) []r3.Vec {
	if points < 3 {
		points = 3
	}
	pts := make([]r3.Vec, points+1)
	for i := 0; i <= points; i++ {
		a := 2 * math.Pi * float64(i) / float64(points)
		pts[i] = r3.Vec{X: math.Cos(a) * r, Z: math.Sin(a) * r}
	}
	return pts
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
