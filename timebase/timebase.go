// Package timebase converts wall-clock time into the simulation clock.
package timebase

// IntroSeconds is how long the intro fade takes to reach full brightness.
const IntroSeconds = 2.0

// Clock is the per-tick view of elapsed time.
type Clock struct {
	// Elapsed is wall-clock seconds since the window opened. Never decreases.
	Elapsed float64
	// Intro is the fade-in multiplier in [0, 1].
	Intro float64
}

// Base produces monotonic clocks from raw wall-clock readings.
// It is not affected by pause.
type Base struct {
	last Clock
}

// Tick records a new wall-clock reading and returns the resulting clock.
// A reading earlier than a previous one keeps the previous elapsed time.
func (b *Base) Tick(nowSeconds float64) Clock {
	if nowSeconds > b.last.Elapsed {
		b.last.Elapsed = nowSeconds
	}
	b.last.Intro = IntroFactor(b.last.Elapsed)
	return b.last
}

// Last returns the most recent clock without advancing.
func (b *Base) Last() Clock {
	return b.last
}

// IntroFactor returns clamp(t/IntroSeconds, 0, 1).
func IntroFactor(t float64) float64 {
	f := t / IntroSeconds
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
