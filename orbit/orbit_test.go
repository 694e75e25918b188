package orbit

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func nearVec(a, b r3.Vec, tol float64) bool {
	return near(a.X, b.X, tol) && near(a.Y, b.Y, tol) && near(a.Z, b.Z, tol)
}

func TestAdvanceStaysInRange(t *testing.T) {
	speeds := []float64{0.80, 0.55, 0.10, 7.3, 359.9, -0.4, -721}
	for _, s := range speeds {
		a := 0.0
		for i := 0; i < 5000; i++ {
			a = Advance(a, s, false)
			if a < 0 || a >= 360 {
				t.Fatalf("speed %v: angle %v out of [0,360) after %d ticks", s, a, i+1)
			}
		}
	}
}

func TestAdvancePaused(t *testing.T) {
	if got := Advance(42, 0.8, true); got != 42 {
		t.Errorf("paused advance changed angle: %v", got)
	}
}

func TestAdvanceMercuryHundredTicks(t *testing.T) {
	a := 0.0
	for i := 0; i < 100; i++ {
		a = Advance(a, 0.80, false)
	}
	if !near(a, 80.0, 1e-9) {
		t.Errorf("expected 80.0 after 100 ticks, got %v", a)
	}
}

func TestWrap(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{360, 0},
		{361, 1},
		{-1, 359},
		{-1e-15, 0},
		{720.5, 0.5},
	}
	for _, tc := range cases {
		got := Wrap(tc.in)
		if !near(got, tc.want, 1e-9) || got >= 360 {
			t.Errorf("Wrap(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestPositionFlatOrbitHasZeroY(t *testing.T) {
	for a := 0.0; a < 360; a += 0.37 {
		p := Position(a, 22, 0)
		if p.Y != 0 {
			t.Fatalf("angle %v: expected Y exactly 0, got %v", a, p.Y)
		}
	}
}

func TestPositionTilted(t *testing.T) {
	// At 90 degrees the body sits on +Z of its flat orbit; tilting by 30 lifts it
	// to y = -d*sin(30), z = d*cos(30).
	p := Position(90, 10, 30)
	want := r3.Vec{X: 0, Y: -5, Z: 10 * math.Cos(math.Pi/6)}
	if !nearVec(p, want, 1e-9) {
		t.Errorf("Position(90,10,30) = %+v, want %+v", p, want)
	}

	// Distance from the sun is preserved by the tilt.
	for a := 0.0; a < 360; a += 15 {
		if n := r3.Norm(Position(a, 44, -2.5)); !near(n, 44, 1e-9) {
			t.Errorf("angle %v: |p| = %v, want 44", a, n)
		}
	}
}

func TestSatellite(t *testing.T) {
	parent := r3.Vec{X: 10, Y: 1, Z: -3}
	got := Satellite(parent, 18, 1.8)
	// satellite angle 90, distance 5.4, no tilt
	want := r3.Vec{X: 10, Y: 1, Z: -3 + 5.4}
	if !nearVec(got, want, 1e-9) {
		t.Errorf("Satellite = %+v, want %+v", got, want)
	}
	if off := SatelliteOffset(18, 1.8); off.Y != 0 {
		t.Errorf("satellite offset should stay in parent plane, got Y=%v", off.Y)
	}
}

func TestRingBand(t *testing.T) {
	in, out := RingBand(3.4)
	if !near(in, 5.44, 1e-12) || !near(out, 8.16, 1e-12) {
		t.Errorf("RingBand(3.4) = %v, %v", in, out)
	}
}

func TestSpin(t *testing.T) {
	if got := Spin(150); !near(got, 90, 1e-9) {
		t.Errorf("Spin(150) = %v, want 90", got)
	}
}

func TestLoopMatchesPosition(t *testing.T) {
	const segments = 240
	pts := Loop(35, -1.0, segments)
	if len(pts) != segments {
		t.Fatalf("expected %d points, got %d", segments, len(pts))
	}
	for i, p := range pts {
		angle := 360 * float64(i) / segments
		want := Position(angle, 35, -1.0)
		if !nearVec(p, want, 1e-9) {
			t.Fatalf("point %d = %+v, want %+v", i, p, want)
		}
	}
}

func TestCircleClosed(t *testing.T) {
	pts := Circle(11, 360)
	if len(pts) != 361 {
		t.Fatalf("expected 361 vertices, got %d", len(pts))
	}
	if !nearVec(pts[0], pts[360], 1e-9) {
		t.Errorf("circle not closed: %+v vs %+v", pts[0], pts[360])
	}
}
