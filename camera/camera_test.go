package camera

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func near(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9
}

func TestNew(t *testing.T) {
	cam := New(DefaultParams(), 9, 2)

	if cam.Mode != GlobalOrbit {
		t.Errorf("expected global mode, got %v", cam.Mode)
	}
	if cam.Target != 2 {
		t.Errorf("expected target 2, got %d", cam.Target)
	}

	cam = New(DefaultParams(), 9, 42)
	if cam.Target != 0 {
		t.Errorf("expected out of range initial target to fall back to 0, got %d", cam.Target)
	}
}

func TestToggleKeepsTarget(t *testing.T) {
	cam := New(DefaultParams(), 9, 2)
	cam.Select(6)

	cam.ToggleFocus()
	if cam.Mode != Focus || cam.Target != 6 {
		t.Errorf("expected focus on 6, got mode=%v target=%d", cam.Mode, cam.Target)
	}
	cam.ToggleFocus()
	if cam.Mode != GlobalOrbit || cam.Target != 6 {
		t.Errorf("expected global with target kept, got mode=%v target=%d", cam.Mode, cam.Target)
	}
}

func TestSelectBounds(t *testing.T) {
	cam := New(DefaultParams(), 9, 2)
	if cam.Select(9) || cam.Select(-1) {
		t.Error("expected out of range selection to be rejected")
	}
	if cam.Target != 2 {
		t.Errorf("rejected selection changed target to %d", cam.Target)
	}
	if !cam.Select(8) || cam.Target != 8 {
		t.Errorf("expected selection of 8, got %d", cam.Target)
	}
}

func TestSelectInFocusKeepsAngle(t *testing.T) {
	cam := New(DefaultParams(), 9, 2)
	cam.ToggleFocus()
	for i := 0; i < 50; i++ {
		cam.Advance(false)
	}
	before := cam.FocusAngle

	cam.Select(4)

	if cam.FocusAngle != before {
		t.Errorf("focus angle reset from %v to %v", before, cam.FocusAngle)
	}
	target := r3.Vec{X: 35, Y: -0.3, Z: 4}
	v := cam.View(0, target)
	if v.Target != target {
		t.Errorf("expected look-at to track new target, got %+v", v.Target)
	}
}

func TestAdvanceOnlyActiveMode(t *testing.T) {
	cam := New(DefaultParams(), 9, 0)

	cam.Advance(false)
	if !near(cam.GlobalAngle, 0.20) || cam.FocusAngle != 0 {
		t.Errorf("global tick: got global=%v focus=%v", cam.GlobalAngle, cam.FocusAngle)
	}

	cam.ToggleFocus()
	cam.Advance(false)
	if !near(cam.GlobalAngle, 0.20) || !near(cam.FocusAngle, 0.06) {
		t.Errorf("focus tick: got global=%v focus=%v", cam.GlobalAngle, cam.FocusAngle)
	}

	cam.Advance(true)
	if !near(cam.FocusAngle, 0.06) {
		t.Errorf("paused advance moved focus angle to %v", cam.FocusAngle)
	}
}

func TestGlobalView(t *testing.T) {
	cam := New(DefaultParams(), 9, 0)
	cam.GlobalAngle = 90

	elapsed := math.Pi / 0.6 // sin(elapsed*0.3) = 1
	v := cam.View(elapsed, r3.Vec{X: 99})

	if !near(v.Eye.X, 0) || !near(v.Eye.Z, 180) {
		t.Errorf("expected eye on +Z at radius 180, got %+v", v.Eye)
	}
	if !near(v.Eye.Y, 95) {
		t.Errorf("expected eye height 80+15, got %v", v.Eye.Y)
	}
	if v.Target != (r3.Vec{}) {
		t.Errorf("global view should look at the origin, got %+v", v.Target)
	}
	if v.Up != (r3.Vec{Y: 1}) {
		t.Errorf("expected +Y up, got %+v", v.Up)
	}
}

func TestFocusView(t *testing.T) {
	cam := New(DefaultParams(), 9, 0)
	cam.ToggleFocus()
	cam.FocusAngle = 0

	target := r3.Vec{X: 22, Y: 1, Z: -3}
	v := cam.View(123, target)

	want := r3.Vec{X: 62, Y: 21, Z: -3}
	if !near(v.Eye.X, want.X) || !near(v.Eye.Y, want.Y) || !near(v.Eye.Z, want.Z) {
		t.Errorf("expected eye %+v, got %+v", want, v.Eye)
	}
	if v.Target != target {
		t.Errorf("expected look-at %+v, got %+v", target, v.Target)
	}
}

func TestInFront(t *testing.T) {
	v := View{Eye: r3.Vec{Z: 10}, Target: r3.Vec{}, Up: r3.Vec{Y: 1}}
	if !v.InFront(r3.Vec{X: 1}) {
		t.Error("origin side should be in front")
	}
	if v.InFront(r3.Vec{Z: 20}) {
		t.Error("point behind the eye should not be in front")
	}
}
