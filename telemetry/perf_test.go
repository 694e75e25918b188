package telemetry

import (
	"testing"
	"time"
)

// fakeClock advances by a fixed step on every reading.
type fakeClock struct {
	t    time.Time
	step time.Duration
}

func (c *fakeClock) now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)
	clk := &fakeClock{t: time.Unix(0, 0), step: 100 * time.Microsecond}
	pc.now = clk.now

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseInput)
		pc.StartPhase(PhaseSimulate)
		pc.StartPhase(PhaseCompose)
		pc.StartPhase(PhaseRender)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.Samples != 5 {
		t.Errorf("expected 5 samples, got %d", stats.Samples)
	}
	// Six clock readings per tick: five steps between start and end.
	if stats.AvgTickDuration != 500*time.Microsecond {
		t.Errorf("expected 500us ticks, got %v", stats.AvgTickDuration)
	}
	if stats.StdTickDuration != 0 {
		t.Errorf("expected zero spread, got %v", stats.StdTickDuration)
	}
	for _, phase := range Phases {
		if stats.PhaseAvg[phase] != 100*time.Microsecond {
			t.Errorf("%s: expected 100us, got %v", phase, stats.PhaseAvg[phase])
		}
		if stats.PhasePct[phase] != 20 {
			t.Errorf("%s: expected 20%%, got %v", phase, stats.PhasePct[phase])
		}
	}
	if stats.FPS <= 0 {
		t.Error("expected frame rate after several ticks")
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)

	for i := 0; i < 10; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseSimulate)
		pc.EndTick()
	}

	if stats := pc.Stats(); stats.Samples != 5 {
		t.Errorf("expected window of 5 samples, got %d", stats.Samples)
	}
}

func TestPerfCollector_Empty(t *testing.T) {
	pc := NewPerfCollector(0)
	stats := pc.Stats()

	if stats.AvgTickDuration != 0 || stats.Samples != 0 {
		t.Errorf("expected empty stats, got %+v", stats)
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("maps should be initialized")
	}
}

func TestFrameRecordWithTimings(t *testing.T) {
	s := PerfSample{
		TickDuration: 3 * time.Millisecond,
		Phases: map[string]time.Duration{
			PhaseSimulate: 40 * time.Microsecond,
			PhaseRender:   2 * time.Millisecond,
		},
	}
	r := FrameRecord{Tick: 7}.WithTimings(s)
	if r.Tick != 7 || r.TickUS != 3000 || r.SimulateUS != 40 || r.RenderUS != 2000 || r.InputUS != 0 {
		t.Errorf("unexpected record %+v", r)
	}
}
