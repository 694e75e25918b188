package game

import "github.com/pthm-cable/orrery/telemetry"

// recordFrame appends the frame to the trace and emits the periodic perf log.
func (g *Game) recordFrame(sample telemetry.PerfSample) {
	clock := g.state.Clock()
	cam := g.state.Camera()

	rec := telemetry.FrameRecord{
		Tick:    g.state.Tick(),
		Elapsed: clock.Elapsed,
		Paused:  g.state.Paused(),
		Mode:    cam.Mode.String(),
		Target:  cam.Target,
	}.WithTimings(sample)
	if err := g.output.WriteFrame(rec); err != nil {
		g.log.Warn("failed to write frame record", "error", err)
	}

	interval := g.cfg.Telemetry.LogIntervalSec
	if interval <= 0 || clock.Elapsed-g.lastPerfLog < interval {
		return
	}
	g.lastPerfLog = clock.Elapsed
	g.log.Info("perf", "tick", g.state.Tick(), "stats", g.perf.Stats())
}
