package telemetry

import (
	"log/slog"
	"time"
)

// Phase names for one viewer frame.
const (
	PhaseInput    = "input"
	PhaseSimulate = "simulate"
	PhaseCompose  = "compose"
	PhaseRender   = "render"
)

// Phases lists the frame phases in execution order.
var Phases = []string{PhaseInput, PhaseSimulate, PhaseCompose, PhaseRender}

// PerfSample holds timing data for a single tick.
type PerfSample struct {
	TickDuration time.Duration
	Phases       map[string]time.Duration
}

// PerfCollector tracks performance metrics over a rolling window.
type PerfCollector struct {
	windowSize    int
	samples       []PerfSample
	writeIndex    int
	sampleCount   int
	currentPhases map[string]time.Duration
	tickStart     time.Time
	phaseStart    time.Time
	lastPhase     string

	// Frame timing
	lastFrameTime time.Time
	frameDuration time.Duration

	now func() time.Time
}

// NewPerfCollector creates a new performance collector.
// windowSize: number of ticks to average over (e.g., 60 for 1 second at 60fps).
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		windowSize:    windowSize,
		samples:       make([]PerfSample, windowSize),
		currentPhases: make(map[string]time.Duration),
		now:           time.Now,
	}
}

// StartTick begins timing a new tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = p.now()
	p.currentPhases = make(map[string]time.Duration)
	p.lastPhase = ""
}

// StartPhase begins timing a specific phase, ending the previous one.
func (p *PerfCollector) StartPhase(phase string) {
	now := p.now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}
	p.phaseStart = now
	p.lastPhase = phase
}

// EndTick finishes timing the current tick and records the sample.
func (p *PerfCollector) EndTick() PerfSample {
	now := p.now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}

	sample := PerfSample{
		TickDuration: now.Sub(p.tickStart),
		Phases:       p.currentPhases,
	}

	p.samples[p.writeIndex] = sample
	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.sampleCount < p.windowSize {
		p.sampleCount++
	}

	if !p.lastFrameTime.IsZero() {
		p.frameDuration = now.Sub(p.lastFrameTime)
	}
	p.lastFrameTime = now
	return sample
}

// PerfStats holds aggregated performance statistics.
type PerfStats struct {
	Samples int

	AvgTickDuration time.Duration
	StdTickDuration time.Duration
	MinTickDuration time.Duration
	MaxTickDuration time.Duration

	// Phase breakdown (average durations)
	PhaseAvg map[string]time.Duration

	// Phase percentages of total tick time
	PhasePct map[string]float64

	FrameDuration time.Duration
	FPS           float64
}

// Stats computes aggregated statistics over the current window.
func (p *PerfCollector) Stats() PerfStats {
	var fps float64
	if p.frameDuration > 0 {
		fps = float64(time.Second) / float64(p.frameDuration)
	}

	stats := PerfStats{
		Samples:       p.sampleCount,
		PhaseAvg:      make(map[string]time.Duration),
		PhasePct:      make(map[string]float64),
		FrameDuration: p.frameDuration,
		FPS:           fps,
	}
	if p.sampleCount == 0 {
		return stats
	}

	ticks := make([]float64, p.sampleCount)
	phaseValues := make(map[string][]float64)
	for i := 0; i < p.sampleCount; i++ {
		s := p.samples[i]
		ticks[i] = float64(s.TickDuration)
		for phase, dur := range s.Phases {
			phaseValues[phase] = append(phaseValues[phase], float64(dur))
		}
	}

	sum := Summarize(ticks)
	stats.AvgTickDuration = time.Duration(sum.Mean)
	stats.StdTickDuration = time.Duration(sum.Std)
	stats.MinTickDuration = time.Duration(sum.Min)
	stats.MaxTickDuration = time.Duration(sum.Max)

	for phase, values := range phaseValues {
		// Phases missing from some samples count as zero in those samples.
		var total float64
		for _, v := range values {
			total += v
		}
		avg := total / float64(p.sampleCount)
		stats.PhaseAvg[phase] = time.Duration(avg)
		if sum.Mean > 0 {
			stats.PhasePct[phase] = avg / sum.Mean * 100
		}
	}

	return stats
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("samples", s.Samples),
		slog.Int64("avg_tick_us", s.AvgTickDuration.Microseconds()),
		slog.Int64("std_tick_us", s.StdTickDuration.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTickDuration.Microseconds()),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Int("fps", int(s.FPS)))
	}
	for _, phase := range Phases {
		if pct, ok := s.PhasePct[phase]; ok && pct > 0.1 {
			attrs = append(attrs, slog.Float64(phase+"_pct", float64(int(pct*10))/10))
		}
	}
	return slog.GroupValue(attrs...)
}

// FrameRecord is one row of frames.csv.
type FrameRecord struct {
	Tick       int64   `csv:"tick"`
	Elapsed    float64 `csv:"elapsed"`
	Paused     bool    `csv:"paused"`
	Mode       string  `csv:"mode"`
	Target     int     `csv:"target"`
	TickUS     int64   `csv:"tick_us"`
	InputUS    int64   `csv:"input_us"`
	SimulateUS int64   `csv:"simulate_us"`
	ComposeUS  int64   `csv:"compose_us"`
	RenderUS   int64   `csv:"render_us"`
}

// WithTimings fills the timing columns from a sample.
func (r FrameRecord) WithTimings(s PerfSample) FrameRecord {
	r.TickUS = s.TickDuration.Microseconds()
	r.InputUS = s.Phases[PhaseInput].Microseconds()
	r.SimulateUS = s.Phases[PhaseSimulate].Microseconds()
	r.ComposeUS = s.Phases[PhaseCompose].Microseconds()
	r.RenderUS = s.Phases[PhaseRender].Microseconds()
	return r
}
