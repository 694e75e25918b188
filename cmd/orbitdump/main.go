// Package main steps the simulation without a window and writes body
// positions as CSV.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/orrery/config"
	"github.com/pthm-cable/orrery/orbit"
	"github.com/pthm-cable/orrery/sim"
	"github.com/pthm-cable/orrery/texture"
)

// tickSeconds is the wall-clock time fed to the simulation per step.
const tickSeconds = 1.0 / 60.0

// Sample is one body at one recorded tick.
type Sample struct {
	Tick     int64   `csv:"tick"`
	Elapsed  float64 `csv:"elapsed"`
	Body     string  `csv:"body"`
	Angle    float64 `csv:"angle"`
	X        float64 `csv:"x"`
	Y        float64 `csv:"y"`
	Z        float64 `csv:"z"`
	Spin     float64 `csv:"spin"`
	Textured bool    `csv:"textured"`
}

// dumpOptions controls a run.
type dumpOptions struct {
	Ticks    int
	Every    int
	Textures bool
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	ticks := flag.Int("ticks", 600, "Number of simulation ticks to run")
	every := flag.Int("every", 60, "Record a sample every N ticks")
	outPath := flag.String("out", "", "Output CSV file (empty = stdout)")
	textures := flag.Bool("textures", false, "Resolve textures from textures.dir and report them per body")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var w io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			slog.Error("failed to create output", "error", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	opts := dumpOptions{Ticks: *ticks, Every: *every, Textures: *textures}
	n, err := dump(cfg, opts, w, logger)
	if err != nil {
		slog.Error("dump failed", "error", err)
		os.Exit(1)
	}
	slog.Info("dump complete", "ticks", opts.Ticks, "samples", n, "out", *outPath)
}

// dump runs the simulation and writes samples, returning how many were written.
func dump(cfg *config.Config, opts dumpOptions, w io.Writer, log *slog.Logger) (int, error) {
	if opts.Ticks < 0 {
		return 0, fmt.Errorf("ticks must not be negative, got %d", opts.Ticks)
	}
	if opts.Every < 1 {
		opts.Every = 1
	}

	var refs []texture.Ref
	if opts.Textures {
		refs = texture.NewResolver(cfg.Textures.Dir, texture.FileLoader{}, log).ResolveAll(cfg.Derived.BodyNames)
	}

	state, err := sim.FromConfig(cfg, refs, log)
	if err != nil {
		return 0, err
	}

	var samples []Sample
	record := func() {
		snap := state.Snapshot()
		for _, b := range snap.Bodies {
			samples = append(samples, Sample{
				Tick:     snap.Tick,
				Elapsed:  snap.Clock.Elapsed,
				Body:     b.Name,
				Angle:    b.Angle,
				X:        b.Position.X,
				Y:        b.Position.Y,
				Z:        b.Position.Z,
				Spin:     b.Spin(),
				Textured: b.Texture.Valid(),
			})
			if b.Satellite {
				p := orbit.Satellite(b.Position, b.Angle, b.Radius)
				samples = append(samples, Sample{
					Tick:    snap.Tick,
					Elapsed: snap.Clock.Elapsed,
					Body:    b.Name + "/satellite",
					Angle:   orbit.Wrap(b.Angle * orbit.SatelliteAngleFactor),
					X:       p.X,
					Y:       p.Y,
					Z:       p.Z,
				})
			}
		}
	}

	record()
	for i := 1; i <= opts.Ticks; i++ {
		state.Step(float64(i)*tickSeconds, nil)
		if i%opts.Every == 0 {
			record()
		}
	}

	if err := gocsv.Marshal(samples, w); err != nil {
		return 0, fmt.Errorf("writing samples: %w", err)
	}
	return len(samples), nil
}
