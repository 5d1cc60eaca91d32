package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/olivierh59500/particle-clock-go/internal/clock"
	"github.com/olivierh59500/particle-clock-go/internal/particle"
	"github.com/olivierh59500/particle-clock-go/internal/progress"
	"github.com/olivierh59500/particle-clock-go/internal/render"
	"github.com/olivierh59500/particle-clock-go/internal/render/raster"
)

// SnapshotOptions controls a headless render
type SnapshotOptions struct {
	Width, Height int
	Frames        int // frames simulated before drawing
	TPS           int
	Start         time.Time
	Period        time.Duration
	Curve         progress.Curve
}

// Snapshot simulates opts.Frames frames on a fake clock and draws the last one
func Snapshot(cfg *clock.Config, opts SnapshotOptions) *raster.Canvas {
	if opts.TPS <= 0 {
		opts.TPS = 60
	}
	fc := clockwork.NewFakeClockAt(opts.Start)
	src := progress.NewSawtooth(fc, opts.Period, opts.Curve)
	field := particle.NewField(cfg)
	size := clock.Size{W: float64(opts.Width), H: float64(opts.Height)}
	step := time.Second / time.Duration(opts.TPS)

	for i := 0; i < opts.Frames; i++ {
		if i > 0 {
			fc.Advance(step)
		}
		field.Advance(src.Next(), fc.Now(), size)
	}

	canvas := raster.New(opts.Width, opts.Height)
	render.NewRenderer(cfg).Draw(canvas, field, fc.Now(), size)
	return canvas
}

// writeSnapshot renders a snapshot into a PNG file
func writeSnapshot(path string, cfg *clock.Config, opts SnapshotOptions) (err error) {
	canvas := Snapshot(cfg, opts)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if err := canvas.WritePNG(f); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
