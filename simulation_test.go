package main

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/olivierh59500/particle-clock-go/internal/clock"
	"github.com/olivierh59500/particle-clock-go/internal/log"
	"github.com/olivierh59500/particle-clock-go/internal/particle"
	"github.com/olivierh59500/particle-clock-go/internal/progress"
	"github.com/olivierh59500/particle-clock-go/internal/tick"
)

func newTestConfig() *clock.Config {
	cfg := clock.NewConfig(rand.New(rand.NewSource(1)))
	cfg.Population = clock.Population{Background: 40, Hour: 8, Minute: 8}
	return cfg
}

func TestSimulationUpdateAdvancesField(t *testing.T) {
	fc := clockwork.NewFakeClockAt(time.Date(2024, 3, 1, 10, 15, 30, 0, time.UTC))
	sim := NewSimulation(400, 400, newTestConfig(), progress.NewSequence(0, 0.25, 0.5), fc)

	for i := 0; i < 3; i++ {
		if err := sim.Update(); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		fc.Advance(time.Second / 60)
	}

	if sim.TickCount != 3 {
		t.Errorf("Expected 3 ticks, got %d", sim.TickCount)
	}
	for _, o := range sim.Field.Of(particle.Background) {
		if !o.Spawned() {
			t.Fatal("Expected all particles to spawn after Update")
		}
	}
}

func TestSimulationDropsFailingTicker(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log.Set(zap.New(core))
	defer log.Set(zap.NewNop())

	fc := clockwork.NewFakeClockAt(time.Date(2024, 3, 1, 10, 15, 30, 900*int(time.Millisecond), time.UTC))
	sim := NewSimulation(400, 400, newTestConfig(), progress.NewSequence(0), fc)
	played := 0
	// volume 0 cannot build a click
	sim.Ticker = tick.NewTicker(1200, 0, func(beep.Streamer) { played++ })

	for i := 0; i < 2; i++ {
		if err := sim.Update(); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		fc.Advance(200 * time.Millisecond)
	}

	if sim.Ticker != nil {
		t.Error("Expected failing ticker to be dropped")
	}
	if played != 0 {
		t.Errorf("Expected no clicks, got %d", played)
	}
	errs := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	if len(errs) != 1 {
		t.Fatalf("Expected 1 error entry, got %d", len(errs))
	}
	if errs[0].ContextMap()["error"] == nil {
		t.Errorf("Expected error field, got %+v", errs[0].ContextMap())
	}
}

func TestSimulationLayoutFollowsWindow(t *testing.T) {
	sim := NewSimulation(400, 400, newTestConfig(), progress.NewSequence(0), clockwork.NewFakeClock())
	w, h := sim.Layout(1024, 600)
	if w != 1024 || h != 600 {
		t.Errorf("Expected 1024x600, got %dx%d", w, h)
	}
	if sim.size() != (clock.Size{W: 1024, H: 600}) {
		t.Errorf("Expected simulation size to follow layout, got %+v", sim.size())
	}
}

func TestSnapshotIsDeterministic(t *testing.T) {
	opts := SnapshotOptions{
		Width:  160,
		Height: 120,
		Frames: 30,
		Start:  time.Date(2024, 3, 1, 10, 15, 30, 0, time.UTC),
		Period: time.Second,
	}

	a := Snapshot(newTestConfig(), opts).Image()
	b := Snapshot(newTestConfig(), opts).Image()
	if len(a.Pix) != 160*120*4 {
		t.Fatalf("Unexpected image size %d", len(a.Pix))
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("Snapshots differ at byte %d", i)
		}
	}
}

func TestWriteSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clock.png")
	opts := SnapshotOptions{Width: 64, Height: 64, Frames: 2, Start: time.Now(), Period: time.Second}
	if err := writeSnapshot(path, newTestConfig(), opts); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Errorf("Expected non-empty PNG, got %v %v", info, err)
	}

	if err := writeSnapshot(filepath.Join(t.TempDir(), "missing", "x.png"), newTestConfig(), opts); err == nil {
		t.Error("Expected error for missing directory")
	}
}
