package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jonboulle/clockwork"

	"github.com/olivierh59500/particle-clock-go/internal/clock"
	"github.com/olivierh59500/particle-clock-go/internal/config"
	"github.com/olivierh59500/particle-clock-go/internal/log"
	"github.com/olivierh59500/particle-clock-go/internal/progress"
	"github.com/olivierh59500/particle-clock-go/internal/term"
	"github.com/olivierh59500/particle-clock-go/internal/tick"
)

func main() {
	cfgFile := flag.String("config", "clock.yaml", "Path to an optional config file")
	mode := flag.String("mode", "window", "Host to run: window, term or snapshot")
	out := flag.String("out", "clock.png", "Snapshot output file")
	frames := flag.Int("frames", 120, "Frames simulated before a snapshot is drawn")
	at := flag.String("at", "", "Snapshot wall-clock time, RFC3339 (default: now)")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	flag.Parse()

	if err := log.Init(*debug); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg, err := config.LoadOptional(*cfgFile)
	if err != nil {
		log.Fatalf("error reading config file: %v", err)
	}
	cc, err := cfg.ClockConfig()
	if err != nil {
		log.Fatalf("invalid clock config: %v", err)
	}
	log.Infow("starting particle clock",
		"mode", *mode,
		"palette", cc.Palette.Name,
		"particles", cc.Population.Total(),
	)

	switch *mode {
	case "window":
		err = runWindow(cfg, cc)
	case "term":
		err = runTerminal(cfg, cc, *debug)
	case "snapshot":
		err = runSnapshot(cfg, cc, *out, *frames, *at)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatalf("%s: %v", *mode, err)
	}
}

func runWindow(cfg *config.Config, cc *clock.Config) error {
	clk := clockwork.NewRealClock()
	src := progress.NewSawtooth(clk, cfg.Animation.Period, cfg.Curve())
	sim := NewSimulation(float64(cfg.Window.Width), float64(cfg.Window.Height), cc, src, clk)
	sim.Ticker = newTicker(cfg)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Window.TPS)

	return ebiten.RunGame(sim)
}

func runTerminal(cfg *config.Config, cc *clock.Config, debug bool) error {
	// stderr shares the terminal with the clock face
	log.Sync()
	if err := log.InitFile(debug, cfg.Terminal.LogFile); err != nil {
		return err
	}
	defer func() {
		log.Sync()
		_ = log.Init(debug)
	}()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("can't create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("can't initialize terminal screen: %w", err)
	}
	defer screen.Fini()

	clk := clockwork.NewRealClock()
	src := progress.NewSawtooth(clk, cfg.Animation.Period, cfg.Curve())
	host := term.NewHost(screen, cc, src, clk, cfg.Terminal.Scale, cfg.Terminal.FPS)
	if t := newTicker(cfg); t != nil {
		host.OnFrame = func(now time.Time) {
			if _, err := t.Observe(now); err != nil {
				log.Warnw("tick sound failed", "error", err)
			}
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := host.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func runSnapshot(cfg *config.Config, cc *clock.Config, out string, frames int, at string) error {
	start := time.Now()
	if at != "" {
		t, err := time.Parse(time.RFC3339, at)
		if err != nil {
			return fmt.Errorf("invalid -at time: %w", err)
		}
		start = t
	}

	opts := SnapshotOptions{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Frames: frames,
		TPS:    cfg.Window.TPS,
		Start:  start,
		Period: cfg.Animation.Period,
		Curve:  cfg.Curve(),
	}
	if err := writeSnapshot(out, cc, opts); err != nil {
		return err
	}
	log.Infow("snapshot written", "file", out, "frames", frames, "at", start.Format(time.RFC3339))
	return nil
}

// newTicker opens the speaker when the tick sound is enabled. Audio failures
// are logged and leave the clock silent.
func newTicker(cfg *config.Config) *tick.Ticker {
	if !cfg.Sound.Tick {
		return nil
	}
	if err := speaker.Init(tick.SampleRate, tick.SampleRate.N(time.Second/10)); err != nil {
		log.Warnw("audio initialization failed, tick disabled", "error", err)
		return nil
	}
	return tick.NewTicker(cfg.Sound.Frequency, cfg.Sound.Volume, func(s beep.Streamer) {
		speaker.Play(s)
	})
}
