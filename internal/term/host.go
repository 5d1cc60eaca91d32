package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jonboulle/clockwork"

	"github.com/olivierh59500/particle-clock-go/internal/clock"
	"github.com/olivierh59500/particle-clock-go/internal/log"
	"github.com/olivierh59500/particle-clock-go/internal/particle"
	"github.com/olivierh59500/particle-clock-go/internal/progress"
	"github.com/olivierh59500/particle-clock-go/internal/render"
)

// Host runs the clock on a tcell screen.
type Host struct {
	screen   tcell.Screen
	canvas   *Canvas
	field    *particle.Field
	renderer *render.Renderer
	source   progress.Source
	clock    clockwork.Clock
	interval time.Duration

	// OnFrame, if set, is called with the frame time after each frame.
	OnFrame func(now time.Time)
}

// NewHost wires a host to an initialized screen.
func NewHost(screen tcell.Screen, cfg *clock.Config, src progress.Source, clk clockwork.Clock, scale float64, fps int) *Host {
	if fps <= 0 {
		fps = 30
	}
	cols, rows := screen.Size()
	return &Host{
		screen:   screen,
		canvas:   NewCanvas(cols, rows, scale),
		field:    particle.NewField(cfg),
		renderer: render.NewRenderer(cfg),
		source:   src,
		clock:    clk,
		interval: time.Second / time.Duration(fps),
	}
}

// Frame advances and paints one frame.
func (h *Host) Frame() {
	now := h.clock.Now()
	size := h.canvas.Size()

	h.field.Advance(h.source.Next(), now, size)
	h.renderer.Draw(h.canvas, h.field, now, size)
	h.canvas.Flush(h.screen)
	h.screen.Show()

	if h.OnFrame != nil {
		h.OnFrame(now)
	}
}

// Run draws frames until ctx is done or the user presses Esc, q or Ctrl-C.
func (h *Host) Run(ctx context.Context) error {
	ticker := h.clock.NewTicker(h.interval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	h.Frame()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !h.handle(ev) {
				return nil
			}
		case <-ticker.Chan():
			h.Frame()
		}
	}
}

func (h *Host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
			return false
		}
	case *tcell.EventResize:
		cols, rows := h.screen.Size()
		h.canvas.Resize(cols, rows)
		h.screen.Sync()
		log.Debugw("terminal resized", "cols", cols, "rows", rows)
	}
	return true
}
