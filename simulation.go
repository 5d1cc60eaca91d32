package main

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jonboulle/clockwork"

	"github.com/olivierh59500/particle-clock-go/internal/clock"
	"github.com/olivierh59500/particle-clock-go/internal/log"
	"github.com/olivierh59500/particle-clock-go/internal/particle"
	"github.com/olivierh59500/particle-clock-go/internal/progress"
	"github.com/olivierh59500/particle-clock-go/internal/render"
	"github.com/olivierh59500/particle-clock-go/internal/tick"
)

// statsEvery is the number of ticks between debug frame logs
const statsEvery = 600

// Simulation is the ebiten game hosting one clock face
type Simulation struct {
	Width, Height float64
	Config        *clock.Config
	Field         *particle.Field
	Renderer      *render.Renderer
	Progress      progress.Source
	Clock         clockwork.Clock
	Ticker        *tick.Ticker // optional per-second click
	TickCount     int
	now           time.Time
}

// NewSimulation creates a new clock simulation instance
func NewSimulation(width, height float64, cfg *clock.Config, src progress.Source, clk clockwork.Clock) *Simulation {
	return &Simulation{
		Width:    width,
		Height:   height,
		Config:   cfg,
		Field:    particle.NewField(cfg),
		Renderer: render.NewRenderer(cfg),
		Progress: src,
		Clock:    clk,
		now:      clk.Now(),
	}
}

// Update is called each tick by Ebitengine
func (s *Simulation) Update() error {
	s.now = s.Clock.Now()
	s.Field.Advance(s.Progress.Next(), s.now, s.size())

	if s.Ticker != nil {
		if _, err := s.Ticker.Observe(s.now); err != nil {
			log.Errorw("tick sound failed, disabling", "error", err)
			s.Ticker = nil
		}
	}

	s.TickCount++
	if s.TickCount%statsEvery == 0 {
		log.Debugw("frame", "ticks", s.TickCount, "particles", s.Field.Len(), "width", s.Width, "height", s.Height)
	}
	return nil
}

// Draw is called each frame by Ebitengine
func (s *Simulation) Draw(screen *ebiten.Image) {
	s.Renderer.Draw(imageCanvas{screen}, s.Field, s.now, s.size())
}

// Layout follows the window size so the clock stays centered when resized
func (s *Simulation) Layout(outsideWidth, outsideHeight int) (int, int) {
	s.Width = float64(outsideWidth)
	s.Height = float64(outsideHeight)
	return outsideWidth, outsideHeight
}

func (s *Simulation) size() clock.Size {
	return clock.Size{W: s.Width, H: s.Height}
}

// imageCanvas draws render commands with ebiten's vector package
type imageCanvas struct {
	dst *ebiten.Image
}

func (c imageCanvas) Fill(col color.Color) {
	c.dst.Fill(col)
}

func (c imageCanvas) FillCircle(cx, cy, r float64, col color.Color) {
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), col, true)
}

func (c imageCanvas) StrokeCircle(cx, cy, r, width float64, col color.Color) {
	vector.StrokeCircle(c.dst, float32(cx), float32(cy), float32(r), float32(width), col, true)
}
