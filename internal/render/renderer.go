package render

import (
	"time"

	"github.com/olivierh59500/particle-clock-go/internal/clock"
	"github.com/olivierh59500/particle-clock-go/internal/particle"
)

// Clock face constants
const (
	BorderWidth      = 10.0
	MinuteTicks      = 60
	HourTickRadius   = 12.0
	MinuteTickRadius = 6.0
	TickStrokeWidth  = 1.0
	SecondDotRadius  = 8.0
)

// Renderer paints the clock face around a particle field.
type Renderer struct {
	cfg *clock.Config
}

// NewRenderer creates a renderer bound to cfg's palette.
func NewRenderer(cfg *clock.Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// Draw paints one frame. Later calls land on top: background, particles by
// type, border, minute ticks, second hand. Degenerate sizes draw nothing.
func (r *Renderer) Draw(c Canvas, field *particle.Field, now time.Time, size clock.Size) {
	if size.Degenerate() {
		return
	}
	pal := r.cfg.Palette

	c.Fill(pal.Background)
	if field != nil {
		field.Draw(c)
	}

	cx, cy := size.Center()
	c.StrokeCircle(cx, cy, size.Radius(clock.BorderRadius), BorderWidth, pal.Border)

	r.drawTicks(c, size)

	x, y := clock.SecondHand(now, size)
	c.FillCircle(x, y, SecondDotRadius, pal.Handle)
}

func (r *Renderer) drawTicks(c Canvas, size clock.Size) {
	cx, cy := size.Center()
	radius := size.Radius(clock.TickRadius)
	handle := r.cfg.Palette.Handle
	for m := 0; m < MinuteTicks; m++ {
		x, y := clock.Polar(cx, cy, radius, clock.TickAngle(m))
		if IsHourTick(m) {
			c.FillCircle(x, y, HourTickRadius, handle)
			continue
		}
		c.StrokeCircle(x, y, MinuteTickRadius, TickStrokeWidth, handle)
	}
}

// IsHourTick reports whether minute tick m marks an hour.
func IsHourTick(m int) bool {
	return m%5 == 0
}
