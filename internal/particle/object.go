package particle

import (
	"image/color"
	"math"
	"time"

	"github.com/olivierh59500/particle-clock-go/internal/clock"
)

// Particle constants
const (
	Uninitialized = -1.0 // alpha of a particle that has never spawned
	SpawnJitter   = 10.0 // max spawn center offset per axis
	FilledChance  = 0.7
	MinSpeed      = 0.2
	SpeedScale    = 4.0
	StrokeWidth   = 1.0
)

// Params is the mutable animation state of one particle.
type Params struct {
	X, Y             float64 // location in canvas units
	OriginX, OriginY float64 // jittered spawn center
	Alpha            float64 // [0,1], Uninitialized before the first spawn
	Filled           bool
	Color            color.NRGBA
	Size             float64 // diameter
	Angle            float64 // direction of travel, radians
	ProgressModifier float64 // reserved speed scalar in [1,2]
}

// Painter receives particle draw calls.
type Painter interface {
	FillCircle(cx, cy, r float64, c color.Color)
	StrokeCircle(cx, cy, r, width float64, c color.Color)
}

// Object is one simulated particle. Its type never changes; Params is
// rewritten on every spawn.
type Object struct {
	Type   Type
	Config *clock.Config
	Params Params
}

// NewObject returns a particle in the uninitialized state.
func NewObject(t Type, cfg *clock.Config) Object {
	return Object{
		Type:   t,
		Config: cfg,
		Params: Params{X: -1, Y: -1, Alpha: Uninitialized},
	}
}

// Spawned reports whether the particle has been randomized at least once.
func (o *Object) Spawned() bool {
	return o.Params.Alpha != Uninitialized
}

// Randomize respawns the particle inside its annulus around a jittered
// canvas center, aimed along the angle anchored to now.
func (o *Object) Randomize(now time.Time, size clock.Size) {
	cfg := o.Config
	tu := o.Type.Tuning()

	offset := cfg.RandRange(tu.StartAngleOffset, tu.EndAngleOffset)
	var angle float64
	switch o.Type {
	case Hour:
		angle = clock.HourMinuteAngle(now)
	case Minute:
		angle = clock.MinuteAngle(now)
	default:
		angle = clock.HourMinuteAngle(now) + offset
	}

	cx, cy := size.Center()
	ox := cx + cfg.RandRange(-SpawnJitter, SpawnJitter)
	oy := cy + cfg.RandRange(-SpawnJitter, SpawnJitter)
	radius := math.Max(0, math.Min(ox, oy))
	length := cfg.RandRange(tu.MinLength*radius, tu.MaxLength*radius)

	col := cfg.Palette.Handle
	if o.Type == Background && len(cfg.Palette.Main) > 0 {
		col = cfg.Palette.Main[cfg.Rand.Intn(len(cfg.Palette.Main))]
	}

	filled := cfg.Rand.Float64() < FilledChance
	alpha := math.Max(0, cfg.Rand.Float64())
	diameter := cfg.RandRange(tu.MinSize, tu.MaxSize)
	modifier := cfg.RandRange(1, 2)

	x, y := clock.Polar(ox, oy, length, angle)
	o.Params = Params{
		X:                x,
		Y:                y,
		OriginX:          ox,
		OriginY:          oy,
		Alpha:            alpha,
		Filled:           filled,
		Color:            col,
		Size:             diameter,
		Angle:            angle,
		ProgressModifier: modifier,
	}
}

// Animate advances the particle one frame. progress is 1 at the start of
// the driver cycle and falls toward 0; steer is added to the heading for
// this step only.
func (o *Object) Animate(progress float64, now time.Time, size clock.Size, steer float64) {
	if !o.Spawned() {
		o.Randomize(now, size)
		o.Params.Alpha = 0
		return
	}

	tu := o.Type.Tuning()
	p := &o.Params

	speed := math.Max(MinSpeed, progress) * SpeedScale
	heading := p.Angle + steer
	newX := p.X + speed*math.Cos(heading)
	newY := p.Y + speed*math.Sin(heading)

	cx, cy := size.Center()
	distance := math.Hypot(newX-cx, newY-cy)
	containment := size.HalfMin() * tu.MaxLength
	inside := distance < containment

	normalized := 0.0
	if containment > 0 {
		normalized = distance / containment
	}

	p.Alpha = tu.nextAlpha(normalized, p.Alpha, o.Config.Rand.Float64)

	if !inside {
		o.Randomize(now, size)
		o.Params.Alpha = 0
		return
	}
	p.X, p.Y = newX, newY
}

// nextAlpha applies the alpha policy for a particle at the given
// normalized distance from the center. rnd is only drawn when a hidden
// particle becomes visible again.
func (tu Tuning) nextAlpha(normalized, alpha float64, rnd func() float64) float64 {
	switch {
	case normalized-tu.MinLength <= 0:
		return 0
	case alpha == 0:
		return rnd()
	case normalized < tu.MaxLength:
		return alpha
	case tu.MaxLength < 1:
		return clamp01((1 - normalized) / (1 - tu.MaxLength))
	}
	return alpha
}

// Draw paints the particle as a filled disc or a thin ring.
func (o *Object) Draw(p Painter, fade bool) {
	if !o.Spawned() {
		return
	}
	c := o.Params.Color
	if fade {
		c = clock.WithAlpha(c, o.Params.Alpha)
	}
	r := o.Params.Size / 2
	if o.Params.Filled {
		p.FillCircle(o.Params.X, o.Params.Y, r, c)
		return
	}
	p.StrokeCircle(o.Params.X, o.Params.Y, r, StrokeWidth, c)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
