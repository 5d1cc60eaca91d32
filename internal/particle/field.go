package particle

import (
	"time"

	"github.com/aquilax/go-perlin"

	"github.com/olivierh59500/particle-clock-go/internal/clock"
)

// Noise parameters for turbulence steering
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
	noiseScale   = 0.01      // canvas units to noise space
	noiseDrift   = 0.25      // noise space per second
	noisePeriod  = 3_600_000 // ms, keeps noise coordinates small
)

type span struct{ start, end int }

// Field owns every particle slot of one clock. Slots are stored by value
// and grouped by type in draw order: background, hour, minute.
type Field struct {
	cfg     *clock.Config
	objects []Object
	spans   [typeCount]span
	noise   *perlin.Perlin
}

// NewField allocates cfg.Population slots, all uninitialized.
func NewField(cfg *clock.Config) *Field {
	pop := cfg.Population
	counts := [typeCount]int{
		Background: max(0, pop.Background),
		Hour:       max(0, pop.Hour),
		Minute:     max(0, pop.Minute),
	}

	f := &Field{cfg: cfg}
	total := counts[Background] + counts[Hour] + counts[Minute]
	f.objects = make([]Object, 0, total)
	for _, t := range Types {
		start := len(f.objects)
		for i := 0; i < counts[t]; i++ {
			f.objects = append(f.objects, NewObject(t, cfg))
		}
		f.spans[t] = span{start, len(f.objects)}
	}

	if cfg.Turbulence != 0 {
		f.noise = perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, cfg.Rand.Int63())
	}
	return f
}

// Len returns the number of slots.
func (f *Field) Len() int {
	return len(f.objects)
}

// Of returns the slots of type t. The slice aliases the field's storage.
func (f *Field) Of(t Type) []Object {
	s := f.spans[t]
	return f.objects[s.start:s.end]
}

// Advance moves every particle one frame. tick is the driver value in [0,1];
// particles receive 1-tick so they move fastest at the start of a cycle.
// Degenerate sizes leave the field untouched.
func (f *Field) Advance(tick float64, now time.Time, size clock.Size) {
	if size.Degenerate() {
		return
	}
	progress := 1 - clamp01(tick)
	seconds := float64(now.UnixMilli()%noisePeriod) / 1000
	for i := range f.objects {
		o := &f.objects[i]
		o.Animate(progress, now, size, f.steer(o, seconds))
	}
}

// Draw paints every particle in type order.
func (f *Field) Draw(p Painter) {
	for i := range f.objects {
		f.objects[i].Draw(p, f.cfg.Fade)
	}
}

func (f *Field) steer(o *Object, seconds float64) float64 {
	if f.noise == nil || o.Type != Background || !o.Spawned() {
		return 0
	}
	n := f.noise.Noise3D(o.Params.X*noiseScale, o.Params.Y*noiseScale, seconds*noiseDrift)
	return f.cfg.Turbulence * n
}
