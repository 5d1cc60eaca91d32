package particle

import (
	"image/color"
	"math"
	"testing"

	"github.com/olivierh59500/particle-clock-go/internal/clock"
)

func TestNewFieldPopulation(t *testing.T) {
	cfg := newTestConfig(1)
	f := NewField(cfg)

	if f.Len() != 1200 {
		t.Errorf("Expected 1200 slots, got %d", f.Len())
	}
	want := map[Type]int{Background: 1000, Hour: 100, Minute: 100}
	for typ, n := range want {
		slots := f.Of(typ)
		if len(slots) != n {
			t.Errorf("Expected %d %s slots, got %d", n, typ, len(slots))
		}
		for _, o := range slots {
			if o.Type != typ {
				t.Fatalf("Slot of type %s found in %s span", o.Type, typ)
			}
		}
	}
}

func TestNewFieldIgnoresNegativeCounts(t *testing.T) {
	cfg := newTestConfig(1)
	cfg.Population = clock.Population{Background: -3, Hour: 2, Minute: 0}
	f := NewField(cfg)
	if f.Len() != 2 || len(f.Of(Background)) != 0 {
		t.Errorf("Expected only 2 hour slots, got %d total", f.Len())
	}
}

func TestFieldAdvanceSpawnsAndMoves(t *testing.T) {
	cfg := newTestConfig(12)
	cfg.Population = clock.Population{Background: 20, Hour: 5, Minute: 5}
	f := NewField(cfg)

	f.Advance(0, testTime, testSize)
	for _, typ := range Types {
		for _, o := range f.Of(typ) {
			if !o.Spawned() {
				t.Fatalf("Expected every %s particle to spawn on the first frame", typ)
			}
		}
	}

	for frame := 0; frame < 240; frame++ {
		f.Advance(float64(frame%60)/60, testTime, testSize)
		for _, typ := range Types {
			limit := testSize.HalfMin() * typ.Tuning().MaxLength
			for _, o := range f.Of(typ) {
				d := math.Hypot(o.Params.X-200, o.Params.Y-200)
				if d >= limit+SpawnJitter*math.Sqrt2+typ.Tuning().MaxLength*SpawnJitter {
					t.Fatalf("%s particle escaped containment: %v", typ, d)
				}
			}
		}
	}
}

func TestFieldAdvanceInvertsTick(t *testing.T) {
	cfg := newTestConfig(3)
	cfg.Population = clock.Population{Minute: 1}
	f := NewField(cfg)
	f.Advance(0, testTime, testSize)

	o := &f.Of(Minute)[0]
	o.Params.X, o.Params.Y, o.Params.Angle, o.Params.Alpha = 250, 200, 0, 0.5

	// tick 0 means progress 1: full speed.
	f.Advance(0, testTime, testSize)
	if math.Abs(o.Params.X-254) > 1e-9 {
		t.Errorf("Expected x 254 at tick 0, got %v", o.Params.X)
	}

	// tick 1 means progress 0: floor speed.
	f.Advance(1, testTime, testSize)
	if math.Abs(o.Params.X-254.8) > 1e-9 {
		t.Errorf("Expected x 254.8 at tick 1, got %v", o.Params.X)
	}
}

func TestFieldAdvanceDegenerateIsNoop(t *testing.T) {
	cfg := newTestConfig(3)
	cfg.Population = clock.Population{Background: 3}
	f := NewField(cfg)
	f.Advance(0.5, testTime, clock.Size{W: 0, H: 0})
	for _, o := range f.Of(Background) {
		if o.Spawned() {
			t.Fatal("Expected particles to stay uninitialized on a degenerate canvas")
		}
	}
}

func TestFieldDrawOrder(t *testing.T) {
	cfg := newTestConfig(21)
	cfg.Population = clock.Population{Background: 3, Hour: 2, Minute: 2}
	f := NewField(cfg)
	f.Advance(0, testTime, testSize)

	var p orderPainter
	f.Draw(&p)
	if len(p.colors) != 7 {
		t.Fatalf("Expected 7 draws, got %d", len(p.colors))
	}
	for i, c := range p.colors[3:] {
		if c.R != cfg.Palette.Handle.R || c.G != cfg.Palette.Handle.G || c.B != cfg.Palette.Handle.B {
			t.Errorf("Draw %d: expected handle color after background particles, got %v", i+3, c)
		}
	}
}

func TestFieldTurbulenceSteersBackground(t *testing.T) {
	calm := newTestConfig(30)
	calm.Population = clock.Population{Background: 50}
	windy := newTestConfig(30)
	windy.Population = clock.Population{Background: 50}
	windy.Turbulence = 1.5

	a, b := NewField(calm), NewField(windy)
	if a.noise != nil || b.noise == nil {
		t.Fatal("Expected noise only when turbulence is enabled")
	}

	seconds := float64(testTime.UnixMilli()%noisePeriod) / 1000
	speed := float64(SpeedScale) // tick 0 is full progress

	for _, tc := range []struct {
		name  string
		field *Field
	}{{"Calm", a}, {"Windy", b}} {
		t.Run(tc.name, func(t *testing.T) {
			f := tc.field
			f.Advance(0, testTime, testSize) // spawn
			before := append([]Object(nil), f.Of(Background)...)
			f.Advance(0, testTime, testSize)

			moved, steered := 0, 0
			for i, o := range f.Of(Background) {
				prev := before[i].Params
				if math.Abs(math.Hypot(o.Params.X-prev.X, o.Params.Y-prev.Y)-speed) > 1e-9 {
					continue // respawned
				}
				moved++
				if o.Params.Angle != prev.Angle {
					t.Errorf("Particle %d: steering changed heading %v to %v", i, prev.Angle, o.Params.Angle)
				}
				heading := prev.Angle + f.steer(&before[i], seconds)
				wantX := prev.X + speed*math.Cos(heading)
				wantY := prev.Y + speed*math.Sin(heading)
				if math.Abs(o.Params.X-wantX) > 1e-9 || math.Abs(o.Params.Y-wantY) > 1e-9 {
					t.Errorf("Particle %d: expected (%v, %v), got (%v, %v)", i, wantX, wantY, o.Params.X, o.Params.Y)
				}
				straightX := prev.X + speed*math.Cos(prev.Angle)
				straightY := prev.Y + speed*math.Sin(prev.Angle)
				if math.Hypot(o.Params.X-straightX, o.Params.Y-straightY) > 1e-6 {
					steered++
				}
			}

			if moved == 0 {
				t.Fatal("Expected some particles to move without respawning")
			}
			if f.noise == nil && steered != 0 {
				t.Errorf("Expected straight paths without turbulence, got %d steered", steered)
			}
			if f.noise != nil && steered == 0 {
				t.Errorf("Expected turbulence to bend some of %d paths", moved)
			}
		})
	}
}

type orderPainter struct {
	colors []color.NRGBA
}

func (p *orderPainter) FillCircle(cx, cy, r float64, c color.Color) {
	p.colors = append(p.colors, c.(color.NRGBA))
}

func (p *orderPainter) StrokeCircle(cx, cy, r, width float64, c color.Color) {
	p.colors = append(p.colors, c.(color.NRGBA))
}
