package clock

import (
	"math/rand"
	"time"
)

// Population sizes the particle field, one slot per particle.
type Population struct {
	Background int
	Hour       int
	Minute     int
}

// Total returns the number of slots across all types.
func (p Population) Total() int {
	return p.Background + p.Hour + p.Minute
}

// DefaultPopulation matches the slot counts of the reference clock face.
var DefaultPopulation = Population{Background: 1000, Hour: 100, Minute: 100}

// Config is the simulation configuration shared by every particle and
// renderer of one clock. Particles never modify it, except for drawing from Rand.
type Config struct {
	Rand    *rand.Rand
	Palette Palette

	// Informational counts. The field is sized by Population.
	MaxCount    int
	HourCount   int
	MinuteCount int

	Population Population

	Fade       bool    // apply particle alpha when drawing
	Turbulence float64 // perlin steering of background particles, radians; 0 disables
}

// NewConfig returns a Config with default knobs. A nil rng is replaced by
// one seeded from the current time.
func NewConfig(rng *rand.Rand) *Config {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Config{
		Rand:        rng,
		Palette:     Adrift,
		MaxCount:    100,
		HourCount:   50,
		MinuteCount: 100,
		Population:  DefaultPopulation,
		Fade:        true,
	}
}

// RandRange returns a uniform value in [lo, hi). It panics when hi < lo.
func (c *Config) RandRange(lo, hi float64) float64 {
	if hi < lo {
		panic("clock: invalid random range")
	}
	return lo + c.Rand.Float64()*(hi-lo)
}
