// Package progress supplies the repeating [0,1] value that drives the
// particle animation each frame.
package progress

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultPeriod is the length of one driver cycle.
const DefaultPeriod = time.Second

// Source yields the driver value for the next frame.
type Source interface {
	Next() float64
}

// Sawtooth ramps from 0 to 1 over each period and restarts, reading
// elapsed time from a clock.
type Sawtooth struct {
	clock  clockwork.Clock
	period time.Duration
	curve  Curve
	start  time.Time
}

// NewSawtooth starts a sawtooth at the clock's current time. A non-positive
// period falls back to DefaultPeriod; a nil curve is linear.
func NewSawtooth(c clockwork.Clock, period time.Duration, curve Curve) *Sawtooth {
	if period <= 0 {
		period = DefaultPeriod
	}
	if curve == nil {
		curve = Linear
	}
	return &Sawtooth{clock: c, period: period, curve: curve, start: c.Now()}
}

// Next returns the eased position within the current cycle.
func (s *Sawtooth) Next() float64 {
	elapsed := s.clock.Since(s.start)
	if elapsed < 0 {
		elapsed = 0
	}
	phase := float64(elapsed%s.period) / float64(s.period)
	return s.curve(phase)
}

// Sequence replays fixed values in a loop.
type Sequence struct {
	values []float64
	i      int
}

// NewSequence returns a Sequence over values. An empty sequence yields 0.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) Next() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.i]
	s.i = (s.i + 1) % len(s.values)
	return v
}
