// Package tick plays a short click whenever the wall-clock second changes.
package tick

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Click parameters
const (
	SampleRate    = beep.SampleRate(44100)
	ClickDuration = 30 * time.Millisecond
)

// decay fades a stream linearly to silence over n samples.
type decay struct {
	streamer beep.Streamer
	pos, n   int
}

func (d *decay) Stream(samples [][2]float64) (int, bool) {
	n, ok := d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 0.0
		if d.pos < d.n {
			vol = float64(d.n-d.pos) / float64(d.n)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// Click builds one decaying sine burst at freq Hz with volume in (0,1].
func Click(rate beep.SampleRate, freq, volume float64) (beep.Streamer, error) {
	if volume <= 0 || volume > 1 {
		return nil, fmt.Errorf("click volume %v outside (0,1]", volume)
	}
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("can't build click tone: %w", err)
	}
	n := rate.N(ClickDuration)
	return &effects.Volume{
		Streamer: &decay{streamer: beep.Take(n, sine), n: n},
		Base:     2,
		Volume:   math.Log2(volume),
	}, nil
}

// Ticker emits a click the first time it observes each new second.
type Ticker struct {
	freq, volume float64
	play         func(beep.Streamer)
	last         int64
	started      bool
}

// NewTicker returns a Ticker handing clicks to play, typically speaker.Play.
func NewTicker(freq, volume float64, play func(beep.Streamer)) *Ticker {
	return &Ticker{freq: freq, volume: volume, play: play}
}

// Observe plays a click when now falls in a different second than the last
// observed instant. The first observation only primes the ticker.
func (t *Ticker) Observe(now time.Time) (bool, error) {
	sec := now.Unix()
	if !t.started {
		t.started, t.last = true, sec
		return false, nil
	}
	if sec == t.last {
		return false, nil
	}
	t.last = sec

	s, err := Click(SampleRate, t.freq, t.volume)
	if err != nil {
		return false, err
	}
	t.play(s)
	return true, nil
}
