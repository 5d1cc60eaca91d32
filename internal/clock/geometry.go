package clock

import (
	"math"
	"time"
)

// Radius fractions of min(halfWidth, halfHeight).
const (
	BorderRadius = 0.9
	TickRadius   = 0.95
	HandRadius   = 0.9
)

const oneMinuteRadians = math.Pi / 30

// Size is a canvas size in canvas units.
type Size struct {
	W, H float64
}

// Degenerate reports whether the size has no drawable area.
func (s Size) Degenerate() bool {
	return !(s.W > 0 && s.H > 0)
}

// Center returns the canvas center; zero for degenerate sizes.
func (s Size) Center() (float64, float64) {
	if s.Degenerate() {
		return 0, 0
	}
	return s.W / 2, s.H / 2
}

// HalfMin returns min(W/2, H/2), or 0 for degenerate sizes.
func (s Size) HalfMin() float64 {
	cx, cy := s.Center()
	return math.Min(cx, cy)
}

// Radius returns k * min(W/2, H/2).
func (s Size) Radius(k float64) float64 {
	return k * s.HalfMin()
}

// Polar returns the point at distance r from (cx, cy) along angle.
func Polar(cx, cy, r, angle float64) (float64, float64) {
	return cx + r*math.Cos(angle), cy + r*math.Sin(angle)
}

// SecondAngle returns the second hand angle, advancing smoothly within a second.
// Angles follow screen convention: 0 is +x, -π/2 is 12 o'clock.
func SecondAngle(now time.Time) float64 {
	frac := float64(now.UnixMilli()%1000) / 1000
	return -math.Pi/2 + (float64(now.Second())+frac)*oneMinuteRadians
}

// MinuteAngle returns the angle of the current minute, stepped per minute.
func MinuteAngle(now time.Time) float64 {
	return -math.Pi/2 + minuteFraction(now)*2*math.Pi
}

// HourMinuteAngle returns the hour angle advanced by the elapsed minutes.
// The advance is (mf*2π/12)*mf, not the conventional mf*2π/12.
func HourMinuteAngle(now time.Time) float64 {
	mf := minuteFraction(now)
	hourAngle := -math.Pi/2 + float64(now.Hour()%12)/12*2*math.Pi
	return hourAngle + (mf*2*math.Pi/12)*mf
}

// SecondHand returns the second hand dot position for the given canvas.
func SecondHand(now time.Time, size Size) (float64, float64) {
	cx, cy := size.Center()
	return Polar(cx, cy, size.Radius(HandRadius), SecondAngle(now))
}

// TickAngle returns the angle of minute tick m in [0,59].
func TickAngle(m int) float64 {
	return -math.Pi/2 + float64(m)*oneMinuteRadians
}

func minuteFraction(now time.Time) float64 {
	return float64(now.Minute()) / 60
}
