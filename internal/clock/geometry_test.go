package clock

import (
	"math"
	"testing"
	"time"
)

const eps = 1e-9

func TestSecondAngleIsContinuous(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 15, 0, 0, time.UTC)
	before := SecondAngle(base.Add(999 * time.Millisecond))
	after := SecondAngle(base.Add(1001 * time.Millisecond))

	want := 0.002 * math.Pi / 30
	if got := after - before; math.Abs(got-want) > eps {
		t.Errorf("Expected angle delta %v across second boundary, got %v", want, got)
	}
}

func TestSecondAngleAtTopOfMinute(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 15, 0, 0, time.UTC)
	if got := SecondAngle(now); math.Abs(got+math.Pi/2) > eps {
		t.Errorf("Expected -π/2 at second 0, got %v", got)
	}
}

func TestMinuteAngle(t *testing.T) {
	tests := []struct {
		name   string
		minute int
		want   float64
	}{
		{"Top", 0, -math.Pi / 2},
		{"Quarter", 15, 0},
		{"Half", 30, math.Pi / 2},
		{"ThreeQuarters", 45, math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Date(2024, 3, 1, 7, tt.minute, 42, 0, time.UTC)
			if got := MinuteAngle(now); math.Abs(got-tt.want) > eps {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestHourMinuteAngleCompoundFormula(t *testing.T) {
	tests := []struct {
		name         string
		hour, minute int
	}{
		{"Midnight", 0, 0},
		{"TenFifteen", 10, 15},
		{"AfternoonHalf", 15, 30},
		{"LateEvening", 23, 59},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Date(2024, 3, 1, tt.hour, tt.minute, 0, 0, time.UTC)
			mf := float64(tt.minute) / 60
			hourAngle := -math.Pi/2 + float64(tt.hour%12)/12*2*math.Pi
			want := hourAngle + (mf*2*math.Pi/12)*mf
			if got := HourMinuteAngle(now); math.Abs(got-want) > eps {
				t.Errorf("Expected %v, got %v", want, got)
			}
		})
	}
}

func TestHourMinuteAngleWrapsAtNoon(t *testing.T) {
	am := HourMinuteAngle(time.Date(2024, 3, 1, 3, 20, 0, 0, time.UTC))
	pm := HourMinuteAngle(time.Date(2024, 3, 1, 15, 20, 0, 0, time.UTC))
	if math.Abs(am-pm) > eps {
		t.Errorf("Expected 03:20 and 15:20 to share an angle, got %v and %v", am, pm)
	}
}

func TestSecondHandEndToEnd(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 15, 30, 500*int(time.Millisecond), time.UTC)
	size := Size{W: 400, H: 400}

	x, y := SecondHand(now, size)
	angle := -math.Pi/2 + 30.5*math.Pi/30
	wantX := 200 + 180*math.Cos(angle)
	wantY := 200 + 180*math.Sin(angle)
	if math.Abs(x-wantX) > 1e-6 || math.Abs(y-wantY) > 1e-6 {
		t.Errorf("Expected (%v, %v), got (%v, %v)", wantX, wantY, x, y)
	}
}

func TestSizeDegenerate(t *testing.T) {
	tests := []struct {
		name string
		size Size
		want bool
	}{
		{"Square", Size{400, 400}, false},
		{"ZeroWidth", Size{0, 400}, true},
		{"NegativeHeight", Size{400, -1}, true},
		{"NaN", Size{math.NaN(), 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.size.Degenerate(); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
			if tt.want && tt.size.Radius(BorderRadius) != 0 {
				t.Errorf("Expected zero radius for degenerate size, got %v", tt.size.Radius(BorderRadius))
			}
		})
	}
}

func TestRadiusUsesShorterSide(t *testing.T) {
	size := Size{W: 800, H: 400}
	if got := size.Radius(BorderRadius); math.Abs(got-180) > eps {
		t.Errorf("Expected 180, got %v", got)
	}
}
