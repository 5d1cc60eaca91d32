package progress

import (
	"fmt"
	"math"
	"strings"
)

// Curve maps linear progress in [0,1] to eased progress.
type Curve func(float64) float64

// Linear leaves progress unchanged.
func Linear(t float64) float64 {
	return t
}

// Standard is the cubic-bezier(0.42, 0, 0.58, 1) ease-in-out.
var Standard = CubicBezier(0.42, 0, 0.58, 1)

// CurveByName resolves "linear" or "standard".
func CurveByName(name string) (Curve, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "linear":
		return Linear, nil
	case "standard", "ease-in-out":
		return Standard, nil
	default:
		return nil, fmt.Errorf("unknown easing %q", name)
	}
}

// CubicBezier returns a CSS-style cubic-bezier curve with end points
// (0,0) and (1,1). x is inverted by bisection.
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		lo, hi := 0.0, 1.0
		u := t
		for i := 0; i < 32; i++ {
			x := bezier(x1, x2, u)
			if math.Abs(x-t) < 1e-7 {
				break
			}
			if x > t {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) / 2
		}
		return bezier(y1, y2, u)
	}
}

func bezier(p1, p2, u float64) float64 {
	v := 1 - u
	return 3*v*v*u*p1 + 3*v*u*u*p2 + u*u*u
}
