package particle

import (
	"fmt"
	"math"
)

// Type identifies a particle population.
type Type int

const (
	Background Type = iota
	Hour
	Minute
	typeCount
)

// Types lists every particle type in draw order.
var Types = [...]Type{Background, Hour, Minute}

func (t Type) String() string {
	switch t {
	case Background:
		return "background"
	case Hour:
		return "hour"
	case Minute:
		return "minute"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Tuning holds the fixed constants of a particle type.
type Tuning struct {
	StartAngleOffset float64 // radians
	EndAngleOffset   float64 // radians
	MaxLength        float64 // fraction of clock radius, containment threshold
	MinLength        float64 // fraction of clock radius
	MinSize          float64 // diameter
	MaxSize          float64 // diameter
}

var tunings = [typeCount]Tuning{
	Background: {
		StartAngleOffset: math.Pi * (0.5 / 12),
		EndAngleOffset:   2*math.Pi - math.Pi*(0.5/12),
		MaxLength:        0.85,
		MinLength:        0.2,
		MinSize:          4,
		MaxSize:          12,
	},
	Hour: {
		MaxLength: 0.6,
		MinLength: 0.01,
		MinSize:   8,
		MaxSize:   32,
	},
	Minute: {
		MaxLength: 0.75,
		MinLength: 0.01,
		MinSize:   8,
		MaxSize:   32,
	},
}

// Tuning returns the constants for t.
func (t Type) Tuning() Tuning {
	return tunings[t]
}

// Validate checks the ordering invariants of the tuning table entry.
func (tu Tuning) Validate() error {
	switch {
	case !(tu.MinLength > 0 && tu.MaxLength <= 1):
		return fmt.Errorf("length modifiers %v..%v outside (0,1]", tu.MinLength, tu.MaxLength)
	case tu.MinLength >= tu.MaxLength:
		return fmt.Errorf("min length %v not below max length %v", tu.MinLength, tu.MaxLength)
	case tu.EndAngleOffset < tu.StartAngleOffset:
		return fmt.Errorf("angle offsets %v..%v inverted", tu.StartAngleOffset, tu.EndAngleOffset)
	case tu.MaxSize < tu.MinSize:
		return fmt.Errorf("sizes %v..%v inverted", tu.MinSize, tu.MaxSize)
	}
	return nil
}
