// Package render draws the clock face onto an abstract canvas.
package render

import (
	"image/color"
)

// Canvas is the drawing surface the renderer paints on. Hosts adapt it to
// ebiten images, raster images or terminal cells.
type Canvas interface {
	Fill(c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	StrokeCircle(cx, cy, r, width float64, c color.Color)
}

// Op identifies a recorded draw command.
type Op int

const (
	OpFill Op = iota
	OpFillCircle
	OpStrokeCircle
)

func (o Op) String() string {
	switch o {
	case OpFill:
		return "fill"
	case OpFillCircle:
		return "fillCircle"
	case OpStrokeCircle:
		return "strokeCircle"
	default:
		return "unknown"
	}
}

// Command is one recorded draw call.
type Command struct {
	Op     Op
	X, Y   float64
	Radius float64
	Width  float64
	Color  color.NRGBA
}

// Recorder is a Canvas that keeps every command in order.
type Recorder struct {
	Commands []Command
}

func (r *Recorder) Fill(c color.Color) {
	r.Commands = append(r.Commands, Command{Op: OpFill, Color: toNRGBA(c)})
}

func (r *Recorder) FillCircle(cx, cy, rad float64, c color.Color) {
	r.Commands = append(r.Commands, Command{Op: OpFillCircle, X: cx, Y: cy, Radius: rad, Color: toNRGBA(c)})
}

func (r *Recorder) StrokeCircle(cx, cy, rad, width float64, c color.Color) {
	r.Commands = append(r.Commands, Command{Op: OpStrokeCircle, X: cx, Y: cy, Radius: rad, Width: width, Color: toNRGBA(c)})
}

func toNRGBA(c color.Color) color.NRGBA {
	if n, ok := c.(color.NRGBA); ok {
		return n
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
