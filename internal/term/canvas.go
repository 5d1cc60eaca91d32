// Package term hosts the clock in a terminal using half-block cells.
package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/olivierh59500/particle-clock-go/internal/clock"
)

// halfBlock paints the top pixel as foreground and the bottom as background.
const halfBlock = '▀'

// Canvas rasterizes circles into a pixel grid two pixels tall per cell.
// Draw coordinates are canvas units; scale units map to one pixel.
type Canvas struct {
	cols, rows int
	scale      float64
	pix        []colorful.Color
}

// NewCanvas returns a canvas for a cols×rows terminal.
func NewCanvas(cols, rows int, scale float64) *Canvas {
	if scale <= 0 {
		scale = 1
	}
	c := &Canvas{scale: scale}
	c.Resize(cols, rows)
	return c
}

// Resize reallocates the pixel grid when the terminal size changes.
func (c *Canvas) Resize(cols, rows int) {
	c.cols, c.rows = max(0, cols), max(0, rows)
	n := c.cols * c.rows * 2
	if cap(c.pix) >= n {
		c.pix = c.pix[:n]
		return
	}
	c.pix = make([]colorful.Color, n)
}

// Size returns the drawable area in canvas units.
func (c *Canvas) Size() clock.Size {
	return clock.Size{W: float64(c.cols) * c.scale, H: float64(c.rows*2) * c.scale}
}

func (c *Canvas) Fill(col color.Color) {
	fc, _ := toColorful(col)
	for i := range c.pix {
		c.pix[i] = fc
	}
}

func (c *Canvas) FillCircle(cx, cy, r float64, col color.Color) {
	r /= c.scale
	c.plot(cx/c.scale, cy/c.scale, r, col, func(d float64) bool { return d <= r })
}

func (c *Canvas) StrokeCircle(cx, cy, r, width float64, col color.Color) {
	r /= c.scale
	half := math.Max(width/c.scale/2, 0.5)
	c.plot(cx/c.scale, cy/c.scale, r+half, col, func(d float64) bool { return math.Abs(d-r) <= half })
}

// Flush writes the grid to the screen without calling Show.
func (c *Canvas) Flush(s tcell.Screen) {
	w := c.cols
	for y := 0; y < c.rows; y++ {
		for x := 0; x < w; x++ {
			top := c.pix[(2*y)*w+x]
			bottom := c.pix[(2*y+1)*w+x]
			style := tcell.StyleDefault.Foreground(toTcell(top)).Background(toTcell(bottom))
			s.SetContent(x, y, halfBlock, nil, style)
		}
	}
}

// At returns the pixel at (x, y) in pixel coordinates.
func (c *Canvas) At(x, y int) colorful.Color {
	return c.pix[y*c.cols+x]
}

func (c *Canvas) plot(px, py, extent float64, col color.Color, inside func(d float64) bool) {
	src, alpha := toColorful(col)
	if alpha <= 0 || extent <= 0 {
		return
	}
	h := c.rows * 2
	x0, x1 := max(0, int(math.Floor(px-extent))), min(c.cols-1, int(math.Ceil(px+extent)))
	y0, y1 := max(0, int(math.Floor(py-extent))), min(h-1, int(math.Ceil(py+extent)))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			d := math.Hypot(float64(x)+0.5-px, float64(y)+0.5-py)
			if !inside(d) {
				continue
			}
			i := y*c.cols + x
			c.pix[i] = c.pix[i].BlendRgb(src, alpha).Clamped()
		}
	}
}

func toColorful(col color.Color) (colorful.Color, float64) {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	return colorful.Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
	}, float64(n.A) / 255
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
