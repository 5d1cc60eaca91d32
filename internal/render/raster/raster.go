// Package raster is a software Canvas backed by an RGBA image, used for
// headless snapshots.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"
)

// kappa places cubic control points so four segments approximate a circle.
const kappa = 0.5522847498

// Canvas rasterizes circles into an image.
type Canvas struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

// New returns a transparent w×h canvas.
func New(w, h int) *Canvas {
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, max(0, w), max(0, h))),
		z:   vector.NewRasterizer(0, 0),
	}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Fill replaces every pixel with col.
func (c *Canvas) Fill(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// FillCircle composites a disc over the image.
func (c *Canvas) FillCircle(cx, cy, r float64, col color.Color) {
	if r <= 0 {
		return
	}
	c.paint(cx, cy, r, col, func(ox, oy float32) {
		circle(c.z, float32(cx)-ox, float32(cy)-oy, float32(r), false)
	})
}

// StrokeCircle composites a ring of the given width centered on radius r.
func (c *Canvas) StrokeCircle(cx, cy, r, width float64, col color.Color) {
	outer := r + width/2
	inner := r - width/2
	if outer <= 0 {
		return
	}
	c.paint(cx, cy, outer, col, func(ox, oy float32) {
		x, y := float32(cx)-ox, float32(cy)-oy
		circle(c.z, x, y, float32(outer), false)
		if inner > 0 {
			circle(c.z, x, y, float32(inner), true)
		}
	})
}

// WritePNG encodes the image as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// paint rasterizes only the bounding box of the shape.
func (c *Canvas) paint(cx, cy, extent float64, col color.Color, path func(ox, oy float32)) {
	box := image.Rect(
		int(math.Floor(cx-extent))-1, int(math.Floor(cy-extent))-1,
		int(math.Ceil(cx+extent))+1, int(math.Ceil(cy+extent))+1,
	).Intersect(c.img.Bounds())
	if box.Empty() {
		return
	}
	c.z.Reset(box.Dx(), box.Dy())
	c.z.DrawOp = draw.Over
	path(float32(box.Min.X), float32(box.Min.Y))
	c.z.Draw(c.img, box, image.NewUniform(col), image.Point{})
}

// circle appends a closed circle; reverse flips the winding to cut holes.
func circle(z *vector.Rasterizer, cx, cy, r float32, reverse bool) {
	k := r * kappa
	z.MoveTo(cx+r, cy)
	if !reverse {
		z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
		z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
		z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
		z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	} else {
		z.CubeTo(cx+r, cy-k, cx+k, cy-r, cx, cy-r)
		z.CubeTo(cx-k, cy-r, cx-r, cy-k, cx-r, cy)
		z.CubeTo(cx-r, cy+k, cx-k, cy+r, cx, cy+r)
		z.CubeTo(cx+k, cy+r, cx+r, cy+k, cx+r, cy)
	}
	z.ClosePath()
}
