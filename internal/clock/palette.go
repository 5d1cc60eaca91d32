package clock

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette is a named set of colors shared by the renderer and the particles.
type Palette struct {
	Name       string
	Main       []color.NRGBA // decorative colors picked at random by background particles
	Handle     color.NRGBA   // second hand, minute ticks, hour and minute particles
	Divider    color.NRGBA
	Border     color.NRGBA
	Background color.NRGBA
}

// Adrift is the built-in palette.
var Adrift = Palette{
	Name: "adrift",
	Main: []color.NRGBA{
		{0x99, 0xB8, 0x98, 0xFF},
		{0xFE, 0xCE, 0xA8, 0xFF},
		{0xFF, 0x84, 0x7C, 0xFF},
	},
	Handle:     color.NRGBA{0xE8, 0x4A, 0x5F, 0xFF},
	Divider:    color.NRGBA{0xE8, 0x4A, 0x5F, 0x39},
	Border:     color.NRGBA{0xE8, 0x4A, 0x5F, 0x41},
	Background: color.NRGBA{0x2A, 0x36, 0x3B, 0xFF},
}

var palettes = map[string]Palette{
	Adrift.Name: Adrift,
}

// PaletteByName looks up a built-in palette, ignoring case.
func PaletteByName(name string) (Palette, error) {
	p, ok := palettes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Palette{}, fmt.Errorf("unknown palette %q", name)
	}
	return p, nil
}

// ParseColor parses "#RRGGBB" or "#RRGGBBAA".
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	alpha := uint8(0xFF)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid alpha in color %q: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// WithAlpha scales the color's opacity by a, clamped to [0,1].
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	c.A = uint8(float64(c.A)*a + 0.5)
	return c
}
