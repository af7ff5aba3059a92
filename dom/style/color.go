package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is a non-premultiplied 32-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

var _ color.Color = Color{}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Uint returns the color as 0xRRGGBBAA.
func (c Color) Uint() uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

func (c Color) String() string {
	for name, nc := range namedColors {
		if nc == c {
			return name
		}
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ColorFromUint converts 0xRRGGBBAA to a color.
func ColorFromUint(n uint64) (Color, error) {
	if n > 0xffffffff {
		return Color{}, fmt.Errorf("color value 0x%x exceeds 32 bits", n)
	}
	return Color{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, nil
}

// ParseColor accepts a color name or a hex color of the forms #rgb, #rgba,
// #rrggbb and #rrggbbaa. Names are case-insensitive.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		c, ok := namedColors[strings.ToLower(s)]
		if !ok {
			return Color{}, fmt.Errorf("unknown color name %q", s)
		}
		return c, nil
	}
	hex := s[1:]
	switch len(hex) {
	case 3, 4:
		var b strings.Builder
		for _, r := range hex {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		hex = b.String()
	case 6, 8:
	default:
		return Color{}, fmt.Errorf("malformed hex color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("malformed hex color %q", s)
	}
	return ColorFromUint(n)
}

var namedColors = map[string]Color{
	"transparent": {0, 0, 0, 0},
	"black":       {0, 0, 0, 0xff},
	"white":       {0xff, 0xff, 0xff, 0xff},
	"red":         {0xff, 0, 0, 0xff},
	"green":       {0, 0x80, 0, 0xff},
	"lime":        {0, 0xff, 0, 0xff},
	"blue":        {0, 0, 0xff, 0xff},
	"yellow":      {0xff, 0xff, 0, 0xff},
	"cyan":        {0, 0xff, 0xff, 0xff},
	"magenta":     {0xff, 0, 0xff, 0xff},
	"gray":        {0x80, 0x80, 0x80, 0xff},
	"silver":      {0xc0, 0xc0, 0xc0, 0xff},
	"maroon":      {0x80, 0, 0, 0xff},
	"olive":       {0x80, 0x80, 0, 0xff},
	"navy":        {0, 0, 0x80, 0xff},
	"purple":      {0x80, 0, 0x80, 0xff},
	"teal":        {0, 0x80, 0x80, 0xff},
	"orange":      {0xff, 0xa5, 0, 0xff},
	"powderblue":  {0xb0, 0xe0, 0xe6, 0xff},
}

// IsColorName is true for the names of predefined colors.
func IsColorName(name string) bool {
	_, ok := namedColors[strings.ToLower(name)]
	return ok
}
