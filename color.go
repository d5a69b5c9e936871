package assetgen

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is a non-premultiplied 8-bit RGBA color.
// It implements color.Color.
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA creates a color from 8-bit components.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Common colors
var (
	Transparent = RGBA(0, 0, 0, 0)
	White       = RGB(255, 255, 255)
	Black       = RGB(0, 0, 0)
)

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// NRGBA converts c to the standard library's non-premultiplied color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RGBA implements color.Color and returns alpha-premultiplied components.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// Lerp interpolates linearly between c and other. t is clamped to [0, 1]
// and each channel is truncated toward zero.
func (c Color) Lerp(other Color, t float64) Color {
	t = clamp01(t)
	return Color{
		R: lerpChannel(c.R, other.R, t),
		G: lerpChannel(c.G, other.G, t),
		B: lerpChannel(c.B, other.B, t),
		A: lerpChannel(c.A, other.A, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := float64(a) + (float64(b)-float64(a))*t
	// #nosec G115 -- v lies between two uint8 values
	return uint8(v)
}

// Hex formats c as "#RRGGBB", or "#RRGGBBAA" when c is not opaque.
func (c Color) Hex() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// ParseHex parses a color from a hex string.
// Supports formats: "RGB", "RRGGBB", "RRGGBBAA", each with an optional '#'.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return Color{}, fmt.Errorf("assetgen: invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("assetgen: invalid hex color %q: %w", s, err)
	}
	return Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// ColorStop is a color pinned to a position along a gradient axis.
type ColorStop struct {
	Pos   float64 // axis coordinate in pixels
	Color Color
}

// Gradient is a linear interpolation between two color stops along the
// vertical axis. Positions before From take From's color, positions after
// To take To's color.
type Gradient struct {
	From, To ColorStop
}

// VerticalGradientOf is a convenience constructor for a gradient running
// from top at y0 to bottom at y1.
func VerticalGradientOf(top, bottom Color, y0, y1 float64) Gradient {
	return Gradient{
		From: ColorStop{Pos: y0, Color: top},
		To:   ColorStop{Pos: y1, Color: bottom},
	}
}

// At returns the gradient color at axis position pos.
// A zero-length gradient returns the From color everywhere.
func (g Gradient) At(pos float64) Color {
	span := g.To.Pos - g.From.Pos
	if span <= 0 {
		return g.From.Color
	}
	return g.From.Color.Lerp(g.To.Color, (pos-g.From.Pos)/span)
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
