package colour

import (
	"image/color"
	"math"
)

// Color is the canonical colour value: three 8-bit channels and an alpha in [0, 1].
// The zero value is transparent black; use New for an opaque colour.
type Color struct {
	R uint8   `json:"r"`
	G uint8   `json:"g"`
	B uint8   `json:"b"`
	A float64 `json:"a"`
}

// Common colours.
var (
	Black = New(0, 0, 0)
	White = New(255, 255, 255)
)

// New returns an opaque colour.
func New(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// NewWithAlpha returns a colour with the given alpha, clamped to [0, 1].
func NewWithAlpha(r, g, b uint8, a float64) Color {
	return Color{R: r, G: g, B: b, A: clamp01(a)}
}

// FromColor converts any color.Color to a Color, undoing alpha premultiplication.
func FromColor(c color.Color) Color {
	if cc, ok := c.(Color); ok {
		return cc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: float64(n.A) / 255.0}
}

// RGBA implements color.Color. Channels are alpha-premultiplied 16-bit values.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(math.Round(clamp01(c.A) * 0xffff))
	r = uint32(c.R) * 0x101 * a / 0xffff
	g = uint32(c.G) * 0x101 * a / 0xffff
	b = uint32(c.B) * 0x101 * a / 0xffff
	return r, g, b, a
}

// Opaque returns c with alpha forced to 1.
func (c Color) Opaque() Color {
	c.A = 1
	return c
}

// Equal reports whether two colours have identical channels and alpha.
func (c Color) Equal(other Color) bool {
	return c == other
}

// String implements fmt.Stringer using the hex form.
func (c Color) String() string {
	return c.Hex()
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

func clampByte(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
