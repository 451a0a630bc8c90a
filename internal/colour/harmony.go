package colour

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// MonochromeStep is the CIE Lab lightness step (on a 0-1 scale) used to
// brighten or darken a colour for monochromatic harmonies.
const MonochromeStep = 0.18

// Harmonies holds the colour sets derived from a single base colour.
type Harmonies struct {
	Complementary []Color `json:"complementary"`
	Triadic       []Color `json:"triadic"`
	Analogous     []Color `json:"analogous"`
	Monochromatic []Color `json:"monochromatic"`
}

// HarmoniesFor derives every harmony of c.
func HarmoniesFor(c Color) Harmonies {
	return Harmonies{
		Complementary: Complementary(c),
		Triadic:       Triadic(c),
		Analogous:     Analogous(c),
		Monochromatic: Monochromatic(c),
	}
}

// Complementary returns the base colour and its opposite on the colour wheel (+180°).
func Complementary(c Color) []Color {
	return []Color{c, RotateHue(c, 180)}
}

// Triadic returns the base colour and the two colours at +120° and +240°.
func Triadic(c Color) []Color {
	return []Color{c, RotateHue(c, 120), RotateHue(c, 240)}
}

// Analogous returns the neighbours at -30°, the base, and +30°.
func Analogous(c Color) []Color {
	return []Color{RotateHue(c, -30), c, RotateHue(c, 30)}
}

// Monochromatic returns five colours of the same hue ordered dark to light:
// two darker steps, the base, and two brighter steps.
func Monochromatic(c Color) []Color {
	return []Color{
		Darken(c, 2),
		Darken(c, 1),
		c,
		Brighten(c, 1),
		Brighten(c, 2),
	}
}

// Brighten raises Lab lightness by steps*MonochromeStep, clamped to the sRGB gamut.
func Brighten(c Color, steps float64) Color {
	return shiftLabLightness(c, steps*MonochromeStep)
}

// Darken lowers Lab lightness by steps*MonochromeStep, clamped to the sRGB gamut.
func Darken(c Color, steps float64) Color {
	return shiftLabLightness(c, -steps*MonochromeStep)
}

func shiftLabLightness(c Color, delta float64) Color {
	l, a, b := toColorful(c).Lab()
	l = math.Max(0, math.Min(1, l+delta))
	out := fromColorful(colorful.Lab(l, a, b).Clamped())
	out.A = c.A
	return out
}

func toColorful(c Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func fromColorful(cc colorful.Color) Color {
	r, g, b := cc.Clamped().RGB255()
	return New(r, g, b)
}
