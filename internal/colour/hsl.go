package colour

import "math"

// HSL converts the colour to HSL.
// Returns hue (0-360), saturation (0-1), lightness (0-1).
func (c Color) HSL() (h, s, l float64) {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	// Lightness.
	l = (maxVal + minVal) / 2.0

	// Achromatic.
	if delta == 0 {
		return 0, 0, l
	}

	// Saturation.
	if l > 0.5 {
		s = delta / (2.0 - maxVal - minVal)
	} else {
		s = delta / (maxVal + minVal)
	}

	// Hue.
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}

	h *= 60
	return normaliseHue(h), s, l
}

// Hue returns the HSL hue in degrees [0, 360).
func (c Color) Hue() float64 {
	h, _, _ := c.HSL()
	return h
}

// FromHSL builds an opaque colour from HSL components.
// h is hue in degrees (wrapped to [0, 360)), s and l are clamped to [0, 1].
func FromHSL(h, s, l float64) Color {
	h = normaliseHue(h)
	s = clamp01(s)
	l = clamp01(l)

	if s == 0 {
		// Achromatic (grey).
		v := clampByte(l * 255)
		return New(v, v, v)
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return New(
		clampByte(hueToRGB(p, q, h+120)*255),
		clampByte(hueToRGB(p, q, h)*255),
		clampByte(hueToRGB(p, q, h-120)*255),
	)
}

// RotateHue returns c with its hue shifted by deg degrees, wrapping modulo 360.
// Saturation, lightness and alpha are preserved.
func RotateHue(c Color, deg float64) Color {
	h, s, l := c.HSL()
	rotated := FromHSL(h+deg, s, l)
	rotated.A = c.A
	return rotated
}

// hueToRGB is a helper for HSL to RGB conversion.
func hueToRGB(p, q, t float64) float64 {
	t = normaliseHue(t)

	if t < 60 {
		return p + (q-p)*t/60
	}
	if t < 180 {
		return q
	}
	if t < 240 {
		return p + (q-p)*(240-t)/60
	}
	return p
}

// normaliseHue wraps a hue angle into [0, 360).
func normaliseHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

// HueDistance calculates the angular distance between two hues on the colour wheel.
// Returns a value between 0 and 180 degrees (shortest path around the wheel).
func HueDistance(h1, h2 float64) float64 {
	diff := math.Abs(normaliseHue(h1) - normaliseHue(h2))
	if diff > 180 {
		diff = 360 - diff // Handle wraparound
	}
	return diff
}
