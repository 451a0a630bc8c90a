package colour

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	rgbRegex = regexp.MustCompile(`^rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*([0-9]*\.?[0-9]+)\s*)?\)$`)
	hslRegex = regexp.MustCompile(`^hsla?\(\s*(-?[0-9]*\.?[0-9]+)\s*,\s*([0-9]*\.?[0-9]+)%\s*,\s*([0-9]*\.?[0-9]+)%\s*\)$`)
)

// ParseHex parses a hex colour string.
// Accepted forms, with or without a leading '#' and in any case:
//
//	RRGGBB    the canonical form
//	RGB       shorthand, each digit doubled
//	RRGGBBAA  with alpha (AA/255)
func ParseHex(s string) (Color, error) {
	hex := strings.TrimSpace(s)
	hex = strings.TrimPrefix(hex, "#")

	// Expand shorthand format (RGB -> RRGGBB).
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("%w: %q: expected 6 hex digits, got %d", ErrInvalidColorFormat, s, len(hex))
	}

	var channels [4]uint8
	channels[3] = 255
	for i := 0; i < len(hex); i += 2 {
		v, err := strconv.ParseUint(hex[i:i+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q: invalid hex digits %q", ErrInvalidColorFormat, s, hex[i:i+2])
		}
		channels[i/2] = uint8(v)
	}

	return Color{
		R: channels[0],
		G: channels[1],
		B: channels[2],
		A: float64(channels[3]) / 255.0,
	}, nil
}

// ParseRGB parses "rgb(r, g, b)" or "rgba(r, g, b, a)" with integer channels
// in [0, 255] and alpha in [0, 1].
func ParseRGB(s string) (Color, error) {
	matches := rgbRegex.FindStringSubmatch(strings.ToLower(strings.TrimSpace(s)))
	if matches == nil {
		return Color{}, fmt.Errorf("%w: %q: expected rgb(r, g, b)", ErrInvalidColorFormat, s)
	}

	var channels [3]uint8
	for i := range channels {
		// Regex guarantees at most three digits.
		v, _ := strconv.Atoi(matches[i+1]) //nolint:errcheck
		if v > 255 {
			return Color{}, fmt.Errorf("%w: %q: channel %d out of range", ErrInvalidColorFormat, s, v)
		}
		channels[i] = uint8(v)
	}

	alpha := 1.0
	if matches[4] != "" {
		a, err := strconv.ParseFloat(matches[4], 64)
		if err != nil || a > 1 {
			return Color{}, fmt.Errorf("%w: %q: alpha must be between 0 and 1", ErrInvalidColorFormat, s)
		}
		alpha = a
	}

	return Color{R: channels[0], G: channels[1], B: channels[2], A: alpha}, nil
}

// ParseHSL parses "hsl(h, s%, l%)". Hue wraps modulo 360; saturation and
// lightness must lie in [0, 100].
func ParseHSL(s string) (Color, error) {
	matches := hslRegex.FindStringSubmatch(strings.ToLower(strings.TrimSpace(s)))
	if matches == nil {
		return Color{}, fmt.Errorf("%w: %q: expected hsl(h, s%%, l%%)", ErrInvalidColorFormat, s)
	}

	// Regex guarantees these are valid floats, errors ignored.
	h, _ := strconv.ParseFloat(matches[1], 64)   //nolint:errcheck
	sat, _ := strconv.ParseFloat(matches[2], 64) //nolint:errcheck
	l, _ := strconv.ParseFloat(matches[3], 64)   //nolint:errcheck

	if sat > 100 || l > 100 {
		return Color{}, fmt.Errorf("%w: %q: saturation and lightness must be between 0%% and 100%%", ErrInvalidColorFormat, s)
	}

	return FromHSL(h, sat/100.0, l/100.0), nil
}

// Parse parses a colour in any supported notation: hex, rgb() or hsl().
func Parse(s string) (Color, error) {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(trimmed, "rgb"):
		return ParseRGB(trimmed)
	case strings.HasPrefix(trimmed, "hsl"):
		return ParseHSL(trimmed)
	default:
		return ParseHex(s)
	}
}

// Hex returns the colour as a lowercase "#rrggbb" string. Alpha is dropped.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// HexAlpha returns the colour as a lowercase "#rrggbbaa" string.
func (c Color) HexAlpha() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, clampByte(clamp01(c.A)*255))
}

// RGBString returns the colour as "rgb(r, g, b)".
func (c Color) RGBString() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// HSLString returns the colour as "hsl(H, S%, L%)" with integer components.
func (c Color) HSLString() string {
	h, s, l := c.HSL()
	hue := int(math.Round(h)) % 360
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", hue, int(math.Round(s*100)), int(math.Round(l*100)))
}

// ToHex is the function form of Color.Hex.
func ToHex(c Color) string { return c.Hex() }

// ToRGBString is the function form of Color.RGBString.
func ToRGBString(c Color) string { return c.RGBString() }

// ToHSLString is the function form of Color.HSLString.
func ToHSLString(c Color) string { return c.HSLString() }
