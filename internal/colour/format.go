package colour

import (
	"fmt"
	"strings"
)

// ColorFormat selects the string representation a colour is rendered as.
type ColorFormat int

const (
	FormatHex ColorFormat = iota // #rrggbb
	FormatRGB                    // rgb(r, g, b)
	FormatHSL                    // hsl(h, s%, l%)
)

// Formats returns every supported format in display order.
func Formats() []ColorFormat {
	return []ColorFormat{FormatHex, FormatRGB, FormatHSL}
}

// String returns the lowercase name of the format.
func (f ColorFormat) String() string {
	switch f {
	case FormatHex:
		return "hex"
	case FormatRGB:
		return "rgb"
	case FormatHSL:
		return "hsl"
	default:
		return fmt.Sprintf("ColorFormat(%d)", int(f))
	}
}

// ParseColorFormat parses a format name, case-insensitively.
func ParseColorFormat(name string) (ColorFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hex":
		return FormatHex, nil
	case "rgb":
		return FormatRGB, nil
	case "hsl":
		return FormatHSL, nil
	default:
		return FormatHex, fmt.Errorf("%w: unknown color format %q (valid: hex, rgb, hsl)", ErrInvalidArgument, name)
	}
}

// Format returns the colour in the specified format.
// Unknown formats fall back to hex.
func Format(c Color, format ColorFormat) string {
	switch format {
	case FormatRGB:
		return c.RGBString()
	case FormatHSL:
		return c.HSLString()
	default:
		return c.Hex()
	}
}

// FormatAll returns the colour in every supported format, in Formats order.
func FormatAll(c Color) []string {
	formats := Formats()
	out := make([]string, len(formats))
	for i, f := range formats {
		out[i] = Format(c, f)
	}
	return out
}
