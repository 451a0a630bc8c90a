package colour

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DefaultPaletteSize is the number of swatches in a generated palette.
const DefaultPaletteSize = 5

// Swatch is one palette entry. Locked swatches survive regeneration.
type Swatch struct {
	Colour Color `json:"colour"`
	Locked bool  `json:"locked"`
}

// Palette is an ordered set of swatches.
type Palette struct {
	Swatches []Swatch `json:"swatches"`
}

// NewPalette creates an unlocked palette from the given colours.
func NewPalette(colours ...Color) *Palette {
	swatches := make([]Swatch, len(colours))
	for i, c := range colours {
		swatches[i] = Swatch{Colour: c}
	}
	return &Palette{Swatches: swatches}
}

// Len returns the number of swatches in the palette.
func (p *Palette) Len() int {
	return len(p.Swatches)
}

// Colours returns the palette colours in order.
func (p *Palette) Colours() []Color {
	out := make([]Color, len(p.Swatches))
	for i, s := range p.Swatches {
		out[i] = s.Colour
	}
	return out
}

// Clone returns a deep copy of the palette.
func (p *Palette) Clone() *Palette {
	swatches := make([]Swatch, len(p.Swatches))
	copy(swatches, p.Swatches)
	return &Palette{Swatches: swatches}
}

// Lock marks the swatch at index as locked.
func (p *Palette) Lock(index int) error {
	return p.setLocked(index, true)
}

// Unlock clears the lock on the swatch at index.
func (p *Palette) Unlock(index int) error {
	return p.setLocked(index, false)
}

// Toggle flips the lock on the swatch at index.
func (p *Palette) Toggle(index int) error {
	if err := p.checkIndex(index); err != nil {
		return err
	}
	p.Swatches[index].Locked = !p.Swatches[index].Locked
	return nil
}

func (p *Palette) setLocked(index int, locked bool) error {
	if err := p.checkIndex(index); err != nil {
		return err
	}
	p.Swatches[index].Locked = locked
	return nil
}

func (p *Palette) checkIndex(index int) error {
	if index < 0 || index >= len(p.Swatches) {
		return fmt.Errorf("%w: index out of bounds: %d (palette has %d colours)", ErrInvalidArgument, index, len(p.Swatches))
	}
	return nil
}

// Text renders every colour in format, joined by sep.
// ", " suits copying to a clipboard; "\n" suits a downloadable text file.
func (p *Palette) Text(format ColorFormat, sep string) string {
	return joinColours(p.Colours(), format, sep)
}

// All returns an iterator over the palette swatches.
func (p *Palette) All() func(func(int, Swatch) bool) {
	return func(yield func(int, Swatch) bool) {
		for i, s := range p.Swatches {
			if !yield(i, s) {
				return
			}
		}
	}
}

// ExtractedPalette is the result of image colour extraction.
// Colours are ordered by weight, the share of sampled pixels each represents.
type ExtractedPalette struct {
	Colours []Color
	Weights []float64
}

// Len returns the number of colours in the palette.
func (p *ExtractedPalette) Len() int {
	return len(p.Colours)
}

// ToHex converts the palette colours to hex strings.
func (p *ExtractedPalette) ToHex() []string {
	out := make([]string, len(p.Colours))
	for i, c := range p.Colours {
		out[i] = c.Hex()
	}
	return out
}

// Text renders every colour in format, joined by sep.
func (p *ExtractedPalette) Text(format ColorFormat, sep string) string {
	return joinColours(p.Colours, format, sep)
}

// ColourJSON represents a colour in JSON output format.
type ColourJSON struct {
	Hex    string  `json:"hex"`
	RGB    string  `json:"rgb"`
	HSL    string  `json:"hsl"`
	Weight float64 `json:"weight,omitempty"`
}

// PaletteJSON represents an extracted palette in JSON format.
type PaletteJSON struct {
	Count  int          `json:"count"`
	Colors []ColourJSON `json:"colors"`
}

// ToJSON converts the palette to indented JSON.
func (p *ExtractedPalette) ToJSON() ([]byte, error) {
	colours := make([]ColourJSON, len(p.Colours))
	for i, c := range p.Colours {
		colours[i] = NewColourJSON(c)
		if i < len(p.Weights) {
			colours[i].Weight = p.Weights[i]
		}
	}

	return json.MarshalIndent(PaletteJSON{Count: len(colours), Colors: colours}, "", "  ")
}

// NewColourJSON renders c in every format.
func NewColourJSON(c Color) ColourJSON {
	return ColourJSON{Hex: c.Hex(), RGB: c.RGBString(), HSL: c.HSLString()}
}

// String returns a human-readable string representation of the palette.
func (p *ExtractedPalette) String() string {
	if len(p.Colours) == 0 {
		return "Empty palette"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Palette with %d colors:\n", len(p.Colours))
	for i, c := range p.Colours {
		fmt.Fprintf(&sb, "  %2d: %s (%s)\n", i+1, c.Hex(), c.RGBString())
	}
	return sb.String()
}

func joinColours(colours []Color, format ColorFormat, sep string) string {
	parts := make([]string, len(colours))
	for i, c := range colours {
		parts[i] = Format(c, format)
	}
	return strings.Join(parts, sep)
}
