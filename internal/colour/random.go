package colour

import (
	"fmt"
	"math/rand/v2"
)

// Generator draws random colours from an injected source.
// A Generator is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator backed by src.
// A nil src uses a PCG source seeded from the runtime's entropy.
func NewGenerator(src rand.Source) *Generator {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Generator{rng: rand.New(src)}
}

// NewSeededGenerator creates a Generator whose output is fully determined by seed.
func NewSeededGenerator(seed uint64) *Generator {
	return NewGenerator(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomColor returns an opaque colour with each channel drawn uniformly from [0, 255].
func (g *Generator) RandomColor() Color {
	return New(
		uint8(g.rng.IntN(256)),
		uint8(g.rng.IntN(256)),
		uint8(g.rng.IntN(256)),
	)
}

// RandomPalette returns n random, unlocked colours.
func (g *Generator) RandomPalette(n int) (*Palette, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: palette size must be at least 1, got %d", ErrInvalidArgument, n)
	}

	swatches := make([]Swatch, n)
	for i := range swatches {
		swatches[i] = Swatch{Colour: g.RandomColor()}
	}
	return &Palette{Swatches: swatches}, nil
}

// Regenerate returns a new palette in which every unlocked swatch is replaced
// by a fresh random colour. Locked swatches, the length and every lock flag
// are preserved. p is not modified.
func (g *Generator) Regenerate(p *Palette) *Palette {
	if p == nil {
		return &Palette{}
	}

	// Snapshot the whole input before drawing anything.
	out := p.Clone()
	for i := range out.Swatches {
		if !out.Swatches[i].Locked {
			out.Swatches[i].Colour = g.RandomColor()
		}
	}
	return out
}

// RandomGradient returns a left-to-right gradient of n random stops.
func (g *Generator) RandomGradient(n int) (*GradientSpec, error) {
	if n < MinGradientStops {
		return nil, fmt.Errorf("%w: gradient needs at least %d stops, got %d", ErrInvalidArgument, MinGradientStops, n)
	}

	stops := make([]Color, n)
	for i := range stops {
		stops[i] = g.RandomColor()
	}
	return LinearGradient(stops...)
}
