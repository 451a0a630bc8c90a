package colour

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRandomPalette(t *testing.T) {
	g := NewSeededGenerator(1)

	p, err := g.RandomPalette(DefaultPaletteSize)
	if err != nil {
		t.Fatalf("RandomPalette() error = %v", err)
	}
	if p.Len() != DefaultPaletteSize {
		t.Errorf("Len() = %d, want %d", p.Len(), DefaultPaletteSize)
	}
	for i, s := range p.All() {
		if s.Locked {
			t.Errorf("swatch %d is locked, want unlocked", i)
		}
		if s.Colour.A != 1 {
			t.Errorf("swatch %d alpha = %v, want 1", i, s.Colour.A)
		}
	}
}

func TestRandomPaletteInvalidSize(t *testing.T) {
	g := NewSeededGenerator(1)
	for _, n := range []int{0, -1} {
		if _, err := g.RandomPalette(n); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("RandomPalette(%d) error = %v, want ErrInvalidArgument", n, err)
		}
	}
}

func TestSeededGeneratorIsDeterministic(t *testing.T) {
	a, _ := NewSeededGenerator(99).RandomPalette(8)
	b, _ := NewSeededGenerator(99).RandomPalette(8)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed produced different palettes (-a +b):\n%s", diff)
	}
}

func TestRandomColorCoversChannelRange(t *testing.T) {
	g := NewSeededGenerator(7)
	var seenLow, seenHigh bool
	for range 5000 {
		c := g.RandomColor()
		if c.R < 16 {
			seenLow = true
		}
		if c.R > 239 {
			seenHigh = true
		}
	}
	if !seenLow || !seenHigh {
		t.Errorf("red channel never reached both ends of [0, 255] (low=%v high=%v)", seenLow, seenHigh)
	}
}

func TestRegeneratePreservesLocks(t *testing.T) {
	g := NewSeededGenerator(3)

	for trial := range 50 {
		p, err := g.RandomPalette(6)
		if err != nil {
			t.Fatalf("RandomPalette() error = %v", err)
		}
		// Lock a different subset each trial.
		for i := range p.Swatches {
			if (trial>>i)&1 == 1 {
				if err := p.Lock(i); err != nil {
					t.Fatalf("Lock(%d) error = %v", i, err)
				}
			}
		}
		before := p.Clone()

		out := g.Regenerate(p)

		if diff := cmp.Diff(before, p); diff != "" {
			t.Fatalf("Regenerate mutated its input (-before +after):\n%s", diff)
		}
		if out.Len() != p.Len() {
			t.Fatalf("Len() = %d, want %d", out.Len(), p.Len())
		}
		for i := range p.Swatches {
			if out.Swatches[i].Locked != p.Swatches[i].Locked {
				t.Errorf("swatch %d lock = %v, want %v", i, out.Swatches[i].Locked, p.Swatches[i].Locked)
			}
			if p.Swatches[i].Locked && out.Swatches[i].Colour != p.Swatches[i].Colour {
				t.Errorf("locked swatch %d changed from %s to %s", i, p.Swatches[i].Colour, out.Swatches[i].Colour)
			}
		}
	}
}

func TestRegenerateReplacesUnlocked(t *testing.T) {
	p := NewPalette(Black, Black, Black)
	if err := p.Lock(1); err != nil {
		t.Fatalf("Lock() error = %v", err)
	}

	out := NewSeededGenerator(11).Regenerate(p)

	changed := 0
	for _, i := range []int{0, 2} {
		if out.Swatches[i].Colour != Black {
			changed++
		}
	}
	if changed == 0 {
		t.Error("no unlocked swatch was regenerated")
	}
	if out.Swatches[1].Colour != Black {
		t.Errorf("locked swatch = %s, want #000000", out.Swatches[1].Colour)
	}
}

func TestRegenerateNil(t *testing.T) {
	out := NewSeededGenerator(1).Regenerate(nil)
	if out == nil || out.Len() != 0 {
		t.Errorf("Regenerate(nil) = %+v, want empty palette", out)
	}
}

func TestPaletteLockBounds(t *testing.T) {
	p := NewPalette(Black, White)
	for _, i := range []int{-1, 2} {
		if err := p.Lock(i); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Lock(%d) error = %v, want ErrInvalidArgument", i, err)
		}
	}

	if err := p.Toggle(0); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if !p.Swatches[0].Locked {
		t.Error("Toggle() did not lock swatch 0")
	}
	if err := p.Unlock(0); err != nil {
		t.Fatalf("Unlock() error = %v", err)
	}
	if p.Swatches[0].Locked {
		t.Error("Unlock() left swatch 0 locked")
	}
}

func TestPaletteText(t *testing.T) {
	p := NewPalette(New(255, 0, 0), New(0, 0, 255))

	tests := []struct {
		name   string
		format ColorFormat
		sep    string
		want   string
	}{
		{name: "hex lines", format: FormatHex, sep: "\n", want: "#ff0000\n#0000ff"},
		{name: "rgb comma", format: FormatRGB, sep: ", ", want: "rgb(255, 0, 0), rgb(0, 0, 255)"},
		{name: "hsl comma", format: FormatHSL, sep: ", ", want: "hsl(0, 100%, 50%), hsl(240, 100%, 50%)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Text(tt.format, tt.sep); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractedPaletteToJSON(t *testing.T) {
	p := &ExtractedPalette{
		Colours: []Color{New(255, 0, 0)},
		Weights: []float64{1},
	}

	data, err := p.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	want := `{
  "count": 1,
  "colors": [
    {
      "hex": "#ff0000",
      "rgb": "rgb(255, 0, 0)",
      "hsl": "hsl(0, 100%, 50%)",
      "weight": 1
    }
  ]
}`
	if diff := cmp.Diff(want, string(data)); diff != "" {
		t.Errorf("ToJSON() mismatch (-want +got):\n%s", diff)
	}
}
