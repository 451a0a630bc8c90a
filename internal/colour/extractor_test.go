package colour

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func solidImage(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

func fillRect(img *image.NRGBA, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// quadrantImage is four solid quadrants of different sizes: red is the
// largest area, then blue, green, yellow.
func quadrantImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 200, 200))
	fillRect(img, image.Rect(0, 0, 120, 200), color.NRGBA{R: 220, G: 30, B: 40, A: 255})
	fillRect(img, image.Rect(120, 0, 200, 110), color.NRGBA{R: 30, G: 60, B: 200, A: 255})
	fillRect(img, image.Rect(120, 110, 200, 170), color.NRGBA{R: 40, G: 180, B: 70, A: 255})
	fillRect(img, image.Rect(120, 170, 200, 200), color.NRGBA{R: 240, G: 220, B: 20, A: 255})
	return img
}

// noiseImage fills every pixel with a distinct-ish colour from a seeded generator.
func noiseImage(w, h int, seed uint64) *image.NRGBA {
	g := NewSeededGenerator(seed)
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, g.RandomColor())
		}
	}
	return img
}

func extractors(t *testing.T) map[Algorithm]Extractor {
	t.Helper()
	out := make(map[Algorithm]Extractor)
	for _, alg := range ValidAlgorithms() {
		e, err := NewExtractor(alg)
		if err != nil {
			t.Fatalf("NewExtractor(%s) error = %v", alg, err)
		}
		out[alg] = e
	}
	return out
}

func TestExtractSolidImage(t *testing.T) {
	ctx := context.Background()
	solid := color.NRGBA{R: 12, G: 34, B: 56, A: 255}

	for alg, e := range extractors(t) {
		t.Run(string(alg), func(t *testing.T) {
			for _, size := range []int{1, 10, 300} {
				p, err := e.Extract(ctx, solidImage(size, size, solid), DefaultColourCount)
				if err != nil {
					t.Fatalf("Extract() error = %v", err)
				}
				if p.Len() != 1 {
					t.Fatalf("Extract(%dx%d solid) returned %d colours, want 1", size, size, p.Len())
				}
				if p.Colours[0] != New(12, 34, 56) {
					t.Errorf("colour = %s, want #0c2238", p.Colours[0])
				}
				if p.Weights[0] != 1 {
					t.Errorf("weight = %v, want 1", p.Weights[0])
				}
			}
		})
	}
}

func TestExtractQuadrants(t *testing.T) {
	ctx := context.Background()

	for alg, e := range extractors(t) {
		t.Run(string(alg), func(t *testing.T) {
			p, err := e.Extract(ctx, quadrantImage(), 4)
			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}
			want := []string{"#dc1e28", "#1e3cc8", "#28b446", "#f0dc14"}
			if diff := cmp.Diff(want, p.ToHex()); diff != "" {
				t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtractCardinality(t *testing.T) {
	ctx := context.Background()
	img := noiseImage(150, 120, 8)

	for alg, e := range extractors(t) {
		t.Run(string(alg), func(t *testing.T) {
			for _, k := range []int{1, 2, 5, 8, 16} {
				p, err := e.Extract(ctx, img, k)
				if err != nil {
					t.Fatalf("Extract(k=%d) error = %v", k, err)
				}
				if p.Len() == 0 || p.Len() > k {
					t.Errorf("Extract(k=%d) returned %d colours", k, p.Len())
				}
				seen := make(map[Color]bool)
				for _, c := range p.Colours {
					if seen[c] {
						t.Errorf("Extract(k=%d) repeated colour %s", k, c)
					}
					seen[c] = true
				}

				total := 0.0
				for i, w := range p.Weights {
					total += w
					if i > 0 && w > p.Weights[i-1] {
						t.Errorf("weights not descending at %d: %v", i, p.Weights)
					}
				}
				if total < 0.999 || total > 1.001 {
					t.Errorf("weights sum to %v, want 1", total)
				}
			}
		})
	}
}

func TestExtractDeterministic(t *testing.T) {
	ctx := context.Background()
	img := noiseImage(200, 200, 17)

	for alg, e := range extractors(t) {
		t.Run(string(alg), func(t *testing.T) {
			first, err := e.Extract(ctx, img, 8)
			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}
			for range 3 {
				again, err := e.Extract(ctx, img, 8)
				if err != nil {
					t.Fatalf("Extract() error = %v", err)
				}
				if diff := cmp.Diff(first, again); diff != "" {
					t.Fatalf("Extract() not deterministic (-first +again):\n%s", diff)
				}
			}
		})
	}
}

func TestExtractIgnoresTransparentPixels(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	fillRect(img, image.Rect(0, 0, 10, 20), color.NRGBA{R: 255, A: 255})
	// Semi-transparent pixels count as opaque.
	fillRect(img, image.Rect(10, 0, 12, 20), color.NRGBA{B: 255, A: 10})

	p, err := ExtractPalette(context.Background(), img, 8)
	if err != nil {
		t.Fatalf("ExtractPalette() error = %v", err)
	}
	want := []string{"#ff0000", "#0000ff"}
	if diff := cmp.Diff(want, p.ToHex()); diff != "" {
		t.Errorf("ExtractPalette() mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractErrors(t *testing.T) {
	ctx := context.Background()
	transparent := image.NewNRGBA(image.Rect(0, 0, 16, 16))

	tests := []struct {
		name    string
		img     image.Image
		count   int
		wantErr error
	}{
		{name: "nil image", img: nil, count: 8, wantErr: ErrUnsupportedImage},
		{name: "empty bounds", img: image.NewNRGBA(image.Rect(0, 0, 0, 0)), count: 8, wantErr: ErrUnsupportedImage},
		{name: "fully transparent", img: transparent, count: 8, wantErr: ErrUnsupportedImage},
		{name: "zero count", img: quadrantImage(), count: 0, wantErr: ErrInvalidArgument},
		{name: "negative count", img: quadrantImage(), count: -3, wantErr: ErrInvalidArgument},
		{name: "count too large", img: quadrantImage(), count: MaxColourCount + 1, wantErr: ErrInvalidArgument},
	}

	for alg, e := range extractors(t) {
		for _, tt := range tests {
			t.Run(string(alg)+"/"+tt.name, func(t *testing.T) {
				p, err := e.Extract(ctx, tt.img, tt.count)
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Extract() error = %v, want %v", err, tt.wantErr)
				}
				if p != nil {
					t.Errorf("Extract() returned palette %v alongside error", p)
				}
			})
		}
	}
}

func TestExtractCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for alg, e := range extractors(t) {
		t.Run(string(alg), func(t *testing.T) {
			p, err := e.Extract(ctx, noiseImage(64, 64, 2), 8)
			if !errors.Is(err, context.Canceled) {
				t.Errorf("Extract() error = %v, want context.Canceled", err)
			}
			if p != nil {
				t.Errorf("cancelled Extract() returned a palette")
			}
		})
	}
}

func TestNewExtractorUnknown(t *testing.T) {
	if _, err := NewExtractor("octree"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NewExtractor(octree) error = %v, want ErrInvalidArgument", err)
	}
}

func TestExtractorConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  ExtractorConfig
		wantErr bool
	}{
		{name: "default", config: DefaultExtractorConfig()},
		{name: "kmeans", config: ExtractorConfig{Algorithm: AlgorithmKMeans, ColorCount: 16}},
		{name: "unknown algorithm", config: ExtractorConfig{Algorithm: "octree", ColorCount: 8}, wantErr: true},
		{name: "zero colours", config: ExtractorConfig{Algorithm: AlgorithmMedianCut, ColorCount: 0}, wantErr: true},
		{name: "too many colours", config: ExtractorConfig{Algorithm: AlgorithmMedianCut, ColorCount: 257}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
