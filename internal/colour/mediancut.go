package colour

import (
	"context"
	"image"
	"sort"
)

const (
	// sigBits is the per-channel precision of the median-cut histogram.
	sigBits = 5
	rshift  = 8 - sigBits

	// populationPhase is the share of boxes split by population alone before
	// switching to population*volume, which favours large sparse regions.
	populationPhase = 0.75
)

// MedianCutExtractor implements colour extraction using modified median cut
// quantisation over a 5-bit-per-channel histogram.
type MedianCutExtractor struct{}

// NewMedianCutExtractor creates a new MedianCutExtractor.
func NewMedianCutExtractor() *MedianCutExtractor {
	return &MedianCutExtractor{}
}

// Extract extracts colours from an image using median cut.
// Returns colours with their relative weights (box populations).
func (e *MedianCutExtractor) Extract(ctx context.Context, img image.Image, count int) (*ExtractedPalette, error) {
	return extract(ctx, img, count, e.quantise)
}

// bin is one occupied histogram cell. Sums keep full 8-bit precision so box
// averages are not biased towards cell corners.
type bin struct {
	r, g, b          uint8 // quantised coordinates
	count            int
	sumR, sumG, sumB int
}

// colourBox is a set of bins and their bounding box in quantised space.
type colourBox struct {
	bins       []bin
	population int
	min, max   [3]uint8
}

func newColourBox(bins []bin) colourBox {
	box := colourBox{bins: bins}
	box.min = [3]uint8{255, 255, 255}
	for _, b := range bins {
		box.population += b.count
		for axis, v := range [3]uint8{b.r, b.g, b.b} {
			box.min[axis] = min(box.min[axis], v)
			box.max[axis] = max(box.max[axis], v)
		}
	}
	return box
}

func (b colourBox) volume() int {
	v := 1
	for axis := range 3 {
		v *= int(b.max[axis]-b.min[axis]) + 1
	}
	return v
}

func (b colourBox) canSplit() bool {
	return len(b.bins) > 1
}

// longestAxis returns the channel with the widest range (0=R, 1=G, 2=B).
func (b colourBox) longestAxis() int {
	axis := 0
	for i := 1; i < 3; i++ {
		if b.max[i]-b.min[i] > b.max[axis]-b.min[axis] {
			axis = i
		}
	}
	return axis
}

// split cuts the box at the population median of its longest axis.
func (b colourBox) split() (colourBox, colourBox) {
	axis := b.longestAxis()
	bins := make([]bin, len(b.bins))
	copy(bins, b.bins)
	sort.Slice(bins, func(i, j int) bool {
		ki, kj := binKey(bins[i], axis), binKey(bins[j], axis)
		return ki < kj
	})

	half := b.population / 2
	cut := 1
	cumulative := 0
	for i, bn := range bins {
		cumulative += bn.count
		if cumulative >= half {
			cut = i + 1
			break
		}
	}
	// Both halves must be non-empty.
	cut = max(1, min(cut, len(bins)-1))

	return newColourBox(bins[:cut]), newColourBox(bins[cut:])
}

// binKey orders bins along axis, using the remaining channels as tie-breakers.
func binKey(b bin, axis int) int {
	c := [3]int{int(b.r), int(b.g), int(b.b)}
	return c[axis]<<(2*sigBits) | c[(axis+1)%3]<<sigBits | c[(axis+2)%3]
}

// average returns the population-weighted mean colour of the box.
func (b colourBox) average() Color {
	var r, g, bl int
	for _, bn := range b.bins {
		r += bn.sumR
		g += bn.sumG
		bl += bn.sumB
	}
	n := float64(b.population)
	return New(
		clampByte(float64(r)/n),
		clampByte(float64(g)/n),
		clampByte(float64(bl)/n),
	)
}

func (e *MedianCutExtractor) quantise(ctx context.Context, pixels []Color, count int) ([]cluster, error) {
	boxes := []colourBox{newColourBox(buildHistogram(pixels))}

	populationTarget := max(1, int(float64(count)*populationPhase))
	for len(boxes) < count {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		byVolume := len(boxes) >= populationTarget
		idx := pickBox(boxes, byVolume)
		if idx < 0 {
			break
		}

		left, right := boxes[idx].split()
		boxes[idx] = left
		boxes = append(boxes, right)
	}

	clusters := make([]cluster, len(boxes))
	for i, box := range boxes {
		clusters[i] = cluster{colour: box.average(), count: box.population}
	}
	return clusters, nil
}

// pickBox returns the index of the splittable box with the highest priority,
// or -1 when nothing can be split. Ties go to the lowest index.
func pickBox(boxes []colourBox, byVolume bool) int {
	best := -1
	bestScore := -1
	for i, box := range boxes {
		if !box.canSplit() {
			continue
		}
		score := box.population
		if byVolume {
			score *= box.volume()
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	return best
}

// buildHistogram buckets pixels into occupied bins, ordered by first appearance.
func buildHistogram(pixels []Color) []bin {
	index := make(map[[3]uint8]int)
	var bins []bin
	for _, p := range pixels {
		key := [3]uint8{p.R >> rshift, p.G >> rshift, p.B >> rshift}
		i, ok := index[key]
		if !ok {
			i = len(bins)
			index[key] = i
			bins = append(bins, bin{r: key[0], g: key[1], b: key[2]})
		}
		bins[i].count++
		bins[i].sumR += int(p.R)
		bins[i].sumG += int(p.G)
		bins[i].sumB += int(p.B)
	}
	return bins
}
