package colour

import (
	"context"
	"fmt"
	"image"
)

// Extractor defines the interface for colour extraction algorithms.
type Extractor interface {
	// Extract reduces the image to at most count representative colours.
	// Fully transparent pixels are ignored; all others are treated as opaque.
	Extract(ctx context.Context, img image.Image, count int) (*ExtractedPalette, error)
}

// Algorithm represents the colour extraction algorithm type.
type Algorithm string

const (
	// AlgorithmMedianCut recursively splits the RGB cube at population medians.
	// It is fully deterministic.
	AlgorithmMedianCut Algorithm = "mediancut"

	// AlgorithmKMeans uses k-means clustering with k-means++ seeding from a
	// fixed seed, so results are reproducible.
	AlgorithmKMeans Algorithm = "kmeans"
)

// DefaultColourCount is the number of colours extracted when none is given.
const DefaultColourCount = 8

// MaxColourCount is the largest number of colours that may be requested.
const MaxColourCount = 256

// ValidAlgorithms returns a list of valid algorithm names.
func ValidAlgorithms() []Algorithm {
	return []Algorithm{
		AlgorithmMedianCut,
		AlgorithmKMeans,
	}
}

// IsValidAlgorithm checks if the given algorithm name is valid.
func IsValidAlgorithm(alg Algorithm) bool {
	for _, valid := range ValidAlgorithms() {
		if alg == valid {
			return true
		}
	}
	return false
}

// NewExtractor creates a new Extractor based on the specified algorithm.
func NewExtractor(alg Algorithm) (Extractor, error) {
	switch alg {
	case AlgorithmMedianCut:
		return NewMedianCutExtractor(), nil
	case AlgorithmKMeans:
		return NewKMeansExtractor(), nil
	default:
		return nil, fmt.Errorf("%w: unknown algorithm: %s (valid algorithms: %v)", ErrInvalidArgument, alg, ValidAlgorithms())
	}
}

// ExtractPalette extracts count colours using the default algorithm.
func ExtractPalette(ctx context.Context, img image.Image, count int) (*ExtractedPalette, error) {
	return NewMedianCutExtractor().Extract(ctx, img, count)
}

// ExtractorConfig holds configuration for colour extraction.
type ExtractorConfig struct {
	Algorithm  Algorithm
	ColorCount int
}

// DefaultExtractorConfig returns the default extractor configuration.
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		Algorithm:  AlgorithmMedianCut,
		ColorCount: DefaultColourCount,
	}
}

// Validate validates the extractor configuration.
func (c ExtractorConfig) Validate() error {
	if !IsValidAlgorithm(c.Algorithm) {
		return fmt.Errorf("%w: invalid algorithm: %s", ErrInvalidArgument, c.Algorithm)
	}
	return validateCount(c.ColorCount)
}

func validateCount(count int) error {
	if count < 1 {
		return fmt.Errorf("%w: color count must be at least 1, got %d", ErrInvalidArgument, count)
	}
	if count > MaxColourCount {
		return fmt.Errorf("%w: color count too large: %d (maximum: %d)", ErrInvalidArgument, count, MaxColourCount)
	}
	return nil
}

// quantiser reduces more than count distinct colours to at most count clusters.
type quantiser func(ctx context.Context, pixels []Color, count int) ([]cluster, error)

// cluster is a representative colour and the number of sampled pixels it stands for.
type cluster struct {
	colour Color
	count  int
}

// extract runs the steps shared by every algorithm: validation, sampling,
// the few-colours shortcut, and normalisation of the result.
func extract(ctx context.Context, img image.Image, count int, quantise quantiser) (*ExtractedPalette, error) {
	if err := validateCount(count); err != nil {
		return nil, err
	}
	if img == nil {
		return nil, fmt.Errorf("%w: image cannot be nil", ErrUnsupportedImage)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: image has no pixels", ErrUnsupportedImage)
	}

	pixels, err := samplePixels(ctx, img)
	if err != nil {
		return nil, err
	}
	if len(pixels) == 0 {
		return nil, fmt.Errorf("%w: image has no opaque pixels", ErrUnsupportedImage)
	}

	// If we want at least as many colours as exist, return all of them.
	unique := distinctColours(pixels)
	if count >= len(unique) {
		return newExtractedPalette(unique, len(pixels)), nil
	}

	clusters, err := quantise(ctx, pixels, count)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return newExtractedPalette(mergeClusters(clusters), len(pixels)), nil
}

// newExtractedPalette orders clusters by population and converts counts to weights.
func newExtractedPalette(clusters []cluster, total int) *ExtractedPalette {
	sortClusters(clusters)

	p := &ExtractedPalette{
		Colours: make([]Color, len(clusters)),
		Weights: make([]float64, len(clusters)),
	}
	for i, c := range clusters {
		p.Colours[i] = c.colour
		p.Weights[i] = float64(c.count) / float64(total)
	}
	return p
}
