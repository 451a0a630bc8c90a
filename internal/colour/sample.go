package colour

import (
	"context"
	"image"
	"image/color"
	"math"
	"sort"
)

// maxSamples bounds the number of pixels read from large images.
const maxSamples = 10000

// samplePixels samples pixels from the image, skipping fully transparent ones.
// Small images are read completely; larger ones on a regular grid.
func samplePixels(ctx context.Context, img image.Image) ([]Color, error) {
	bounds := img.Bounds()
	totalPixels := bounds.Dx() * bounds.Dy()

	step := 1
	if totalPixels > maxSamples {
		step = int(math.Ceil(math.Sqrt(float64(totalPixels) / float64(maxSamples))))
	}

	pixels := make([]Color, 0, min(totalPixels, maxSamples))
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			n := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if n.A == 0 {
				continue
			}
			pixels = append(pixels, New(n.R, n.G, n.B))
		}
	}

	return pixels, nil
}

// distinctColours counts each distinct colour in pixels.
func distinctColours(pixels []Color) []cluster {
	index := make(map[Color]int)
	var out []cluster
	for _, p := range pixels {
		if i, ok := index[p]; ok {
			out[i].count++
			continue
		}
		index[p] = len(out)
		out = append(out, cluster{colour: p, count: 1})
	}
	return out
}

// mergeClusters drops empty clusters and merges clusters that resolved to
// the same colour, so a palette never repeats itself.
func mergeClusters(clusters []cluster) []cluster {
	index := make(map[Color]int)
	out := make([]cluster, 0, len(clusters))
	for _, c := range clusters {
		if c.count == 0 {
			continue
		}
		if i, ok := index[c.colour]; ok {
			out[i].count += c.count
			continue
		}
		index[c.colour] = len(out)
		out = append(out, c)
	}
	return out
}

// sortClusters orders by population descending, then by hex for stable ties.
func sortClusters(clusters []cluster) {
	sort.SliceStable(clusters, func(i, j int) bool {
		if clusters[i].count != clusters[j].count {
			return clusters[i].count > clusters[j].count
		}
		return clusters[i].colour.Hex() < clusters[j].colour.Hex()
	})
}
