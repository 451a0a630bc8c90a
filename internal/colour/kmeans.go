package colour

import (
	"context"
	"image"
	"math"
	"math/rand/v2"
)

// DefaultKMeansSeed seeds centroid initialisation so extraction is reproducible.
const DefaultKMeansSeed uint64 = 0x5eed

// KMeansExtractor implements colour extraction using k-means clustering.
type KMeansExtractor struct {
	maxIterations int
	convergence   float64
	seed          uint64
}

// NewKMeansExtractor creates a new KMeansExtractor with default settings.
func NewKMeansExtractor() *KMeansExtractor {
	return &KMeansExtractor{
		maxIterations: 20,
		convergence:   2.0,
		seed:          DefaultKMeansSeed,
	}
}

// WithSeed returns a copy of the extractor that initialises centroids from seed.
func (e *KMeansExtractor) WithSeed(seed uint64) *KMeansExtractor {
	out := *e
	out.seed = seed
	return &out
}

// Extract extracts colours from an image using k-means clustering.
// Returns colours with their relative weights (cluster sizes).
func (e *KMeansExtractor) Extract(ctx context.Context, img image.Image, count int) (*ExtractedPalette, error) {
	return extract(ctx, img, count, e.quantise)
}

// point3D represents a point in 3D RGB colour space.
type point3D struct {
	R, G, B float64
}

// distance calculates the Euclidean distance between two points in RGB space.
func (p point3D) distance(other point3D) float64 {
	dr := p.R - other.R
	dg := p.G - other.G
	db := p.B - other.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// quantise performs k-means clustering on the pixel data.
func (e *KMeansExtractor) quantise(ctx context.Context, pixels []Color, k int) ([]cluster, error) {
	rng := rand.New(rand.NewPCG(e.seed, e.seed))

	points := make([]point3D, len(pixels))
	for i, c := range pixels {
		points[i] = point3D{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
	}

	centroids := e.initializeCentroidsKMeansPlusPlus(rng, points, k)
	k = len(centroids)
	assignments := make([]int, len(points))

	// Iterate until convergence or max iterations.
	for iter := 0; iter < e.maxIterations; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		changed := 0
		for i, point := range points {
			nearest := e.findNearestCentroid(point, centroids)
			if assignments[i] != nearest || iter == 0 {
				assignments[i] = nearest
				changed++
			}
		}

		// If very few assignments changed (< 1%), we've converged.
		if iter > 0 && float64(changed)/float64(len(points)) < 0.01 {
			break
		}

		newCentroids := e.recalculateCentroids(rng, points, assignments, k)

		totalMovement := 0.0
		for i := range centroids {
			totalMovement += centroids[i].distance(newCentroids[i])
		}
		centroids = newCentroids

		if totalMovement/float64(k) < e.convergence {
			// Final assignment against the settled centroids.
			for i, point := range points {
				assignments[i] = e.findNearestCentroid(point, centroids)
			}
			break
		}
	}

	counts := make([]int, k)
	for _, a := range assignments {
		counts[a]++
	}

	clusters := make([]cluster, k)
	for i, c := range centroids {
		clusters[i] = cluster{
			colour: New(clampByte(c.R), clampByte(c.G), clampByte(c.B)),
			count:  counts[i],
		}
	}
	return clusters, nil
}

// initializeCentroidsKMeansPlusPlus initializes centroids using k-means++.
// Callers guarantee more than k distinct points, so every draw can find a
// point at non-zero distance from the chosen centroids.
func (e *KMeansExtractor) initializeCentroidsKMeansPlusPlus(rng *rand.Rand, points []point3D, k int) []point3D {
	centroids := make([]point3D, 0, k)
	centroids = append(centroids, points[rng.IntN(len(points))])

	distances := make([]float64, len(points))
	for len(centroids) < k {
		totalDistance := 0.0
		for i, point := range points {
			minDist := math.MaxFloat64
			for _, centroid := range centroids {
				minDist = math.Min(minDist, point.distance(centroid))
			}
			distances[i] = minDist * minDist
			totalDistance += distances[i]
		}

		if totalDistance == 0 {
			break
		}

		// Choose next centroid with probability proportional to squared distance.
		target := rng.Float64() * totalDistance
		cumulative := 0.0
		next := -1
		for i, dist := range distances {
			if dist == 0 {
				continue
			}
			cumulative += dist
			next = i
			if cumulative >= target {
				break
			}
		}
		centroids = append(centroids, points[next])
	}

	return centroids
}

// findNearestCentroid finds the index of the nearest centroid to a point.
func (e *KMeansExtractor) findNearestCentroid(point point3D, centroids []point3D) int {
	minDist := math.MaxFloat64
	nearest := 0

	for i, centroid := range centroids {
		dist := point.distance(centroid)
		if dist < minDist {
			minDist = dist
			nearest = i
		}
	}

	return nearest
}

// recalculateCentroids recalculates centroid positions based on assigned points.
// An empty cluster is re-seeded from a random point.
func (e *KMeansExtractor) recalculateCentroids(rng *rand.Rand, points []point3D, assignments []int, k int) []point3D {
	sums := make([]point3D, k)
	counts := make([]int, k)

	for i, point := range points {
		cluster := assignments[i]
		sums[cluster].R += point.R
		sums[cluster].G += point.G
		sums[cluster].B += point.B
		counts[cluster]++
	}

	centroids := make([]point3D, k)
	for i := range k {
		if counts[i] > 0 {
			centroids[i] = point3D{
				R: sums[i].R / float64(counts[i]),
				G: sums[i].G / float64(counts[i]),
				B: sums[i].B / float64(counts[i]),
			}
		} else {
			centroids[i] = points[rng.IntN(len(points))]
		}
	}

	return centroids
}
