package colour

import (
	"fmt"
	"strings"
)

// MinGradientStops is the smallest number of stops a gradient accepts.
const MinGradientStops = 2

// DirectionToRight is the only gradient direction currently produced.
const DirectionToRight = "to right"

// GradientSpec describes a linear gradient.
type GradientSpec struct {
	Stops     []Color `json:"stops"`
	Direction string  `json:"direction"`
}

// LinearGradient builds a left-to-right gradient through the given stops, in order.
func LinearGradient(stops ...Color) (*GradientSpec, error) {
	if len(stops) < MinGradientStops {
		return nil, fmt.Errorf("%w: gradient needs at least %d stops, got %d", ErrInvalidArgument, MinGradientStops, len(stops))
	}

	copied := make([]Color, len(stops))
	copy(copied, stops)
	return &GradientSpec{Stops: copied, Direction: DirectionToRight}, nil
}

// CSS serialises the gradient as a single background declaration, e.g.
//
//	background: linear-gradient(to right, #ffffff, #000000);
func (g *GradientSpec) CSS() string {
	hexes := make([]string, len(g.Stops))
	for i, c := range g.Stops {
		hexes[i] = c.Hex()
	}
	return fmt.Sprintf("background: linear-gradient(%s, %s);", g.Direction, strings.Join(hexes, ", "))
}

// ToCSS is the function form of GradientSpec.CSS.
func ToCSS(g *GradientSpec) string { return g.CSS() }

// Sample returns n colours evenly spaced along the gradient, including both
// ends. Stops are assumed evenly spaced and are blended in RGB.
func (g *GradientSpec) Sample(n int) ([]Color, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: gradient sample needs at least 2 colours, got %d", ErrInvalidArgument, n)
	}
	if len(g.Stops) < MinGradientStops {
		return nil, fmt.Errorf("%w: gradient needs at least %d stops, got %d", ErrInvalidArgument, MinGradientStops, len(g.Stops))
	}

	segments := float64(len(g.Stops) - 1)
	out := make([]Color, n)
	for i := range out {
		pos := float64(i) / float64(n-1) * segments
		seg := int(pos)
		if seg >= len(g.Stops)-1 {
			seg = len(g.Stops) - 2
		}
		t := pos - float64(seg)

		from := toColorful(g.Stops[seg])
		to := toColorful(g.Stops[seg+1])
		out[i] = fromColorful(from.BlendRgb(to, t))
	}
	return out, nil
}
