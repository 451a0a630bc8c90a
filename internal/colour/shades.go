package colour

import "fmt"

// DefaultShadeSteps is the default length of a shade ramp.
const DefaultShadeSteps = 10

// ShadeRamp sweeps lightness linearly from 0% to 100% across steps samples,
// holding hue and saturation at the values of c. Both endpoints are included,
// so the first entry is black and the last is white.
func ShadeRamp(c Color, steps int) ([]Color, error) {
	if steps < 2 {
		return nil, fmt.Errorf("%w: shade ramp needs at least 2 steps, got %d", ErrInvalidArgument, steps)
	}

	h, s, _ := c.HSL()
	ramp := make([]Color, steps)
	for i := range ramp {
		ramp[i] = FromHSL(h, s, float64(i)/float64(steps-1))
	}
	return ramp, nil
}
