package image

import (
	"image"

	"golang.org/x/image/draw"
)

// Downscale returns img scaled so its longest side is at most maxDimension,
// preserving aspect ratio. Images already within bounds, and a non-positive
// maxDimension, return img unchanged.
func Downscale(img image.Image, maxDimension int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if maxDimension <= 0 || (w <= maxDimension && h <= maxDimension) {
		return img
	}

	var dw, dh int
	if w >= h {
		dw = maxDimension
		dh = max(1, h*maxDimension/w)
	} else {
		dh = maxDimension
		dw = max(1, w*maxDimension/h)
	}

	// NRGBA keeps fully transparent pixels distinguishable after scaling.
	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}
