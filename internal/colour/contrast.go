package colour

import (
	"fmt"
	"math"
)

// WCAG 2.x contrast thresholds.
// https://www.w3.org/TR/WCAG21/#contrast-minimum
const (
	ThresholdAANormal  = 4.5
	ThresholdAAANormal = 7.0
	ThresholdAALarge   = 3.0
	ThresholdAAALarge  = 4.5
)

// ContrastResult is the WCAG classification of a contrast ratio.
type ContrastResult struct {
	Ratio     float64 `json:"ratio"`
	AANormal  bool    `json:"aa_normal"`
	AAANormal bool    `json:"aaa_normal"`
	AALarge   bool    `json:"aa_large"`
	AAALarge  bool    `json:"aaa_large"`
}

// String renders the ratio rounded to two decimals, e.g. "18.73:1".
func (r ContrastResult) String() string {
	return fmt.Sprintf("%.2f:1", math.Round(r.Ratio*100)/100)
}

// QuickLuminance is the perceptual brightness heuristic (0.299R + 0.587G + 0.114B),
// normalised to [0, 1]. It is only suitable for choosing black or white text;
// use RelativeLuminance for anything reported against WCAG thresholds.
func QuickLuminance(c Color) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255.0
}

// RelativeLuminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func RelativeLuminance(c Color) float64 {
	r := linearise(float64(c.R) / 255.0)
	g := linearise(float64(c.G) / 255.0)
	b := linearise(float64(c.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// linearise applies the sRGB gamma expansion to a channel in [0, 1].
func linearise(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// The result does not depend on argument order.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(a, b Color) float64 {
	l1 := RelativeLuminance(a)
	l2 := RelativeLuminance(b)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// Classify evaluates a contrast ratio against the WCAG thresholds.
// All comparisons are inclusive.
func Classify(ratio float64) ContrastResult {
	return ContrastResult{
		Ratio:     ratio,
		AANormal:  ratio >= ThresholdAANormal,
		AAANormal: ratio >= ThresholdAAANormal,
		AALarge:   ratio >= ThresholdAALarge,
		AAALarge:  ratio >= ThresholdAAALarge,
	}
}

// CheckContrast computes and classifies the contrast between text and background.
func CheckContrast(text, background Color) ContrastResult {
	return Classify(ContrastRatio(text, background))
}

// PickReadableText returns black or white, whichever reads better on bg.
// Uses QuickLuminance: strictly above 0.5 picks black, otherwise white.
func PickReadableText(bg Color) Color {
	if QuickLuminance(bg) > 0.5 {
		return Black
	}
	return White
}

// ContrastCSS returns a CSS snippet applying the text and background pair.
func ContrastCSS(text, background Color) string {
	return fmt.Sprintf("color: %s;\nbackground-color: %s;", text.Hex(), background.Hex())
}
