package colour

import (
	"math"
	"testing"
)

func mustHex(t *testing.T, s string) Color {
	t.Helper()
	c, err := ParseHex(s)
	if err != nil {
		t.Fatalf("ParseHex(%q) error = %v", s, err)
	}
	return c
}

func TestRelativeLuminance(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want float64
	}{
		{name: "black", c: Black, want: 0},
		{name: "white", c: White, want: 1},
		{name: "pure red", c: New(255, 0, 0), want: 0.2126},
		{name: "pure green", c: New(0, 255, 0), want: 0.7152},
		{name: "pure blue", c: New(0, 0, 255), want: 0.0722},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RelativeLuminance(tt.c); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("RelativeLuminance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQuickLuminanceDiffersFromRelative(t *testing.T) {
	grey := New(128, 128, 128)
	quick := QuickLuminance(grey)
	wcag := RelativeLuminance(grey)

	if math.Abs(quick-128.0/255.0) > 1e-9 {
		t.Errorf("QuickLuminance(grey) = %v, want %v", quick, 128.0/255.0)
	}
	if math.Abs(quick-wcag) < 0.1 {
		t.Errorf("expected quick (%v) and WCAG (%v) luminance to differ for mid grey", quick, wcag)
	}
}

func TestContrastRatioBounds(t *testing.T) {
	if got := ContrastRatio(Black, White); math.Abs(got-21) > 1e-9 {
		t.Errorf("ContrastRatio(black, white) = %v, want 21", got)
	}

	for _, hex := range []string{"#000000", "#ffffff", "#777777", "#6366f1", "#ff8800"} {
		c := mustHex(t, hex)
		if got := ContrastRatio(c, c); got != 1 {
			t.Errorf("ContrastRatio(%s, %s) = %v, want 1", hex, hex, got)
		}
	}
}

func TestContrastRatioSymmetric(t *testing.T) {
	g := NewSeededGenerator(42)
	for range 200 {
		a, b := g.RandomColor(), g.RandomColor()
		ab, ba := ContrastRatio(a, b), ContrastRatio(b, a)
		if ab != ba {
			t.Fatalf("ContrastRatio(%s, %s) = %v but reversed = %v", a, b, ab, ba)
		}
		if ab < 1 || ab > 21+1e-9 {
			t.Fatalf("ContrastRatio(%s, %s) = %v out of range", a, b, ab)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		ratio float64
		want  ContrastResult
	}{
		{ratio: 1, want: ContrastResult{Ratio: 1}},
		{ratio: 2.99, want: ContrastResult{Ratio: 2.99}},
		{ratio: 3, want: ContrastResult{Ratio: 3, AALarge: true}},
		{ratio: 4.5, want: ContrastResult{Ratio: 4.5, AANormal: true, AALarge: true, AAALarge: true}},
		{ratio: 6.99, want: ContrastResult{Ratio: 6.99, AANormal: true, AALarge: true, AAALarge: true}},
		{ratio: 7, want: ContrastResult{Ratio: 7, AANormal: true, AAANormal: true, AALarge: true, AAALarge: true}},
		{ratio: 21, want: ContrastResult{Ratio: 21, AANormal: true, AAANormal: true, AALarge: true, AAALarge: true}},
	}

	for _, tt := range tests {
		t.Run(ContrastResult{Ratio: tt.ratio}.String(), func(t *testing.T) {
			if got := Classify(tt.ratio); got != tt.want {
				t.Errorf("Classify(%v) = %+v, want %+v", tt.ratio, got, tt.want)
			}
		})
	}
}

func TestClassifyMonotonic(t *testing.T) {
	for ratio := 7.0; ratio <= 21; ratio += 0.25 {
		r := Classify(ratio)
		if !r.AANormal || !r.AAANormal || !r.AALarge || !r.AAALarge {
			t.Errorf("Classify(%v) = %+v, want all passing", ratio, r)
		}
	}
}

func TestCheckContrastScenarios(t *testing.T) {
	t.Run("white on near black", func(t *testing.T) {
		got := CheckContrast(mustHex(t, "#FFFFFF"), mustHex(t, "#121212"))
		if got.Ratio < 18 || got.Ratio > 19 {
			t.Errorf("ratio = %v, want about 18.7", got.Ratio)
		}
		if !got.AANormal || !got.AAANormal || !got.AALarge || !got.AAALarge {
			t.Errorf("CheckContrast() = %+v, want all passing", got)
		}
		if got.String() != "18.73:1" {
			t.Errorf("String() = %q, want 18.73:1", got.String())
		}
	})

	t.Run("grey on grey", func(t *testing.T) {
		got := CheckContrast(mustHex(t, "#777777"), mustHex(t, "#888888"))
		if got.Ratio >= 3 {
			t.Errorf("ratio = %v, want < 3", got.Ratio)
		}
		if got.AANormal || got.AAANormal || got.AALarge || got.AAALarge {
			t.Errorf("CheckContrast() = %+v, want all failing", got)
		}
	})
}

func TestPickReadableText(t *testing.T) {
	tests := []struct {
		name string
		bg   Color
		want Color
	}{
		{name: "black background", bg: Black, want: White},
		{name: "white background", bg: White, want: Black},
		{name: "yellow background", bg: New(255, 255, 0), want: Black},
		{name: "navy background", bg: New(0, 0, 128), want: White},
		{name: "near black", bg: mustHex(t, "#121212"), want: White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PickReadableText(tt.bg); got != tt.want {
				t.Errorf("PickReadableText(%s) = %s, want %s", tt.bg, got, tt.want)
			}
		})
	}
}

func TestPickReadableTextMidpoint(t *testing.T) {
	// Greys straddling 0.5 quick luminance: 127/255 < 0.5 < 128/255.
	if got := PickReadableText(New(127, 127, 127)); got != White {
		t.Errorf("PickReadableText(#7f7f7f) = %s, want white", got)
	}
	if got := PickReadableText(New(128, 128, 128)); got != Black {
		t.Errorf("PickReadableText(#808080) = %s, want black", got)
	}
}

func TestContrastCSS(t *testing.T) {
	want := "color: #ffffff;\nbackground-color: #121212;"
	if got := ContrastCSS(White, New(0x12, 0x12, 0x12)); got != want {
		t.Errorf("ContrastCSS() = %q, want %q", got, want)
	}
}
