package colour_test

import (
	"fmt"

	"github.com/jmylchreest/huekit/internal/colour"
)

func ExampleParse() {
	c, err := colour.Parse("rgb(51, 102, 204)")
	if err != nil {
		panic(err)
	}
	fmt.Println(c.Hex(), c.HSLString())
	// Output: #3366cc hsl(220, 60%, 50%)
}

func ExampleCheckContrast() {
	bg, _ := colour.ParseHex("#121212")
	result := colour.CheckContrast(colour.White, bg)
	fmt.Println(result, result.AANormal, result.AAANormal)
	// Output: 18.73:1 true true
}

func ExamplePickReadableText() {
	bg, _ := colour.ParseHex("#ffcc00")
	fmt.Println(colour.PickReadableText(bg))
	// Output: #000000
}

func ExampleTriadic() {
	for _, c := range colour.Triadic(colour.New(255, 0, 0)) {
		fmt.Println(c)
	}
	// Output:
	// #ff0000
	// #00ff00
	// #0000ff
}

func ExampleShadeRamp() {
	base, _ := colour.ParseHex("#3366cc")
	shades, _ := colour.ShadeRamp(base, 3)
	fmt.Println(shades)
	// Output: [#000000 #3366cc #ffffff]
}

func ExampleLinearGradient() {
	g, _ := colour.LinearGradient(colour.New(255, 0, 0), colour.New(0, 0, 255))
	fmt.Println(g.CSS())
	// Output: background: linear-gradient(to right, #ff0000, #0000ff);
}
