package hexcolor

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-359 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a color value in multiple representations.
//
//   - Hex: the canonical six-digit uppercase form used throughout this package
//   - CSS: lowercase "#rrggbb" for direct use in stylesheets
//   - RGB: 8-bit components
//   - HSL: perceptual description, rounded to whole degrees and percents
type ColorResult struct {
	Hex string   `json:"hex"`
	CSS string   `json:"css"`
	RGB Color    `json:"rgb"`
	HSL HSLColor `json:"hsl"`
}

// Describe expands a color into its ColorResult.
func Describe(c Color) ColorResult {
	cf := toColorful(c)
	h, s, l := cf.Hsl()

	hue := int(math.Round(h)) % 360

	return ColorResult{
		Hex: c.Hex(),
		CSS: cf.Hex(),
		RGB: c,
		HSL: HSLColor{
			H: hue,
			S: int(math.Round(s * 100)),
			L: int(math.Round(l * 100)),
		},
	}
}

func toColorful(c Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
