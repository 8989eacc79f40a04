package hexcolor

import "fmt"

// Mean returns the channel-wise floor average of a and b.
func Mean(a, b Color) Color {
	return Color{
		R: mean8(a.R, b.R),
		G: mean8(a.G, b.G),
		B: mean8(a.B, b.B),
	}
}

// mean8 averages two channels without overflowing uint8.
func mean8(x, y uint8) uint8 {
	return uint8((uint16(x) + uint16(y)) / 2)
}

// Average blends two hex color strings and returns the result as a hex string.
//
// Parameters:
//   - color1, color2: Six hex digits each, case-insensitive (e.g. "123BDF").
//
// Returns:
//   - string: Six uppercase hex digits, each channel zero-padded.
//   - error: A *FormatError if either input is malformed. color1 is checked
//     first, so its error wins when both are bad.
//
// # Example
//
//	out, err := hexcolor.Average("123BDF", "645AAA")
//	// out == "3B4AC4"
func Average(color1, color2 string) (string, error) {
	a, err := Parse(color1)
	if err != nil {
		return "", fmt.Errorf("color1: %w", err)
	}
	b, err := Parse(color2)
	if err != nil {
		return "", fmt.Errorf("color2: %w", err)
	}
	return Mean(a, b).Hex(), nil
}
