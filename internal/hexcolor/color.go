package hexcolor

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// HexLen is the length of a color string: two hex digits for each channel.
const HexLen = 6

var (
	// ErrInvalidColorFormat is the umbrella error for every malformed color string.
	ErrInvalidColorFormat = errors.New("invalid color format")

	// ErrInvalidLength reports a color string that is not exactly HexLen bytes.
	ErrInvalidLength = fmt.Errorf("%w: length must be %d", ErrInvalidColorFormat, HexLen)

	// ErrInvalidHexDigit reports a byte outside [0-9a-fA-F].
	ErrInvalidHexDigit = fmt.Errorf("%w: invalid hex digit", ErrInvalidColorFormat)
)

// FormatError describes why a color string could not be parsed.
type FormatError struct {
	Input  string // The rejected input
	Offset int    // Byte offset of the first bad digit, or -1 for length errors
	Err    error  // ErrInvalidLength or ErrInvalidHexDigit
}

func (e *FormatError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("%q: %v (got %d)", e.Input, e.Err, len(e.Input))
	}
	return fmt.Sprintf("%q: %v %q at offset %d", e.Input, e.Err, e.Input[e.Offset], e.Offset)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Color is an RGB color with 8-bit channels.
type Color struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Parse decodes a 6-digit hex string such as "123BDF" or "ff8040".
//
// The whole string is validated before any channel is decoded; the returned
// error is always a *FormatError.
func Parse(s string) (Color, error) {
	if len(s) != HexLen {
		return Color{}, &FormatError{Input: s, Offset: -1, Err: ErrInvalidLength}
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		var bad hex.InvalidByteError
		offset := 0
		if errors.As(err, &bad) {
			offset = strings.IndexByte(s, byte(bad))
		}
		return Color{}, &FormatError{Input: s, Offset: offset, Err: ErrInvalidHexDigit}
	}

	return Color{R: b[0], G: b[1], B: b[2]}, nil
}

// MustParse is like Parse but panics on malformed input.
// It is meant for package-level constants and tests.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex renders the color as six uppercase hex digits, e.g. "07A0FF".
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// RGBA implements image/color.Color. Colors are always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}
