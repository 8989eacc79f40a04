// Package hexcolor parses, blends and describes RGB colors written as
// 6-digit hexadecimal strings.
//
// # Format
//
// A color string is exactly six hexadecimal digits, two per channel, in
// red, green, blue order. Digits are case-insensitive on input:
//
//	123BDF  ->  R=0x12 G=0x3B B=0xDF
//	ff8040  ->  R=0xFF G=0x80 B=0x40
//
// Output is always uppercase and every channel is zero-padded to two digits,
// so a rendered color is six characters long.
//
// No other notation is accepted: a leading '#', three-digit shorthand, named
// colors and alpha channels are all rejected.
//
// # Averaging
//
// Average blends two colors channel by channel using floor division:
//
//	out = (a + b) / 2
//
// The operation is commutative and returns its input unchanged when both
// arguments are equal.
//
// # Error Handling
//
// Malformed input is reported before any arithmetic is done. Every parse
// failure is a *FormatError wrapping one of:
//   - ErrInvalidLength: the string is not exactly six bytes long
//   - ErrInvalidHexDigit: a byte outside [0-9a-fA-F] was found
//
// Both satisfy errors.Is(err, ErrInvalidColorFormat).
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use.
package hexcolor
