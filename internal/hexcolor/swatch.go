package hexcolor

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Swatch cell size limits in pixels.
const (
	MinSwatchCell     = 1
	MaxSwatchCell     = 512
	DefaultSwatchCell = 32
)

// SwatchResult contains a rendered blend swatch.
type SwatchResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Left        string `json:"left"`    // Hex of the first input
	Average     string `json:"average"` // Hex of the blended color
	Right       string `json:"right"`   // Hex of the second input
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Swatch renders a horizontal strip of three square cells, a | Mean(a, b) | b,
// and returns it as a base64-encoded PNG.
//
// cell is the edge length of each square in pixels and must lie within
// [MinSwatchCell, MaxSwatchCell]. The resulting image is 3*cell by cell.
func Swatch(a, b Color, cell int) (*SwatchResult, error) {
	if cell < MinSwatchCell || cell > MaxSwatchCell {
		return nil, fmt.Errorf("swatch cell size %d outside range [%d, %d]", cell, MinSwatchCell, MaxSwatchCell)
	}

	mid := Mean(a, b)
	canvas := imaging.New(3*cell, cell, a)
	canvas = imaging.Paste(canvas, imaging.New(cell, cell, mid), image.Pt(cell, 0))
	canvas = imaging.Paste(canvas, imaging.New(cell, cell, b), image.Pt(2*cell, 0))

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, canvas, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode swatch: %w", err)
	}

	return &SwatchResult{
		Width:       canvas.Bounds().Dx(),
		Height:      canvas.Bounds().Dy(),
		Left:        a.Hex(),
		Average:     mid.Hex(),
		Right:       b.Hex(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
