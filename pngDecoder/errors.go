package pngDecoder

import "fmt"

// A FormatError reports that the input is not a PNG this decoder accepts.
type FormatError string

func (e FormatError) Error() string { return "png: invalid format: " + string(e) }

var chunkOrderError = FormatError("chunk out of order")

// A DimensionError reports a decoded image whose size differs from the one
// the caller requires.
type DimensionError struct {
	WantWidth, WantHeight int
	GotWidth, GotHeight   int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("png: unexpected size %dx%d, want %dx%d", e.GotWidth, e.GotHeight, e.WantWidth, e.WantHeight)
}
