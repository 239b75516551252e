package pngDecoder

// Raster is a decoded 8-bit RGBA image stored as one byte slice per row.
// It is not modified after decoding.
type Raster struct {
	Width  int
	Height int
	Rows   [][]byte
}

func (r *Raster) Pixel(x, y int) (red, green, blue, alpha uint8) {
	i := x * BytesPerPixel
	row := r.Rows[y]
	return row[i], row[i+1], row[i+2], row[i+3]
}

// ExpectSize returns a *DimensionError unless the raster is exactly
// width x height.
func (r *Raster) ExpectSize(width, height int) error {
	if r.Width != width || r.Height != height {
		return &DimensionError{
			WantWidth:  width,
			WantHeight: height,
			GotWidth:   r.Width,
			GotHeight:  r.Height,
		}
	}
	return nil
}
