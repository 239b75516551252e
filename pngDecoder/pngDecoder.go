// Package pngDecoder decodes non-interlaced 8-bit RGBA PNG files into a
// Raster of unfiltered rows.
package pngDecoder

import (
	"os"

	"dandelion/compression"
)

// Reconstruct splits the inflated IDAT stream into scanlines and reverses
// each row's filter. Data after the last scanline is ignored.
func Reconstruct(ihdr *IHDR, decompressed []byte) (*Raster, error) {
	width, height := int(ihdr.Width), int(ihdr.Height)
	stride := ihdr.Stride()
	scanlineSize := stride + 1

	raster := &Raster{
		Width:  width,
		Height: height,
		Rows:   make([][]byte, height),
	}
	previousLine := make([]byte, stride)
	idx := 0
	for i := 0; i < height; i++ {
		if idx+scanlineSize > len(decompressed) {
			return nil, FormatError("not enough pixel data")
		}
		filter := FilterMethod(decompressed[idx])
		scanline := make([]byte, stride)
		copy(scanline, decompressed[idx+1:idx+scanlineSize])
		idx += scanlineSize

		if err := filter.Reconstruct(scanline, previousLine, BytesPerPixel); err != nil {
			return nil, err
		}
		raster.Rows[i] = scanline

		// The current row for i is the previous row for i+1.
		previousLine = scanline
	}
	return raster, nil
}

// Decode parses a complete PNG file held in memory.
func Decode(data []byte) (*Raster, error) {
	container, err := ParseContainer(data)
	if err != nil {
		return nil, err
	}
	decompressed, err := compression.InflateData(container.Compressed)
	if err != nil {
		return nil, err
	}
	return Reconstruct(container.Header, decompressed)
}

func DecodeFile(name string) (*Raster, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}
