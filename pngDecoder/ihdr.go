package pngDecoder

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

type ColorType int

const (
	y ColorType = iota
	rgb
	pallete
	ya
	rgba
)

func (c ColorType) String() string {
	switch c {
	case y:
		return "grayscale"
	case rgb:
		return "truecolor"
	case pallete:
		return "paletted"
	case ya:
		return "grayscale+alpha"
	case rgba:
		return "truecolor+alpha"
	}
	return "invalid"
}

const ihdrLength = 13

// BytesPerPixel is fixed: only 8-bit RGBA is decoded.
const BytesPerPixel = 4

type IHDR struct {
	Width             uint32
	Height            uint32
	BitDepth          byte
	ColorType         byte
	CompressionMethod byte
	FilterMethod      byte
	InterlaceMethod   byte
}

func ParseIHDR(data []byte) (*IHDR, error) {
	if len(data) != ihdrLength {
		return nil, FormatError("bad IHDR length")
	}
	var ihdr IHDR

	reader := bytes.NewReader(data)
	err := binary.Read(reader, binary.BigEndian, &ihdr)
	if err != nil {
		return nil, FormatError("unreadable IHDR: " + err.Error())
	}
	if err := ihdr.validate(); err != nil {
		return nil, err
	}
	return &ihdr, nil
}

func (ihdr *IHDR) colorType() ColorType {
	switch ihdr.ColorType {
	case 0:
		return y
	case 2:
		return rgb
	case 3:
		return pallete
	case 4:
		return ya
	case 6:
		return rgba
	}
	return -1
}

func (ihdr *IHDR) validate() error {
	if ihdr.Width == 0 || ihdr.Height == 0 {
		return FormatError("non-positive dimension")
	}
	if ihdr.BitDepth != 8 || ihdr.colorType() != rgba {
		return FormatError(fmt.Sprintf("unsupported bit depth %d, color type %d (%s)", ihdr.BitDepth, ihdr.ColorType, ihdr.colorType()))
	}
	if ihdr.CompressionMethod != 0 {
		return FormatError("unsupported compression method")
	}
	if ihdr.FilterMethod != 0 {
		return FormatError("unsupported filter method")
	}
	if ihdr.InterlaceMethod != 0 {
		return FormatError("interlacing is not supported")
	}
	return nil
}

// Stride is the length of one reconstructed row.
func (ihdr *IHDR) Stride() int {
	return int(ihdr.Width) * BytesPerPixel
}
