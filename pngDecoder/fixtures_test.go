package pngDecoder

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"testing"

	"dandelion/compression"

	"github.com/stretchr/testify/require"
)

func makeChunk(typ string, data []byte) []byte {
	var b bytes.Buffer
	binary.Write(&b, binary.BigEndian, uint32(len(data)))
	b.WriteString(typ)
	b.Write(data)
	crc := crc32.NewIEEE()
	crc.Write([]byte(typ))
	crc.Write(data)
	binary.Write(&b, binary.BigEndian, crc.Sum32())
	return b.Bytes()
}

func makeIHDR(width, height uint32, bitDepth, colorType byte) []byte {
	var b bytes.Buffer
	binary.Write(&b, binary.BigEndian, IHDR{
		Width:     width,
		Height:    height,
		BitDepth:  bitDepth,
		ColorType: colorType,
	})
	return makeChunk("IHDR", b.Bytes())
}

// makePNG assembles a file from pre-built chunks.
func makePNG(chunks ...[]byte) []byte {
	out := append([]byte{}, pngHeader...)
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}

func deflate(t *testing.T, raw []byte) []byte {
	compressed, err := compression.DeflateData(raw)
	require.NoError(t, err)
	return compressed
}

// makeRGBA builds a file around a single IDAT holding the given filtered
// scanline stream.
func makeRGBA(t *testing.T, width, height uint32, filtered []byte) []byte {
	return makePNG(
		makeIHDR(width, height, 8, 6),
		makeChunk("IDAT", deflate(t, filtered)),
		makeChunk("IEND", nil),
	)
}
