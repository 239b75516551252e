package pngDecoder

import (
	"dandelion/utils"
)

type Chunk struct {
	length   uint32
	typ      []uint8
	data     []uint8
	crc      uint32
	critical bool
}

// Container is the result of walking the chunk stream: the image header and
// every IDAT payload concatenated in arrival order.
type Container struct {
	Header     *IHDR
	Compressed []byte
}

type PngDecoder struct {
	data     []uint8
	idx      uint
	finished bool
}

func NewDecoder(data []byte) (*PngDecoder, error) {
	if !isPNG(data) {
		return nil, FormatError("not a PNG file")
	}
	return &PngDecoder{
		data: data,
		idx:  uint(len(pngHeader)),
	}, nil
}

// nextChunk returns nil, nil once IEND has been consumed.
func (p *PngDecoder) nextChunk() (*Chunk, error) {
	if p.finished {
		return nil, nil
	}
	if p.idx == uint(len(p.data)) {
		return nil, FormatError("missing IEND")
	}
	length, err := p.tryAdvance(4)
	if err != nil {
		return nil, err
	}
	chunkType, err := p.tryAdvance(4)
	if err != nil {
		return nil, err
	}
	chunkData, err := p.tryAdvance(uint(utils.BytesToLength(length)))
	if err != nil {
		return nil, err
	}
	// The CRC is read but not verified.
	crc, err := p.tryAdvance(4)
	if err != nil {
		return nil, err
	}
	if string(chunkType) == "IEND" {
		p.finished = true
	}
	return &Chunk{
		length:   utils.BytesToLength(length),
		typ:      chunkType,
		data:     chunkData,
		crc:      utils.BytesToLength(crc),
		critical: chunkType[0] >= 'A' && chunkType[0] <= 'Z',
	}, nil
}

func (p *PngDecoder) tryAdvance(length uint) ([]uint8, error) {
	if p.idx+length > uint(len(p.data)) || p.idx+length < p.idx {
		return nil, FormatError("chunk runs past end of data")
	}

	p.idx += length
	return p.data[p.idx-length : p.idx], nil
}

// Parse walks chunks up to and including IEND. Bytes after IEND are never
// looked at.
func (p *PngDecoder) Parse() (*Container, error) {
	c := &Container{Compressed: []byte{}}
	chunk, err := p.nextChunk()
	for err == nil && chunk != nil {
		if chunk.critical {
			switch string(chunk.typ) {
			case "IHDR":
				if c.Header != nil {
					return nil, chunkOrderError
				}
				c.Header, err = ParseIHDR(chunk.data)
				if err != nil {
					return nil, err
				}
			case "IDAT":
				if c.Header == nil {
					return nil, chunkOrderError
				}
				c.Compressed = append(c.Compressed, chunk.data...)
			case "IEND":
				if c.Header == nil {
					return nil, FormatError("missing IHDR")
				}
			}
		}
		chunk, err = p.nextChunk()
	}
	if err != nil {
		return nil, err
	}
	if len(c.Compressed) == 0 {
		return nil, FormatError("missing IDAT")
	}
	return c, nil
}

func ParseContainer(data []byte) (*Container, error) {
	pd, err := NewDecoder(data)
	if err != nil {
		return nil, err
	}
	return pd.Parse()
}
