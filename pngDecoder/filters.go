package pngDecoder

import "fmt"

type FilterMethod byte

const (
	NONE FilterMethod = iota
	LEFT
	UP
	AVG
	PAETH
)

func (f FilterMethod) String() string {
	switch f {
	case NONE:
		return "none"
	case LEFT:
		return "sub"
	case UP:
		return "up"
	case AVG:
		return "average"
	case PAETH:
		return "paeth"
	}
	return fmt.Sprintf("filter(%d)", byte(f))
}

// A predictor maps the reconstructed neighbours of a byte to the value that
// was subtracted from it when the row was filtered.
type predictor func(left, up, upLeft int) int

var predictors = [...]predictor{
	NONE:  func(_, _, _ int) int { return 0 },
	LEFT:  func(left, _, _ int) int { return left },
	UP:    func(_, up, _ int) int { return up },
	AVG:   func(left, up, _ int) int { return (left + up) / 2 },
	PAETH: paethPredictor,
}

func (f FilterMethod) valid() bool {
	return int(f) < len(predictors)
}

// Reconstruct reverses the filter on scanline in place. previousLine is the
// already reconstructed row above (all zeros for the first row) and must be
// as long as scanline.
//
// Bytes are processed left to right: each one depends on its reconstructed
// left neighbour.
func (f FilterMethod) Reconstruct(scanline, previousLine []byte, bytesPerPixel int) error {
	if !f.valid() {
		return FormatError("bad filter type " + f.String())
	}
	if len(previousLine) != len(scanline) {
		return FormatError("scanline length mismatch")
	}
	if f == NONE {
		return nil
	}
	predict := predictors[f]
	for i := range scanline {
		var left, upLeft int
		if i >= bytesPerPixel {
			left = int(scanline[i-bytesPerPixel])
			upLeft = int(previousLine[i-bytesPerPixel])
		}
		scanline[i] += byte(predict(left, int(previousLine[i]), upLeft))
	}
	return nil
}
