package pngDecoder

import "bytes"

var pngHeader = []uint8{137, 80, 78, 71, 13, 10, 26, 10}

func isPNG(data []byte) bool {
	return bytes.HasPrefix(data, pngHeader)
}

// paethPredictor returns whichever neighbour is closest to left+up-upLeft.
// Ties go to left, then up.
func paethPredictor(left, up, upLeft int) int {
	estimate := left + up - upLeft
	dLeft := abs(estimate - left)
	dUp := abs(estimate - up)
	dUpLeft := abs(estimate - upLeft)

	switch {
	case dLeft <= dUp && dLeft <= dUpLeft:
		return left
	case dUp <= dUpLeft:
		return up
	default:
		return upLeft
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
