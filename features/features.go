// Package features locates the two anchor points of the icon in a decoded
// raster: the bright core of the seed head and the darker, warm seed body.
package features

import (
	"math"

	"dandelion/pngDecoder"
)

type Point struct {
	X, Y float64
}

func (p Point) Add(dx, dy float64) Point {
	return Point{p.X + dx, p.Y + dy}
}

func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Luma is the Rec. 709 brightness of an 8-bit colour.
func Luma(r, g, b uint8) float64 {
	return 0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)
}

// CoreThreshold is the fraction of the brightest luma a pixel needs to count
// towards the core.
const CoreThreshold = 0.90

// EstimateCore returns the brightness-weighted centroid of the pixels whose
// luma is within CoreThreshold of the brightest pixel.
func EstimateCore(r *pngDecoder.Raster) Point {
	maxLuma := 0.0
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			red, green, blue, _ := r.Pixel(x, y)
			if l := Luma(red, green, blue); l > maxLuma {
				maxLuma = l
			}
		}
	}
	threshold := maxLuma * CoreThreshold

	var sumW, sumX, sumY float64
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			red, green, blue, _ := r.Pixel(x, y)
			l := Luma(red, green, blue)
			if l >= threshold {
				sumW += l
				sumX += l * float64(x)
				sumY += l * float64(y)
			}
		}
	}
	if sumW == 0 {
		// An all-black image: every pixel qualifies with zero weight.
		sumW = 1
	}
	return Point{sumX / sumW, sumY / sumW}
}

// SeedSearch holds the constants of the seed heuristic. They were tuned on
// a single reference image and are not a general detector.
type SeedSearch struct {
	MinLuma, MaxLuma float64
	// MinWarmth is the smallest R-B difference of a qualifying pixel.
	MinWarmth      int
	MinDist        float64
	MaxDist        float64
	FallbackOffset Point
}

var DefaultSeedSearch = SeedSearch{
	MinLuma:        45,
	MaxLuma:        140,
	MinWarmth:      15,
	MinDist:        170,
	MaxDist:        460,
	FallbackOffset: Point{-90, 210},
}

func (s SeedSearch) qualifies(red, green, blue uint8) bool {
	l := Luma(red, green, blue)
	return s.MinLuma < l && l < s.MaxLuma &&
		red > green && green > blue &&
		int(red)-int(blue) > s.MinWarmth
}

// EstimateSeed averages the positions of warm mid-brightness pixels in the
// lower-left quadrant of core that fall inside the distance annulus. With
// no such pixel it returns core shifted by FallbackOffset.
func (s SeedSearch) EstimateSeed(r *pngDecoder.Raster, core Point) Point {
	var sumX, sumY float64
	n := 0
	for y := max(int(core.Y), 0); y < r.Height; y++ {
		for x := 0; x < int(core.X) && x < r.Width; x++ {
			red, green, blue, _ := r.Pixel(x, y)
			if !s.qualifies(red, green, blue) {
				continue
			}
			d := core.Dist(Point{float64(x), float64(y)})
			if s.MinDist < d && d < s.MaxDist {
				sumX += float64(x)
				sumY += float64(y)
				n++
			}
		}
	}
	if n == 0 {
		return core.Add(s.FallbackOffset.X, s.FallbackOffset.Y)
	}
	return Point{sumX / float64(n), sumY / float64(n)}
}

func EstimateSeed(r *pngDecoder.Raster, core Point) Point {
	return DefaultSeedSearch.EstimateSeed(r, core)
}
