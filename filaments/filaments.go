// Package filaments generates the randomized burst of curved strokes that
// radiate from the core of the icon.
//
// All randomness comes from the *rand.Rand passed to Generate, so a fixed
// seed always produces the same geometry.
package filaments

import (
	"math"
	"math/rand"

	"dandelion/features"
	"dandelion/utils"
)

// DefaultSeed is the seed the icon was designed with.
const DefaultSeed = 23

type RGB struct {
	R, G, B uint8
}

func (c RGB) Hex() string {
	return utils.HexColor(c.R, c.G, c.B)
}

// A Filament is a quadratic Bézier stroke from Start through Control to End.
type Filament struct {
	Start   features.Point
	Control features.Point
	End     features.Point
	Stroke  RGB
	Width   float64
	Opacity float64
	Inner   bool
}

// Cluster is one component of a Gaussian mixture over angles in degrees.
// Angles grow clockwise because SVG's y axis points down.
type Cluster struct {
	Weight float64
	Mean   float64
	StdDev float64
}

type Range struct {
	Min, Max float64
}

func (r Range) contains(v float64) bool {
	return r.Min <= v && v <= r.Max
}

func (r Range) sample(rng *rand.Rand) float64 {
	return r.Min + (r.Max-r.Min)*rng.Float64()
}

// Ramp blends From into To as the angle goes from Start to End degrees.
// Angles below Start keep From.
type Ramp struct {
	Start, End float64
	From, To   RGB
}

func (r Ramp) At(angle float64) RGB {
	warm := 0.0
	if r.Start <= angle && angle <= r.End {
		warm = (angle - r.Start) / (r.End - r.Start)
	}
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*warm)
	}
	return RGB{lerp(r.From.R, r.To.R), lerp(r.From.G, r.To.G), lerp(r.From.B, r.To.B)}
}

// Burst describes one family of filaments.
type Burst struct {
	Count int
	// Angles outside this range are dropped, not clamped.
	Angles Range
	// Fraction of the length at which the control point sits.
	ControlAt float64
	Bend      Range
	Width     Range
	Opacity   Range
}

type Style struct {
	Outer         Burst
	OuterClusters []Cluster
	// Outer lengths follow a bell centred on BellCenter, plus LengthJitter.
	BaseLength   float64
	BellGain     float64
	BellCenter   float64
	BellWidth    float64
	LengthJitter Range
	MinLength    float64
	OuterRamp    Ramp

	Inner       Burst
	InnerAngle  Cluster
	InnerLength Range
	InnerColor  RGB
}

func DefaultStyle() Style {
	return Style{
		Outer: Burst{
			Count:     95,
			Angles:    Range{-5, 150},
			ControlAt: 0.52,
			Bend:      Range{-10, 8},
			Width:     Range{0.6, 1.0},
			Opacity:   Range{0.55, 0.9},
		},
		OuterClusters: []Cluster{
			{Weight: 0.5, Mean: 15, StdDev: 14},
			{Weight: 0.4, Mean: 70, StdDev: 22},
			{Weight: 0.1, Mean: 115, StdDev: 12},
		},
		BaseLength:   150,
		BellGain:     230,
		BellCenter:   80,
		BellWidth:    45,
		LengthJitter: Range{-14, 18},
		MinLength:    120,
		OuterRamp: Ramp{
			Start: 70,
			End:   150,
			From:  RGB{245, 242, 235},
			To:    RGB{220, 172, 115},
		},

		Inner: Burst{
			Count:     30,
			Angles:    Range{0, 140},
			ControlAt: 0.55,
			Bend:      Range{-6, 6},
			Width:     Range{0.6, 0.9},
			Opacity:   Range{0.65, 0.95},
		},
		InnerAngle:  Cluster{Mean: 60, StdDev: 25},
		InnerLength: Range{55, 120},
		InnerColor:  RGB{0xf6, 0xef, 0xe3},
	}
}

func gauss(rng *rand.Rand, c Cluster) float64 {
	return c.Mean + c.StdDev*rng.NormFloat64()
}

func (s Style) sampleOuterAngle(rng *rand.Rand) float64 {
	roll := rng.Float64()
	acc := 0.0
	for _, c := range s.OuterClusters {
		acc += c.Weight
		if roll < acc {
			return gauss(rng, c)
		}
	}
	return gauss(rng, s.OuterClusters[len(s.OuterClusters)-1])
}

func (s Style) outerLength(rng *rand.Rand, angle float64) float64 {
	z := (angle - s.BellCenter) / s.BellWidth
	bell := math.Exp(-z * z)
	return s.BaseLength + s.BellGain*bell + s.LengthJitter.sample(rng)
}

// shape builds the curve once angle and length are known. The draw order of
// bend, width and opacity is part of the seeded sequence.
func (b Burst) shape(rng *rand.Rand, core features.Point, angle, length float64) Filament {
	rad := angle * math.Pi / 180
	dx, dy := math.Cos(rad), math.Sin(rad)
	nx, ny := -dy, dx

	bend := b.Bend.sample(rng)
	f := Filament{
		Start: core,
		Control: core.Add(
			dx*length*b.ControlAt+nx*bend,
			dy*length*b.ControlAt+ny*bend,
		),
		End: core.Add(dx*length, dy*length),
	}
	f.Width = b.Width.sample(rng)
	f.Opacity = b.Opacity.sample(rng)
	return f
}

// Generate draws the outer fan followed by the inner burst. Rejected samples
// still consume random numbers, so the result has at most
// style.Outer.Count+style.Inner.Count filaments.
func Generate(rng *rand.Rand, core features.Point, style Style) []Filament {
	var out []Filament

	for i := 0; i < style.Outer.Count; i++ {
		angle := style.sampleOuterAngle(rng)
		if !style.Outer.Angles.contains(angle) {
			continue
		}
		length := style.outerLength(rng, angle)
		if length < style.MinLength {
			continue
		}
		f := style.Outer.shape(rng, core, angle, length)
		f.Stroke = style.OuterRamp.At(angle)
		out = append(out, f)
	}

	for i := 0; i < style.Inner.Count; i++ {
		angle := gauss(rng, style.InnerAngle)
		if !style.Inner.Angles.contains(angle) {
			continue
		}
		length := style.InnerLength.sample(rng)
		f := style.Inner.shape(rng, core, angle, length)
		f.Stroke = style.InnerColor
		f.Inner = true
		out = append(out, f)
	}

	return out
}

// NewRand returns the generator's random source for seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
