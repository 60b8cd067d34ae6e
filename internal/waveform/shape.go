package waveform

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
)

// Shape is the waveform model of a rhythm. It is one of Bumps or Noise.
type Shape interface {
	fill(dst, t []float64, rng *rand.Rand)
}

// Bump is a gaussian pulse amplitude * exp(-((t-center)*width)^2).
type Bump struct {
	Center    float64
	Width     float64
	Amplitude float64
}

// At evaluates the bump at time t (seconds).
func (b Bump) At(t float64) float64 {
	x := (t - b.Center) * b.Width
	return b.Amplitude * math.Exp(-x*x)
}

// Bumps is a deterministic shape: the sum of its terms.
type Bumps []Bump

func (bs Bumps) fill(dst, t []float64, _ *rand.Rand) {
	term := make([]float64, len(dst))
	for _, b := range bs {
		for i, x := range t {
			term[i] = b.At(x)
		}
		floats.Add(dst, term)
	}
}

// Noise draws every sample independently as Amplitude * sin(Frequency * U[0,1)).
// Samples are uncorrelated; the time values are ignored.
type Noise struct {
	Amplitude float64
	Frequency float64
}

func (n Noise) fill(dst, _ []float64, rng *rand.Rand) {
	for i := range dst {
		dst[i] = n.Amplitude * math.Sin(n.Frequency*rng.Float64())
	}
}

// P, Q, R, S, T style deflections per rhythm. Adding a rhythm is a new entry here.
var shapes = map[Rhythm]Shape{
	Sinus: Bumps{
		{Center: 0.10, Width: 50, Amplitude: 1},
		{Center: 0.20, Width: 300, Amplitude: -0.8},
		{Center: 0.22, Width: 100, Amplitude: 1.6},
		{Center: 0.25, Width: 200, Amplitude: -0.6},
		{Center: 0.40, Width: 40, Amplitude: 0.4},
	},
	Tachycardia: Bumps{
		{Center: 0.05, Width: 70, Amplitude: 1},
		{Center: 0.12, Width: 80, Amplitude: 1.4},
		{Center: 0.15, Width: 100, Amplitude: 0.3},
	},
	Bradycardia: Bumps{
		{Center: 0.2, Width: 30, Amplitude: 1},
		{Center: 0.4, Width: 100, Amplitude: 0.5},
	},
	AVBlock: Bumps{
		{Center: 0.1, Width: 50, Amplitude: 1},
		{Center: 0.3, Width: 80, Amplitude: 0.2},
	},
	AtrialFibrillation: Noise{Amplitude: 0.2, Frequency: 50},
}

// ShapeOf returns the shape registered for r.
func ShapeOf(r Rhythm) (Shape, bool) {
	s, ok := shapes[r]
	return s, ok
}
