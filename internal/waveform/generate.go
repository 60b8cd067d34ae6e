package waveform

import (
	"math/rand/v2"
	"time"

	"github.com/faiface/beep"
)

// SampleRate is the fixed sampling rate of every generated trace.
const SampleRate = beep.SampleRate(500)

// TimeSamples returns the elapsed seconds of each sample covering d, starting at 0.
func TimeSamples(d time.Duration) []float64 {
	n := SampleRate.N(d)
	if n < 0 {
		n = 0
	}
	t := make([]float64, n)
	for i := range t {
		t[i] = float64(i) / float64(SampleRate)
	}
	return t
}

// Generator produces amplitude sequences. The zero value is not usable; see NewGenerator.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator drawing noise from src.
// A nil src seeds from the runtime's random source.
func NewGenerator(src rand.Source) *Generator {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Generator{rng: rand.New(src)}
}

// Generate returns one amplitude per time value. Unknown rhythms produce a flat line.
func (g *Generator) Generate(r Rhythm, t []float64) []float64 {
	out := make([]float64, len(t))
	if s, ok := shapes[r]; ok {
		s.fill(out, t, g.rng)
	}
	return out
}

var std = NewGenerator(nil)

// Generate is Generator.Generate on a package level generator.
// It is not safe for concurrent use.
func Generate(r Rhythm, t []float64) []float64 {
	return std.Generate(r, t)
}
