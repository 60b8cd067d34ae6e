package render

import (
	"image/color"
	"time"

	"github.com/iburimskiy/ecg-simulator/internal/waveform"
)

const (
	leadDuration  = time.Second
	stripDuration = 10 * time.Second

	// VerticalGain converts amplitude units to surface units.
	VerticalGain = 40.0

	labelX      = 10.0
	labelOffset = 15.0
)

var (
	Background = color.White
	Ink        = color.Black
)

// Painter draws one full ECG frame.
type Painter struct {
	gen *waveform.Generator

	leadT  []float64
	stripT []float64
}

// NewPainter returns a painter sampling traces from gen.
func NewPainter(gen *waveform.Generator) *Painter {
	return &Painter{
		gen:    gen,
		leadT:  waveform.TimeSamples(leadDuration),
		stripT: waveform.TimeSamples(stripDuration),
	}
}

// Paint clears s and draws every lead band followed by the long strip for rhythm r.
// Each band gets its own freshly generated trace.
func (p *Painter) Paint(s Surface, r waveform.Rhythm) {
	w, h := s.Size()

	s.SetFillColor(Background)
	s.FillRect(0, 0, w, h)

	bands := Layout(h)
	for i, b := range bands {
		t := p.leadT
		if i == len(bands)-1 {
			t = p.stripT
		}
		p.trace(s, b, w, p.gen.Generate(r, t))
	}
}

func (p *Painter) trace(s Surface, b Band, width float64, amp []float64) {
	s.SetFillColor(Ink)
	s.DrawText(b.Label, labelX, b.Top+labelOffset)

	s.SetStrokeColor(Ink)
	s.StrokePolyline(polyline(b, width, amp))
}

func polyline(b Band, width float64, amp []float64) []Point {
	pts := make([]Point, len(amp))
	mid := b.Mid()
	n := float64(len(amp))
	for i, a := range amp {
		pts[i] = Point{
			X: float64(i) / n * width,
			Y: mid - a*VerticalGain,
		}
	}
	return pts
}
