package render

import (
	"image/color"
	"math/rand/v2"

	"github.com/iburimskiy/ecg-simulator/internal/waveform"
)

type textCall struct {
	s    string
	x, y float64
	fill color.Color
}

// recorder is a Surface that remembers what was drawn on it.
type recorder struct {
	w, h   float64
	fill   color.Color
	stroke color.Color

	clears int
	texts  []textCall
	lines  [][]Point
}

func newRecorder() *recorder { return &recorder{w: 1000, h: 700} }

func (r *recorder) Size() (float64, float64) { return r.w, r.h }
func (r *recorder) SetFillColor(c color.Color) { r.fill = c }
func (r *recorder) SetStrokeColor(c color.Color) { r.stroke = c }

func (r *recorder) FillRect(x, y, w, h float64) {
	if x == 0 && y == 0 && w == r.w && h == r.h {
		r.clears++
	}
}

func (r *recorder) DrawText(s string, x, y float64) {
	r.texts = append(r.texts, textCall{s: s, x: x, y: y, fill: r.fill})
}

func (r *recorder) StrokePolyline(pts []Point) {
	r.lines = append(r.lines, pts)
}

func testPainter() *Painter {
	return NewPainter(waveform.NewGenerator(rand.NewPCG(3, 5)))
}
