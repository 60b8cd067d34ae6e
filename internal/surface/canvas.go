// Package surface provides the ebiten backed drawing target the ECG is painted on.
package surface

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/ecg-simulator/internal/render"
)

const strokeWidth = 1

// Canvas is an offscreen ebiten image with canvas style fill and stroke state.
// It keeps its contents between frames, so it can be drawn every frame and
// repainted only when the render loop fires.
type Canvas struct {
	img    *ebiten.Image
	face   *text.GoXFace
	fill   color.Color
	stroke color.Color
}

var _ render.Surface = (*Canvas)(nil)

// NewCanvas allocates a width x height canvas cleared to the render background.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		img:    ebiten.NewImage(width, height),
		face:   text.NewGoXFace(basicfont.Face7x13),
		fill:   color.Black,
		stroke: color.Black,
	}
	c.img.Fill(render.Background)
	return c
}

// Image returns the backing image for compositing onto the screen.
func (c *Canvas) Image() *ebiten.Image { return c.img }

func (c *Canvas) Size() (float64, float64) {
	b := c.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (c *Canvas) SetFillColor(clr color.Color) { c.fill = clr }
func (c *Canvas) SetStrokeColor(clr color.Color) { c.stroke = clr }

func (c *Canvas) FillRect(x, y, w, h float64) {
	vector.DrawFilledRect(c.img, float32(x), float32(y), float32(w), float32(h), c.fill, false)
}

func (c *Canvas) DrawText(s string, x, y float64) {
	op := &text.DrawOptions{}
	// text/v2 positions the top of the line; shift up so y is the baseline
	op.GeoM.Translate(x, y-c.face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(c.fill)
	text.Draw(c.img, s, c.face, op)
}

func (c *Canvas) StrokePolyline(pts []render.Point) {
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		vector.StrokeLine(c.img, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), strokeWidth, c.stroke, true)
	}
}
