package render

import "image/color"

// Point is a position in surface coordinates.
type Point struct {
	X, Y float64
}

// Surface is the 2D target a repaint draws on.
type Surface interface {
	Size() (width, height float64)
	SetFillColor(c color.Color)
	FillRect(x, y, w, h float64)
	// DrawText draws s with its baseline starting at (x, y) in the fill color.
	DrawText(s string, x, y float64)
	SetStrokeColor(c color.Color)
	StrokePolyline(pts []Point)
}
