package chart

import "image/color"

// Surface is the drawing context primitives paint on.
//
// Paths are built between BeginPath and ClosePath; Fill and Stroke act on the
// current path. Save and Restore push and pop the paint state (line width,
// fill color, font).
type Surface interface {
	Size() (w, h float64)
	Clear()

	Save()
	Restore()

	BeginPath()
	ClosePath()
	Rect(x, y, w, h float64)
	Arc(x, y, radius, startAngle, endAngle float64)

	SetLineWidth(w float64)
	SetFillColor(c color.RGBA)
	Fill()
	Stroke()

	SetFont(size float64, family string)
	FillText(msg string, x, y float64)
	StrokeText(msg string, x, y float64)
}
