package render

import (
	"image/color"
	"io"
)

// Surface is a 2-D drawing context with canvas semantics.
//
// Path primitives are recorded in the current transform at the time they
// are added. Fill and Stroke paint the current path and keep it; BeginPath
// discards it. Arc joins the current point to the arc start with a straight
// line, or starts a new sub-path when there is none.
//
// A Surface is owned by one generation call and is not safe for concurrent
// use.
type Surface interface {
	// Size returns the pixel dimensions.
	Size() (width, height int)

	// Push saves the transform, colors, line width and alpha; Pop restores
	// them.
	Push()
	Pop()

	Translate(x, y float64)
	Rotate(radians float64)

	SetFillColor(c color.Color)
	SetStrokeColor(c color.Color)
	SetLineWidth(w float64)

	// SetAlpha sets the global alpha multiplied into every fill and stroke.
	SetAlpha(a float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	Arc(cx, cy, r, start, end float64)
	ClosePath()

	Fill()
	Stroke()

	// FillLinearGradient paints the whole surface with a gradient running
	// from (x0, y0) to (x1, y1). It discards the current path.
	FillLinearGradient(x0, y0, x1, y1 float64, stops []Stop)

	// EncodePNG writes the raster as PNG.
	EncodePNG(w io.Writer) error
}

// Stop is a gradient color stop at an offset in [0, 1].
type Stop struct {
	Offset float64
	Color  color.Color
}
