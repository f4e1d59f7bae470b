package render

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
)

// Canvas is a raster [Surface] backed by a gg context.
type Canvas struct {
	dc *gg.Context
	w  int
	h  int

	state canvasState
	stack []canvasState
}

// gg has no global alpha, so colors are kept unmultiplied and combined with
// alpha when painting.
type canvasState struct {
	fill   color.NRGBA
	stroke color.NRGBA
	alpha  float64
}

var _ Surface = (*Canvas)(nil)

// NewCanvas returns a transparent canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		dc: gg.NewContext(width, height),
		w:  width,
		h:  height,
		state: canvasState{
			fill:   color.NRGBA{A: 255},
			stroke: color.NRGBA{A: 255},
			alpha:  1,
		},
	}
}

func (c *Canvas) Size() (int, int) { return c.w, c.h }

func (c *Canvas) Push() {
	c.dc.Push()
	c.stack = append(c.stack, c.state)
}

func (c *Canvas) Pop() {
	if len(c.stack) == 0 {
		return
	}
	c.dc.Pop()
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Canvas) Translate(x, y float64) { c.dc.Translate(x, y) }
func (c *Canvas) Rotate(radians float64) { c.dc.Rotate(radians) }
func (c *Canvas) SetLineWidth(w float64) { c.dc.SetLineWidth(w) }
func (c *Canvas) SetAlpha(a float64) { c.state.alpha = max(0, min(1, a)) }
func (c *Canvas) BeginPath() { c.dc.ClearPath() }
func (c *Canvas) MoveTo(x, y float64) { c.dc.MoveTo(x, y) }
func (c *Canvas) LineTo(x, y float64) { c.dc.LineTo(x, y) }
func (c *Canvas) ClosePath() { c.dc.ClosePath() }
func (c *Canvas) QuadTo(cx, cy, x, y float64) { c.dc.QuadraticTo(cx, cy, x, y) }

func (c *Canvas) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.dc.CubicTo(c1x, c1y, c2x, c2y, x, y)
}

func (c *Canvas) Arc(cx, cy, r, start, end float64) {
	c.dc.DrawArc(cx, cy, r, start, end)
}

func (c *Canvas) SetFillColor(col color.Color) {
	c.state.fill = color.NRGBAModel.Convert(col).(color.NRGBA)
}

func (c *Canvas) SetStrokeColor(col color.Color) {
	c.state.stroke = color.NRGBAModel.Convert(col).(color.NRGBA)
}

func (c *Canvas) Fill() {
	c.dc.SetFillStyle(gg.NewSolidPattern(c.withAlpha(c.state.fill)))
	c.dc.FillPreserve()
}

func (c *Canvas) Stroke() {
	c.dc.SetStrokeStyle(gg.NewSolidPattern(c.withAlpha(c.state.stroke)))
	c.dc.StrokePreserve()
}

func (c *Canvas) FillLinearGradient(x0, y0, x1, y1 float64, stops []Stop) {
	g := gg.NewLinearGradient(x0, y0, x1, y1)
	for _, s := range stops {
		g.AddColorStop(s.Offset, s.Color)
	}
	c.dc.Push()
	c.dc.Identity()
	c.dc.ClearPath()
	c.dc.DrawRectangle(0, 0, float64(c.w), float64(c.h))
	c.dc.SetFillStyle(g)
	c.dc.Fill()
	c.dc.Pop()
}

func (c *Canvas) EncodePNG(w io.Writer) error { return c.dc.EncodePNG(w) }

// Image returns the raster.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

func (c *Canvas) withAlpha(col color.NRGBA) color.NRGBA {
	col.A = uint8(float64(col.A)*c.state.alpha + 0.5)
	return col
}
