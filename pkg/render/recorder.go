package render

import (
	"image/color"
	"io"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/hashart/pkg/errors"
)

// Call is one recorded surface operation.
type Call struct {
	Op    string
	Args  []float64
	Color string // "#rrggbb" for color and gradient calls
}

// Recorder is a [Surface] that records operations instead of drawing them.
// It backs plan inspection and tests of the painter.
type Recorder struct {
	W, H  int
	Calls []Call

	depth    int
	maxDepth int
	bad      int
}

var _ Surface = (*Recorder)(nil)

// NewRecorder returns an empty recorder of the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{W: width, H: height}
}

func (r *Recorder) record(op string, args ...float64) {
	for _, a := range args {
		if math.IsNaN(a) || math.IsInf(a, 0) {
			r.bad++
			break
		}
	}
	r.Calls = append(r.Calls, Call{Op: op, Args: args})
}

func (r *Recorder) recordColor(op string, c color.Color) {
	cf, _ := colorful.MakeColor(c)
	r.Calls = append(r.Calls, Call{Op: op, Color: cf.Hex()})
}

func (r *Recorder) Size() (int, int) { return r.W, r.H }

func (r *Recorder) Push() {
	r.depth++
	r.maxDepth = max(r.maxDepth, r.depth)
	r.record("push")
}

func (r *Recorder) Pop() {
	r.depth--
	r.record("pop")
}

func (r *Recorder) Translate(x, y float64)        { r.record("translate", x, y) }
func (r *Recorder) Rotate(radians float64)        { r.record("rotate", radians) }
func (r *Recorder) SetFillColor(c color.Color)    { r.recordColor("fill-color", c) }
func (r *Recorder) SetStrokeColor(c color.Color)  { r.recordColor("stroke-color", c) }
func (r *Recorder) SetLineWidth(w float64)        { r.record("line-width", w) }
func (r *Recorder) SetAlpha(a float64)            { r.record("alpha", a) }
func (r *Recorder) BeginPath()                    { r.record("begin") }
func (r *Recorder) MoveTo(x, y float64)           { r.record("move", x, y) }
func (r *Recorder) LineTo(x, y float64)           { r.record("line", x, y) }
func (r *Recorder) QuadTo(cx, cy, x, y float64)   { r.record("quad", cx, cy, x, y) }
func (r *Recorder) Arc(cx, cy, rad, s, e float64) { r.record("arc", cx, cy, rad, s, e) }
func (r *Recorder) ClosePath()                    { r.record("close") }
func (r *Recorder) Fill()                         { r.record("fill") }
func (r *Recorder) Stroke()                       { r.record("stroke") }

func (r *Recorder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	r.record("cubic", c1x, c1y, c2x, c2y, x, y)
}

func (r *Recorder) FillLinearGradient(x0, y0, x1, y1 float64, stops []Stop) {
	r.record("gradient", x0, y0, x1, y1)
	for _, s := range stops {
		r.recordColor("gradient-stop", s.Color)
	}
}

// EncodePNG fails: a recorder holds no raster.
func (r *Recorder) EncodePNG(io.Writer) error {
	return errors.New(errors.ErrCodeInternal, "recorder has no raster to encode")
}

// Count returns the number of calls of op.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Balanced reports whether every Push was matched by a Pop.
func (r *Recorder) Balanced() bool { return r.depth == 0 }

// MaxDepth returns the deepest Push nesting seen.
func (r *Recorder) MaxDepth() int { return r.maxDepth }

// NonFinite returns the number of calls that carried NaN or Inf.
func (r *Recorder) NonFinite() int { return r.bad }
