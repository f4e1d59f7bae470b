package render

import (
	"context"
	"image/color"
	"math"

	"github.com/matzehuels/hashart/pkg/config"
	"github.com/matzehuels/hashart/pkg/errors"
	"github.com/matzehuels/hashart/pkg/palette"
	"github.com/matzehuels/hashart/pkg/pattern"
	"github.com/matzehuels/hashart/pkg/placement"
	"github.com/matzehuels/hashart/pkg/shapes"
)

// Option configures [Paint].
type Option func(*painter)

type painter struct {
	lineOpacity    float64
	motif          []pattern.Pattern
	proportion     float64
	rotationOffset float64
	motifFade      float64
}

// WithLineOpacity sets the alpha of the decorative lines (default 0.2).
func WithLineOpacity(a float64) Option { return func(p *painter) { p.lineOpacity = a } }

// WithMotif replaces every placed shape with a layered motif stack.
func WithMotif(m []pattern.Pattern) Option { return func(p *painter) { p.motif = m } }

// WithProportion sets the size ratio between successive motif instances.
func WithProportion(r float64) Option { return func(p *painter) { p.proportion = r } }

// WithRotationOffset turns each motif instance by k*deg degrees.
func WithRotationOffset(deg float64) Option { return func(p *painter) { p.rotationOffset = deg } }

// WithMotifFade sets the opacity lost per motif instance (default 0.1).
func WithMotifFade(r float64) Option { return func(p *painter) { p.motifFade = r } }

// ConfigOptions resolves the paint options a generation config asks for.
func ConfigOptions(cfg config.GenerationConfig) ([]Option, error) {
	cfg = cfg.WithDefaults()
	prop, err := pattern.Proportion(cfg.Proportion)
	if err != nil {
		return nil, err
	}
	opts := []Option{
		WithLineOpacity(cfg.LineOpacity),
		WithProportion(prop),
		WithRotationOffset(cfg.RotationOffset),
		WithMotifFade(cfg.OpacityReduction),
	}
	if cfg.Motif != "" {
		m, err := pattern.Motif(cfg.Motif)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithMotif(m))
	}
	return opts, nil
}

func newPainter(opts ...Option) painter {
	p := painter{
		lineOpacity: config.DefaultLineOpacity,
		proportion:  2 / (1 + math.Sqrt(5)),
		motifFade:   config.DefaultOpacityReduction,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Paint draws comp onto s: a diagonal gradient from the first to the second
// palette color, then each layer's shapes followed by its lines in the last
// palette color. Any non-finite coordinate is an INTERNAL_ERROR and a color
// index outside the palette is INVALID_INPUT; both are caught before the
// surface is touched. Paint checks ctx between layers.
func Paint(ctx context.Context, s Surface, comp *placement.Composition, opts ...Option) error {
	p := newPainter(opts...)

	colors, err := parseColors(comp.Palette)
	if err != nil {
		return err
	}
	if err := checkFinite(comp); err != nil {
		return err
	}
	if err := checkColorIndices(comp, len(colors)); err != nil {
		return err
	}

	w, h := float64(comp.Width), float64(comp.Height)
	sf := placement.ScaleFactor(comp.Width, comp.Height)

	s.SetAlpha(1)
	s.FillLinearGradient(0, 0, w, h, []Stop{
		{Offset: 0, Color: colors[0]},
		{Offset: 1, Color: colors[1]},
	})

	for _, layer := range comp.Layers {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, ps := range layer.Shapes {
			if err := p.paintShape(s, ps, colors, sf); err != nil {
				return err
			}
		}
		p.paintLines(s, layer.Lines, colors[len(colors)-1], sf)
	}
	return nil
}

func (p *painter) paintShape(s Surface, ps placement.PlacedShape, colors []color.Color, sf float64) error {
	fill, stroke := colors[ps.Fill], colors[ps.Stroke]
	if len(p.motif) == 0 {
		s.SetAlpha(ps.Opacity)
		return drawOutline(s, ps.Kind, shapes.Options{}, ps.X, ps.Y, ps.Size, ps.Rotation, fill, stroke, 2*sf)
	}

	stack := pattern.Layer(p.motif, pattern.ComposeConfig{
		BaseSize:         ps.Size,
		BaseOpacity:      ps.Opacity,
		OpacityReduction: p.motifFade,
		Proportion:       p.proportion,
		RotationOffset:   p.rotationOffset,
	})
	for _, in := range stack {
		s.SetAlpha(in.Opacity)
		err := drawOutline(s, in.Pattern.Kind, in.Pattern.Options(),
			ps.X, ps.Y, in.Size, ps.Rotation+in.Rotation, fill, stroke, 2*sf)
		if err != nil {
			return err
		}
	}
	return nil
}

func drawOutline(s Surface, k shapes.Kind, opts shapes.Options, x, y, size, deg float64, fill, stroke color.Color, lw float64) error {
	o, err := shapes.OutlineFor(k, size, opts)
	if err != nil {
		return err
	}
	if !o.Path.Finite() {
		return errors.New(errors.ErrCodeInternal, "%s outline at size %v is not finite", k, size)
	}

	s.Push()
	defer s.Pop()
	s.Translate(x, y)
	s.Rotate(deg * math.Pi / 180)
	s.SetFillColor(fill)
	s.SetStrokeColor(stroke)
	s.SetLineWidth(lw)
	s.BeginPath()
	Trace(s, o.Path)
	if o.Fillable {
		s.Fill()
	}
	s.Stroke()
	return nil
}

func (p *painter) paintLines(s Surface, lines []placement.Line, c color.Color, sf float64) {
	if len(lines) == 0 {
		return
	}
	s.SetAlpha(p.lineOpacity)
	s.SetStrokeColor(c)
	s.SetLineWidth(sf)
	for _, l := range lines {
		s.BeginPath()
		s.MoveTo(l.X1, l.Y1)
		s.LineTo(l.X2, l.Y2)
		s.Stroke()
	}
}

// Trace replays a shape path onto s.
func Trace(s Surface, p shapes.Path) {
	for _, seg := range p.Segments {
		switch seg.Op {
		case shapes.OpMove:
			s.MoveTo(seg.Points[0].X, seg.Points[0].Y)
		case shapes.OpLine:
			s.LineTo(seg.Points[0].X, seg.Points[0].Y)
		case shapes.OpQuad:
			s.QuadTo(seg.Points[0].X, seg.Points[0].Y, seg.Points[1].X, seg.Points[1].Y)
		case shapes.OpCubic:
			s.CubicTo(seg.Points[0].X, seg.Points[0].Y, seg.Points[1].X, seg.Points[1].Y, seg.Points[2].X, seg.Points[2].Y)
		case shapes.OpArc:
			s.Arc(seg.Points[0].X, seg.Points[0].Y, seg.Radius, seg.Start, seg.End)
		case shapes.OpClose:
			s.ClosePath()
		}
	}
}

func parseColors(p palette.Palette) ([]color.Color, error) {
	if len(p) < 2 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "palette needs at least 2 colors, got %d", len(p))
	}
	out := make([]color.Color, len(p))
	for i, hex := range p {
		c, err := palette.ParseHex(hex)
		if err != nil {
			return nil, err
		}
		out[i] = c.Clamped()
	}
	return out, nil
}

func checkFinite(comp *placement.Composition) error {
	for _, l := range comp.Layers {
		for i, s := range l.Shapes {
			for _, v := range []float64{s.X, s.Y, s.Size, s.Rotation, s.Opacity} {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return errors.New(errors.ErrCodeInternal, "layer %d shape %d has non-finite geometry", l.Index, i)
				}
			}
		}
		for i, ln := range l.Lines {
			for _, v := range []float64{ln.X1, ln.Y1, ln.X2, ln.Y2} {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return errors.New(errors.ErrCodeInternal, "layer %d line %d has non-finite geometry", l.Index, i)
				}
			}
		}
	}
	return nil
}

// checkColorIndices rejects shapes whose fill or stroke index falls outside
// a palette of n colors, as a decoded plan may carry.
func checkColorIndices(comp *placement.Composition, n int) error {
	for _, l := range comp.Layers {
		for i, s := range l.Shapes {
			if s.Fill < 0 || s.Fill >= n || s.Stroke < 0 || s.Stroke >= n {
				return errors.New(errors.ErrCodeInvalidInput,
					"layer %d shape %d uses colors %d/%d outside a %d-color palette", l.Index, i, s.Fill, s.Stroke, n)
			}
		}
	}
	return nil
}
