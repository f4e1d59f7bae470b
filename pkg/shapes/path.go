package shapes

import "math"

// Op identifies a path primitive.
type Op uint8

const (
	OpMove  Op = iota // start a new sub-path at Points[0]
	OpLine            // straight segment to Points[0]
	OpQuad            // quadratic bezier: control Points[0], end Points[1]
	OpCubic           // cubic bezier: controls Points[0..1], end Points[2]
	OpArc             // circular arc around Points[0]
	OpClose           // close the current sub-path
)

var opNames = [...]string{"move", "line", "quad", "cubic", "arc", "close"}

// String returns the lowercase primitive name.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "unknown"
}

// Point is a 2-D coordinate in the outline's local frame.
type Point struct {
	X, Y float64
}

// Segment is one path primitive.
//
// Arcs follow canvas semantics: when the path already has a current point a
// straight line joins it to the arc start, otherwise the arc starts a new
// sub-path. Angles are in radians, clockwise in screen space.
type Segment struct {
	Op     Op
	Points []Point
	Radius float64
	Start  float64
	End    float64
}

// Path is an ordered list of primitives, possibly with many disjoint
// sub-paths.
type Path struct {
	Segments []Segment
}

// MoveTo starts a new sub-path.
func (p *Path) MoveTo(x, y float64) {
	p.Segments = append(p.Segments, Segment{Op: OpMove, Points: []Point{{x, y}}})
}

// LineTo appends a straight segment.
func (p *Path) LineTo(x, y float64) {
	p.Segments = append(p.Segments, Segment{Op: OpLine, Points: []Point{{x, y}}})
}

// QuadTo appends a quadratic bezier.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.Segments = append(p.Segments, Segment{Op: OpQuad, Points: []Point{{cx, cy}, {x, y}}})
}

// CubicTo appends a cubic bezier.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.Segments = append(p.Segments, Segment{Op: OpCubic, Points: []Point{{c1x, c1y}, {c2x, c2y}, {x, y}}})
}

// Arc appends a circular arc centred on (cx, cy).
func (p *Path) Arc(cx, cy, r, start, end float64) {
	p.Segments = append(p.Segments, Segment{Op: OpArc, Points: []Point{{cx, cy}}, Radius: r, Start: start, End: end})
}

// Circle appends a full circle as its own sub-path.
func (p *Path) Circle(cx, cy, r float64) {
	p.MoveTo(cx+r, cy)
	p.Arc(cx, cy, r, 0, 2*math.Pi)
}

// Close closes the current sub-path.
func (p *Path) Close() {
	p.Segments = append(p.Segments, Segment{Op: OpClose})
}

// Line appends an isolated segment from (x1, y1) to (x2, y2).
func (p *Path) Line(x1, y1, x2, y2 float64) {
	p.MoveTo(x1, y1)
	p.LineTo(x2, y2)
}

// Polygon appends a closed polygon through pts.
func (p *Path) Polygon(pts []Point) {
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
		} else {
			p.LineTo(pt.X, pt.Y)
		}
	}
	p.Close()
}

// Len returns the number of primitives.
func (p Path) Len() int { return len(p.Segments) }

// Finite reports whether every coordinate, radius and angle is finite.
func (p Path) Finite() bool {
	for _, s := range p.Segments {
		for _, pt := range s.Points {
			if !finite(pt.X) || !finite(pt.Y) {
				return false
			}
		}
		if !finite(s.Radius) || !finite(s.Start) || !finite(s.End) {
			return false
		}
	}
	return true
}

// Extent returns the largest distance from the origin reached by any
// control point or arc, which bounds the drawn outline.
func (p Path) Extent() float64 {
	var r float64
	for _, s := range p.Segments {
		for _, pt := range s.Points {
			d := math.Hypot(pt.X, pt.Y)
			if s.Op == OpArc {
				d += s.Radius
			}
			r = max(r, d)
		}
	}
	return r
}

// frame is a rigid transform: rotate by theta, then translate to origin.
// Outlines that are easiest to describe with a moving pen (spirals,
// rotated copies) are built through it.
type frame struct {
	ox, oy, theta float64
}

func (f frame) apply(x, y float64) (float64, float64) {
	s, c := math.Sincos(f.theta)
	return f.ox + x*c - y*s, f.oy + x*s + y*c
}

// translate moves the origin along the frame's own axes.
func (f frame) translate(dx, dy float64) frame {
	f.ox, f.oy = f.apply(dx, dy)
	return f
}

func (f frame) rotate(a float64) frame {
	f.theta += a
	return f
}

func (f frame) line(p *Path, x1, y1, x2, y2 float64) {
	ax, ay := f.apply(x1, y1)
	bx, by := f.apply(x2, y2)
	p.Line(ax, ay, bx, by)
}

func (f frame) arc(p *Path, cx, cy, r, start, end float64) {
	x, y := f.apply(cx, cy)
	p.Arc(x, y, r, start+f.theta, end+f.theta)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// circlePoints returns n points evenly spaced on a circle, starting at
// angle zero.
func circlePoints(cx, cy, r float64, n int) []Point {
	pts := make([]Point, n)
	for i := range pts {
		a := float64(i) / float64(n) * 2 * math.Pi
		pts[i] = Point{cx + math.Cos(a)*r, cy + math.Sin(a)*r}
	}
	return pts
}

// connectAll appends a segment between every pair of points.
func connectAll(p *Path, pts []Point) {
	for i, a := range pts {
		for _, b := range pts[i+1:] {
			p.Line(a.X, a.Y, b.X, b.Y)
		}
	}
}
