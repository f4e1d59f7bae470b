package shapes

import (
	"math"
	"strings"

	"github.com/matzehuels/hashart/pkg/errors"
)

// Solid selects the projection drawn by the platonic-solid variant.
type Solid int

const (
	SolidTetrahedron Solid = iota
	SolidCube
	SolidOctahedron
	SolidDodecahedron
	SolidIcosahedron
)

var solids = [...]struct {
	name     string
	vertices int
}{
	SolidTetrahedron:  {"tetrahedron", 4},
	SolidCube:         {"cube", 8},
	SolidOctahedron:   {"octahedron", 6},
	SolidDodecahedron: {"dodecahedron", 20},
	SolidIcosahedron:  {"icosahedron", 12},
}

// Vertices returns the vertex count projected onto the circle. Unknown
// solids fall back to the tetrahedron.
func (s Solid) Vertices() int {
	if s < 0 || int(s) >= len(solids) {
		return solids[SolidTetrahedron].vertices
	}
	return solids[s].vertices
}

func (s Solid) String() string {
	if s < 0 || int(s) >= len(solids) {
		return "unknown"
	}
	return solids[s].name
}

// MarshalText encodes the solid as its name.
func (s Solid) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText decodes a solid name.
func (s *Solid) UnmarshalText(b []byte) error {
	v, err := ParseSolid(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseSolid resolves a solid name, case-insensitively.
func ParseSolid(name string) (Solid, error) {
	for i, e := range solids {
		if strings.EqualFold(e.name, name) {
			return Solid(i), nil
		}
	}
	return 0, errors.New(errors.ErrCodeUnknownVariant, "unknown platonic solid %q", name)
}

// Solids returns every solid name.
func Solids() []string {
	out := make([]string, len(solids))
	for i, e := range solids {
		out[i] = e.name
	}
	return out
}

// platonicSolid projects the solid's vertices onto a circle and joins every
// pair.
func platonicSolid(size float64, opts Options) Outline {
	var p Path
	connectAll(&p, circlePoints(0, 0, size/2, opts.Solid.Vertices()))
	return Outline{Path: p}
}

const (
	spiralTurns  = 13
	spiralGrowth = 1.618034
)

// fibonacciSpiral lays quarter arcs of growing fibonacci radius, turning the
// pen a right angle after each.
func fibonacciSpiral(size float64, _ Options) Outline {
	scale := size / math.Pow(spiralGrowth, spiralTurns)
	cur, prev := 1.0, 1.0
	var (
		p Path
		f frame
	)
	for turn := 0; turn < spiralTurns; turn++ {
		r := scale * cur
		f.arc(&p, r/2, r/2, r, math.Pi, 1.5*math.Pi)
		cur, prev = cur+prev, cur
		f = f.translate(r, 0).rotate(math.Pi / 2)
	}
	return Outline{Path: p}
}

// islamicPattern places an eight-point rosette at every grid intersection.
func islamicPattern(size float64, _ Options) Outline {
	const grid = 8
	unit := size / grid
	r := unit / 2
	var p Path
	for i := 0; i <= grid; i++ {
		for j := 0; j <= grid; j++ {
			x := float64(i-grid/2) * unit
			y := float64(j-grid/2) * unit
			for k := 0; k < 8; k++ {
				a := math.Pi / 4 * float64(k)
				b := a + math.Pi/4
				p.Line(x+r*math.Cos(a), y+r*math.Sin(a), x+r*math.Cos(b), y+r*math.Sin(b))
			}
		}
	}
	return Outline{Path: p}
}

// celticKnot weaves a checkerboard of opposing S-curves.
func celticKnot(size float64, _ Options) Outline {
	const grid = 4
	u := size / grid
	var p Path
	for i := 0; i < grid; i++ {
		for j := 0; j < grid; j++ {
			x := float64(i-grid/2) * u
			y := float64(j-grid/2) * u
			if (i+j)%2 == 0 {
				p.MoveTo(x, y)
				p.CubicTo(x+u/2, y, x+u/2, y+u, x+u, y+u)
			} else {
				p.MoveTo(x, y+u)
				p.CubicTo(x+u/2, y+u, x+u/2, y, x+u, y)
			}
		}
	}
	return Outline{Path: p}
}

// merkaba overlays two triangles, the second turned by thirty degrees.
func merkaba(size float64, _ Options) Outline {
	r := size / 2
	var p Path
	for _, f := range []frame{{}, {theta: math.Pi / 6}} {
		pts := circlePoints(0, 0, r, 3)
		for i := range pts {
			pts[i].X, pts[i].Y = f.apply(pts[i].X, pts[i].Y)
		}
		connectAll(&p, pts)
	}
	return Outline{Path: p}
}

// mandala draws eight concentric rings, each with sixteen spokes.
func mandala(size float64, _ Options) Outline {
	const rings, spokes = 8, 16
	R := size / 2
	var p Path
	for i := 1; i <= rings; i++ {
		r := R / rings * float64(i)
		p.Circle(0, 0, r)
		for j := 0; j < spokes; j++ {
			a := 2 * math.Pi * float64(j) / spokes
			p.Line(0, 0, r*math.Cos(a), r*math.Sin(a))
		}
	}
	return Outline{Path: p}
}

// FractalDepth bounds the branching recursion.
const FractalDepth = 5

// fractal grows a binary tree upward from the bottom edge.
func fractal(size float64, _ Options) Outline {
	var p Path
	var branch func(x, y, length, angle float64, depth int)
	branch = func(x, y, length, angle float64, depth int) {
		if depth == 0 {
			return
		}
		ex, ey := x+length*math.Cos(angle), y+length*math.Sin(angle)
		p.Line(x, y, ex, ey)
		branch(ex, ey, length*0.7, angle-math.Pi/6, depth-1)
		branch(ex, ey, length*0.7, angle+math.Pi/6, depth-1)
	}
	branch(0, size/2, size/4, -math.Pi/2, FractalDepth)
	return Outline{Path: p}
}
