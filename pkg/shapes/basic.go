package shapes

import "math"

func circle(size float64, _ Options) Outline {
	var p Path
	p.Arc(0, 0, size/2, 0, 2*math.Pi)
	return Outline{Path: p, Fillable: true}
}

func square(size float64, _ Options) Outline {
	h := size / 2
	var p Path
	p.Polygon([]Point{{-h, -h}, {h, -h}, {h, h}, {-h, h}})
	return Outline{Path: p, Fillable: true}
}

func triangle(size float64, _ Options) Outline {
	h := size / 2
	var p Path
	p.Polygon([]Point{{0, -h}, {-h, h}, {h, h}})
	return Outline{Path: p, Fillable: true}
}

func hexagon(size float64, _ Options) Outline {
	var p Path
	p.Polygon(circlePoints(0, 0, size/2, 6))
	return Outline{Path: p, Fillable: true}
}

// starPoints walks n alternating outer/inner vertices, stepping the angle
// by step from start.
func starPoints(n int, start, step, outer, inner float64) []Point {
	pts := make([]Point, n)
	for i := range pts {
		a := start + step*float64(i)
		r := inner
		if i%2 == 0 {
			r = outer
		}
		pts[i] = Point{r * math.Cos(a), r * math.Sin(a)}
	}
	return pts
}

func star(size float64, _ Options) Outline {
	var p Path
	p.Polygon(starPoints(10, math.Pi/5, 3*math.Pi/5, size/2, size/4))
	return Outline{Path: p, Fillable: true}
}

func jackedStar(size float64, _ Options) Outline {
	var p Path
	p.Polygon(starPoints(10, math.Pi/30, 8*math.Pi/30, size/2, size/8))
	return Outline{Path: p, Fillable: true}
}

func heart(size float64, _ Options) Outline {
	var p Path
	p.MoveTo(0, size/4)
	p.QuadTo(size/2, size/4, 0, -size/4)
	p.QuadTo(-size/2, size/4, 0, size/4)
	p.Close()
	return Outline{Path: p, Fillable: true}
}

func diamond(size float64, _ Options) Outline {
	h := size / 2
	var p Path
	p.Polygon([]Point{{0, -h}, {h, 0}, {0, h}, {-h, 0}})
	return Outline{Path: p, Fillable: true}
}

// cube is an isometric projection: a hexagonal silhouette with the three
// edges that meet at the near corner.
func cube(size float64, _ Options) Outline {
	r := size / 2
	var hull []Point
	for i := 0; i < 6; i++ {
		a := -math.Pi/2 + float64(i)*math.Pi/3
		hull = append(hull, Point{r * math.Cos(a), r * math.Sin(a)})
	}
	var p Path
	p.Polygon(hull)
	for _, i := range []int{1, 3, 5} {
		p.Line(0, 0, hull[i].X, hull[i].Y)
	}
	return Outline{Path: p, Fillable: true}
}
