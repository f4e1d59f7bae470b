package shapes

import "math"

var sqrt3 = math.Sqrt(3)

// hexRosette returns a centre plus six neighbours at distance r*sqrt(3),
// the arrangement shared by the flower and seed of life.
func hexRosette(r float64) []Point {
	return []Point{
		{0, 0},
		{r * sqrt3, 0},
		{r * sqrt3 / 2, 1.5 * r},
		{-r * sqrt3 / 2, 1.5 * r},
		{-r * sqrt3, 0},
		{-r * sqrt3 / 2, -1.5 * r},
		{r * sqrt3 / 2, -1.5 * r},
	}
}

func circles(centers []Point, r float64) Path {
	var p Path
	for _, c := range centers {
		p.Circle(c.X, c.Y, r)
	}
	return p
}

func flowerOfLife(size float64, _ Options) Outline {
	r := size / 6
	return Outline{Path: circles(hexRosette(r), r), Fillable: true}
}

func seedOfLife(size float64, _ Options) Outline {
	r := size / 6
	p := circles(hexRosette(r), r)
	// the bounding circle distinguishes the seed from the bare flower
	p.Circle(0, 0, 2.5*r)
	return Outline{Path: p, Fillable: true}
}

func eggOfLife(size float64, _ Options) Outline {
	r := size / 8
	centers := []Point{
		{0, 0},
		{2 * r, 0},
		{r, r * sqrt3},
		{-r, r * sqrt3},
		{-2 * r, 0},
		{-r, -r * sqrt3},
		{r, -r * sqrt3},
	}
	return Outline{Path: circles(centers, r), Fillable: true}
}

// treeOfLife draws the ten sephirot and every path between them.
func treeOfLife(size float64, _ Options) Outline {
	r := size / 12
	d := r * 2.5
	pos := []Point{
		{0, -2 * d},
		{-d, -d},
		{d, -d},
		{-d, 0},
		{d, 0},
		{0, 0},
		{-d, d},
		{d, d},
		{0, 2 * d},
		{0, 3 * d},
	}
	p := circles(pos, r)
	connectAll(&p, pos[1:])
	return Outline{Path: p, Fillable: true}
}

func metatronsCube(size float64, _ Options) Outline {
	r := size / 3
	pts := []Point{{0, 0}}
	pts = append(pts, circlePoints(0, 0, r, 6)...)
	pts = append(pts, circlePoints(0, 0, r*1.5, 6)...)
	var p Path
	connectAll(&p, pts)
	return Outline{Path: p}
}

// sriYantra fans nine outer and nine inner triangles from the centre.
func sriYantra(size float64, _ Options) Outline {
	r := size / 2
	var p Path
	fan := func(radius, phase float64) {
		for i := 0; i < 9; i++ {
			a := float64(i)/9*2*math.Pi + phase
			p.Polygon([]Point{
				{0, 0},
				{math.Cos(a) * radius, math.Sin(a) * radius},
				{math.Cos(a+math.Pi/9) * radius, math.Sin(a+math.Pi/9) * radius},
			})
		}
	}
	fan(r, 0)
	fan(r*0.6, math.Pi/18)
	return Outline{Path: p, Fillable: true}
}

func vesicaPiscis(size float64, _ Options) Outline {
	r := size / 4
	return Outline{Path: circles([]Point{{-r / 2, 0}, {r / 2, 0}}, r), Fillable: true}
}

// torus sweeps meridian segments around the ring.
func torus(size float64, _ Options) Outline {
	const steps = 36
	outer, inner := size/2, size/4
	var p Path
	for i := 0; i < steps; i++ {
		theta := float64(i) / steps * 2 * math.Pi
		ct, st := math.Cos(theta), math.Sin(theta)
		for j := 0; j < steps; j++ {
			phi1 := float64(j) / steps * 2 * math.Pi
			phi2 := float64(j+1) / steps * 2 * math.Pi
			r1 := outer + inner*math.Cos(phi1)
			r2 := outer + inner*math.Cos(phi2)
			p.Line(r1*ct, r1*st, r2*ct, r2*st)
		}
	}
	return Outline{Path: p}
}
