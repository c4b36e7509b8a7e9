package detection

import (
	"image"
	"math"
)

// mooreRing lists the 8 neighbor offsets in clockwise order (Y grows downward),
// starting east.
var mooreRing = [8]image.Point{
	{X: 1, Y: 0},
	{X: 1, Y: 1},
	{X: 0, Y: 1},
	{X: -1, Y: 1},
	{X: -1, Y: 0},
	{X: -1, Y: -1},
	{X: 0, Y: -1},
	{X: 1, Y: -1},
}

const west = 4

func ringIndex(d image.Point) int {
	for i, m := range mooreRing {
		if m == d {
			return i
		}
	}
	return -1
}

// traceContour follows the outer boundary of the region containing start
// using Moore-neighbor tracing with Jacob's stopping criterion.
//
// start must be the region's first pixel in raster order. The returned points
// are pixel centers in clockwise order, without repeating the start point.
// An isolated pixel yields a one-point contour.
func traceContour(m *labelMap, r *region) []image.Point {
	inside := func(p image.Point) bool {
		return m.at(p.X, p.Y) == r.label
	}

	// next scans clockwise around b starting just after the background pixel c.
	// It returns the first region pixel and the background pixel examined
	// immediately before it.
	next := func(b, c image.Point) (image.Point, image.Point, bool) {
		d0 := ringIndex(c.Sub(b))
		for i := 1; i <= 8; i++ {
			d := (d0 + i) % 8
			n := b.Add(mooreRing[d])
			if inside(n) {
				return n, b.Add(mooreRing[(d0+i-1)%8]), true
			}
		}
		return b, c, false
	}

	start := r.start
	contour := []image.Point{start}

	first, c, ok := next(start, start.Add(mooreRing[west]))
	if !ok {
		return contour
	}

	// Each boundary pixel can be entered from at most four directions.
	limit := 4*r.area + 4
	b := first
	for steps := 0; steps < limit; steps++ {
		if b == start {
			nb, nc, _ := next(b, c)
			if nb == first {
				break
			}
			contour = append(contour, b)
			b, c = nb, nc
			continue
		}
		contour = append(contour, b)
		b, c, _ = next(b, c)
	}

	return contour
}

// contourPerimeter returns the length of the closed 8-connected chain.
// Axis steps count 1 and diagonal steps count sqrt(2).
func contourPerimeter(contour []image.Point) float64 {
	if len(contour) < 2 {
		return 0
	}
	total := 0.0
	for i, p := range contour {
		q := contour[(i+1)%len(contour)]
		if p.X != q.X && p.Y != q.Y {
			total += math.Sqrt2
		} else {
			total++
		}
	}
	return total
}

// polygonArea returns the absolute shoelace area of a closed polygon.
func polygonArea(points []image.Point) float64 {
	if len(points) < 3 {
		return 0
	}
	sum := 0
	for i, p := range points {
		q := points[(i+1)%len(points)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return math.Abs(float64(sum)) / 2.0
}
