package detection

import (
	"image"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// convexHull returns the convex hull of points in counter-clockwise order
// (Andrew's monotone chain). Collinear points are dropped. Fewer than three
// input points are returned as-is.
func convexHull(points []image.Point) []image.Point {
	if len(points) < 3 {
		return points
	}

	pts := make([]image.Point, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})

	hull := make([]image.Point, 0, 2*len(pts))

	// Lower hull
	for _, p := range pts {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	// Upper hull
	lower := len(hull) + 1
	for i := len(pts) - 2; i >= 0; i-- {
		p := pts[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	return hull[:len(hull)-1]
}

// cross computes the cross product of vectors OA and OB.
func cross(o, a, b image.Point) int {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// circularity returns 4*pi*area/perimeter^2 of a traced contour.
// It is undefined (ok == false) for contours with no enclosed area.
func circularity(contour []image.Point) (float64, bool) {
	area := polygonArea(contour)
	perimeter := contourPerimeter(contour)
	if area == 0 || perimeter == 0 {
		return 0, false
	}
	return 4 * math.Pi * area / (perimeter * perimeter), true
}

// convexity returns the contour area divided by the area of its convex hull.
// It is undefined (ok == false) for contours with no enclosed area.
func convexity(contour []image.Point) (float64, bool) {
	area := polygonArea(contour)
	hullArea := polygonArea(convexHull(contour))
	if area == 0 || hullArea == 0 {
		return 0, false
	}
	return area / hullArea, true
}

// inertiaRatio returns the ratio of the smaller to the larger eigenvalue of
// the region's central second-moment matrix. A single pixel, having no
// elongation, counts as 1.
func inertiaRatio(r *region) (float64, bool) {
	n := float64(r.area)
	cx, cy := r.centroid()
	mu20 := r.sumXX/n - cx*cx
	mu02 := r.sumYY/n - cy*cy
	mu11 := r.sumXY/n - cx*cy

	moments := mat.NewSymDense(2, []float64{
		mu20, mu11,
		mu11, mu02,
	})

	var eig mat.EigenSym
	if !eig.Factorize(moments, false) {
		return 0, false
	}
	values := eig.Values(nil) // ascending

	const eps = 1e-9
	if values[1] <= eps {
		return 1, true
	}
	ratio := values[0] / values[1]
	return math.Min(math.Max(ratio, 0), 1), true
}
