package detection

import (
	"image"
)

// region accumulates the statistics of one connected foreground component.
// Coordinates are relative to the mask's top-left corner.
type region struct {
	label int32
	area  int

	// start is the first pixel of the region in raster order; it always lies
	// on the outer boundary with a background pixel to its left.
	start image.Point

	sumX, sumY             float64
	sumXX, sumYY, sumXY    float64
	minX, minY, maxX, maxY int
}

func (r *region) add(x, y int) {
	fx, fy := float64(x), float64(y)
	r.area++
	r.sumX += fx
	r.sumY += fy
	r.sumXX += fx * fx
	r.sumYY += fy * fy
	r.sumXY += fx * fy
	if x < r.minX {
		r.minX = x
	}
	if x > r.maxX {
		r.maxX = x
	}
	if y < r.minY {
		r.minY = y
	}
	if y > r.maxY {
		r.maxY = y
	}
}

// centroid returns the mean pixel position of the region.
func (r *region) centroid() (float64, float64) {
	n := float64(r.area)
	return r.sumX / n, r.sumY / n
}

// labelMap holds the component label of every mask pixel (0 = background).
type labelMap struct {
	width, height int
	labels        []int32
}

func (m *labelMap) at(x, y int) int32 {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return 0
	}
	return m.labels[y*m.width+x]
}

// labelComponents finds the 8-connected components of non-zero mask pixels.
//
// Components are numbered from 1 in the raster order of their first pixel,
// so labeling is stable for a given mask.
func labelComponents(mask *image.Gray) (*labelMap, []region) {
	b := mask.Bounds()
	width, height := b.Dx(), b.Dy()

	m := &labelMap{
		width:  width,
		height: height,
		labels: make([]int32, width*height),
	}
	regions := make([]region, 0)

	foreground := func(x, y int) bool {
		return mask.Pix[y*mask.Stride+x] != 0
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !foreground(x, y) || m.labels[y*width+x] != 0 {
				continue
			}
			r := region{
				label: int32(len(regions) + 1),
				start: image.Point{X: x, Y: y},
				minX:  x,
				minY:  y,
				maxX:  x,
				maxY:  y,
			}
			floodFill(m, foreground, &r)
			regions = append(regions, r)
		}
	}

	return m, regions
}

// floodFill performs iterative flood-fill from r.start.
//
// Uses a stack-based approach (not recursive) to avoid stack overflow
// on large regions. Pixels are labeled when pushed so each one enters the
// stack once. Uses 8-connectivity (includes diagonal neighbors).
func floodFill(m *labelMap, foreground func(x, y int) bool, r *region) {
	stack := []image.Point{r.start}
	m.labels[r.start.Y*m.width+r.start.X] = r.label

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		r.add(p.X, p.Y)

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := p.X+dx, p.Y+dy
				if nx < 0 || nx >= m.width || ny < 0 || ny >= m.height {
					continue
				}
				i := ny*m.width + nx
				if m.labels[i] != 0 || !foreground(nx, ny) {
					continue
				}
				m.labels[i] = r.label
				stack = append(stack, image.Point{X: nx, Y: ny})
			}
		}
	}
}
