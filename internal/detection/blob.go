package detection

import (
	"image"
	"math"
	"sort"
)

// Bounds represents a rectangular bounding box in pixel coordinates.
//
// The coordinate convention follows standard image bounds:
//   - (X1, Y1) is the top-left corner (inclusive)
//   - (X2, Y2) is the bottom-right corner (exclusive)
type Bounds struct {
	X1 int `json:"x1"` // Left edge (inclusive)
	Y1 int `json:"y1"` // Top edge (inclusive)
	X2 int `json:"x2"` // Right edge (exclusive)
	Y2 int `json:"y2"` // Bottom edge (exclusive)
}

// Blob is a detected connected foreground region.
type Blob struct {
	// X and Y are the centroid of the region's pixels, in image coordinates.
	X float64 `json:"x"`
	Y float64 `json:"y"`

	// Size is the diameter of a circle with the same area as the region.
	Size float64 `json:"size"`

	// Area is the region's pixel count.
	Area int `json:"area"`

	// Bounds is the bounding box of the region.
	Bounds Bounds `json:"bounds"`
}

// BlobDetector finds blobs in binary masks.
//
// A BlobDetector holds only its parameters and is safe for concurrent use.
type BlobDetector struct {
	params BlobParams
}

// NewBlobDetector validates params and returns a detector using them.
func NewBlobDetector(params BlobParams) (*BlobDetector, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &BlobDetector{params: params}, nil
}

// Params returns the detector's configuration.
func (d *BlobDetector) Params() BlobParams {
	return d.params
}

// Detect returns the blobs found in mask.
//
// Non-zero mask pixels are foreground. The algorithm:
//
//  1. Label the 8-connected foreground components in raster order.
//  2. Compute each component's area, centroid and bounding box.
//  3. Apply the area, color, circularity, convexity and inertia filters,
//     skipping any shape measure whose filter is disabled.
//  4. Suppress candidates closer than MinDistBetweenBlobs to a kept one,
//     visiting candidates by descending area (raster order breaks ties).
//
// Callers must not depend on the order of the returned blobs. An empty mask
// yields an empty, non-nil slice.
func (d *BlobDetector) Detect(mask *image.Gray) []Blob {
	p := d.params
	labels, regions := labelComponents(mask)
	origin := mask.Bounds().Min

	candidates := make([]Blob, 0, len(regions))
	for i := range regions {
		r := &regions[i]
		if !d.accept(mask, labels, r) {
			continue
		}
		cx, cy := r.centroid()
		candidates = append(candidates, Blob{
			X:    cx + float64(origin.X),
			Y:    cy + float64(origin.Y),
			Size: 2 * math.Sqrt(float64(r.area)/math.Pi),
			Area: r.area,
			Bounds: Bounds{
				X1: r.minX + origin.X,
				Y1: r.minY + origin.Y,
				X2: r.maxX + 1 + origin.X,
				Y2: r.maxY + 1 + origin.Y,
			},
		})
	}

	return suppressNearby(candidates, p.MinDistBetweenBlobs)
}

// accept applies the enabled filters in order.
func (d *BlobDetector) accept(mask *image.Gray, labels *labelMap, r *region) bool {
	p := d.params

	if r.area < p.MinArea {
		return false
	}
	if p.MaxArea > 0 && r.area > p.MaxArea {
		return false
	}

	if p.FilterByColor {
		cx, cy := r.centroid()
		x, y := int(math.Round(cx)), int(math.Round(cy))
		if mask.Pix[y*mask.Stride+x] != p.BlobColor {
			return false
		}
	}

	var contour []image.Point
	if p.FilterByCircularity || p.FilterByConvexity {
		contour = traceContour(labels, r)
	}

	if p.FilterByCircularity {
		v, ok := circularity(contour)
		if !ok || v < p.MinCircularity || v > p.MaxCircularity {
			return false
		}
	}

	if p.FilterByConvexity {
		v, ok := convexity(contour)
		if !ok || v < p.MinConvexity || v > p.MaxConvexity {
			return false
		}
	}

	if p.FilterByInertia {
		v, ok := inertiaRatio(r)
		if !ok || v < p.MinInertiaRatio || v > p.MaxInertiaRatio {
			return false
		}
	}

	return true
}

// suppressNearby keeps, among candidates closer than minDist, only the one
// with the largest area. Candidates must be in raster (label) order; the
// stable sort makes that order the tie-breaker.
func suppressNearby(candidates []Blob, minDist float64) []Blob {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Area > candidates[j].Area
	})

	kept := make([]Blob, 0, len(candidates))
	for _, c := range candidates {
		isDuplicate := false
		for _, k := range kept {
			if math.Hypot(c.X-k.X, c.Y-k.Y) < minDist {
				isDuplicate = true
				break
			}
		}
		if !isDuplicate {
			kept = append(kept, c)
		}
	}
	return kept
}

// DetectBlobs is a convenience wrapper that validates params and runs a
// single detection.
func DetectBlobs(mask *image.Gray, params BlobParams) ([]Blob, error) {
	d, err := NewBlobDetector(params)
	if err != nil {
		return nil, err
	}
	return d.Detect(mask), nil
}
