package detection

import (
	"errors"
	"fmt"
)

// ErrInvalidParams is wrapped by every BlobParams validation failure.
var ErrInvalidParams = errors.New("invalid blob detector parameters")

// BlobParams configures a BlobDetector.
//
// Every filter is independent; a region is reported only if it passes all of
// the enabled ones. Shape measures for disabled filters are never computed.
type BlobParams struct {
	// MinDistBetweenBlobs is the suppression radius in pixels. Of two
	// surviving regions whose centroids are closer than this, only the one
	// with the larger area is kept (ties go to the region found first in
	// raster order).
	MinDistBetweenBlobs float64 `json:"min_dist_between_blobs"`

	// MinArea is the minimum region size in pixels (inclusive).
	MinArea int `json:"min_area"`

	// MaxArea is the maximum region size in pixels (inclusive). Zero means
	// no upper bound.
	MaxArea int `json:"max_area"`

	// FilterByColor keeps only regions whose mask value at the centroid
	// equals BlobColor. For solid foreground blobs and BlobColor 255 this
	// only confirms polarity; hollow shapes whose centroid falls in a hole
	// are rejected.
	FilterByColor bool  `json:"filter_by_color"`
	BlobColor     uint8 `json:"blob_color"`

	// FilterByCircularity bounds 4*pi*area/perimeter^2 of the outer contour.
	FilterByCircularity bool    `json:"filter_by_circularity"`
	MinCircularity      float64 `json:"min_circularity"`
	MaxCircularity      float64 `json:"max_circularity"`

	// FilterByConvexity bounds contour area divided by convex hull area.
	FilterByConvexity bool    `json:"filter_by_convexity"`
	MinConvexity      float64 `json:"min_convexity"`
	MaxConvexity      float64 `json:"max_convexity"`

	// FilterByInertia bounds the ratio of the smaller to the larger principal
	// second moment: 0 for a line, 1 for a disk or square.
	FilterByInertia bool    `json:"filter_by_inertia"`
	MinInertiaRatio float64 `json:"min_inertia_ratio"`
	MaxInertiaRatio float64 `json:"max_inertia_ratio"`
}

// DefaultBlobParams returns conservative defaults: bright blobs between 25 and
// 5000 pixels, at least 10 pixels apart, with every shape filter disabled but
// carrying usable bounds should a caller switch one on.
func DefaultBlobParams() BlobParams {
	return BlobParams{
		MinDistBetweenBlobs: 10,
		MinArea:             25,
		MaxArea:             5000,

		FilterByColor: true,
		BlobColor:     255,

		MinCircularity: 0.8,
		MaxCircularity: 1.0,

		MinConvexity: 0.95,
		MaxConvexity: 1.0,

		MinInertiaRatio: 0.1,
		MaxInertiaRatio: 1.0,
	}
}

// Validate checks that the parameters describe a usable detector.
func (p BlobParams) Validate() error {
	if p.MinDistBetweenBlobs < 0 {
		return fmt.Errorf("%w: min distance %v is negative", ErrInvalidParams, p.MinDistBetweenBlobs)
	}
	if p.MinArea < 0 || p.MaxArea < 0 {
		return fmt.Errorf("%w: area bounds [%d,%d] must not be negative", ErrInvalidParams, p.MinArea, p.MaxArea)
	}
	if p.MaxArea > 0 && p.MaxArea < p.MinArea {
		return fmt.Errorf("%w: max area %d below min area %d", ErrInvalidParams, p.MaxArea, p.MinArea)
	}
	if p.FilterByCircularity {
		if err := checkRatioBounds("circularity", p.MinCircularity, p.MaxCircularity); err != nil {
			return err
		}
	}
	if p.FilterByConvexity {
		if err := checkRatioBounds("convexity", p.MinConvexity, p.MaxConvexity); err != nil {
			return err
		}
	}
	if p.FilterByInertia {
		if err := checkRatioBounds("inertia ratio", p.MinInertiaRatio, p.MaxInertiaRatio); err != nil {
			return err
		}
	}
	return nil
}

func checkRatioBounds(name string, lo, hi float64) error {
	if lo < 0 || hi < lo {
		return fmt.Errorf("%w: %s bounds [%v,%v]", ErrInvalidParams, name, lo, hi)
	}
	return nil
}
