package pipeline

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/clone"
	"github.com/google/uuid"

	"github.com/ironsheep/count-objects/internal/detection"
	"github.com/ironsheep/count-objects/internal/imaging"
)

// MaskFunc receives each range's mask right after it is built. Returning an
// error aborts the run.
type MaskFunc func(r ColorRange, mask *image.Gray) error

// RangeResult is the detection outcome for one ColorRange.
type RangeResult struct {
	Range      ColorRange       `json:"range"`
	Blobs      []detection.Blob `json:"blobs"`
	BlobsFound int              `json:"blobs_found"`
}

// Result is the outcome of a complete run.
type Result struct {
	RunID uuid.UUID `json:"run_id"`

	// Ranges holds one entry per configured range, in configuration order.
	Ranges []RangeResult `json:"ranges"`

	// Annotated is a copy of the source image with every marker drawn on it.
	Annotated *image.RGBA `json:"-"`
}

// Counts returns the (name, count) pairs in configuration order.
func (r *Result) Counts() []Count {
	counts := make([]Count, len(r.Ranges))
	for i, rr := range r.Ranges {
		counts[i] = Count{Name: rr.Range.Name, Count: rr.BlobsFound}
	}
	return counts
}

// Summary returns the "Name1=count1,Name2=count2" line for this run.
func (r *Result) Summary() string {
	return Summary(r.Counts())
}

// Run counts the objects of every configured color in src.
//
// The configuration is validated before any pixel work. src is converted to
// HSV once and is never modified; markers are drawn on Result.Annotated.
// onMask may be nil. On error no partial result is returned.
func Run(src image.Image, cfg Config, onMask MaskFunc) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	detector, err := detection.NewBlobDetector(cfg.Detector)
	if err != nil {
		return nil, err
	}

	hsv, err := imaging.ToHSV(src)
	if err != nil {
		return nil, err
	}

	result := &Result{
		RunID:     uuid.New(),
		Ranges:    make([]RangeResult, 0, len(cfg.Ranges)),
		Annotated: clone.AsRGBA(src),
	}

	for _, r := range cfg.Ranges {
		mask := r.Mask(hsv)
		if onMask != nil {
			if err := onMask(r, mask); err != nil {
				return nil, fmt.Errorf("mask for %s: %w", r.Name, err)
			}
		}

		blobs := detector.Detect(mask)
		Annotate(result.Annotated, blobs, r.Display, cfg.MarkerRadius, cfg.MarkerThickness)

		result.Ranges = append(result.Ranges, RangeResult{
			Range:      r,
			Blobs:      blobs,
			BlobsFound: len(blobs),
		})
	}

	return result, nil
}

// BuildMask converts src and returns the mask of a single range. It is the
// first step of Run, exposed for callers that only need the mask.
func BuildMask(src image.Image, r ColorRange) (*image.Gray, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	hsv, err := imaging.ToHSV(src)
	if err != nil {
		return nil, err
	}
	return r.Mask(hsv), nil
}
