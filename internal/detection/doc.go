// Package detection finds blob-like connected regions in binary masks.
//
// A BlobDetector labels the 8-connected foreground components of an
// *image.Gray mask, summarizes each one by centroid, area and bounding box,
// and reports the components that pass every enabled filter.
//
// # Filters
//
// Filters are independent and applied in this order:
//
//   - Area: MinArea <= pixels (<= MaxArea when MaxArea > 0)
//   - Color: mask value at the rounded centroid equals BlobColor
//   - Circularity: 4*pi*area/perimeter^2 of the traced outer contour
//   - Convexity: contour area over convex hull area
//   - Inertia: smaller over larger principal second moment
//
// The contour is traced (Moore-neighbor tracing) only when a filter needs it,
// and moments are only decomposed when the inertia filter is enabled.
//
// # Duplicate Suppression
//
// After filtering, candidates are visited by descending area, with raster order
// of their first pixel breaking ties. A candidate closer than
// MinDistBetweenBlobs to an already kept blob is dropped. The outcome is a
// pure function of the mask and parameters.
//
// # Coordinate System
//
// All coordinates use the standard image convention:
//   - Origin (0, 0) at top-left corner
//   - X increases rightward
//   - Y increases downward
//   - Pixel (x, y) has its center at (x, y), so a blob covering columns
//     40-54 has centroid X = 47
//
// Masks with a non-zero Bounds().Min report blobs in the mask's own
// coordinates.
package detection
