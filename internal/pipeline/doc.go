// Package pipeline counts colored objects in a single image.
//
// A run converts the source image to HSV once, then for each configured
// ColorRange builds an inclusive-range mask, detects blobs in it and draws a
// marker on an annotated copy of the source at every blob center. Ranges are
// processed strictly in configuration order, so markers of later ranges are
// drawn over earlier ones.
//
// The color catalog, detector parameters and marker geometry are carried by a
// Config value; DefaultConfig returns the compiled-in catalog.
package pipeline
