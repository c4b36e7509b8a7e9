// Package imaging provides the pixel-level operations of the object counter.
//
// This package loads images from disk, converts them to a hue/saturation/value
// representation, thresholds them into binary masks, and draws result markers.
// All operations work with standard Go image types and use a coordinate system
// where (0,0) is at the top-left corner, X increases rightward, and Y increases downward.
//
// # HSV Scale
//
// HSV values are stored as three bytes per pixel, each channel on 0-255:
//   - H: hue angle, 0-360 degrees scaled to 0-255
//   - S: saturation, 0-100 percent scaled to 0-255
//   - V: value, 0-100 percent scaled to 0-255
//
// StandardHSV converts degree/percent notation to this scale with integer
// truncation, and ToHSV converts every pixel of an image exactly once.
//
// # Masks
//
// InRange produces an *image.Gray whose pixels are MaskForeground (255) when
// the HSV pixel lies inside an inclusive per-channel range and MaskBackground
// (0) otherwise.
//
// # Error Handling
//
// Loading failures are reported as *DecodeError and conversion failures as
// *ConversionError. Both are fatal to a counting run; nothing in this package
// substitutes a blank image for a missing one.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. All other functions are
// stateless; DrawCircle mutates its destination and must not race with other
// writers of the same image.
package imaging
