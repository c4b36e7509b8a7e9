package imaging

import (
	"image"
)

const (
	// MaskForeground is the mask value of pixels inside the range.
	MaskForeground uint8 = 255

	// MaskBackground is the mask value of pixels outside the range.
	MaskBackground uint8 = 0
)

// InRange builds a binary mask from an HSV image.
//
// A pixel is MaskForeground iff every channel satisfies
// lower[i] <= pixel[i] <= upper[i]; otherwise it is MaskBackground. The mask
// has the same bounds as src. The operation is purely per-pixel, so equal
// inputs always produce identical masks.
//
// A channel with lower == upper admits exactly that value. A channel with
// lower > upper admits nothing, which yields an all-background mask.
func InRange(src *HSVImage, lower, upper HSV) *image.Gray {
	bounds := src.Bounds()
	mask := image.NewGray(bounds)

	w := bounds.Dx()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		si := src.PixOffset(bounds.Min.X, y)
		mi := mask.PixOffset(bounds.Min.X, y)
		for x := 0; x < w; x++ {
			c := HSV{H: src.Pix[si], S: src.Pix[si+1], V: src.Pix[si+2]}
			if c.In(lower, upper) {
				mask.Pix[mi] = MaskForeground
			}
			si += 3
			mi++
		}
	}

	return mask
}

// CountForeground returns the number of non-zero pixels in a mask.
func CountForeground(mask *image.Gray) int {
	n := 0
	b := mask.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := mask.Pix[mask.PixOffset(b.Min.X, y) : mask.PixOffset(b.Min.X, y)+b.Dx()]
		for _, v := range row {
			if v != MaskBackground {
				n++
			}
		}
	}
	return n
}
