package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HSV is a hue/saturation/value triple on a normalized 8-bit scale.
//
// All three channels use the full 0-255 range:
//   - H: hue angle, 0-360 degrees mapped to 0-255
//   - S: saturation, 0-100 percent mapped to 0-255
//   - V: value (brightness), 0-100 percent mapped to 0-255
type HSV struct {
	H uint8 `json:"h"`
	S uint8 `json:"s"`
	V uint8 `json:"v"`
}

// StandardHSV converts conventional HSV notation (hue in degrees 0-360,
// saturation and value in percent 0-100) to the 8-bit scale used by HSVImage.
//
// Integer division truncates, so StandardHSV(55, 100, 80) is {38, 255, 204}.
// Out-of-range inputs are clamped.
func StandardHSV(hDeg, sPct, vPct int) HSV {
	return HSV{
		H: uint8(clampInt(hDeg, 0, 360) * 255 / 360),
		S: uint8(clampInt(sPct, 0, 100) * 255 / 100),
		V: uint8(clampInt(vPct, 0, 100) * 255 / 100),
	}
}

// In reports whether every channel of c lies within the inclusive range
// [lower, upper].
func (c HSV) In(lower, upper HSV) bool {
	return lower.H <= c.H && c.H <= upper.H &&
		lower.S <= c.S && c.S <= upper.S &&
		lower.V <= c.V && c.V <= upper.V
}

func (c HSV) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.H, c.S, c.V)
}

// HSVOf converts any color to the 8-bit HSV scale.
//
// Alpha is ignored: the color is un-premultiplied first, so a transparent
// pixel keeps the hue it was stored with.
func HSVOf(c color.Color) HSV {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return hsvFromRGB8(n.R, n.G, n.B)
}

func hsvFromRGB8(r, g, b uint8) HSV {
	h, s, v := colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}.Hsv()

	return HSV{
		H: scaleUnit(h / 360.0),
		S: scaleUnit(s),
		V: scaleUnit(v),
	}
}

// scaleUnit maps [0,1] onto [0,255] with rounding.
func scaleUnit(f float64) uint8 {
	return uint8(math.Round(math.Min(math.Max(f, 0), 1) * 255))
}

// HSVImage is an in-memory image of HSV pixels.
//
// The layout mirrors image.RGBA: Pix holds three bytes (H, S, V) per pixel,
// rows are Stride bytes apart, and Rect gives the pixel bounds.
type HSVImage struct {
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

// NewHSVImage returns a zeroed HSVImage with the given bounds.
func NewHSVImage(r image.Rectangle) *HSVImage {
	w, h := r.Dx(), r.Dy()
	return &HSVImage{
		Pix:    make([]uint8, 3*w*h),
		Stride: 3 * w,
		Rect:   r,
	}
}

// Bounds returns the pixel bounds of the image.
func (p *HSVImage) Bounds() image.Rectangle {
	return p.Rect
}

// PixOffset returns the index of the first element of Pix that corresponds
// to the pixel at (x, y).
func (p *HSVImage) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*3
}

// HSVAt returns the pixel at (x, y), or the zero HSV outside the bounds.
func (p *HSVImage) HSVAt(x, y int) HSV {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return HSV{}
	}
	i := p.PixOffset(x, y)
	return HSV{H: p.Pix[i], S: p.Pix[i+1], V: p.Pix[i+2]}
}

// SetHSV sets the pixel at (x, y). Points outside the bounds are ignored.
func (p *HSVImage) SetHSV(x, y int, c HSV) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	p.Pix[i] = c.H
	p.Pix[i+1] = c.S
	p.Pix[i+2] = c.V
}

// ConversionError reports an image that cannot be converted to HSV.
type ConversionError struct {
	Reason string
}

func (e *ConversionError) Error() string {
	return "hsv conversion failed: " + e.Reason
}

// ToHSV converts a whole image to HSV in one pass.
//
// The result has the same bounds as img. Conversion is all-or-nothing: a nil
// image, an image with empty bounds, or an alpha-only image (no color channels)
// yields a *ConversionError and no partial output.
func ToHSV(img image.Image) (*HSVImage, error) {
	if img == nil {
		return nil, &ConversionError{Reason: "no image"}
	}
	switch img.(type) {
	case *image.Alpha, *image.Alpha16:
		return nil, &ConversionError{Reason: fmt.Sprintf("unsupported color model %T: no color channels", img)}
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, &ConversionError{Reason: "image has no pixels"}
	}

	dst := NewHSVImage(bounds)

	// Fast path for the decoders' most common non-paletted output.
	if src, ok := img.(*image.NRGBA); ok {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				i := src.PixOffset(x, y)
				dst.SetHSV(x, y, hsvFromRGB8(src.Pix[i], src.Pix[i+1], src.Pix[i+2]))
			}
		}
		return dst, nil
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dst.SetHSV(x, y, HSVOf(img.At(x, y)))
		}
	}
	return dst, nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
