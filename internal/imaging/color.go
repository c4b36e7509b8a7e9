package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// StandardHSVColor is an HSV color in conventional units, for display to people
// who pick ranges with an ordinary color picker.
type StandardHSVColor struct {
	H int `json:"h"` // Hue: 0-360 degrees
	S int `json:"s"` // Saturation: 0-100 percent
	V int `json:"v"` // Value: 0-100 percent
}

// ColorResult contains a sampled pixel in the representations needed to tune
// color ranges.
type ColorResult struct {
	Hex         string           `json:"hex"`          // Hex format "#RRGGBB" (no alpha)
	RGB         RGBColor         `json:"rgb"`          // RGB components
	HSV         HSV              `json:"hsv"`          // HSV on the 0-255 mask scale
	StandardHSV StandardHSVColor `json:"standard_hsv"` // HSV in degrees and percent
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Coordinates are 0-based with origin at top-left. The HSV field uses the same
// scale InRange compares against, so a sampled value can be pasted directly
// into a color range.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	n := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	cf := colorful.Color{R: float64(n.R) / 255.0, G: float64(n.G) / 255.0, B: float64(n.B) / 255.0}
	h, s, v := cf.Hsv()

	return &ColorResult{
		Hex: fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B),
		RGB: RGBColor{R: n.R, G: n.G, B: n.B},
		HSV: hsvFromRGB8(n.R, n.G, n.B),
		StandardHSV: StandardHSVColor{
			H: int(h + 0.5),
			S: int(s*100 + 0.5),
			V: int(v*100 + 0.5),
		},
	}, nil
}
