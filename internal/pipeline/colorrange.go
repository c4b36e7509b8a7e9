package pipeline

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/ironsheep/count-objects/internal/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidRange is wrapped by every ColorRange and catalog validation failure.
var ErrInvalidRange = errors.New("invalid color range")

// ColorRange describes one target color: an inclusive HSV range and the color
// used to mark its blobs.
type ColorRange struct {
	Name    string      `json:"name"`
	Lower   imaging.HSV `json:"lower"`
	Upper   imaging.HSV `json:"upper"`
	Display color.RGBA  `json:"-"`
}

// NewColorRange returns a validated ColorRange.
func NewColorRange(name string, lower, upper imaging.HSV, display color.RGBA) (ColorRange, error) {
	r := ColorRange{Name: name, Lower: lower, Upper: upper, Display: display}
	if err := r.Validate(); err != nil {
		return ColorRange{}, err
	}
	return r, nil
}

// Validate checks that the range has a name and that Lower <= Upper on
// every channel.
func (r ColorRange) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidRange)
	}
	if r.Lower.H > r.Upper.H || r.Lower.S > r.Upper.S || r.Lower.V > r.Upper.V {
		return fmt.Errorf("%w: %s lower bound %s exceeds upper bound %s",
			ErrInvalidRange, r.Name, r.Lower, r.Upper)
	}
	return nil
}

// Contains reports whether c lies inside the range.
func (r ColorRange) Contains(c imaging.HSV) bool {
	return c.In(r.Lower, r.Upper)
}

// Mask builds the range's binary mask from a converted image.
func (r ColorRange) Mask(hsv *imaging.HSVImage) *image.Gray {
	return imaging.InRange(hsv, r.Lower, r.Upper)
}

// DisplayHex returns the marker color as #rrggbb.
func (r ColorRange) DisplayHex() string {
	c, _ := colorful.MakeColor(r.Display)
	return c.Hex()
}
