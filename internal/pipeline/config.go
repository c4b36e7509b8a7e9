package pipeline

import (
	"fmt"
	"image/color"

	"github.com/ironsheep/count-objects/internal/detection"
	"github.com/ironsheep/count-objects/internal/imaging"
)

// Marker geometry of the compiled-in configuration.
const (
	DefaultMarkerRadius    = 10
	DefaultMarkerThickness = 1
)

var (
	blue  = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	green = color.RGBA{R: 0, G: 255, B: 0, A: 255}
)

// Config is everything a run needs besides the image.
type Config struct {
	// Ranges are processed in order; names must be unique.
	Ranges []ColorRange

	Detector detection.BlobParams

	MarkerRadius    int
	MarkerThickness int
}

// DefaultConfig returns the compiled-in catalog:
//
//	DarkB  H 0-360°  S 20-100%  V 0-35%   marked blue
//	Light  H 20-55°  S 40-100%  V 20-80%  marked green
//
// with bright blobs of 5 to 5000 pixels at least 5 pixels apart.
func DefaultConfig() Config {
	return Config{
		Ranges: []ColorRange{
			{
				Name:    "DarkB",
				Lower:   imaging.StandardHSV(0, 20, 0),
				Upper:   imaging.StandardHSV(360, 100, 35),
				Display: blue,
			},
			{
				Name:    "Light",
				Lower:   imaging.StandardHSV(20, 40, 20),
				Upper:   imaging.StandardHSV(55, 100, 80),
				Display: green,
			},
		},
		Detector: detection.BlobParams{
			MinDistBetweenBlobs: 5,
			MinArea:             5,
			MaxArea:             5000,
			FilterByColor:       true,
			BlobColor:           imaging.MaskForeground,
		},
		MarkerRadius:    DefaultMarkerRadius,
		MarkerThickness: DefaultMarkerThickness,
	}
}

// Validate checks the catalog, the detector parameters and the marker
// geometry.
func (c Config) Validate() error {
	if len(c.Ranges) == 0 {
		return fmt.Errorf("%w: no color ranges configured", ErrInvalidRange)
	}

	seen := make(map[string]bool, len(c.Ranges))
	for _, r := range c.Ranges {
		if err := r.Validate(); err != nil {
			return err
		}
		if seen[r.Name] {
			return fmt.Errorf("%w: duplicate name %q", ErrInvalidRange, r.Name)
		}
		seen[r.Name] = true
	}

	if err := c.Detector.Validate(); err != nil {
		return err
	}

	if c.MarkerRadius < 0 || c.MarkerThickness < 1 {
		return fmt.Errorf("invalid marker geometry: radius %d, thickness %d", c.MarkerRadius, c.MarkerThickness)
	}
	return nil
}

// Range looks up a configured range by name.
func (c Config) Range(name string) (ColorRange, bool) {
	for _, r := range c.Ranges {
		if r.Name == name {
			return r, true
		}
	}
	return ColorRange{}, false
}

// RangeNames returns the configured range names in order.
func (c Config) RangeNames() []string {
	names := make([]string, len(c.Ranges))
	for i, r := range c.Ranges {
		names[i] = r.Name
	}
	return names
}
