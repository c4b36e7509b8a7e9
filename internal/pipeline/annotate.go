package pipeline

import (
	"image/color"
	"image/draw"
	"strconv"
	"strings"

	"github.com/ironsheep/count-objects/internal/detection"
	"github.com/ironsheep/count-objects/internal/imaging"
)

// Annotate draws an unfilled circle of the given radius and thickness at each
// blob center, rounded to the nearest pixel.
func Annotate(dst draw.Image, blobs []detection.Blob, c color.Color, radius, thickness int) {
	for _, b := range blobs {
		imaging.DrawCircle(dst, imaging.RoundPoint(b.X, b.Y), radius, thickness, c)
	}
}

// Count pairs a range name with the number of blobs found for it.
type Count struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Summary joins counts as "name=count" pairs separated by commas, keeping
// their order.
func Summary(counts []Count) string {
	var sb strings.Builder
	for i, c := range counts {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(c.Name)
		sb.WriteByte('=')
		sb.WriteString(strconv.Itoa(c.Count))
	}
	return sb.String()
}
