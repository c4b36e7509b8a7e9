package imaging

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// DrawCircle strokes an unfilled circle onto dst.
//
// Pixels whose center lies within thickness/2 of the ideal circle of the given
// radius are set to c, so a thickness of 1 gives a closed one-pixel ring.
// The circle is clipped to dst's bounds; centers outside the image are allowed.
// A radius below zero or a thickness below one draws nothing.
func DrawCircle(dst draw.Image, center image.Point, radius, thickness int, c color.Color) {
	if radius < 0 || thickness < 1 {
		return
	}

	half := float64(thickness) / 2.0
	inner := float64(radius) - half
	outer := float64(radius) + half
	if inner < 0 {
		inner = 0
	}
	innerSq := inner * inner
	outerSq := outer * outer

	reach := radius + thickness
	area := image.Rect(center.X-reach, center.Y-reach, center.X+reach+1, center.Y+reach+1).
		Intersect(dst.Bounds())

	for y := area.Min.Y; y < area.Max.Y; y++ {
		dy := float64(y - center.Y)
		for x := area.Min.X; x < area.Max.X; x++ {
			dx := float64(x - center.X)
			d := dx*dx + dy*dy
			if d >= innerSq && d < outerSq {
				dst.Set(x, y, c)
			}
		}
	}
}

// RoundPoint rounds floating point coordinates to the nearest pixel, with
// halves rounded away from zero.
func RoundPoint(x, y float64) image.Point {
	return image.Point{X: int(math.Round(x)), Y: int(math.Round(y))}
}
