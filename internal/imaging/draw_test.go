package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestDrawCircle(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 50, 50))
	blue := color.RGBA{0, 0, 255, 255}

	DrawCircle(img, image.Pt(25, 25), 10, 1, blue)

	// Points on the ring
	for _, p := range []image.Point{{35, 25}, {15, 25}, {25, 35}, {25, 15}} {
		if img.RGBAAt(p.X, p.Y) != blue {
			t.Errorf("pixel %v should be on the circle", p)
		}
	}

	// Center and far away stay untouched
	for _, p := range []image.Point{{25, 25}, {30, 25}, {0, 0}, {37, 25}} {
		if img.RGBAAt(p.X, p.Y) == blue {
			t.Errorf("pixel %v should not be drawn", p)
		}
	}
}

func TestDrawCircle_ClosedRing(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	c := color.RGBA{0, 255, 0, 255}
	DrawCircle(img, image.Pt(20, 20), 10, 1, c)

	// Every row crossing the circle must have at least one pixel on each side.
	for y := 11; y <= 29; y++ {
		left, right := false, false
		for x := 0; x < 40; x++ {
			if img.RGBAAt(x, y) == c {
				if x <= 20 {
					left = true
				}
				if x >= 20 {
					right = true
				}
			}
		}
		if !left || !right {
			t.Errorf("row %d: ring not closed (left=%v right=%v)", y, left, right)
		}
	}
}

func TestDrawCircle_Clipped(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	c := color.RGBA{255, 0, 0, 255}

	// Should not panic when the circle extends past the edges
	DrawCircle(img, image.Pt(0, 0), 10, 1, c)
	DrawCircle(img, image.Pt(-50, -50), 10, 1, c)

	if img.RGBAAt(9, 4) != c && img.RGBAAt(9, 5) != c && img.RGBAAt(9, 3) != c {
		t.Error("expected part of the clipped ring near (9,4)")
	}
}

func TestDrawCircle_Thickness(t *testing.T) {
	thin := image.NewRGBA(image.Rect(0, 0, 60, 60))
	thick := image.NewRGBA(image.Rect(0, 0, 60, 60))
	c := color.RGBA{255, 255, 255, 255}

	DrawCircle(thin, image.Pt(30, 30), 15, 1, c)
	DrawCircle(thick, image.Pt(30, 30), 15, 5, c)

	count := func(img *image.RGBA) int {
		n := 0
		for y := 0; y < 60; y++ {
			for x := 0; x < 60; x++ {
				if img.RGBAAt(x, y) == c {
					n++
				}
			}
		}
		return n
	}

	if count(thick) <= count(thin) {
		t.Errorf("thickness 5 drew %d pixels, thickness 1 drew %d", count(thick), count(thin))
	}
}

func TestDrawCircle_InvalidArgs(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	c := color.RGBA{255, 0, 0, 255}

	DrawCircle(img, image.Pt(5, 5), -1, 1, c)
	DrawCircle(img, image.Pt(5, 5), 3, 0, c)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if img.RGBAAt(x, y) == c {
				t.Fatalf("pixel (%d,%d) drawn for invalid arguments", x, y)
			}
		}
	}
}

func TestRoundPoint(t *testing.T) {
	tests := []struct {
		x, y float64
		want image.Point
	}{
		{10.4, 10.6, image.Pt(10, 11)},
		{10.5, 11.5, image.Pt(11, 12)},
		{-0.5, -1.5, image.Pt(-1, -2)},
		{47.0, 0.49, image.Pt(47, 0)},
	}

	for _, tt := range tests {
		if got := RoundPoint(tt.x, tt.y); got != tt.want {
			t.Errorf("RoundPoint(%v,%v): got %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
