package pipeline

import (
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/count-objects/internal/detection"
)

func TestSummary(t *testing.T) {
	tests := []struct {
		name   string
		counts []Count
		want   string
	}{
		{"empty", nil, ""},
		{"single", []Count{{"DarkB", 3}}, "DarkB=3"},
		{"ordered", []Count{{"DarkB", 1}, {"Light", 0}}, "DarkB=1,Light=0"},
		{"order preserved", []Count{{"Light", 12}, {"DarkB", 7}, {"Red", 0}}, "Light=12,DarkB=7,Red=0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Summary(tt.counts); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAnnotate_RoundsCenters(t *testing.T) {
	tests := []struct {
		name       string
		x, y       float64
		wantCenter image.Point
	}{
		{"exact", 20, 20, image.Point{X: 20, Y: 20}},
		{"below half", 20.4, 19.6, image.Point{X: 20, Y: 20}},
		{"half rounds up", 20.5, 20.5, image.Point{X: 21, Y: 21}},
	}

	red := color.RGBA{R: 255, A: 255}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewRGBA(image.Rect(0, 0, 50, 50))
			Annotate(img, []detection.Blob{{X: tt.x, Y: tt.y}}, red, 10, 1)

			c := tt.wantCenter
			for _, p := range []image.Point{{X: c.X + 10, Y: c.Y}, {X: c.X - 10, Y: c.Y}, {X: c.X, Y: c.Y + 10}, {X: c.X, Y: c.Y - 10}} {
				if got := img.RGBAAt(p.X, p.Y); got != red {
					t.Errorf("ring pixel %v not drawn", p)
				}
			}
			if got := img.RGBAAt(c.X, c.Y); got == red {
				t.Error("marker should be unfilled")
			}
		})
	}
}

func TestAnnotate_LaterMarkersOverwrite(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	blobs := []detection.Blob{{X: 20, Y: 20}}

	Annotate(img, blobs, blue, 10, 1)
	Annotate(img, blobs, green, 10, 1)

	if got := img.RGBAAt(30, 20); got != green {
		t.Errorf("overlapping marker: got %v, want %v", got, green)
	}
}

func TestAnnotate_ClipsAtEdges(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	Annotate(img, []detection.Blob{{X: 1, Y: 1}, {X: 19, Y: 19}}, blue, 10, 1)

	if got := img.RGBAAt(11, 1); got != blue {
		t.Errorf("visible part of a clipped marker: got %v, want %v", got, blue)
	}
}
