//go:build cgo && !headless

package display

import (
	"fmt"
	"image"
	"log"
	"time"

	"gocv.io/x/gocv"

	"github.com/ironsheep/count-objects/internal/imaging"
)

// WindowViewer shows images in OpenCV windows.
type WindowViewer struct {
	MaxWidth  int
	MaxHeight int
}

// New returns the platform Viewer.
func New() Viewer {
	return &WindowViewer{MaxWidth: maxWindowWidth, MaxHeight: maxWindowHeight}
}

// Show implements Viewer.
func (v *WindowViewer) Show(title string, img image.Image, wait time.Duration) error {
	mat, err := toMat(imaging.FitWithin(img, v.MaxWidth, v.MaxHeight))
	if err != nil {
		return fmt.Errorf("failed to prepare %q for display: %w", title, err)
	}
	defer mat.Close()

	window := gocv.NewWindow(title)
	defer window.Close()

	window.IMShow(mat)
	key := window.WaitKey(waitMillis(wait))
	if key >= 0 {
		log.Printf("display %q dismissed with key %d", title, key)
	}
	return nil
}

// toMat copies img into a Mat, keeping single-channel masks single-channel.
func toMat(img image.Image) (gocv.Mat, error) {
	if gray, ok := img.(*image.Gray); ok {
		return gocv.ImageGrayToMatGray(gray)
	}
	return gocv.ImageToMatRGB(img)
}
