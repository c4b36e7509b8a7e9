// Package display shows images to the operator.
//
// With cgo available the images open in OpenCV HighGUI windows through gocv.
// Builds without cgo, or with the headless tag, only log what would have been
// shown.
package display

import (
	"image"
	"log"
	"time"
)

const (
	// MaskPreview is how long each mask window stays open.
	MaskPreview = time.Second

	// WaitForever keeps a window open until the operator presses a key.
	WaitForever time.Duration = 0

	// Largest window size; bigger images are scaled down to fit.
	maxWindowWidth  = 1600
	maxWindowHeight = 1000
)

// Viewer shows one image in a titled window and blocks for wait, or until
// the operator dismisses it when wait is WaitForever. The window is closed
// before Show returns.
type Viewer interface {
	Show(title string, img image.Image, wait time.Duration) error
}

// LogViewer is a Viewer that only logs.
type LogViewer struct{}

// Show logs the window that would have been opened.
func (LogViewer) Show(title string, img image.Image, wait time.Duration) error {
	b := img.Bounds()
	if wait == WaitForever {
		log.Printf("display %q: %dx%d image", title, b.Dx(), b.Dy())
	} else {
		log.Printf("display %q: %dx%d image for %s", title, b.Dx(), b.Dy(), wait)
	}
	return nil
}

// waitMillis converts a wait duration to the millisecond delay HighGUI
// expects, where 0 means forever.
func waitMillis(wait time.Duration) int {
	if wait <= 0 {
		return 0
	}
	ms := int(wait / time.Millisecond)
	if ms < 1 {
		ms = 1
	}
	return ms
}
