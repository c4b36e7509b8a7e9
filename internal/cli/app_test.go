package cli

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ironsheep/count-objects/internal/display"
	"github.com/ironsheep/count-objects/internal/imaging"
	"github.com/ironsheep/count-objects/internal/pipeline"
)

type shown struct {
	title string
	size  image.Point
	wait  time.Duration
}

// recordingViewer remembers every window instead of opening it.
type recordingViewer struct {
	shown []shown
	err   error
}

func (v *recordingViewer) Show(title string, img image.Image, wait time.Duration) error {
	v.shown = append(v.shown, shown{title: title, size: img.Bounds().Size(), wait: wait})
	return v.err
}

// newTestApp returns an App whose file access is counted.
func newTestApp() (*App, *bytes.Buffer, *bytes.Buffer, *recordingViewer, *int) {
	var stdout, stderr bytes.Buffer
	viewer := &recordingViewer{}
	fileOps := new(int)

	app := New(&stdout, &stderr)
	app.Viewer = viewer
	app.Stat = func(name string) (os.FileInfo, error) {
		*fileOps++
		return os.Stat(name)
	}
	app.Load = func(path string) (image.Image, error) {
		*fileOps++
		return imaging.LoadImage(path)
	}
	return app, &stdout, &stderr, viewer, fileOps
}

// writeScene writes a 100x100 PNG with one DarkB disk and one Light square.
func writeScene(t *testing.T) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			c := color.RGBA{R: 200, G: 200, B: 200, A: 255}
			dx, dy := x-30, y-30
			if dx*dx+dy*dy <= 400 {
				c = color.RGBA{R: 20, G: 20, B: 60, A: 255}
			}
			if x >= 60 && x < 75 && y >= 60 && y < 75 {
				c = color.RGBA{R: 200, G: 150, B: 50, A: 255}
			}
			img.Set(x, y, c)
		}
	}

	f, err := os.CreateTemp(t.TempDir(), "scene-*.png")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode PNG: %v", err)
	}
	return f.Name()
}

func TestRun_Usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", nil},
		{"two arguments", []string{"a.jpg", "b.jpg"}},
		{"three arguments", []string{"a.jpg", "b.jpg", "c.jpg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, stdout, _, viewer, fileOps := newTestApp()

			if code := app.Run(tt.args); code != ExitUsage {
				t.Errorf("exit code: got %d, want %d", code, ExitUsage)
			}
			if got := stdout.String(); got != UsageMessage+"\n" {
				t.Errorf("output: got %q, want %q", got, UsageMessage+"\n")
			}
			if *fileOps != 0 {
				t.Errorf("no file access expected, got %d", *fileOps)
			}
			if len(viewer.shown) != 0 {
				t.Errorf("no windows expected, got %d", len(viewer.shown))
			}
		})
	}
}

func TestRun_MissingFile(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		path string
	}{
		{"nonexistent", filepath.Join(dir, "missing.jpg")},
		{"directory", dir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, stdout, _, viewer, fileOps := newTestApp()

			if code := app.Run([]string{tt.path}); code != ExitFailure {
				t.Errorf("exit code: got %d, want %d", code, ExitFailure)
			}
			want := "File " + tt.path + " doesn't exist\n"
			if got := stdout.String(); got != want {
				t.Errorf("output: got %q, want %q", got, want)
			}
			if *fileOps != 1 {
				t.Errorf("only the existence check should run, got %d file operations", *fileOps)
			}
			if len(viewer.shown) != 0 {
				t.Errorf("no windows expected, got %d", len(viewer.shown))
			}
		})
	}
}

func TestRun_CountsScene(t *testing.T) {
	path := writeScene(t)
	app, stdout, stderr, viewer, _ := newTestApp()

	if code := app.Run([]string{path}); code != ExitOK {
		t.Fatalf("exit code: got %d, want %d (stderr: %s)", code, ExitOK, stderr.String())
	}
	if got := stdout.String(); got != "DarkB=1,Light=1\n" {
		t.Errorf("output: got %q", got)
	}

	want := []shown{
		{"DarkB", image.Pt(100, 100), display.MaskPreview},
		{"Light", image.Pt(100, 100), display.MaskPreview},
		{"DarkB=1,Light=1", image.Pt(100, 100), display.WaitForever},
	}
	if len(viewer.shown) != len(want) {
		t.Fatalf("windows: got %+v, want %+v", viewer.shown, want)
	}
	for i := range want {
		if viewer.shown[i] != want[i] {
			t.Errorf("window %d: got %+v, want %+v", i, viewer.shown[i], want[i])
		}
	}
}

func TestRun_DecodeError(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "broken-*.png")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	f.WriteString("definitely not a png")
	f.Close()

	app, stdout, stderr, viewer, _ := newTestApp()
	if code := app.Run([]string{f.Name()}); code != ExitFailure {
		t.Errorf("exit code: got %d, want %d", code, ExitFailure)
	}
	if stdout.Len() != 0 {
		t.Errorf("nothing should be printed to stdout, got %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), f.Name()) {
		t.Errorf("error should name the file: %q", stderr.String())
	}
	if len(viewer.shown) != 0 {
		t.Errorf("no windows expected after a decode failure, got %d", len(viewer.shown))
	}
}

func TestRun_ViewerFailureAborts(t *testing.T) {
	path := writeScene(t)
	app, stdout, stderr, viewer, _ := newTestApp()
	viewer.err = errors.New("no display")

	if code := app.Run([]string{path}); code != ExitFailure {
		t.Errorf("exit code: got %d, want %d", code, ExitFailure)
	}
	if len(viewer.shown) != 1 {
		t.Errorf("run should stop at the first window, showed %d", len(viewer.shown))
	}
	if stdout.Len() != 0 {
		t.Errorf("no summary expected, got %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "no display") {
		t.Errorf("stderr should carry the cause: %q", stderr.String())
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	path := writeScene(t)
	app, _, stderr, viewer, _ := newTestApp()
	app.Config.Ranges = append(app.Config.Ranges, app.Config.Ranges[0])

	if code := app.Run([]string{path}); code != ExitFailure {
		t.Errorf("exit code: got %d, want %d", code, ExitFailure)
	}
	if !strings.Contains(stderr.String(), pipeline.ErrInvalidRange.Error()) {
		t.Errorf("stderr: %q", stderr.String())
	}
	if len(viewer.shown) != 0 {
		t.Errorf("no windows expected, got %d", len(viewer.shown))
	}
}
