// Package cli implements the count-objects command: one image path in, a
// mask preview per color and a final annotated window out.
package cli

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"os"

	"github.com/ironsheep/count-objects/internal/display"
	"github.com/ironsheep/count-objects/internal/imaging"
	"github.com/ironsheep/count-objects/internal/pipeline"
)

// UsageMessage is printed when the argument count is wrong.
const UsageMessage = "USAGE: count-objects image.jpg"

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

var (
	// ErrUsage means the command was not given exactly one argument.
	ErrUsage = errors.New("wrong number of arguments")

	// ErrNotFound means the image path does not name an existing file.
	ErrNotFound = errors.New("file not found")
)

// App holds the collaborators of one command invocation.
type App struct {
	Stdout io.Writer
	Stderr io.Writer

	// Stat and Load are the only file system access.
	Stat func(name string) (os.FileInfo, error)
	Load func(path string) (image.Image, error)

	Viewer display.Viewer
	Config pipeline.Config

	// Debug enables per-range logging.
	Debug bool
}

// New returns an App wired to the real file system, the platform viewer and
// the compiled-in color catalog.
func New(stdout, stderr io.Writer) *App {
	return &App{
		Stdout: stdout,
		Stderr: stderr,
		Stat:   os.Stat,
		Load:   imaging.LoadImage,
		Viewer: display.New(),
		Config: pipeline.DefaultConfig(),
	}
}

// Run executes the command and returns the process exit code.
func (a *App) Run(args []string) int {
	err := a.run(args)
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage):
		fmt.Fprintln(a.Stdout, UsageMessage)
		return ExitUsage
	case errors.Is(err, ErrNotFound):
		fmt.Fprintf(a.Stdout, "File %s doesn't exist\n", args[0])
		return ExitFailure
	default:
		fmt.Fprintf(a.Stderr, "Error: %v\n", err)
		return ExitFailure
	}
}

func (a *App) run(args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	path := args[0]

	info, err := a.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("failed to access %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
	}

	img, err := a.Load(path)
	if err != nil {
		return err
	}
	if a.Debug {
		b := img.Bounds()
		log.Printf("Loaded %s (%dx%d)", path, b.Dx(), b.Dy())
	}

	result, err := pipeline.Run(img, a.Config, func(r pipeline.ColorRange, mask *image.Gray) error {
		if a.Debug {
			log.Printf("Range %s %s-%s: %d mask pixels", r.Name, r.Lower, r.Upper, imaging.CountForeground(mask))
		}
		return a.Viewer.Show(r.Name, mask, display.MaskPreview)
	})
	if err != nil {
		return err
	}

	summary := result.Summary()
	if a.Debug {
		for _, rr := range result.Ranges {
			for _, b := range rr.Blobs {
				log.Printf("Run %s: %s blob at (%.1f,%.1f) area %d", result.RunID, rr.Range.Name, b.X, b.Y, b.Area)
			}
		}
	}
	fmt.Fprintln(a.Stdout, summary)

	return a.Viewer.Show(summary, result.Annotated, display.WaitForever)
}
