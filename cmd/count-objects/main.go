package main

import (
	"log"
	"os"

	"github.com/ironsheep/count-objects/internal/cli"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"

	// LogLevel set to "debug" enables per-range logging
	LogLevel = ""
)

func main() {
	// Diagnostics go to stderr; stdout carries the messages and the summary
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	app := cli.New(os.Stdout, os.Stderr)
	app.Debug = LogLevel == "debug"
	if app.Debug {
		log.Printf("count-objects v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	os.Exit(app.Run(os.Args[1:]))
}
