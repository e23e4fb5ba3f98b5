package main

import (
	"fmt"
	"runtime"
	"strings"
)

// Build-time variables injected via linker flags (ldflags).
//
//	go build -ldflags "-X main.Version=$(git describe --tags) ..." -o graphtex
//
// The -X flag overwrites these string variables at link time.
// See: https://pkg.go.dev/cmd/link (-X importpath.name=value)
var (
	Version   = "dev"     // Overwritten with git tag (e.g., "v0.5.0")
	Commit    = "unknown" // Overwritten with git commit hash
	BuildDate = "unknown" // Overwritten with build timestamp
)

// versionString is the text printed for --version.
func versionString() string {
	var out strings.Builder
	fmt.Fprintf(&out, "graphtex %s (%s/%s)", Version, runtime.GOOS, runtime.GOARCH)
	if Commit != "unknown" {
		fmt.Fprintf(&out, "\n  commit: %s", Commit)
	}
	if BuildDate != "unknown" {
		fmt.Fprintf(&out, "\n  built:  %s", BuildDate)
	}
	return out.String()
}
