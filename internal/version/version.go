// Package version exposes build metadata for the rdep CLI.
package version

import "runtime"

// Build metadata, overridden at link time via -ldflags:
//
//	-X github.com/runtimedeps/cli/internal/version.Version=v0.3.0
var (
	// Version is the semantic version of the build.
	Version = "dev"

	// Commit is the git commit the binary was built from.
	Commit = "none"

	// Date is the build date in RFC 3339 form.
	Date = "unknown"
)

// Info bundles the build metadata for display.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// GetInfo returns the build metadata of the running binary.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}
