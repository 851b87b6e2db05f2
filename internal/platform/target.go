// Package platform identifies the running system and decides which catalog
// components are compatible with it.
package platform

import (
	"runtime"
)

// Target describes the platform/architecture pair of the system the
// installer is running on. Constructed once per process and read-only
// afterward.
type Target struct {
	// Platform is the catalog-facing platform name (win32, linux, darwin).
	Platform string

	// Architecture is the catalog-facing architecture name (x86_64, arm64, x86).
	Architecture string
}

// Catalog manifests use the upstream service's naming, not Go's, so the
// detected GOOS/GOARCH values are translated before matching. Unknown
// values pass through unchanged.
var (
	platformNames = map[string]string{
		"windows": "win32",
		"linux":   "linux",
		"darwin":  "darwin",
	}

	architectureNames = map[string]string{
		"amd64": "x86_64",
		"arm64": "arm64",
		"386":   "x86",
	}
)

// DetectTarget returns the Target for the current process.
func DetectTarget() Target {
	return Target{
		Platform:     PlatformName(runtime.GOOS),
		Architecture: ArchitectureName(runtime.GOARCH),
	}
}

// PlatformName translates a GOOS value into the catalog platform name.
func PlatformName(goos string) string {
	if name, ok := platformNames[goos]; ok {
		return name
	}
	return goos
}

// ArchitectureName translates a GOARCH value into the catalog architecture name.
func ArchitectureName(goarch string) string {
	if name, ok := architectureNames[goarch]; ok {
		return name
	}
	return goarch
}
