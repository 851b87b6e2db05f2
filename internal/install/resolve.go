package install

import (
	"path/filepath"

	"github.com/runtimedeps/cli/internal/catalog"
)

// ResolvedComponent pairs a catalog component with the absolute directory
// it installs into. It is owned by the Selector for the duration of one
// selection pass and never mutated afterward.
type ResolvedComponent struct {
	Component  catalog.Component
	InstallDir string
}

// ResolveInstallDir maps a component's relative install path into the
// install root. Pure path arithmetic, no filesystem access.
func ResolveInstallDir(root, installPath string) string {
	return filepath.Join(root, installPath)
}
