// Package install decides which catalog components still need to be
// installed on this machine. It is the decision layer of the installer
// pipeline: downloading, extraction, and provenance recording live in the
// collaborators around it.
package install

import (
	"os"
	"path/filepath"
)

// LockFileName is the sentinel marker written into a component's install
// directory after a successful installation. Its presence means
// "already installed"; its content is irrelevant.
const LockFileName = "install.Lock"

// Prober reports whether a component's install marker exists. It is
// injected into the Selector so tests can substitute a deterministic
// implementation without touching process-wide state.
type Prober interface {
	// Installed reports whether the marker exists under dir.
	Installed(dir string) bool
}

// LockProber probes the local filesystem for the install.Lock marker.
type LockProber struct{}

// Installed returns true iff <dir>/install.Lock exists and is a regular
// file. A single stat, no retries. Stat failures of any kind, permission
// and I/O errors included, count as not installed: a broken probe must
// never block a reinstall.
func (LockProber) Installed(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, LockFileName))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
