package install

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runtimedeps/cli/internal/testutil"
)

func TestLockProber(t *testing.T) {
	prober := LockProber{}

	t.Run("marker present", func(t *testing.T) {
		dir := t.TempDir()
		testutil.WriteMarker(t, dir)

		assert.True(t, prober.Installed(dir))
	})

	t.Run("marker absent", func(t *testing.T) {
		assert.False(t, prober.Installed(t.TempDir()))
	})

	t.Run("install dir absent", func(t *testing.T) {
		assert.False(t, prober.Installed(filepath.Join(t.TempDir(), "never-installed")))
	})

	t.Run("marker is a directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, LockFileName), 0o755))

		assert.False(t, prober.Installed(dir))
	})

	t.Run("unreadable parent counts as not installed", func(t *testing.T) {
		// A path that cannot be stat'd must never block a reinstall.
		dir := t.TempDir()
		file := testutil.WriteFile(t, dir, "not-a-dir", "")

		assert.False(t, prober.Installed(filepath.Join(file, "nested")))
	})
}

func TestResolveInstallDir(t *testing.T) {
	assert.Equal(t,
		filepath.Join("/opt", "rdep", "runtime"),
		ResolveInstallDir(filepath.Join("/opt", "rdep"), "runtime"),
	)
	assert.Equal(t,
		filepath.Join("/opt", "rdep", "runtime", "v2"),
		ResolveInstallDir(filepath.Join("/opt", "rdep"), "runtime/v2"),
	)
}
