package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConfigInitCommand(t *testing.T) {
	t.Run("creates config file with defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "config.yaml")

		require.NoError(t, executeCommand(t, "config", "init", "--config", path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var doc map[string]any
		require.NoError(t, yaml.Unmarshal(data, &doc))
		assert.Contains(t, doc, "catalog")
		assert.Contains(t, doc, "installroot")
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("catalog: /keep/me\n"), 0o644))

		err := executeCommand(t, "config", "init", "--config", path)
		require.Error(t, err)
		assert.ErrorContains(t, err, "already exists")

		data, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, "catalog: /keep/me\n", string(data))
	})

	t.Run("force overwrites", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("catalog: /old\n"), 0o644))

		require.NoError(t, executeCommand(t, "config", "init", "--config", path, "--force"))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "/old")
	})
}
