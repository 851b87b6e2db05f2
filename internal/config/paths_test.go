package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPaths(t *testing.T) {
	paths, err := DefaultPaths()
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".rdep"), paths.HomeDir)
	assert.Equal(t, filepath.Join(home, ".rdep", "config.yaml"), paths.ConfigFile)
	assert.Equal(t, filepath.Join(home, ".rdep", "catalog.yaml"), paths.CatalogFile)
	assert.Equal(t, filepath.Join(home, ".rdep", "components"), paths.InstallRoot)
}

func TestGetConfigFile(t *testing.T) {
	t.Run("env override wins", func(t *testing.T) {
		t.Setenv("RDEP_CONFIG", "/custom/config.yaml")

		path, err := GetConfigFile()
		require.NoError(t, err)
		assert.Equal(t, "/custom/config.yaml", path)
	})

	t.Run("defaults to home config", func(t *testing.T) {
		t.Setenv("RDEP_CONFIG", "")
		os.Unsetenv("RDEP_CONFIG")

		path, err := GetConfigFile()
		require.NoError(t, err)
		assert.Contains(t, path, ".rdep")
	})
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty path", "", ""},
		{"absolute path unchanged", "/etc/rdep", "/etc/rdep"},
		{"relative path unchanged", "rdep/components", "rdep/components"},
		{"bare tilde", "~", home},
		{"tilde slash", "~/x/y", filepath.Join(home, "x", "y")},
		{"tilde username unsupported", "~other/x", "~other/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandPath(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
