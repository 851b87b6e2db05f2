package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runtimedeps/cli/internal/testutil"
)

const yamlManifest = `components:
  - description: Runtime (linux / x86_64)
    platforms: [linux]
    architectures: [x86_64]
    installPath: runtime
  - description: Assets
    platforms: [neutral]
    architectures: [neutral]
    installPath: assets
`

const jsonManifest = `{
  "components": [
    {
      "description": "Runtime (win32 / x86_64)",
      "platforms": ["win32"],
      "architectures": ["x86_64"],
      "installPath": "runtime"
    }
  ]
}`

func TestLoad(t *testing.T) {
	t.Run("loads YAML manifest", func(t *testing.T) {
		path := testutil.WriteFile(t, t.TempDir(), "catalog.yaml", yamlManifest)

		cat, err := Load(path)
		require.NoError(t, err)
		require.Len(t, cat.Components, 2)

		assert.Equal(t, "Runtime (linux / x86_64)", cat.Components[0].Description)
		assert.Equal(t, []string{"linux"}, cat.Components[0].Platforms)
		assert.Equal(t, []string{"x86_64"}, cat.Components[0].Architectures)
		assert.Equal(t, "runtime", cat.Components[0].InstallPath)
		assert.Equal(t, []string{"neutral"}, cat.Components[1].Platforms)
	})

	t.Run("loads JSON manifest", func(t *testing.T) {
		path := testutil.WriteFile(t, t.TempDir(), "catalog.json", jsonManifest)

		cat, err := Load(path)
		require.NoError(t, err)
		require.Len(t, cat.Components, 1)
		assert.Equal(t, "Runtime (win32 / x86_64)", cat.Components[0].Description)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load("/does/not/exist/catalog.yaml")
		assert.ErrorContains(t, err, "reading catalog manifest")
	})

	t.Run("unknown fields are rejected", func(t *testing.T) {
		path := testutil.WriteFile(t, t.TempDir(), "catalog.yaml",
			"components:\n  - description: x\n    bogus: true\n")

		_, err := Load(path)
		assert.ErrorContains(t, err, "parsing catalog manifest")
	})

	t.Run("manifest order is preserved", func(t *testing.T) {
		cat, err := Parse([]byte(yamlManifest))
		require.NoError(t, err)
		assert.Equal(t, "Runtime (linux / x86_64)", cat.Components[0].Description)
		assert.Equal(t, "Assets", cat.Components[1].Description)
	})
}
