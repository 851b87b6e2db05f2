package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type fakeComponent struct {
	description   string
	platforms     []string
	architectures []string
	installPath   string
}

func (c fakeComponent) GetDescription() string     { return c.description }
func (c fakeComponent) GetPlatforms() []string     { return c.platforms }
func (c fakeComponent) GetArchitectures() []string { return c.architectures }
func (c fakeComponent) GetInstallPath() string     { return c.installPath }

func sampleComponents() []ComponentInfo {
	return []ComponentInfo{
		fakeComponent{"Runtime", []string{"linux"}, []string{"x86_64"}, "runtime"},
		fakeComponent{"Assets", []string{"neutral"}, []string{"neutral"}, "assets"},
	}
}

func TestWriteComponents(t *testing.T) {
	t.Run("json output", func(t *testing.T) {
		var buf bytes.Buffer
		err := WriteComponents(sampleComponents(), ComponentWriteOptions{
			Format: FormatJSON,
			Writer: &buf,
		})
		require.NoError(t, err)

		var docs []map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &docs))
		require.Len(t, docs, 2)
		assert.Equal(t, "Runtime", docs[0]["description"])
		assert.Equal(t, "runtime", docs[0]["installPath"])
		assert.Equal(t, "Assets", docs[1]["description"])
	})

	t.Run("yaml output", func(t *testing.T) {
		var buf bytes.Buffer
		err := WriteComponents(sampleComponents(), ComponentWriteOptions{
			Format: FormatYAML,
			Writer: &buf,
		})
		require.NoError(t, err)

		var docs []map[string]any
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &docs))
		require.Len(t, docs, 2)
		assert.Equal(t, "Runtime", docs[0]["description"])
		assert.Equal(t, []any{"neutral"}, docs[1]["platforms"])
	})

	t.Run("order is preserved", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteComponents(sampleComponents(), ComponentWriteOptions{
			Format: FormatJSON,
			Writer: &buf,
		}))

		runtime := bytes.Index(buf.Bytes(), []byte("Runtime"))
		assets := bytes.Index(buf.Bytes(), []byte("Assets"))
		assert.Less(t, runtime, assets)
	})

	t.Run("table format is rejected", func(t *testing.T) {
		err := WriteComponents(sampleComponents(), ComponentWriteOptions{
			Format: FormatTable,
			Writer: &bytes.Buffer{},
		})
		assert.ErrorContains(t, err, "not supported")
	})

	t.Run("empty list", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteComponents(nil, ComponentWriteOptions{
			Format: FormatJSON,
			Writer: &buf,
		}))
		assert.Equal(t, "[]\n", buf.String())
	})
}
