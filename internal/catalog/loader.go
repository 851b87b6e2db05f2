package catalog

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/runtimedeps/cli/internal/output"
)

// Load reads a catalog manifest from the given path. The manifest may be
// YAML or JSON; both decode through the same JSON-tagged structs.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog manifest: %w", err)
	}

	return Parse(data)
}

// Parse decodes a catalog manifest from raw YAML or JSON bytes.
func Parse(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.UnmarshalStrict(data, &cat); err != nil {
		return nil, fmt.Errorf("parsing catalog manifest: %w", err)
	}

	output.Debug("catalog loaded", "components", len(cat.Components))

	return &cat, nil
}
