package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ComponentInfo provides information about a component for output
// formatting. The interface keeps this package free of a catalog import;
// the catalog package logs through this one.
type ComponentInfo interface {
	GetDescription() string
	GetPlatforms() []string
	GetArchitectures() []string
	GetInstallPath() string
}

// ComponentWriteOptions controls component list serialization.
type ComponentWriteOptions struct {
	// Format specifies the output format: "yaml" or "json".
	Format Format

	// Writer is the output destination.
	Writer io.Writer
}

// componentDoc is the serialized form of one component.
type componentDoc struct {
	Description   string   `json:"description" yaml:"description"`
	Platforms     []string `json:"platforms" yaml:"platforms"`
	Architectures []string `json:"architectures" yaml:"architectures"`
	InstallPath   string   `json:"installPath" yaml:"installPath"`
}

// WriteComponents serializes a component list to the writer in the
// requested format. Input order is preserved.
func WriteComponents(components []ComponentInfo, opts ComponentWriteOptions) error {
	docs := make([]componentDoc, 0, len(components))
	for _, c := range components {
		docs = append(docs, componentDoc{
			Description:   c.GetDescription(),
			Platforms:     c.GetPlatforms(),
			Architectures: c.GetArchitectures(),
			InstallPath:   c.GetInstallPath(),
		})
	}

	switch opts.Format {
	case FormatJSON:
		enc := json.NewEncoder(opts.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(docs)
	case FormatYAML:
		enc := yaml.NewEncoder(opts.Writer)
		enc.SetIndent(2)
		if err := enc.Encode(docs); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("format %s not supported for component output", opts.Format)
	}
}
