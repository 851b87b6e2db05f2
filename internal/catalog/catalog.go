// Package catalog defines the component catalog model and its loader.
//
// A catalog is a flat list of installable components, each tagged with the
// platforms and architectures it applies to and a relative install path.
// Catalogs are produced by an upstream discovery service that speaks JSON;
// hand-authored YAML manifests are accepted too, which is why the structs
// carry JSON tags and parsing goes through sigs.k8s.io/yaml.
package catalog

import (
	"fmt"
)

// Neutral is the wildcard tag value. A component whose first platform or
// architecture tag is Neutral applies regardless of that dimension's value.
const Neutral = "neutral"

// Component describes one installable unit: a platform/architecture-tagged
// archive with an install location relative to the install root.
// Components are immutable once loaded.
type Component struct {
	// Description is the human-readable component name.
	Description string `json:"description"`

	// Platforms lists the platform tags the component applies to.
	// Only the first entry participates in compatibility matching; the
	// remainder is carried for forward compatibility.
	Platforms []string `json:"platforms"`

	// Architectures lists the architecture tags the component applies to.
	// Same first-entry convention as Platforms.
	Architectures []string `json:"architectures"`

	// InstallPath is the install directory relative to the install root.
	InstallPath string `json:"installPath"`
}

// Validate reports whether the component carries everything the selection
// pass needs. The matcher itself silently excludes malformed components;
// Validate exists so `rdep catalog vet` can surface them instead.
func (c Component) Validate() error {
	if c.Description == "" {
		return fmt.Errorf("component has no description")
	}
	if len(c.Platforms) == 0 {
		return fmt.Errorf("component %q has no platform tags", c.Description)
	}
	if len(c.Architectures) == 0 {
		return fmt.Errorf("component %q has no architecture tags", c.Description)
	}
	if c.InstallPath == "" {
		return fmt.Errorf("component %q has no install path", c.Description)
	}
	return nil
}

// Catalog is a loaded component manifest.
type Catalog struct {
	// Components in manifest order. Selection output preserves this order.
	Components []Component `json:"components"`
}

// Validate collects validation errors for every malformed component.
// A nil return means the catalog is well-formed.
func (c *Catalog) Validate() []error {
	var errs []error
	for i, comp := range c.Components {
		if err := comp.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("component %d: %w", i, err))
		}
	}
	return errs
}
