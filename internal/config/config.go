// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty"`
}

// Config represents the rdep CLI configuration.
// Loaded from ~/.rdep/config.yaml.
type Config struct {
	// Catalog is the path to the component catalog manifest.
	// Env: RDEP_CATALOG, Default: ~/.rdep/catalog.yaml
	Catalog string `json:"catalog,omitempty"`

	// InstallRoot is the directory component install paths resolve against.
	// Env: RDEP_INSTALL_ROOT, Default: ~/.rdep/components
	InstallRoot string `json:"installRoot,omitempty"`

	// Platform overrides the detected platform name (win32, linux, darwin).
	// Env: RDEP_PLATFORM
	Platform string `json:"platform,omitempty"`

	// Architecture overrides the detected architecture name (x86_64, arm64, x86).
	// Env: RDEP_ARCH
	Architecture string `json:"architecture,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `rdep config init` to generate the initial config file.
func DefaultConfig() (*Config, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, err
	}

	return &Config{
		Catalog:     paths.CatalogFile,
		InstallRoot: paths.InstallRoot,
	}, nil
}

// WithDefaults fills empty fields from the default paths. The receiver is
// not mutated.
func (c *Config) WithDefaults() (*Config, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, err
	}

	out := *c
	if out.Catalog == "" {
		out.Catalog = paths.CatalogFile
	}
	if out.InstallRoot == "" {
		out.InstallRoot = paths.InstallRoot
	}
	return &out, nil
}
