package config

import (
	"os"

	"github.com/runtimedeps/cli/internal/platform"
)

// Source indicates where a configuration value came from.
type Source string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag Source = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv Source = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig Source = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault Source = "default"
)

// ResolvedValue is a configuration value together with its provenance.
type ResolvedValue struct {
	Value  string
	Source Source
}

// resolve applies the flag > env > config > default precedence.
func resolve(flagValue, envKey, configValue, defaultValue string) ResolvedValue {
	if flagValue != "" {
		return ResolvedValue{Value: flagValue, Source: SourceFlag}
	}
	if envValue := os.Getenv(envKey); envValue != "" {
		return ResolvedValue{Value: envValue, Source: SourceEnv}
	}
	if configValue != "" {
		return ResolvedValue{Value: configValue, Source: SourceConfig}
	}
	return ResolvedValue{Value: defaultValue, Source: SourceDefault}
}

// ResolveAllOptions carries the raw flag values into ResolveAll.
type ResolveAllOptions struct {
	ConfigFlag       string
	CatalogFlag      string
	InstallRootFlag  string
	PlatformFlag     string
	ArchitectureFlag string

	// Config is the loaded config file content; nil when loading failed.
	Config *Config
}

// ResolvedConfig contains every resolved configuration value with its
// provenance, ready for the command layer.
type ResolvedConfig struct {
	ConfigPath   ResolvedValue
	Catalog      ResolvedValue
	InstallRoot  ResolvedValue
	Platform     ResolvedValue
	Architecture ResolvedValue
}

// Target returns the runtime target the resolved platform/architecture
// values describe.
func (r *ResolvedConfig) Target() platform.Target {
	return platform.Target{
		Platform:     r.Platform.Value,
		Architecture: r.Architecture.Value,
	}
}

// ResolveAll resolves every configuration value using the
// flag > env > config file > default precedence. Platform and architecture
// default to the detected runtime target.
func ResolveAll(opts ResolveAllOptions) (*ResolvedConfig, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, err
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = &Config{}
	}

	detected := platform.DetectTarget()

	resolved := &ResolvedConfig{
		ConfigPath:   resolve(opts.ConfigFlag, "RDEP_CONFIG", "", paths.ConfigFile),
		Catalog:      resolve(opts.CatalogFlag, "RDEP_CATALOG", cfg.Catalog, paths.CatalogFile),
		InstallRoot:  resolve(opts.InstallRootFlag, "RDEP_INSTALL_ROOT", cfg.InstallRoot, paths.InstallRoot),
		Platform:     resolve(opts.PlatformFlag, "RDEP_PLATFORM", cfg.Platform, detected.Platform),
		Architecture: resolve(opts.ArchitectureFlag, "RDEP_ARCH", cfg.Architecture, detected.Architecture),
	}

	// Install root and catalog may be hand-written with a leading tilde.
	if expanded, expErr := ExpandPath(resolved.InstallRoot.Value); expErr == nil {
		resolved.InstallRoot.Value = expanded
	}
	if expanded, expErr := ExpandPath(resolved.Catalog.Value); expErr == nil {
		resolved.Catalog.Value = expanded
	}

	return resolved, nil
}
