package config

import (
	"os"
	"path/filepath"
)

// Paths contains standard filesystem paths for rdep.
type Paths struct {
	// ConfigFile is the path to the config file (~/.rdep/config.yaml).
	ConfigFile string

	// CatalogFile is the path to the component catalog (~/.rdep/catalog.yaml).
	CatalogFile string

	// InstallRoot is the components install root (~/.rdep/components).
	InstallRoot string

	// HomeDir is the rdep home directory (~/.rdep).
	HomeDir string
}

// DefaultPaths returns the default paths for rdep.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	rdepHome := filepath.Join(homeDir, ".rdep")

	return &Paths{
		ConfigFile:  filepath.Join(rdepHome, "config.yaml"),
		CatalogFile: filepath.Join(rdepHome, "catalog.yaml"),
		InstallRoot: filepath.Join(rdepHome, "components"),
		HomeDir:     rdepHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If RDEP_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("RDEP_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// GetInstallRoot returns the components install root.
// If RDEP_INSTALL_ROOT is set, it takes precedence.
func GetInstallRoot() (string, error) {
	if envPath := os.Getenv("RDEP_INSTALL_ROOT"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.InstallRoot, nil
}

// EnsureHomeDir creates the rdep home directory if it doesn't exist.
func EnsureHomeDir() error {
	paths, err := DefaultPaths()
	if err != nil {
		return err
	}

	return os.MkdirAll(paths.HomeDir, 0o755)
}

// EnsureInstallRoot creates the install root directory if it doesn't exist.
func EnsureInstallRoot(root string) error {
	return os.MkdirAll(root, 0o755)
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// Handle ~username (not supported, return as-is)
	return path, nil
}
