package catalog

import "github.com/runtimedeps/cli/internal/output"

// Compile-time assertion: Component satisfies output.ComponentInfo.
var _ output.ComponentInfo = Component{}

// GetDescription implements output.ComponentInfo.
func (c Component) GetDescription() string { return c.Description }

// GetPlatforms implements output.ComponentInfo.
func (c Component) GetPlatforms() []string { return c.Platforms }

// GetArchitectures implements output.ComponentInfo.
func (c Component) GetArchitectures() []string { return c.Architectures }

// GetInstallPath implements output.ComponentInfo.
func (c Component) GetInstallPath() string { return c.InstallPath }
