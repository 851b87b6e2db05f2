package cmd

import (
	"github.com/spf13/cobra"

	"github.com/runtimedeps/cli/internal/config"
	"github.com/runtimedeps/cli/internal/output"
	"github.com/runtimedeps/cli/internal/platform"
)

var (
	// Global flags
	configFlag       string
	catalogFlag      string
	installRootFlag  string
	platformFlag     string
	architectureFlag string
	outputFormatFlag string
	verboseFlag      bool
	timestampsFlag   bool

	// Resolved configuration (loaded during PersistentPreRunE)
	loadedConfig   *config.Config
	resolvedConfig *config.ResolvedConfig
)

// NewRootCmd creates the root command for the rdep CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "rdep",
		Short:         "Runtime dependency installer",
		Long:          `rdep selects and tracks platform-specific runtime components from a catalog, installing only what the running system needs and does not already have.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: RDEP_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&catalogFlag, "catalog", "", "Path to component catalog manifest (env: RDEP_CATALOG)")
	rootCmd.PersistentFlags().StringVar(&installRootFlag, "install-root", "", "Directory component install paths resolve against (env: RDEP_INSTALL_ROOT)")
	rootCmd.PersistentFlags().StringVar(&platformFlag, "platform", "", "Override the detected platform (env: RDEP_PLATFORM)")
	rootCmd.PersistentFlags().StringVar(&architectureFlag, "arch", "", "Override the detected architecture (env: RDEP_ARCH)")
	rootCmd.PersistentFlags().StringVarP(&outputFormatFlag, "output", "o", "table", "Output format: table, yaml, json")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	// Add subcommands
	rootCmd.AddCommand(NewSelectCmd())
	rootCmd.AddCommand(NewListCmd())
	rootCmd.AddCommand(NewCatalogCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command) error {
	loader := config.NewLoader()
	cfg, err := loader.Load(configFlag)
	if err != nil {
		output.Debug("config load error", "error", err)
		// Don't fail here - commands that don't need config still work
	}
	loadedConfig = cfg

	resolved, err := config.ResolveAll(config.ResolveAllOptions{
		ConfigFlag:       configFlag,
		CatalogFlag:      catalogFlag,
		InstallRootFlag:  installRootFlag,
		PlatformFlag:     platformFlag,
		ArchitectureFlag: architectureFlag,
		Config:           cfg,
	})
	if err != nil {
		return err
	}
	resolvedConfig = resolved

	// Resolve timestamps: flag (if explicitly set) > config > default (true)
	logCfg := output.LogConfig{
		Verbose: verboseFlag,
	}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if cfg != nil && cfg.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Log.Timestamps
	}

	output.SetupLogging(logCfg)

	if verboseFlag {
		output.Debug("initializing CLI",
			"config", resolvedConfig.ConfigPath.Value,
			"catalog", resolvedConfig.Catalog.Value,
			"installRoot", resolvedConfig.InstallRoot.Value,
			"platform", resolvedConfig.Platform.Value,
			"arch", resolvedConfig.Architecture.Value,
			"output", outputFormatFlag,
		)
	}

	return nil
}

// GetResolvedConfig returns the resolved configuration.
func GetResolvedConfig() *config.ResolvedConfig {
	return resolvedConfig
}

// GetTarget returns the runtime target selection runs against.
func GetTarget() platform.Target {
	if resolvedConfig != nil {
		return resolvedConfig.Target()
	}
	return platform.DetectTarget()
}

// GetCatalogPath returns the resolved catalog manifest path.
func GetCatalogPath() string {
	if resolvedConfig != nil {
		return resolvedConfig.Catalog.Value
	}
	return catalogFlag
}

// GetInstallRoot returns the resolved install root.
func GetInstallRoot() string {
	if resolvedConfig != nil {
		return resolvedConfig.InstallRoot.Value
	}
	return installRootFlag
}
