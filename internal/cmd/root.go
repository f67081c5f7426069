// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ngplug/cli/internal/cmd/config"
	"github.com/ngplug/cli/internal/cmdtypes"
	cfgpkg "github.com/ngplug/cli/internal/config"
	"github.com/ngplug/cli/internal/output"
)

// NewRootCmd creates the root command for the ngplug CLI.
func NewRootCmd() *cobra.Command {
	cfg := &cmdtypes.GlobalConfig{}
	var timestampsFlag bool

	rootCmd := &cobra.Command{
		Use:   "ngplug",
		Short: "Build application modules as single-file plugin bundles",
		Long: `ngplug rewrites an application build into a single UMD bundle that
exposes one module and its compiled factory, leaving shared libraries to the
host application.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			initializeGlobals(c, cfg, timestampsFlag)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfg.ConfigFlag, "config", "", "Path to workspace file (env: "+cfgpkg.EnvConfig+")")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewBuildCmd(cfg))
	rootCmd.AddCommand(config.NewConfigCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and resolves the workspace path.
func initializeGlobals(c *cobra.Command, cfg *cmdtypes.GlobalConfig, timestamps bool) {
	logCfg := output.LogConfig{
		Verbose: cfg.Verbose,
		Writer:  c.ErrOrStderr(),
	}
	// nil means SetupLogging defaults to true
	if c.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestamps)
	}
	output.SetupLogging(logCfg)

	resolved := cfgpkg.ResolveConfigPath(cfg.ConfigFlag)
	cfg.ConfigPath = resolved.Value
	cfgpkg.LogResolvedValues([]cfgpkg.ResolvedValue{resolved})
}
