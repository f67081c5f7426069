// Package cmdutil provides shared command utilities: flag groups and
// output helpers for build results and validation errors.
package cmdutil

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ngplug/cli/internal/config"
	"github.com/ngplug/cli/internal/output"
)

// PluginFlags holds the plugin option overrides of the build command.
type PluginFlags struct {
	PluginName string
	ModulePath string
	SharedLibs string
}

// AddTo registers the plugin flags on the given cobra command.
func (f *PluginFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.PluginName, "plugin-name", "",
		"Plugin bundle and library name (env: "+config.EnvPluginName+")")
	cmd.Flags().StringVar(&f.ModulePath, "module-path", "",
		"Module exposed by the bundle, path#ExportName (env: "+config.EnvModulePath+")")
	cmd.Flags().StringVar(&f.SharedLibs, "shared-libs", "",
		"Comma-separated libraries supplied by the host (env: "+config.EnvSharedLibs+")")
}

// OptionFlags converts the flags for config.Workspace.ApplyFlags.
func (f *PluginFlags) OptionFlags() config.OptionFlags {
	return config.OptionFlags{
		PluginName: f.PluginName,
		ModulePath: f.ModulePath,
		SharedLibs: f.SharedLibs,
	}
}

// PlanFlags holds flags controlling dry runs.
type PlanFlags struct {
	DryRun bool
	Output string
	Diff   bool
}

// AddTo registers the plan flags on the given cobra command.
func (f *PlanFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.DryRun, "dry-run", false,
		"Print the patched configuration instead of building")
	cmd.Flags().StringVarP(&f.Output, "output", "o", string(output.FormatYAML),
		"Dry run output format: "+strings.Join(output.ValidFormats(), ", "))
	cmd.Flags().BoolVar(&f.Diff, "diff", false,
		"Print a diff between the workspace and the patched configuration (implies --dry-run)")
}

// Format parses the output flag.
func (f *PlanFlags) Format() (output.Format, error) {
	format, ok := output.ParseFormat(f.Output)
	if !ok {
		return "", fmt.Errorf("invalid output format %q (valid: %s)", f.Output, strings.Join(output.ValidFormats(), ", "))
	}
	return format, nil
}

// Planning reports whether the command should plan rather than build.
func (f *PlanFlags) Planning() bool {
	return f.DryRun || f.Diff
}
