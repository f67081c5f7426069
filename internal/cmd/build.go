package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ngplug/cli/internal/builder"
	"github.com/ngplug/cli/internal/cmdtypes"
	"github.com/ngplug/cli/internal/cmdutil"
	"github.com/ngplug/cli/internal/config"
	"github.com/ngplug/cli/internal/core"
	oerrors "github.com/ngplug/cli/internal/errors"
	"github.com/ngplug/cli/internal/esbuild"
	"github.com/ngplug/cli/internal/output"
)

// NewBuildCmd creates the build command.
func NewBuildCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var pluginFlags cmdutil.PluginFlags
	var planFlags cmdutil.PlanFlags

	c := &cobra.Command{
		Use:   "build",
		Short: "Build the workspace as a plugin bundle",
		Long: `Build the workspace application as a single-file plugin bundle.

The bundle is written to <output.path>/<pluginName>.js as a UMD module named
after the plugin. Shared libraries, and requests for their factories, are left
external. The main entry file is rewritten for the duration of the build and
emptied afterwards.

Option precedence: flags > NGPLUG_* environment > workspace file.

Examples:
  # Build using options from ngplug.yaml
  ngplug build

  # Override the exposed module
  ngplug build --plugin-name reports --module-path src/app/reports#ReportsModule

  # Show the patched configuration without building
  ngplug build --dry-run -o json

  # Show what plugin mode changes in the workspace configuration
  ngplug build --diff`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runBuild(c, cfg, &pluginFlags, &planFlags)
		},
	}

	pluginFlags.AddTo(c)
	planFlags.AddTo(c)

	return c
}

func runBuild(c *cobra.Command, cfg *cmdtypes.GlobalConfig, pluginFlags *cmdutil.PluginFlags, planFlags *cmdutil.PlanFlags) error {
	format, err := planFlags.Format()
	if err != nil {
		return &cmdtypes.ExitError{Err: err, Code: cmdtypes.ExitValidationError}
	}

	ws, err := config.NewLoader().Load(cfg.ConfigPath)
	if err != nil {
		cmdutil.PrintValidationError("loading workspace", err)
		return &cmdtypes.ExitError{Err: err, Code: oerrors.ExitCodeFromError(err), Printed: true}
	}
	config.LogResolvedValues(ws.ApplyFlags(pluginFlags.OptionFlags()))

	var exec builder.Executor
	var opts []builder.Option
	if planFlags.Planning() {
		exec = &builder.PlanExecutor{Base: ws.Build}
		opts = append(opts, builder.WithFs(afero.NewMemMapFs()))
	} else {
		exec = esbuild.New(ws.Build, esbuild.WithColor(output.IsTTY()))
	}

	ctx := c.Context()
	pluginName := ws.Options.PluginName
	events, err := builder.New(exec, opts...).Run(ctx, ws.Options, nil)
	if err != nil {
		cmdutil.PrintValidationError("preparing plugin build", err)
		return &cmdtypes.ExitError{Err: err, Code: oerrors.ExitCodeFromError(err), Printed: true}
	}

	var results []core.Event
	err = output.RunWithSpinner(ctx, func() error {
		for ev := range events {
			results = append(results, ev)
		}
		return nil
	}, output.WithTitle(fmt.Sprintf("Building plugin %s", pluginName)))
	if err != nil {
		return &cmdtypes.ExitError{Err: err, Code: cmdtypes.ExitGeneralError}
	}

	if planFlags.Planning() {
		return writePlan(c, ws, results, planFlags.Diff, format)
	}
	return reportBuild(c, pluginName, results)
}

func writePlan(c *cobra.Command, ws *config.Workspace, results []core.Event, diff bool, format output.Format) error {
	for _, ev := range results {
		if ev.Configuration == nil {
			continue
		}
		if !diff {
			if err := output.WriteConfiguration(ev.Configuration, output.ConfigurationOptions{
				Format: format,
				Writer: c.OutOrStdout(),
			}); err != nil {
				return &cmdtypes.ExitError{Err: err, Code: cmdtypes.ExitGeneralError}
			}
			continue
		}

		d, err := output.DiffConfigurations(ws.Build, ev.Configuration, output.IsTTY())
		if err != nil {
			return &cmdtypes.ExitError{Err: err, Code: cmdtypes.ExitGeneralError}
		}
		if d == "" {
			d = "No differences."
		}
		fmt.Fprintln(c.OutOrStdout(), d)
	}
	return nil
}

func reportBuild(c *cobra.Command, pluginName string, results []core.Event) error {
	var failed error
	for _, ev := range results {
		cmdutil.WriteBuildEvent(pluginName, ev)
		if !ev.Success {
			failed = oerrors.NewBuildError(pluginName, ev.Errors)
			continue
		}
		if len(ev.OutputFiles) > 0 {
			fmt.Fprintln(c.OutOrStdout(), output.RenderOutputFiles(ev.OutputFiles))
		}
	}
	if failed != nil {
		return &cmdtypes.ExitError{Err: failed, Code: cmdtypes.ExitBuildFailed, Printed: true}
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark(fmt.Sprintf("Plugin %s built", pluginName)))
	return nil
}
