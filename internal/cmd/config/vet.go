package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ngplug/cli/internal/cmdtypes"
	"github.com/ngplug/cli/internal/cmdutil"
	cfgpkg "github.com/ngplug/cli/internal/config"
	oerrors "github.com/ngplug/cli/internal/errors"
	"github.com/ngplug/cli/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the workspace file",
		Long: `Validate the ngplug workspace file.

Checks performed:
  1. Workspace file exists at the resolved path
  2. It matches the workspace schema (unknown fields, module references,
     shared library lists, library targets, plugin shapes)
  3. Its build section converts to a build configuration

The path is resolved using precedence:
  --config flag > NGPLUG_CONFIG env > ./ngplug.yaml

Examples:
  ngplug config vet
  ngplug config vet --config path/to/ngplug.yaml`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runVet(c, cfg)
		},
	}
}

func runVet(c *cobra.Command, cfg *cmdtypes.GlobalConfig) error {
	path, err := cfgpkg.ExpandPath(cfg.ConfigPath)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}
	output.Debug("validating workspace", "path", path)

	validator, err := cfgpkg.NewValidator()
	if err != nil {
		return err
	}
	if err := validator.ValidateFile(path); err != nil {
		return printed("workspace is invalid", err)
	}
	if _, err := cfgpkg.NewLoader().Load(path); err != nil {
		return printed("workspace is invalid", err)
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Workspace is valid: "+path))
	return nil
}

func printed(msg string, err error) error {
	cmdutil.PrintValidationError(msg, err)
	return &cmdtypes.ExitError{Err: err, Code: oerrors.ExitCodeFromError(err), Printed: true}
}
