package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ngplug/cli/internal/cmdtypes"
	cfgpkg "github.com/ngplug/cli/internal/config"
	oerrors "github.com/ngplug/cli/internal/errors"
	"github.com/ngplug/cli/internal/output"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a starter workspace file",
		Long: `Create a starter ngplug workspace file.

The file is written to the resolved workspace path:
  --config flag > NGPLUG_CONFIG env > ./ngplug.yaml

Examples:
  # Create ngplug.yaml in the current directory
  ngplug config init

  # Overwrite an existing file
  ngplug config init --force`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runInit(c, cfg, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing workspace file")

	return c
}

func runInit(c *cobra.Command, cfg *cmdtypes.GlobalConfig, force bool) error {
	path, err := cfgpkg.ExpandPath(cfg.ConfigPath)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	exists, err := cfgpkg.ConfigFileExists(path)
	if err != nil {
		return fmt.Errorf("checking workspace file: %w", err)
	}
	if exists && !force {
		return &cmdtypes.ExitError{
			Err: &oerrors.DetailError{
				Type:     "validation failed",
				Message:  "workspace file already exists",
				Location: path,
				Hint:     "Use --force to overwrite it.",
				Cause:    oerrors.ErrValidation,
			},
			Code: cmdtypes.ExitValidationError,
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(cfgpkg.DefaultWorkspaceYAML), 0o644); err != nil {
		return fmt.Errorf("writing workspace file: %w", err)
	}

	output.Debug("workspace file written", "path", path)
	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Workspace file created: "+path))
	fmt.Fprintln(c.OutOrStdout(), "Edit build and options, then validate with: ngplug config vet")
	return nil
}
