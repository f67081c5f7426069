package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ngplug/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show ngplug version information.

Displays:
  - ngplug version, commit, and build date
  - esbuild and CUE module versions linked into the binary`,
		RunE: func(c *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(c.OutOrStdout(), version.GetInfo().String())
			return err
		},
	}
}
