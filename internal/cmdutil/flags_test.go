package cmdutil

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngplug/cli/internal/config"
	"github.com/ngplug/cli/internal/output"
)

func TestPluginFlags(t *testing.T) {
	var f PluginFlags
	cmd := &cobra.Command{Use: "test"}
	f.AddTo(cmd)

	require.NoError(t, cmd.ParseFlags([]string{"--plugin-name", "widgets", "--shared-libs", "core-lib"}))
	assert.Equal(t, config.OptionFlags{PluginName: "widgets", SharedLibs: "core-lib"}, f.OptionFlags())
	assert.NotNil(t, cmd.Flags().Lookup("module-path"))
}

func TestPlanFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var f PlanFlags
		cmd := &cobra.Command{Use: "test"}
		f.AddTo(cmd)
		require.NoError(t, cmd.ParseFlags(nil))

		format, err := f.Format()
		require.NoError(t, err)
		assert.Equal(t, output.FormatYAML, format)
		assert.False(t, f.Planning())
	})

	t.Run("diff implies planning", func(t *testing.T) {
		f := PlanFlags{Diff: true, Output: "json"}
		assert.True(t, f.Planning())
		format, err := f.Format()
		require.NoError(t, err)
		assert.Equal(t, output.FormatJSON, format)
	})

	t.Run("invalid format", func(t *testing.T) {
		f := PlanFlags{Output: "table"}
		_, err := f.Format()
		assert.ErrorContains(t, err, "table")
	})
}
