package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngplug/cli/internal/cmdtypes"
	"github.com/ngplug/cli/internal/config"
	"github.com/ngplug/cli/internal/testutil"
)

func TestConfigInit(t *testing.T) {
	t.Run("creates workspace file", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "nested", config.DefaultConfigFile)

		stdout, _, err := runRoot(t, "config", "init", "--config", path)
		require.NoError(t, err)
		assert.Contains(t, stdout, path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, config.DefaultWorkspaceYAML, string(data))
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), config.DefaultConfigFile)
		testutil.WriteFile(t, filepath.Dir(path), filepath.Base(path), "custom")

		_, _, err := runRoot(t, "config", "init", "--config", path)
		assert.Equal(t, cmdtypes.ExitValidationError, exitCode(t, err))

		data, _ := os.ReadFile(path)
		assert.Equal(t, "custom", string(data))
	})

	t.Run("force overwrites", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), config.DefaultConfigFile)
		testutil.WriteFile(t, filepath.Dir(path), filepath.Base(path), "custom")

		_, _, err := runRoot(t, "config", "init", "--config", path, "--force")
		require.NoError(t, err)

		data, _ := os.ReadFile(path)
		assert.Equal(t, config.DefaultWorkspaceYAML, string(data))
	})

	t.Run("env path", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "from-env.yaml")
		t.Setenv(config.EnvConfig, path)

		_, _, err := runRoot(t, "config", "init")
		require.NoError(t, err)
		assert.FileExists(t, path)
	})
}

func TestConfigVet(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		clearEnv(t)
		path := workspace(t, workspaceYAML)

		stdout, _, err := runRoot(t, "config", "vet", "--config", path)
		require.NoError(t, err)
		assert.Contains(t, stdout, "Workspace is valid")
	})

	t.Run("schema violation", func(t *testing.T) {
		clearEnv(t)
		path := workspace(t, workspaceYAML+"  sharedLibs2: oops\n")

		_, logs, err := runRoot(t, "config", "vet", "--config", path)
		assert.Equal(t, cmdtypes.ExitValidationError, exitCode(t, err))
		assert.Contains(t, logs, "sharedLibs2")
	})

	t.Run("missing", func(t *testing.T) {
		clearEnv(t)
		_, _, err := runRoot(t, "config", "vet", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Equal(t, cmdtypes.ExitNotFound, exitCode(t, err))
	})
}
