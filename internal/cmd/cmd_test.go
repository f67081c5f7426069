package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ngplug/cli/internal/cmdtypes"
	"github.com/ngplug/cli/internal/config"
	"github.com/ngplug/cli/internal/output"
	"github.com/ngplug/cli/internal/testutil"
)

// clearEnv isolates a test from NGPLUG_* variables of the calling shell.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{config.EnvConfig, config.EnvPluginName, config.EnvModulePath, config.EnvSharedLibs} {
		t.Setenv(key, "")
	}
}

// runRoot executes the root command and returns stdout, log output and the error.
func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	t.Cleanup(func() { output.SetupLogging(output.LogConfig{}) })
	return stdout.String(), stderr.String(), err
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr *cmdtypes.ExitError
	require.True(t, errors.As(err, &exitErr), "expected ExitError, got %v", err)
	return exitErr.Code
}

const workspaceYAML = `build:
  context: .
  mode: development
  entry:
    main: [src/main.ts]
    polyfills: [src/polyfills.ts]
  output:
    path: dist
    filename: "[name].js"
  optimization:
    runtimeChunk: single
    splitChunks: {chunks: all}
  plugins:
    - name: AngularCompilerPlugin
      tsConfig: tsconfig.app.json
      entryModule: src/app/app.module#AppModule
options:
  pluginName: widgets
  modulePath: src/app/widget-module#WidgetModule
  sharedLibs: core-lib
`

// workspace lays out the widget application with the given ngplug.yaml and
// returns the workspace file path.
func workspace(t *testing.T, yaml string) string {
	t.Helper()
	dir := testutil.WidgetApp(t)
	return testutil.WriteFile(t, dir, config.DefaultConfigFile, yaml)
}
