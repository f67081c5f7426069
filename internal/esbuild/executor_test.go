package esbuild

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngplug/cli/internal/builder"
	"github.com/ngplug/cli/internal/core"
	"github.com/ngplug/cli/internal/testutil"
	"github.com/ngplug/cli/internal/transform"
)

func appBase(dir string) *core.Configuration {
	return &core.Configuration{
		Context: dir,
		Mode:    "development",
		Entry: map[string][]string{
			core.EntryMain:      {"src/main.ts"},
			core.EntryPolyfills: {"src/polyfills.ts"},
		},
		Output:       core.Output{Path: "dist", Filename: "[name].js"},
		Optimization: core.Optimization{RuntimeChunk: "single", SplitChunks: &core.SplitChunks{Chunks: "all"}},
		Plugins: []core.Plugin{
			&core.DefinePlugin{Definitions: map[string]string{"PRODUCTION": "false"}},
			&core.AngularCompilerPlugin{Module: "src/app/app.module#AppModule"},
		},
	}
}

func waitEvent(t *testing.T, events <-chan core.Event) core.Event {
	t.Helper()
	select {
	case ev, ok := <-events:
		require.True(t, ok, "event channel closed without an event")
		return ev
	case <-time.After(30 * time.Second):
		t.Fatal("timed out waiting for build")
	}
	return core.Event{}
}

func TestExecutor_PluginBuild(t *testing.T) {
	dir := testutil.WidgetApp(t)
	b := builder.New(New(appBase(dir)))

	events, err := b.Run(context.Background(), core.PluginOptions{
		PluginName: "widgets",
		ModulePath: "src/app/widget-module#WidgetModule",
		SharedLibs: "core-lib",
	}, nil)
	require.NoError(t, err)

	ev := waitEvent(t, events)
	require.True(t, ev.Success, "errors: %v", ev.Errors)

	outFile := filepath.Join(dir, "dist", "widgets.js")
	assert.Equal(t, []string{outFile}, ev.OutputFiles)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	bundle := string(data)
	assert.Contains(t, bundle, `root["widgets"]`)
	assert.Contains(t, bundle, transform.GlobalObjectSelfOrThis)
	assert.Contains(t, bundle, `require("core-lib")`)
	assert.NotContains(t, bundle, "core-lib.ngfactory")
	assert.Contains(t, bundle, "WidgetModuleNgFactory")

	_, err = os.Stat(filepath.Join(dir, "dist", "polyfills.js"))
	assert.True(t, os.IsNotExist(err))

	main, err := os.ReadFile(filepath.Join(dir, "src/main.ts"))
	require.NoError(t, err)
	assert.Empty(t, string(main))
}

func TestExecutor_BuildErrorsFlowThroughEvents(t *testing.T) {
	dir := testutil.WidgetApp(t)
	testutil.WriteFile(t, dir, "src/app/widget-module.ts", "import { missing } from './nowhere';\nexport class WidgetModule {}\n")

	events, err := builder.New(New(appBase(dir))).Run(context.Background(), core.PluginOptions{
		PluginName: "widgets",
		ModulePath: "src/app/widget-module#WidgetModule",
		SharedLibs: "core-lib",
	}, nil)
	require.NoError(t, err)

	ev := waitEvent(t, events)
	assert.False(t, ev.Success)
	require.NotEmpty(t, ev.Errors)
	assert.Contains(t, ev.Errors[0], "nowhere")

	main, err := os.ReadFile(filepath.Join(dir, "src/main.ts"))
	require.NoError(t, err)
	assert.Empty(t, string(main))
}

func TestExecutor_DeleteOutputPath(t *testing.T) {
	dir := testutil.WidgetApp(t)
	stale := filepath.Join(dir, "dist", "stale.js")
	testutil.WriteFile(t, dir, "dist/stale.js", "stale")

	chain := transform.Chain{func(cfg *core.Configuration) (*core.Configuration, error) {
		delete(cfg.Entry, core.EntryPolyfills)
		return cfg, nil
	}}
	events, err := New(appBase(dir)).Execute(context.Background(), builder.Request{
		Options:    core.PluginOptions{DeleteOutputPath: true},
		Transforms: chain,
	})
	require.NoError(t, err)
	ev := waitEvent(t, events)
	require.True(t, ev.Success, "errors: %v", ev.Errors)

	_, err = os.Stat(stale)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "dist", "main.js"))
	assert.NoError(t, err)
}

func TestExecutor_CancelledBeforeBuild(t *testing.T) {
	dir := testutil.WidgetApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	chain := transform.Chain{func(cfg *core.Configuration) (*core.Configuration, error) {
		delete(cfg.Entry, core.EntryPolyfills)
		return cfg, nil
	}}
	events, err := New(appBase(dir)).Execute(ctx, builder.Request{Transforms: chain})
	require.NoError(t, err)

	ev := waitEvent(t, events)
	assert.False(t, ev.Success)
	assert.Contains(t, ev.Errors[0], "cancelled")
}

func TestExecutor_TransformErrorIsSynchronous(t *testing.T) {
	_, err := builder.New(New(appBase(t.TempDir()))).Run(context.Background(), core.PluginOptions{ModulePath: "a#B"}, nil)
	assert.ErrorIs(t, err, transform.ErrMissingPluginName)
}
