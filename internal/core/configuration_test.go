package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfiguration() *Configuration {
	return &Configuration{
		Context: "/work",
		Mode:    "production",
		Entry: map[string][]string{
			EntryMain:      {"src/main.ts"},
			EntryPolyfills: {"src/polyfills.ts"},
			EntryStyles:    {"src/styles.css"},
		},
		Output: Output{Path: "dist", Filename: "[name].js"},
		Optimization: Optimization{
			RuntimeChunk: "single",
			SplitChunks:  &SplitChunks{Chunks: "all"},
		},
		Externals: Externals{ExternalMap{"rxjs": "rxjs"}},
		Plugins: []Plugin{
			&AngularCompilerPlugin{TSConfig: "tsconfig.app.json", Module: "src/app/app.module#AppModule"},
		},
	}
}

func TestConfigurationMainEntry(t *testing.T) {
	t.Run("returns first main file", func(t *testing.T) {
		cfg := testConfiguration()
		cfg.Entry[EntryMain] = []string{"src/main.ts", "src/extra.ts"}

		path, ok := cfg.MainEntry()
		require.True(t, ok)
		assert.Equal(t, "src/main.ts", path)
	})

	t.Run("missing main entry", func(t *testing.T) {
		cfg := &Configuration{Entry: map[string][]string{"other": {"a.ts"}}}
		_, ok := cfg.MainEntry()
		assert.False(t, ok)
	})

	t.Run("empty main entry", func(t *testing.T) {
		cfg := &Configuration{Entry: map[string][]string{EntryMain: {}}}
		_, ok := cfg.MainEntry()
		assert.False(t, ok)
	})
}

func TestConfigurationEntryNames(t *testing.T) {
	cfg := testConfiguration()
	assert.Equal(t, []string{"main", "polyfills", "styles"}, cfg.EntryNames())
}

func TestConfigurationClone(t *testing.T) {
	base := testConfiguration()
	clone := base.Clone()

	require.Equal(t, base, clone)

	delete(clone.Entry, EntryPolyfills)
	clone.Entry[EntryMain][0] = "changed.ts"
	clone.Optimization.SplitChunks.Chunks = "async"
	clone.Externals[0].(ExternalMap)["lodash"] = "_"
	clone.Plugins[0].(EntryModuleOverrider).SetEntryModule("src/other#Other")
	clone.Output.Filename = "widgets.js"

	assert.Contains(t, base.Entry, EntryPolyfills)
	assert.Equal(t, "src/main.ts", base.Entry[EntryMain][0])
	assert.Equal(t, "all", base.Optimization.SplitChunks.Chunks)
	assert.NotContains(t, base.Externals[0].(ExternalMap), "lodash")
	assert.Equal(t, "src/app/app.module#AppModule", base.Plugins[0].(EntryModuleOverrider).EntryModule())
	assert.Equal(t, "[name].js", base.Output.Filename)
}

func TestConfigurationCloneNil(t *testing.T) {
	var cfg *Configuration
	assert.Nil(t, cfg.Clone())
}
