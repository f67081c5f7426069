package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveValue(t *testing.T) {
	tests := []struct {
		name         string
		flag         string
		env          string
		config       string
		wantValue    string
		wantSource   ConfigSource
		wantShadowed map[ConfigSource]string
	}{
		{
			name:         "flag wins",
			flag:         "f", env: "e", config: "c",
			wantValue:    "f",
			wantSource:   SourceFlag,
			wantShadowed: map[ConfigSource]string{SourceEnv: "e", SourceConfig: "c"},
		},
		{
			name:         "env over config",
			env:          "e", config: "c",
			wantValue:    "e",
			wantSource:   SourceEnv,
			wantShadowed: map[ConfigSource]string{SourceConfig: "c"},
		},
		{
			name:         "config only",
			config:       "c",
			wantValue:    "c",
			wantSource:   SourceConfig,
			wantShadowed: map[ConfigSource]string{},
		},
		{
			name:         "nothing set",
			wantShadowed: map[ConfigSource]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveValue("pluginName", tt.flag, tt.env, tt.config)
			assert.Equal(t, "pluginName", got.Key)
			assert.Equal(t, tt.wantValue, got.Value)
			assert.Equal(t, tt.wantSource, got.Source)
			assert.Equal(t, tt.wantShadowed, got.Shadowed)
		})
	}
}

func TestResolveConfigPath(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		t.Setenv(EnvConfig, "")
		got := ResolveConfigPath("")
		assert.Equal(t, DefaultConfigFile, got.Value)
		assert.Equal(t, SourceDefault, got.Source)
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv(EnvConfig, "/env/ngplug.yaml")
		got := ResolveConfigPath("")
		assert.Equal(t, "/env/ngplug.yaml", got.Value)
		assert.Equal(t, SourceEnv, got.Source)
		assert.Equal(t, DefaultConfigFile, got.Shadowed[SourceDefault])
	})

	t.Run("flag", func(t *testing.T) {
		t.Setenv(EnvConfig, "/env/ngplug.yaml")
		got := ResolveConfigPath("/flag/ngplug.yaml")
		assert.Equal(t, "/flag/ngplug.yaml", got.Value)
		assert.Equal(t, SourceFlag, got.Source)
		assert.Equal(t, "/env/ngplug.yaml", got.Shadowed[SourceEnv])
	})
}
