// Package config loads and validates ngplug workspace files.
//
// A workspace file holds the application build configuration under "build"
// and the plugin options under "options":
//
//	build:
//	  context: .
//	  entry: {main: [src/main.ts]}
//	  output: {path: dist}
//	options:
//	  pluginName: widgets
//	  modulePath: src/app/widget-module#WidgetModule
package config

import (
	"encoding/json"
	"fmt"

	"github.com/ngplug/cli/internal/core"
)

// Workspace is a loaded workspace file.
type Workspace struct {
	// Path is the file the workspace was loaded from.
	Path string

	// Build is the base build configuration.
	Build *core.Configuration

	// Options are the plugin options after environment overrides.
	Options core.PluginOptions

	// file holds the option values as written in the file.
	file optionsFile
}

// workspaceFile mirrors the file layout. Externals and plugins keep their
// decoded form until they are converted to core types.
type workspaceFile struct {
	Build   buildFile   `json:"build"`
	Options optionsFile `json:"options"`
}

type buildFile struct {
	Context      string                `json:"context"`
	Mode         string                `json:"mode"`
	Entry        map[string]entryFiles `json:"entry"`
	Output       core.Output           `json:"output"`
	Optimization core.Optimization     `json:"optimization"`
	Externals    any                   `json:"externals"`
	Plugins      []map[string]any      `json:"plugins"`
}

type optionsFile struct {
	PluginName       string         `json:"pluginName"`
	ModulePath       string         `json:"modulePath"`
	SharedLibs       string         `json:"sharedLibs"`
	Externals        any            `json:"externals"`
	DeleteOutputPath bool           `json:"deleteOutputPath"`
	Extra            map[string]any `json:"extra"`
}

// entryFiles accepts a single file or a list of files.
type entryFiles []string

// UnmarshalJSON implements json.Unmarshaler.
func (e *entryFiles) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*e = entryFiles{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("entry must be a file or a list of files: %w", err)
	}
	*e = many
	return nil
}

func (b buildFile) configuration() (*core.Configuration, error) {
	cfg := &core.Configuration{
		Context:      b.Context,
		Mode:         b.Mode,
		Output:       b.Output,
		Optimization: b.Optimization,
	}
	if len(b.Entry) > 0 {
		cfg.Entry = make(map[string][]string, len(b.Entry))
		for name, files := range b.Entry {
			cfg.Entry[name] = []string(files)
		}
	}

	exts, err := core.ExternalsFromValue(b.Externals)
	if err != nil {
		return nil, fmt.Errorf("build.externals: %w", err)
	}
	cfg.Externals = exts

	for i, raw := range b.Plugins {
		p, err := core.PluginFromMap(raw)
		if err != nil {
			return nil, fmt.Errorf("build.plugins[%d]: %w", i, err)
		}
		cfg.Plugins = append(cfg.Plugins, p)
	}
	return cfg, nil
}
