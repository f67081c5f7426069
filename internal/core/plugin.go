package core

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Known plugin names as they appear in workspace files.
const (
	AngularCompilerPluginName = "AngularCompilerPlugin"
	DefinePluginName          = "DefinePlugin"
)

// Plugin is a bundler plugin instance attached to a Configuration.
type Plugin interface {
	// Name identifies the plugin kind.
	Name() string

	// Clone returns an independent copy.
	Clone() Plugin
}

// EntryModuleOverrider is implemented by plugins that compile the application
// from a configurable root module.
type EntryModuleOverrider interface {
	Plugin

	// EntryModule returns the current root module reference.
	EntryModule() string

	// SetEntryModule replaces the root module reference (path#ExportName).
	SetEntryModule(modulePath string)
}

// AngularCompilerPlugin describes the ahead-of-time compiler integration.
type AngularCompilerPlugin struct {
	// TSConfig is the tsconfig the compiler reads.
	TSConfig string `json:"tsConfig,omitempty"`

	// Module is the root module reference, path#ExportName.
	Module string `json:"entryModule,omitempty"`

	// SkipCodeGeneration disables factory generation (JIT builds).
	SkipCodeGeneration bool `json:"skipCodeGeneration,omitempty"`
}

// Name implements Plugin.
func (p *AngularCompilerPlugin) Name() string { return AngularCompilerPluginName }

// Clone implements Plugin.
func (p *AngularCompilerPlugin) Clone() Plugin {
	c := *p
	return &c
}

// EntryModule implements EntryModuleOverrider.
func (p *AngularCompilerPlugin) EntryModule() string { return p.Module }

// SetEntryModule implements EntryModuleOverrider.
func (p *AngularCompilerPlugin) SetEntryModule(modulePath string) { p.Module = modulePath }

// MarshalJSON includes the plugin name.
func (p *AngularCompilerPlugin) MarshalJSON() ([]byte, error) {
	type plain AngularCompilerPlugin
	return json.Marshal(struct {
		Name string `json:"name"`
		*plain
	}{p.Name(), (*plain)(p)})
}

// DefinePlugin replaces global identifiers with constant expressions at build time.
type DefinePlugin struct {
	Definitions map[string]string `json:"definitions,omitempty"`
}

// Name implements Plugin.
func (p *DefinePlugin) Name() string { return DefinePluginName }

// Clone implements Plugin.
func (p *DefinePlugin) Clone() Plugin {
	c := &DefinePlugin{Definitions: make(map[string]string, len(p.Definitions))}
	for k, v := range p.Definitions {
		c.Definitions[k] = v
	}
	return c
}

// MarshalJSON includes the plugin name.
func (p *DefinePlugin) MarshalJSON() ([]byte, error) {
	type plain DefinePlugin
	return json.Marshal(struct {
		Name string `json:"name"`
		*plain
	}{p.Name(), (*plain)(p)})
}

// PluginFromMap builds a known plugin from its decoded workspace form.
// Key matching is case-insensitive because config loaders may fold keys.
func PluginFromMap(m map[string]any) (Plugin, error) {
	fields := make(map[string]any, len(m))
	for k, v := range m {
		fields[strings.ToLower(k)] = v
	}

	name, _ := fields["name"].(string)
	switch name {
	case AngularCompilerPluginName:
		p := &AngularCompilerPlugin{}
		p.TSConfig, _ = fields["tsconfig"].(string)
		p.Module, _ = fields["entrymodule"].(string)
		p.SkipCodeGeneration, _ = fields["skipcodegeneration"].(bool)
		return p, nil
	case DefinePluginName:
		p := &DefinePlugin{Definitions: map[string]string{}}
		defs, _ := fields["definitions"].(map[string]any)
		for k, v := range defs {
			p.Definitions[k] = fmt.Sprint(v)
		}
		return p, nil
	case "":
		return nil, fmt.Errorf("plugin is missing a name")
	default:
		return nil, fmt.Errorf("unknown plugin %q", name)
	}
}
