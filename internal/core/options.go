package core

// PluginOptions are the caller-supplied options of a plugin build.
type PluginOptions struct {
	// PluginName names the bundle file and the exported library. Required.
	PluginName string `json:"pluginName"`

	// ModulePath is the module exposed by the bundle, formatted path#ExportName. Required.
	ModulePath string `json:"modulePath"`

	// SharedLibs is a comma-separated list of libraries the host application supplies.
	SharedLibs string `json:"sharedLibs,omitempty"`

	// Externals are caller externals applied before shared libraries are added.
	Externals Externals `json:"externals,omitempty"`

	// DeleteOutputPath clears the output directory before building.
	// Plugin builds always run with it disabled so sibling plugins survive.
	DeleteOutputPath bool `json:"deleteOutputPath"`

	// Extra holds executor options passed through untouched.
	Extra map[string]any `json:"extra,omitempty"`
}
