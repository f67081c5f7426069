// Package core defines the build model shared across ngplug packages.
// It depends only on the standard library.
package core

import "sort"

// Well-known entry point keys.
const (
	// EntryMain is the application entry; its first file becomes the plugin shim.
	EntryMain = "main"

	// EntryPolyfills is the polyfills entry removed from plugin builds.
	EntryPolyfills = "polyfills"

	// EntryStyles is the global styles entry removed from plugin builds.
	EntryStyles = "styles"
)

// LibraryTargetUMD is the output library target for plugin bundles.
const LibraryTargetUMD = "umd"

// Configuration is the bundler build configuration.
// The executor owns it; transforms receive it by pointer and mutate it in place.
type Configuration struct {
	// Context is the project root that relative entry paths resolve against.
	Context string `json:"context,omitempty"`

	// Mode is the build mode: "production", "development" or "none".
	Mode string `json:"mode,omitempty"`

	// Entry maps entry names to their files. Only the first file of each entry
	// is an entry point; the rest are prepended imports.
	Entry map[string][]string `json:"entry"`

	// Output controls emitted file naming and library exposure.
	Output Output `json:"output"`

	// Optimization controls chunking.
	Optimization Optimization `json:"optimization"`

	// Externals lists module requests left out of the bundle, in resolution order.
	Externals Externals `json:"externals,omitempty"`

	// Plugins are the bundler plugin instances attached to this build.
	Plugins []Plugin `json:"plugins,omitempty"`
}

// Output contains emitted file settings.
type Output struct {
	// Path is the output directory.
	Path string `json:"path,omitempty"`

	// Filename is the bundle filename; may contain "[name]".
	Filename string `json:"filename,omitempty"`

	// Library is the exported library name.
	Library string `json:"library,omitempty"`

	// LibraryTarget is the module format the library is exposed as.
	LibraryTarget string `json:"libraryTarget,omitempty"`

	// GlobalObject is the expression the library attaches to when no module system is present.
	GlobalObject string `json:"globalObject,omitempty"`
}

// Optimization contains chunking settings.
type Optimization struct {
	// RuntimeChunk emits the bundler runtime as its own chunk ("single", "multiple").
	RuntimeChunk string `json:"runtimeChunk,omitempty"`

	// SplitChunks enables shared chunk extraction when non-nil.
	SplitChunks *SplitChunks `json:"splitChunks,omitempty"`
}

// SplitChunks configures shared chunk extraction.
type SplitChunks struct {
	Chunks  string `json:"chunks,omitempty"`
	MinSize int    `json:"minSize,omitempty"`
}

// MainEntry returns the first file of the main entry.
func (c *Configuration) MainEntry() (string, bool) {
	files := c.Entry[EntryMain]
	if len(files) == 0 || files[0] == "" {
		return "", false
	}
	return files[0], true
}

// EntryNames returns the entry names in sorted order.
func (c *Configuration) EntryNames() []string {
	names := make([]string, 0, len(c.Entry))
	for name := range c.Entry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a deep copy so an executor can hand transforms a configuration
// that does not alias its base.
func (c *Configuration) Clone() *Configuration {
	if c == nil {
		return nil
	}
	out := *c

	if c.Entry != nil {
		out.Entry = make(map[string][]string, len(c.Entry))
		for name, files := range c.Entry {
			out.Entry[name] = append([]string(nil), files...)
		}
	}

	if c.Optimization.SplitChunks != nil {
		sc := *c.Optimization.SplitChunks
		out.Optimization.SplitChunks = &sc
	}

	out.Externals = c.Externals.Clone()

	if c.Plugins != nil {
		out.Plugins = make([]Plugin, len(c.Plugins))
		for i, p := range c.Plugins {
			out.Plugins[i] = p.Clone()
		}
	}
	return &out
}
