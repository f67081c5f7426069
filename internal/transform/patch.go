// Package transform rewrites an application build configuration into a
// single-file plugin build.
package transform

import (
	"fmt"
	"path/filepath"

	"github.com/ngplug/cli/internal/core"
	"github.com/ngplug/cli/internal/entrypoint"
	"github.com/ngplug/cli/internal/externals"
	"github.com/ngplug/cli/internal/output"
)

// GlobalObjectSelfOrThis resolves to self in browsers and workers, and to
// this elsewhere.
const GlobalObjectSelfOrThis = "(typeof self !== 'undefined' ? self : this)"

// Patcher applies plugin options to build configurations. One Patcher serves
// one build; the entry file it writes is recorded in its store.
type Patcher struct {
	opts  core.PluginOptions
	store *entrypoint.Store
}

// NewPatcher creates a Patcher writing the entry shim through store.
func NewPatcher(opts core.PluginOptions, store *entrypoint.Store) *Patcher {
	return &Patcher{opts: opts, store: store}
}

// Options returns the options the patcher applies.
func (p *Patcher) Options() core.PluginOptions {
	return p.opts
}

// plan holds everything derived from the options before cfg is touched.
type plan struct {
	ref       entrypoint.ModuleReference
	externals core.Externals
	entryPath string
}

// Patch rewrites cfg in place. Every validation runs before the first
// mutation, so on a validation error cfg is unchanged.
func (p *Patcher) Patch(cfg *core.Configuration) error {
	pl, err := p.validate(cfg)
	if err != nil {
		return err
	}
	log := output.PluginLogger(p.opts.PluginName)

	// Single bundle: no polyfills/styles bundles, no runtime or split chunks.
	delete(cfg.Entry, core.EntryPolyfills)
	delete(cfg.Entry, core.EntryStyles)
	cfg.Optimization.RuntimeChunk = ""
	cfg.Optimization.SplitChunks = nil
	log.Debug("single bundle forced", "entries", cfg.EntryNames())

	cfg.Externals = pl.externals
	log.Debug("externals set", "count", len(cfg.Externals), "sharedLibs", p.opts.SharedLibs)

	if o := findEntryModuleOverrider(cfg.Plugins); o != nil {
		log.Debug("entry module overridden", "plugin", o.Name(), "from", o.EntryModule(), "to", p.opts.ModulePath)
		o.SetEntryModule(p.opts.ModulePath)
	}

	p.store.SetPath(pl.entryPath)
	if err := p.store.Write(entrypoint.Generate(pl.ref)); err != nil {
		return err
	}
	log.Debug("entry point written", "path", pl.entryPath, "factory", pl.ref.FactoryPath())

	cfg.Output.Filename = p.opts.PluginName + ".js"
	cfg.Output.Library = p.opts.PluginName
	cfg.Output.LibraryTarget = core.LibraryTargetUMD
	cfg.Output.GlobalObject = GlobalObjectSelfOrThis
	log.Debug("output set", "filename", cfg.Output.Filename, "target", cfg.Output.LibraryTarget)

	return nil
}

// Transform adapts Patch to a chain Func.
func (p *Patcher) Transform(cfg *core.Configuration) (*core.Configuration, error) {
	if err := p.Patch(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (p *Patcher) validate(cfg *core.Configuration) (*plan, error) {
	if p.opts.ModulePath == "" {
		return nil, ErrMissingModulePath
	}
	if p.opts.PluginName == "" {
		return nil, ErrMissingPluginName
	}
	if cfg == nil {
		return nil, fmt.Errorf("patching plugin %s: nil configuration", p.opts.PluginName)
	}

	ref, err := entrypoint.ParseModuleReference(p.opts.ModulePath)
	if err != nil {
		return nil, err
	}

	exts := p.opts.Externals
	if p.opts.SharedLibs != "" {
		exts, err = externals.Synthesize(p.opts.Externals, p.opts.SharedLibs)
		if err != nil {
			return nil, err
		}
	}

	main, ok := cfg.MainEntry()
	if !ok {
		return nil, ErrMissingMainEntry
	}
	if !filepath.IsAbs(main) && cfg.Context != "" {
		main = filepath.Join(cfg.Context, main)
	}

	return &plan{ref: ref, externals: exts, entryPath: main}, nil
}

// findEntryModuleOverrider returns the first plugin supporting entry module
// overrides, or nil.
func findEntryModuleOverrider(plugins []core.Plugin) core.EntryModuleOverrider {
	for _, pl := range plugins {
		if o, ok := pl.(core.EntryModuleOverrider); ok {
			return o
		}
	}
	return nil
}
