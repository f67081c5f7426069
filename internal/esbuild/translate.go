package esbuild

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"

	"github.com/ngplug/cli/internal/core"
)

// Library targets understood by the translator.
const (
	targetVar       = "var"
	targetCommonJS  = "commonjs"
	targetCommonJS2 = "commonjs2"
	targetModule    = "module"
)

const defaultFilename = "[name].js"

// translate maps a build configuration onto esbuild options. The result
// writes to disk.
func translate(cfg *core.Configuration) (api.BuildOptions, error) {
	workDir, err := filepath.Abs(orDefault(cfg.Context, "."))
	if err != nil {
		return api.BuildOptions{}, fmt.Errorf("resolving context %s: %w", cfg.Context, err)
	}

	opts := api.BuildOptions{
		AbsWorkingDir: workDir,
		NodePaths:     []string{workDir},
		Bundle:        true,
		Write:         true,
		Platform:      api.PlatformBrowser,
		LogLevel:      api.LogLevelSilent,
	}

	if err := translateFormat(cfg.Output, &opts); err != nil {
		return api.BuildOptions{}, err
	}
	opts.Splitting = cfg.Optimization.SplitChunks != nil && opts.Format == api.FormatESModule

	if err := translateEntries(cfg, workDir, &opts); err != nil {
		return api.BuildOptions{}, err
	}

	if cfg.Mode == "production" {
		opts.MinifyWhitespace = true
		opts.MinifyIdentifiers = true
		opts.MinifySyntax = true
	}

	for _, p := range cfg.Plugins {
		if def, ok := p.(*core.DefinePlugin); ok {
			if opts.Define == nil {
				opts.Define = map[string]string{}
			}
			for k, v := range def.Definitions {
				opts.Define[k] = v
			}
		}
	}

	if len(cfg.Externals) > 0 {
		opts.Plugins = append(opts.Plugins, externalsPlugin(cfg.Externals))
	}
	return opts, nil
}

func translateFormat(out core.Output, opts *api.BuildOptions) error {
	switch out.LibraryTarget {
	case core.LibraryTargetUMD:
		if out.Library == "" {
			return fmt.Errorf("libraryTarget %s requires output.library", out.LibraryTarget)
		}
		banner, footer := umdWrapper(out.Library, orDefault(out.GlobalObject, "this"))
		opts.Format = api.FormatCommonJS
		opts.Banner = map[string]string{"js": banner}
		opts.Footer = map[string]string{"js": footer}
	case "", targetVar:
		opts.Format = api.FormatIIFE
		opts.GlobalName = out.Library
	case targetCommonJS, targetCommonJS2:
		opts.Format = api.FormatCommonJS
	case targetModule:
		opts.Format = api.FormatESModule
	default:
		return fmt.Errorf("libraryTarget %q is not supported", out.LibraryTarget)
	}
	return nil
}

// translateEntries uses Outfile for a single entry and Outdir with entry
// names otherwise. Each entry must name exactly one file.
func translateEntries(cfg *core.Configuration, workDir string, opts *api.BuildOptions) error {
	names := cfg.EntryNames()
	if len(names) == 0 {
		return fmt.Errorf("configuration has no entries")
	}

	outDir := cfg.Output.Path
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(workDir, outDir)
	}
	filename := orDefault(cfg.Output.Filename, defaultFilename)

	for _, name := range names {
		files := cfg.Entry[name]
		if len(files) != 1 {
			return fmt.Errorf("entry %q lists %d files, want 1", name, len(files))
		}
		opts.EntryPointsAdvanced = append(opts.EntryPointsAdvanced, api.EntryPoint{
			InputPath:  files[0],
			OutputPath: name,
		})
	}

	if len(names) == 1 && !opts.Splitting {
		opts.Outfile = filepath.Join(outDir, strings.ReplaceAll(filename, "[name]", names[0]))
		opts.EntryPointsAdvanced[0].OutputPath = ""
		return nil
	}

	if len(names) > 1 && !strings.Contains(filename, "[name]") {
		return fmt.Errorf("output.filename %q must contain [name] when building %d entries", filename, len(names))
	}
	opts.Outdir = outDir
	opts.EntryNames = strings.TrimSuffix(filename, filepath.Ext(filename))
	return nil
}

// externalsPlugin leaves requests matched by externals unbundled, under the
// name the matcher returns.
func externalsPlugin(externals core.Externals) api.Plugin {
	return api.Plugin{
		Name: "ngplug-externals",
		Setup: func(build api.PluginBuild) {
			build.OnResolve(api.OnResolveOptions{Filter: ".*"}, func(args api.OnResolveArgs) (api.OnResolveResult, error) {
				if args.Kind == api.ResolveEntryPoint {
					return api.OnResolveResult{}, nil
				}
				if name, ok := externals.Resolve(args.Path); ok {
					return api.OnResolveResult{Path: name, External: true}, nil
				}
				return api.OnResolveResult{}, nil
			})
		},
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
