package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"sigs.k8s.io/yaml"

	"github.com/ngplug/cli/internal/core"
	oerrors "github.com/ngplug/cli/internal/errors"
)

// Environment variable prefix for ngplug configuration.
const envPrefix = "NGPLUG"

// Environment variables overriding workspace options.
const (
	EnvPluginName = "NGPLUG_PLUGIN_NAME"
	EnvModulePath = "NGPLUG_MODULE_PATH"
	EnvSharedLibs = "NGPLUG_SHARED_LIBS"
)

const (
	keyPluginName = "options.pluginName"
	keyModulePath = "options.modulePath"
	keySharedLibs = "options.sharedLibs"
)

// Loader reads workspace files. Option scalars come from viper so the
// environment overrides the file; the build section is decoded from the
// file as written because viper folds map keys to lower case.
type Loader struct {
	v  *viper.Viper
	fs afero.Fs
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFs reads workspace files from fs.
func WithFs(fs afero.Fs) LoaderOption {
	return func(l *Loader) {
		l.fs = fs
	}
}

// NewLoader creates a new workspace loader.
func NewLoader(opts ...LoaderOption) *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv(keyPluginName, EnvPluginName)
	_ = v.BindEnv(keyModulePath, EnvModulePath)
	_ = v.BindEnv(keySharedLibs, EnvSharedLibs)

	l := &Loader{v: v, fs: afero.NewOsFs()}
	for _, opt := range opts {
		opt(l)
	}
	v.SetFs(l.fs)
	return l
}

// Load loads the workspace at configFile, or at the resolved default path
// when configFile is empty. A missing file is an error: the base build
// configuration is required.
func (l *Loader) Load(configFile string) (*Workspace, error) {
	if configFile == "" {
		configFile = ResolveConfigPath("").Value
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	data, err := afero.ReadFile(l.fs, expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oerrors.NewNotFoundError(
				"workspace file not found",
				expandedPath,
				"run 'ngplug config init' to create one, or pass --config",
			)
		}
		return nil, fmt.Errorf("reading workspace file: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")
	if err := l.v.ReadInConfig(); err != nil {
		return nil, oerrors.NewValidationError(err.Error(), expandedPath, "", "check the file with 'ngplug config vet'")
	}

	var wf workspaceFile
	if err := yaml.Unmarshal(data, &wf); err != nil {
		return nil, oerrors.NewValidationError(err.Error(), expandedPath, "", "check the file with 'ngplug config vet'")
	}

	build, err := wf.Build.configuration()
	if err != nil {
		return nil, oerrors.NewValidationError(err.Error(), expandedPath, "build", "")
	}
	// build.context is relative to the workspace file
	if !filepath.IsAbs(build.Context) {
		build.Context = filepath.Join(filepath.Dir(expandedPath), build.Context)
	}

	exts, err := core.ExternalsFromValue(wf.Options.Externals)
	if err != nil {
		return nil, oerrors.NewValidationError(err.Error(), expandedPath, "options.externals", "")
	}

	return &Workspace{
		Path:  expandedPath,
		Build: build,
		Options: core.PluginOptions{
			PluginName:       l.v.GetString(keyPluginName),
			ModulePath:       l.v.GetString(keyModulePath),
			SharedLibs:       l.v.GetString(keySharedLibs),
			Externals:        exts,
			DeleteOutputPath: wf.Options.DeleteOutputPath,
			Extra:            wf.Options.Extra,
		},
		file: wf.Options,
	}, nil
}

// OptionFlags are command-line overrides of workspace options.
type OptionFlags struct {
	PluginName string
	ModulePath string
	SharedLibs string
}

// ApplyFlags applies flag > env > file precedence to the option scalars and
// returns how each was resolved.
func (w *Workspace) ApplyFlags(flags OptionFlags) []ResolvedValue {
	values := []ResolvedValue{
		ResolveValue("pluginName", flags.PluginName, os.Getenv(EnvPluginName), w.file.PluginName),
		ResolveValue("modulePath", flags.ModulePath, os.Getenv(EnvModulePath), w.file.ModulePath),
		ResolveValue("sharedLibs", flags.SharedLibs, os.Getenv(EnvSharedLibs), w.file.SharedLibs),
	}
	w.Options.PluginName = values[0].Value
	w.Options.ModulePath = values[1].Value
	w.Options.SharedLibs = values[2].Value
	return values
}
