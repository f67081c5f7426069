// Package version provides version information for ngplug.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version (set via ldflags).
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// Modules whose versions are reported alongside the CLI version.
const (
	EsbuildModule = "github.com/evanw/esbuild"
	CUEModule     = "cuelang.org/go"
)

// Info contains version information.
type Info struct {
	// Version is the CLI version (set via ldflags).
	Version string `json:"version"`

	// GitCommit is the git commit hash.
	GitCommit string `json:"gitCommit"`

	// BuildDate is the build timestamp.
	BuildDate string `json:"buildDate"`

	// GoVersion is the Go version used to build.
	GoVersion string `json:"goVersion"`

	// EsbuildVersion is the bundler module version linked into the binary.
	EsbuildVersion string `json:"esbuildVersion"`

	// CUEVersion is the CUE module version used for workspace validation.
	CUEVersion string `json:"cueVersion"`
}

// GetInfo returns the current version information.
func GetInfo() Info {
	return Info{
		Version:        Version,
		GitCommit:      GitCommit,
		BuildDate:      BuildDate,
		GoVersion:      runtime.Version(),
		EsbuildVersion: DependencyVersion(EsbuildModule),
		CUEVersion:     DependencyVersion(CUEModule),
	}
}

// String returns a human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("ngplug version %s\n  Commit:   %s\n  Built:    %s\n  Go:       %s\n  esbuild:  %s\n  CUE:      %s",
		i.Version, i.GitCommit, i.BuildDate, i.GoVersion, i.EsbuildVersion, i.CUEVersion)
}

// DependencyVersion returns the version of a module linked into the binary,
// or "unknown" when build info is unavailable (for example under go test).
func DependencyVersion(path string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	return dependencyVersion(info.Deps, path)
}

func dependencyVersion(deps []*debug.Module, path string) string {
	for _, dep := range deps {
		if dep.Path != path {
			continue
		}
		if dep.Replace != nil {
			return dep.Replace.Version
		}
		return dep.Version
	}
	return "unknown"
}
