package entrypoint

import (
	"fmt"
	"strings"

	oerrors "github.com/ngplug/cli/internal/errors"
)

// FactorySuffix marks compiler-generated factory modules.
const FactorySuffix = ".ngfactory"

// ModuleReference is a parsed path#ExportName module reference.
type ModuleReference struct {
	// Path is the module's import path.
	Path string

	// Name is the exported module class name.
	Name string
}

// ParseModuleReference splits ref once on '#'. Both halves must be non-empty.
func ParseModuleReference(ref string) (ModuleReference, error) {
	path, name, found := strings.Cut(ref, "#")
	if !found || path == "" || name == "" || strings.Contains(name, "#") {
		return ModuleReference{}, oerrors.NewValidationError(
			fmt.Sprintf("module reference %q must have the form <path>#<ExportName>", ref),
			"", "modulePath",
			"for example src/app/widget.module#WidgetModule",
		)
	}
	return ModuleReference{Path: path, Name: name}, nil
}

// String returns the path#ExportName form.
func (r ModuleReference) String() string {
	return r.Path + "#" + r.Name
}

// FactoryPath returns the import path of the module's generated factory.
// A bare package name ("pkg") is assumed to have an entry file of the same
// name, giving "pkg/pkg.ngfactory".
func (r ModuleReference) FactoryPath() string {
	target := r.Path
	if !strings.ContainsAny(target, "./") {
		target = target + "/" + target
	}
	return target + FactorySuffix
}

// FactoryName returns the identifier the factory module exports.
func (r ModuleReference) FactoryName() string {
	return r.Name + "NgFactory"
}
