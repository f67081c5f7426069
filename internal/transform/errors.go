package transform

import (
	oerrors "github.com/ngplug/cli/internal/errors"
)

// Validation failures reported by Patch. They are *oerrors.DetailError values
// wrapping oerrors.ErrValidation, so errors.Is matches both the value and the
// sentinel.
var (
	ErrMissingModulePath = &oerrors.DetailError{
		Type:    "validation failed",
		Field:   "modulePath",
		Message: "missing modulePath",
		Hint:    "set options.modulePath (or --module-path) to path#ExportName",
		Cause:   oerrors.ErrValidation,
	}

	ErrMissingPluginName = &oerrors.DetailError{
		Type:    "validation failed",
		Field:   "pluginName",
		Message: "missing pluginName",
		Hint:    "set options.pluginName (or --plugin-name)",
		Cause:   oerrors.ErrValidation,
	}

	ErrMissingMainEntry = &oerrors.DetailError{
		Type:    "validation failed",
		Field:   "entry.main",
		Message: "configuration declares no main entry file",
		Hint:    "add build.entry.main with the application entry file",
		Cause:   oerrors.ErrValidation,
	}
)
