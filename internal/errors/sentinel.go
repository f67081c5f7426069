// Package errors provides sentinel errors and structured error details for ngplug.
package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid plugin options or workspace configuration.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a workspace file or entry point was not found.
	ErrNotFound = errors.New("not found")

	// ErrBuild indicates the build executor reported a failed build.
	ErrBuild = errors.New("build failed")
)
