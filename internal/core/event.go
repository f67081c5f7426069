package core

import "time"

// Event is one build result reported by an executor.
type Event struct {
	// Success is true when the build produced output without errors.
	Success bool `json:"success"`

	// Errors are formatted error messages.
	Errors []string `json:"errors,omitempty"`

	// Warnings are formatted warning messages.
	Warnings []string `json:"warnings,omitempty"`

	// OutputFiles are the paths of emitted files.
	OutputFiles []string `json:"outputFiles,omitempty"`

	// Duration is how long the build took.
	Duration time.Duration `json:"duration"`

	// Configuration is the effective configuration, when the executor exposes it.
	Configuration *Configuration `json:"configuration,omitempty"`
}
