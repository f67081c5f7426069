package cmdutil

import (
	"errors"
	"fmt"

	"github.com/ngplug/cli/internal/config"
	"github.com/ngplug/cli/internal/core"
	oerrors "github.com/ngplug/cli/internal/errors"
	"github.com/ngplug/cli/internal/output"
)

// PrintValidationError prints a validation error in a user-friendly format.
// Workspace schema errors are listed one per line; detail errors show their
// location and hint as key-value pairs.
func PrintValidationError(msg string, err error) {
	var verrs config.ValidationErrors
	if errors.As(err, &verrs) {
		output.Error(msg)
		for _, e := range verrs {
			output.Error(fmt.Sprintf("  %s: %s", e.Field, e.Message))
		}
		return
	}

	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		keyvals := []interface{}{}
		if detail.Field != "" {
			keyvals = append(keyvals, "field", detail.Field)
		}
		if detail.Location != "" {
			keyvals = append(keyvals, "location", detail.Location)
		}
		if detail.Hint != "" {
			keyvals = append(keyvals, "hint", detail.Hint)
		}
		output.Error(fmt.Sprintf("%s: %s", msg, detail.Message), keyvals...)
		return
	}

	output.Error(msg, "error", err)
}

// EventStatus classifies a build event.
func EventStatus(ev core.Event) string {
	switch {
	case !ev.Success:
		return output.StatusFailed
	case len(ev.Warnings) > 0:
		return output.StatusWarnings
	default:
		return output.StatusSucceeded
	}
}

// WriteBuildEvent logs a build result line followed by its messages.
func WriteBuildEvent(pluginName string, ev core.Event) {
	log := output.PluginLogger(pluginName)
	line := output.FormatBuildLine(pluginName, EventStatus(ev), ev.Duration)

	if ev.Success {
		log.Info(line)
	} else {
		log.Error(line)
	}
	for _, w := range ev.Warnings {
		log.Warn(w)
	}
	for _, e := range ev.Errors {
		log.Error(e)
	}
}
