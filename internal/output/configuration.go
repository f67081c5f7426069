package output

import (
	"encoding/json"
	"fmt"
	"io"

	"sigs.k8s.io/yaml"

	"github.com/ngplug/cli/internal/core"
)

// ConfigurationOptions controls configuration output formatting.
type ConfigurationOptions struct {
	// Format is yaml or json.
	Format Format
	// Writer is the output destination.
	Writer io.Writer
}

// WriteConfiguration prints a build configuration. Externals and plugins are
// rendered through their JSON form, so YAML goes through sigs.k8s.io/yaml.
func WriteConfiguration(cfg *core.Configuration, opts ConfigurationOptions) error {
	switch opts.Format {
	case FormatJSON:
		encoder := json.NewEncoder(opts.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(cfg); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	case FormatYAML, "":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		_, err = opts.Writer.Write(data)
		return err
	}
	return fmt.Errorf("format %s not supported for configuration output", opts.Format)
}
