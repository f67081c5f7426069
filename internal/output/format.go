package output

import "strings"

// Format specifies how configurations are printed.
type Format string

const (
	// FormatYAML prints YAML.
	FormatYAML Format = "yaml"

	// FormatJSON prints indented JSON.
	FormatJSON Format = "json"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// Valid checks if the format is supported.
func (f Format) Valid() bool {
	switch f {
	case FormatYAML, FormatJSON:
		return true
	default:
		return false
	}
}

// ParseFormat parses a format name. "yml" is accepted as YAML.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, true
	case "json":
		return FormatJSON, true
	default:
		return "", false
	}
}

// ValidFormats returns the valid format names.
func ValidFormats() []string {
	return []string{"yaml", "json"}
}
