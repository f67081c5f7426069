package config

import (
	"os"

	"github.com/ngplug/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from the workspace file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is one setting after applying precedence.
type ResolvedValue struct {
	// Key names the setting.
	Key string
	// Value is the winning value.
	Value string
	// Source indicates where the value came from. Empty when nothing set it.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveValue applies flag > env > config precedence.
func ResolveValue(key, flagValue, envValue, configValue string) ResolvedValue {
	result := ResolvedValue{
		Key:      key,
		Shadowed: make(map[ConfigSource]string),
	}

	switch {
	case flagValue != "":
		result.Value = flagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		if configValue != "" {
			result.Shadowed[SourceConfig] = configValue
		}
	case envValue != "":
		result.Value = envValue
		result.Source = SourceEnv
		if configValue != "" {
			result.Shadowed[SourceConfig] = configValue
		}
	case configValue != "":
		result.Value = configValue
		result.Source = SourceConfig
	}
	return result
}

// ResolveConfigPath resolves the workspace file path using precedence:
// (1) --config flag, (2) NGPLUG_CONFIG env, (3) ngplug.yaml.
func ResolveConfigPath(flagValue string) ResolvedValue {
	result := ResolveValue("config", flagValue, os.Getenv(EnvConfig), "")
	if result.Source == "" {
		result.Value = DefaultConfigFile
		result.Source = SourceDefault
	} else {
		result.Shadowed[SourceDefault] = DefaultConfigFile
	}
	return result
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
