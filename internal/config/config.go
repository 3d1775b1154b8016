// Package config provides configuration loading and validation for the CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultDataPath is the career timeline file used when none is configured.
	DefaultDataPath = "careerTimelineData_PhDOptimized.json"
	// DefaultLogLevel is the logrus level used when none is configured.
	DefaultLogLevel = "info"
	// DefaultThreshold is the pivot count below which a career needs enhancement.
	DefaultThreshold = 3

	// EnvDataPath overrides the data file path.
	EnvDataPath = "CAREER_DATA_PATH"
	// EnvLogLevel overrides the log level.
	EnvLogLevel = "CAREER_LOG_LEVEL"
)

// Config represents the CLI configuration that can be loaded from a YAML (or JSON) file.
// All fields are optional; missing values use defaults or are provided via CLI flags.
type Config struct {
	// DataPath is the career timeline JSON file
	DataPath string `yaml:"data_path,omitempty"`
	// LogLevel is the logrus level name
	LogLevel string `yaml:"log_level,omitempty" validate:"omitempty,oneof=debug info warn warning error"`
	// Threshold is the Analyzer enhancement threshold
	Threshold int `yaml:"threshold,omitempty" validate:"gte=0"`
	// Templates is an alternative pivot template catalog
	Templates string `yaml:"templates,omitempty"`
	// Backup copies the data file before it is rewritten
	Backup bool `yaml:"backup,omitempty"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		DataPath:  DefaultDataPath,
		LogLevel:  DefaultLogLevel,
		Threshold: DefaultThreshold,
	}
}

// LoadConfig loads configuration from a YAML file. JSON files parse as well.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overrides fields from environment variables. lookup is usually
// os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvDataPath); ok && v != "" {
		c.DataPath = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.Templates != "" {
		if _, err := os.Stat(c.Templates); os.IsNotExist(err) {
			return fmt.Errorf("config error: templates file not found: %s", c.Templates)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values over the built-in defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.DataPath == "" {
		result.DataPath = defaults.DataPath
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.Templates == "" {
		result.Templates = defaults.Templates
	}

	// Int fields: use default if zero
	if result.Threshold == 0 {
		result.Threshold = defaults.Threshold
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
