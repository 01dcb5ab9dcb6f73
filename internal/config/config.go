// Package config holds the fastascan configuration file model.
package config

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Log levels accepted in the config file.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

var extensionPattern = regexp.MustCompile(`^\.[^/\\]+$`)

// Config represents the application configuration. Every field has a
// default, so running without a config file is always valid.
type Config struct {
	App   AppConfig   `yaml:"app"`
	Scan  ScanConfig  `yaml:"scan"`
	Watch WatchConfig `yaml:"watch"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}

	if err := c.Scan.Validate(); err != nil {
		return err
	}

	return c.Watch.Validate()
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	LogLevel string `yaml:"log_level"`
}

// Validate validates the application configuration. An empty level is
// normalised to info.
func (c *AppConfig) Validate() error {
	if c.LogLevel == "" {
		c.LogLevel = LogLevelInfo
	}

	return validation.ValidateStruct(c,
		validation.Field(&c.LogLevel, validation.Required,
			validation.In(LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError)),
	)
}

// ScanConfig controls candidate collection. Leaving Extensions empty
// keeps the built-in .fa and .fasta suffixes.
type ScanConfig struct {
	Extensions   []string `yaml:"extensions"`
	Exclude      []string `yaml:"exclude"`
	UseGitignore bool     `yaml:"use_gitignore"`
}

// Validate validates the scan configuration.
func (c *ScanConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Extensions,
			validation.Each(validation.Required, validation.Match(extensionPattern))),
	)
}

// WatchConfig controls the watch subcommand.
type WatchConfig struct {
	DebounceMS int `yaml:"debounce_ms"`
}

// Validate validates the watch configuration.
func (c *WatchConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.DebounceMS, validation.Min(0)),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App:   AppConfig{LogLevel: LogLevelInfo},
		Watch: WatchConfig{DebounceMS: 200},
	}
}
