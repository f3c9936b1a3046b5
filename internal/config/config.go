// Package config loads repoed's optional per-repository configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the repository root.
const FileName = ".repoed.yaml"

// Config represents repoed configuration options
type Config struct {
	// Output is the name of the aggregated markdown file, written to the
	// repository root. It is always excluded from its own content.
	Output string `yaml:"output"`

	// CommitCount is the number of recent commit subjects to list
	CommitCount int `yaml:"commit_count"`

	// LogLevel sets the logging verbosity (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Exclude lists extra repository-relative paths to drop from the file
	// sections, matched exactly, in addition to the built-in exclusions.
	Exclude []string `yaml:"exclude"`

	// HTML additionally writes an HTML rendering next to the markdown file
	HTML bool `yaml:"html"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Output:      "repoed.md",
		CommitCount: 3,
		LogLevel:    "info",
		HTML:        false,
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	// Start with defaults
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		// File doesn't exist, return defaults (not an error)
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from the file, merging with defaults
	if fileCfg.Output != "" {
		cfg.Output = fileCfg.Output
	}
	if fileCfg.CommitCount != 0 {
		cfg.CommitCount = fileCfg.CommitCount
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if len(fileCfg.Exclude) > 0 {
		cfg.Exclude = fileCfg.Exclude
	}
	if fileCfg.HTML {
		cfg.HTML = true
	}

	return cfg, nil
}
