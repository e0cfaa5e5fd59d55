// Package config provides unified configuration loading for prestag.
// It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config contains all prestag configuration settings.
type Config struct {
	// Store contains persistence settings.
	Store StoreConfig `json:"store" yaml:"store"`

	// Classify contains classification settings.
	Classify ClassifyConfig `json:"classify" yaml:"classify"`

	// Logging contains settings for operational and decision logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// StoreConfig configures the tag store.
type StoreConfig struct {
	// Path is the SQLite database file. Empty selects the in-memory store.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// ClassifyConfig configures classification runs.
type ClassifyConfig struct {
	// Dimensions restricts classification to a subset of dimension names.
	// Empty means all registered dimensions.
	Dimensions []string `json:"dimensions,omitempty" yaml:"dimensions,omitempty"`

	// Workers is the batch worker pool size.
	Workers int `json:"workers,omitempty" yaml:"workers,omitempty"`
}

// LoggingConfig configures prestag's logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	// "debug" enables decision logging to decisions.jsonl in Dir.
	Level string `json:"level" yaml:"level"`

	// Dir is where decision traces are written.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Path: "",
		},
		Classify: ClassifyConfig{
			Workers: 4,
		},
		Logging: LoggingConfig{
			Level: "info",
			Dir:   ".prestag",
		},
	}
}

// Load loads configuration from the default locations and environment variables.
// Order: defaults -> ~/.prestag/config.yaml -> environment variables
func Load() (*Config, error) {
	config := Default()

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".prestag", "config.yaml")
		if _, statErr := os.Stat(configPath); statErr == nil {
			fileConfig, loadErr := LoadFromFile(configPath)
			if loadErr != nil {
				return nil, fmt.Errorf("loading config file: %w", loadErr)
			}
			config = fileConfig
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return config, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Classify.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Classify.Workers)
	}

	validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(c *Config) {
	if v := os.Getenv("PRESTAG_STORE_PATH"); v != "" {
		c.Store.Path = v
	}
	if v := os.Getenv("PRESTAG_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("PRESTAG_LOG_DIR"); v != "" {
		c.Logging.Dir = v
	}
	if v := os.Getenv("PRESTAG_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Classify.Workers = n
		}
	}
}
