// Package config loads and saves the YAML configuration of the mvhd command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by Config.Output.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("invalid config")

// Config represents the mvhd configuration
type Config struct {
	HeadWindow int     `yaml:"head_window"`
	TailWindow int     `yaml:"tail_window"`
	Output     string  `yaml:"output"`
	Logging    Logging `yaml:"logging"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		HeadWindow: 2048,
		TailWindow: 64 * 1024,
		Output:     OutputText,
		Logging: Logging{
			Level: "info",
		},
	}
}

// Debug reports whether debug logging is enabled.
func (c *Config) Debug() bool {
	return c.Logging.Level == "debug"
}

// Validate checks window sizes, output format and log level.
func (c *Config) Validate() error {
	if c.HeadWindow <= 0 {
		return fmt.Errorf("%w: head_window must be positive, got %d", ErrInvalid, c.HeadWindow)
	}
	if c.TailWindow <= 0 {
		return fmt.Errorf("%w: tail_window must be positive, got %d", ErrInvalid, c.TailWindow)
	}
	switch c.Output {
	case OutputText, OutputYAML:
	default:
		return fmt.Errorf("%w: output must be %q or %q, got %q", ErrInvalid, OutputText, OutputYAML, c.Output)
	}
	switch c.Logging.Level {
	case "debug", "info":
	default:
		return fmt.Errorf("%w: logging.level must be \"debug\" or \"info\", got %q", ErrInvalid, c.Logging.Level)
	}
	return nil
}

// LoadConfig loads configuration from the specified path. Keys missing from
// the file keep their default values.
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}

	return config, nil
}

// SaveConfig saves the configuration to the specified path
func SaveConfig(config *Config, configPath string) error {
	if err := config.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfigPath returns ~/.config/mvhd/config.yaml, or ./mvhd.yaml when
// the home directory is unknown.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./mvhd.yaml"
	}
	return filepath.Join(homeDir, ".config", "mvhd", "config.yaml")
}

// Exists checks if a configuration file exists
func Exists(configPath string) bool {
	_, err := os.Stat(configPath)
	return err == nil
}
