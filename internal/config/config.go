// Package config loads the optional fixinsert.yaml project file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/fixinsert/pkg/fixinsert"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

type ParseConfig struct {
	Field      string   `yaml:"field,omitempty"`
	Measure    string   `yaml:"measure,omitempty"`
	Mismatch   string   `yaml:"mismatch,omitempty"`
	Width      int      `yaml:"width,omitempty"`
	Extensions []string `yaml:"extensions,omitempty"`
}

type CheckConfig struct {
	Connection string `yaml:"connection,omitempty"`
	Schema     string `yaml:"schema,omitempty"`
	Timeout    string `yaml:"timeout,omitempty"`
}

type ProjectConfig struct {
	Parse ParseConfig `yaml:"parse"`
	Check CheckConfig `yaml:"check"`
}

// Load reads fixinsert.yaml from dir.
func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, fixinsert.ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", configPath, fixinsert.ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	return &cfg, nil
}

// Validate checks enumerated values and numeric ranges.
func (c *ProjectConfig) Validate() error {
	if _, err := fixinsert.ParseMeasureMode(c.Parse.Measure); err != nil {
		return err
	}
	if _, err := fixinsert.ParseMismatchPolicy(c.Parse.Mismatch); err != nil {
		return err
	}
	if c.Parse.Width < 0 {
		return fmt.Errorf("width must not be negative, got %d: %w", c.Parse.Width, fixinsert.ErrInvalidConfig)
	}
	return nil
}
