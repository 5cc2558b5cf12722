// Package config provides configuration loading and access for the
// characterization harness.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all harness configuration parameters. The kernel itself
// takes no configuration; everything here shapes the sweeps and output.
type Config struct {
	Sweep  SweepConfig  `yaml:"sweep"`
	Grid   GridConfig   `yaml:"grid"`
	Output OutputConfig `yaml:"output"`
}

// SweepConfig holds sine/cosine sweep parameters.
type SweepConfig struct {
	Enabled bool   `yaml:"enabled"`
	File    string `yaml:"file"` // CSV filename inside the output dir
}

// GridConfig holds atan2 grid sweep parameters.
type GridConfig struct {
	Enabled bool   `yaml:"enabled"`
	Min     int    `yaml:"min"`  // inclusive lower bound for both x and y
	Max     int    `yaml:"max"`  // inclusive upper bound
	Step    int    `yaml:"step"` // grid stride, must be positive
	File    string `yaml:"file"`
}

// OutputConfig holds output destination parameters.
type OutputConfig struct {
	Dir string `yaml:"dir"` // empty disables CSV output
}

var global *Config

// Init loads configuration and stores it globally.
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into the same struct - only overwrites fields
		// present in the file.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Grid.Step <= 0 {
		return fmt.Errorf("config: grid step must be positive, got %d", c.Grid.Step)
	}
	if c.Grid.Min > c.Grid.Max {
		return fmt.Errorf("config: grid min %d exceeds max %d", c.Grid.Min, c.Grid.Max)
	}
	if c.Grid.Min < -32768 || c.Grid.Max > 32767 {
		return fmt.Errorf("config: grid range [%d, %d] outside int16", c.Grid.Min, c.Grid.Max)
	}
	return nil
}

// WriteYAML saves the configuration to a file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
