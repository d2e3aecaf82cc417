// Package config loads vecadd settings from YAML with environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-vecadd/internal/logging"
	"gopkg.in/yaml.v3"
)

// Config holds all vecadd configuration.
type Config struct {
	Compute ComputeConfig `yaml:"compute"`
	Check   CheckConfig   `yaml:"check"`
	Logging LoggingConfig `yaml:"logging"`
}

// ComputeConfig configures the parallel adder.
type ComputeConfig struct {
	Workers      int    `yaml:"workers"`   // 0 selects GOMAXPROCS
	MinChunk     int    `yaml:"min_chunk"` // elements per goroutine, at least
	Kernel       string `yaml:"kernel"`    // empty selects the best supported kernel
	ForceGeneric bool   `yaml:"force_generic"`
}

// CheckConfig configures solution verification.
type CheckConfig struct {
	AbsTolerance float64 `yaml:"abs_tolerance"`
	RelTolerance float64 `yaml:"rel_tolerance"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	Level    string `yaml:"level"`    // trace, debug, info, warn, error
	Encoding string `yaml:"encoding"` // console, json
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Compute: ComputeConfig{
			MinChunk: 4096,
		},
		Check: CheckConfig{
			AbsTolerance: 1e-9,
			RelTolerance: 1e-6,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Encoding: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("VECADD_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid VECADD_WORKERS %q: %w", v, err)
		}
		c.Compute.Workers = n
	}
	if v := os.Getenv("VECADD_KERNEL"); v != "" {
		c.Compute.Kernel = v
	}
	if v := os.Getenv("VECADD_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("VECADD_FORCE_GENERIC"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid VECADD_FORCE_GENERIC %q: %w", v, err)
		}
		c.Compute.ForceGeneric = b
	}
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Compute.Workers < 0 {
		return fmt.Errorf("compute.workers must be >= 0, got %d", c.Compute.Workers)
	}
	if c.Compute.MinChunk < 1 {
		return fmt.Errorf("compute.min_chunk must be >= 1, got %d", c.Compute.MinChunk)
	}
	if c.Check.AbsTolerance < 0 || c.Check.RelTolerance < 0 {
		return fmt.Errorf("check tolerances must be >= 0, got abs=%g rel=%g",
			c.Check.AbsTolerance, c.Check.RelTolerance)
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Logging.Encoding) {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.encoding must be console or json, got %q", c.Logging.Encoding)
	}
	return nil
}
