// SPDX-License-Identifier: MIT
//
// Package config loads the YAML configuration of the iching command.
//
// Precedence, highest first: command-line flags (applied by the caller),
// ICHING_* environment variables, the YAML file, DefaultConfig.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/martinmr/iching/ops"
	"github.com/martinmr/iching/reading"
)

// ErrInvalidConfig is returned by Validate and Load for unusable values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variables consulted by Load.
const (
	EnvCatalogue  = "ICHING_CATALOGUE"
	EnvMethod     = "ICHING_METHOD"
	EnvRandomness = "ICHING_RANDOMNESS"
	EnvWorkers    = "ICHING_WORKERS"
	EnvLogLevel   = "ICHING_LOG_LEVEL"
)

// Config is the full configuration.
type Config struct {
	Search   SearchConfig   `yaml:"search"`
	Sequence SequenceConfig `yaml:"sequence"`
	Reading  ReadingConfig  `yaml:"reading"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// SearchConfig selects the operation catalogue and path filtering.
type SearchConfig struct {
	Catalogue string `yaml:"catalogue"`
	// All keeps every shortest path instead of the least-line-change ones.
	All bool `yaml:"all"`
}

// SequenceConfig tunes random sequence comparisons.
type SequenceConfig struct {
	Samples int `yaml:"samples"`
	// Workers bounds the analysis fan-out; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
	// Seed pins the shuffles; 0 draws a fresh seed on every run.
	Seed uint64 `yaml:"seed"`
}

// ReadingConfig selects how readings are generated.
type ReadingConfig struct {
	Method            string        `yaml:"method"`
	Randomness        string        `yaml:"randomness"`
	RandomOrgURL      string        `yaml:"random_org_url"`
	Timeout           time.Duration `yaml:"timeout"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	Burst             int           `yaml:"burst"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Search: SearchConfig{
			Catalogue: ops.Canonical.String(),
		},
		Sequence: SequenceConfig{
			Samples: 1,
		},
		Reading: ReadingConfig{
			Method:            reading.YarrowStalks.String(),
			Randomness:        reading.Random.String(),
			RandomOrgURL:      reading.DefaultRandomOrgURL,
			Timeout:           10 * time.Second,
			RequestsPerSecond: 4,
			Burst:             4,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path over the defaults and applies environment overrides.
// An empty path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("config: load %s: %w", path, err)
		}
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvCatalogue); ok && v != "" {
		cfg.Search.Catalogue = v
	}
	if v, ok := lookup(EnvMethod); ok && v != "" {
		cfg.Reading.Method = v
	}
	if v, ok := lookup(EnvRandomness); ok && v != "" {
		cfg.Reading.Randomness = v
	}
	if v, ok := lookup(EnvWorkers); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, EnvWorkers, v, err)
		}
		cfg.Sequence.Workers = n
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.Logging.Level = v
	}
	return nil
}

// Save writes c to path as YAML, creating parent directories.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: save %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: save %s: %w", path, err)
	}
	return nil
}

// Validate checks every field that has a closed set of values.
func (c Config) Validate() error {
	if _, err := c.Catalogue(); err != nil {
		return fmt.Errorf("%w: search.catalogue: %w", ErrInvalidConfig, err)
	}
	if _, err := c.Method(); err != nil {
		return fmt.Errorf("%w: reading.method: %w", ErrInvalidConfig, err)
	}
	if _, err := c.Randomness(); err != nil {
		return fmt.Errorf("%w: reading.randomness: %w", ErrInvalidConfig, err)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: logging.level: %w", ErrInvalidConfig, err)
	}
	switch {
	case c.Sequence.Samples < 1:
		return fmt.Errorf("%w: sequence.samples must be >= 1, got %d", ErrInvalidConfig, c.Sequence.Samples)
	case c.Sequence.Workers < 0:
		return fmt.Errorf("%w: sequence.workers must be >= 0, got %d", ErrInvalidConfig, c.Sequence.Workers)
	case c.Reading.Timeout <= 0:
		return fmt.Errorf("%w: reading.timeout must be positive", ErrInvalidConfig)
	case c.Reading.Burst < 1:
		return fmt.Errorf("%w: reading.burst must be >= 1, got %d", ErrInvalidConfig, c.Reading.Burst)
	case c.Logging.Format != "console" && c.Logging.Format != "json":
		return fmt.Errorf("%w: logging.format must be console or json, got %q", ErrInvalidConfig, c.Logging.Format)
	}
	return nil
}

// Catalogue parses Search.Catalogue.
func (c Config) Catalogue() (ops.Catalogue, error) { return ops.ParseCatalogue(c.Search.Catalogue) }

// Method parses Reading.Method.
func (c Config) Method() (reading.Method, error) { return reading.ParseMethod(c.Reading.Method) }

// Randomness parses Reading.Randomness.
func (c Config) Randomness() (reading.Randomness, error) {
	return reading.ParseRandomness(c.Reading.Randomness)
}

// Level parses Logging.Level.
func (c Config) Level() (zapcore.Level, error) { return zapcore.ParseLevel(c.Logging.Level) }
