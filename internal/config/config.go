package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

// Config controls a demo run.
type Config struct {
	// Number of draws per sample
	SampleSize int `yaml:"sample_size"`

	// Random seed; 0 seeds from the wall clock
	Seed uint64 `yaml:"seed"`

	// Two-sided significance threshold for the t-test
	SignificanceLevel float64 `yaml:"significance_level"`

	// Use Student's pooled-variance test instead of Welch's
	EqualVariance bool `yaml:"equal_variance"`

	// Log level: debug, info, warn, error
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when nothing is overridden:
// two 1000-draw samples compared with Welch's test at the 5% level.
func Default() *Config {
	return &Config{
		SampleSize:        1000,
		Seed:              0,
		SignificanceLevel: 0.05,
		EqualVariance:     false,
		LogLevel:          "info",
	}
}

// Load builds a Config from defaults, an optional YAML file, and
// STATS_* environment overrides, in that order.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("STATS_SAMPLE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid STATS_SAMPLE_SIZE %q: %w", v, err)
		}
		c.SampleSize = n
	}
	if v := os.Getenv("STATS_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid STATS_SEED %q: %w", v, err)
		}
		c.Seed = seed
	}
	if v := os.Getenv("STATS_SIGNIFICANCE_LEVEL"); v != "" {
		alpha, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid STATS_SIGNIFICANCE_LEVEL %q: %w", v, err)
		}
		c.SignificanceLevel = alpha
	}
	if v := os.Getenv("STATS_EQUAL_VARIANCE"); v != "" {
		eq, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid STATS_EQUAL_VARIANCE %q: %w", v, err)
		}
		c.EqualVariance = eq
	}
	if v := os.Getenv("STATS_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return nil
}

// Validate checks that the configuration describes a runnable demo.
func (c *Config) Validate() error {
	if c.SampleSize < 2 {
		return fmt.Errorf("sample_size must be at least 2, got %d", c.SampleSize)
	}
	if c.SignificanceLevel <= 0 || c.SignificanceLevel >= 1 {
		return fmt.Errorf("significance_level must be in (0, 1), got %g", c.SignificanceLevel)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}
