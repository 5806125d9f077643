// Package config holds the run configuration of the fntest CLI.
//
// A configuration starts from DefaultConfig, is overlaid with a TOML or
// YAML file, then with FNTEST_* environment variables. Command-line flags
// are applied last by the CLI.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/weiihann/fntest/report"
	"github.com/weiihann/fntest/verbosity"
	"github.com/weiihann/fntest/workload"
)

// Format is a configuration file syntax.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Config controls which suites run and how they report.
type Config struct {
	// Trials is the number of randomized trials per suite.
	Trials int `toml:"trials" yaml:"trials"`
	// Seed feeds every suite's argument source. Zero means time-based.
	Seed      int64           `toml:"seed" yaml:"seed"`
	Verbosity verbosity.Level `toml:"verbosity" yaml:"verbosity"`
	// LineLength is the width of randomized progress lines and
	// FunctionLineLength the width of deterministic case labels.
	LineLength         int    `toml:"line_length" yaml:"line_length"`
	FunctionLineLength int    `toml:"function_line_length" yaml:"function_line_length"`
	Color              string `toml:"color" yaml:"color"`
	// Suites selects suites by name. Empty means all.
	Suites []string `toml:"suites" yaml:"suites"`

	Workload WorkloadConfig `toml:"workload" yaml:"workload"`
}

// WorkloadConfig shapes the argument sizes drawn by the suites.
type WorkloadConfig struct {
	Distribution string `toml:"distribution" yaml:"distribution"`
	MinSize      int    `toml:"min_size" yaml:"min_size"`
	MaxSize      int    `toml:"max_size" yaml:"max_size"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		Trials:             1000,
		Verbosity:          verbosity.Normal,
		LineLength:         50,
		FunctionLineLength: 60,
		Color:              string(report.ColorAuto),
		Workload: WorkloadConfig{
			Distribution: workload.Uniform,
			MinSize:      0,
			MaxSize:      64,
		},
	}
}

// LoadFromFile reads configuration from path. The syntax is chosen by the
// file extension: .toml, .yaml or .yml.
func LoadFromFile(path string) (*Config, error) {
	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f, format)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return cfg, nil
}

// LoadFromReader reads configuration in the given format from r, on top of
// DefaultConfig, and applies environment overrides.
func LoadFromReader(r io.Reader, format Format) (*Config, error) {
	cfg := DefaultConfig()

	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(cfg); err != nil && err != io.EOF {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load returns DefaultConfig with environment overrides applied.
func Load() (*Config, error) {
	cfg := DefaultConfig()
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field ranges and names.
func (c *Config) Validate() error {
	if c.Trials < 0 {
		return fmt.Errorf("trials must be non-negative, got %d", c.Trials)
	}

	if c.LineLength < 0 {
		return fmt.Errorf("line length must be non-negative, got %d", c.LineLength)
	}

	if c.FunctionLineLength < 0 {
		return fmt.Errorf("function line length must be non-negative, got %d",
			c.FunctionLineLength)
	}

	if _, err := report.ParseColorMode(c.Color); err != nil {
		return err
	}

	if err := c.WorkloadConfig().Validate(); err != nil {
		return fmt.Errorf("workload: %w", err)
	}

	return nil
}

// ColorMode returns the parsed color mode, auto when unset or invalid.
func (c *Config) ColorMode() report.ColorMode {
	m, _ := report.ParseColorMode(c.Color)

	return m
}

// WorkloadConfig returns the argument source configuration for the run.
func (c *Config) WorkloadConfig() workload.Config {
	return workload.Config{
		Seed:         c.Seed,
		Distribution: c.Workload.Distribution,
		MinSize:      c.Workload.MinSize,
		MaxSize:      c.Workload.MaxSize,
	}
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("FNTEST_TRIALS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse FNTEST_TRIALS: %w", err)
		}
		cfg.Trials = n
	}
	if v := os.Getenv("FNTEST_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("parse FNTEST_SEED: %w", err)
		}
		cfg.Seed = n
	}
	if v := os.Getenv("FNTEST_VERBOSITY"); v != "" {
		if err := cfg.Verbosity.Set(v); err != nil {
			return fmt.Errorf("parse FNTEST_VERBOSITY: %w", err)
		}
	}
	if v := os.Getenv("FNTEST_COLOR"); v != "" {
		cfg.Color = v
	}

	return nil
}

func formatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("unrecognized config file extension %q", filepath.Ext(path))
}
