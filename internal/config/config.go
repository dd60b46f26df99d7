// Package config loads the pokertools HCL configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/pokertools/sdk/classification"
)

// Config represents the complete tool configuration.
type Config struct {
	LogLevel string        `hcl:"log_level,optional"`
	NoColor  bool          `hcl:"no_color,optional"`
	Bluff    *BluffConfig  `hcl:"bluff,block"`
	Report   *ReportConfig `hcl:"report,block"`
}

// BluffConfig tunes bluff-candidate searches.
type BluffConfig struct {
	BoardPairs        string `hcl:"board_pairs,optional"`
	RequiredHolecards *int   `hcl:"required_holecards,optional"`
}

// ReportConfig tunes the canonical flop report.
type ReportConfig struct {
	Workers int `hcl:"workers,optional"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads filename, falling back to Default when it does not exist.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source, fills defaults and validates the result.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Bluff == nil {
		c.Bluff = &BluffConfig{}
	}
	if c.Bluff.BoardPairs == "" {
		c.Bluff.BoardPairs = classification.BoardPairsIgnore.String()
	}
	if c.Bluff.RequiredHolecards == nil {
		required := classification.DefaultBluffOptions().Required
		c.Bluff.RequiredHolecards = &required
	}
	if c.Report == nil {
		c.Report = &ReportConfig{}
	}
	if c.Report.Workers == 0 {
		c.Report.Workers = runtime.NumCPU()
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := c.BluffOptions(); err != nil {
		return err
	}
	if c.Report != nil && c.Report.Workers < 1 {
		return fmt.Errorf("report: workers must be positive, got %d", c.Report.Workers)
	}
	return nil
}

// Level returns the configured log level.
func (c *Config) Level() (log.Level, error) {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// BluffOptions converts the bluff block into classification options.
func (c *Config) BluffOptions() (classification.BluffOptions, error) {
	opts := classification.DefaultBluffOptions()
	if c.Bluff == nil {
		return opts, nil
	}

	policy, err := classification.ParseBoardPairPolicy(c.Bluff.BoardPairs)
	if err != nil {
		return opts, fmt.Errorf("bluff: %w", err)
	}
	opts.BoardPairs = policy

	if c.Bluff.RequiredHolecards != nil {
		opts.Required = *c.Bluff.RequiredHolecards
	}
	if opts.Required < 0 || opts.Required > 2 {
		return opts, fmt.Errorf("bluff: %w: got %d", classification.ErrRequiredHolecards, opts.Required)
	}
	return opts, nil
}
