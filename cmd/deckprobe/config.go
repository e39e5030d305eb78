package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/deckprobe/probe"
)

// config holds the CLI's runtime settings. Values come from defaults, then
// an optional YAML file, then flags, in that precedence order.
type config struct {
	Mode           string  `yaml:"mode"`
	TimeoutSeconds float64 `yaml:"timeout_seconds"`
	MaxLayouts     int     `yaml:"max_layouts"`
}

func defaultConfig() config {
	return config{
		Mode:           probe.ModeEssential,
		TimeoutSeconds: 0,
		MaxLayouts:     probe.DefaultMaxLayouts,
	}
}

// loadConfig reads a YAML config file.
func loadConfig(path string) (config, error) {
	var cfg config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// merge overlays non-zero fields of other onto c.
func (c config) merge(other config) config {
	if other.Mode != "" {
		c.Mode = other.Mode
	}
	if other.TimeoutSeconds > 0 {
		c.TimeoutSeconds = other.TimeoutSeconds
	}
	if other.MaxLayouts > 0 {
		c.MaxLayouts = other.MaxLayouts
	}
	return c
}

// applyFlags overlays explicitly set flag values; flags win over the file.
func (c config) applyFlags(mode string, timeoutSec float64, maxLayouts int) config {
	if mode != "" {
		c.Mode = mode
	}
	if timeoutSec > 0 {
		c.TimeoutSeconds = timeoutSec
	}
	if maxLayouts > 0 {
		c.MaxLayouts = maxLayouts
	}
	return c
}

func (c config) validate() error {
	switch c.Mode {
	case probe.ModeEssential, probe.ModeDeep:
	default:
		return fmt.Errorf("invalid mode %q (want essential or deep)", c.Mode)
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout must be >= 0")
	}
	if c.MaxLayouts < 0 {
		return fmt.Errorf("max-layouts must be >= 0")
	}
	if c.TimeoutSeconds > 0 && c.Mode != probe.ModeDeep {
		return fmt.Errorf("timeout only applies to deep mode")
	}
	return nil
}
