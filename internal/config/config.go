// Package config carries the runtime settings for the simulator: grid
// dimensions, seeding, pacing, display, and logging. Settings come from
// defaults, an optional YAML file, and command-line flags, in that order.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid reports a configuration that must not reach grid or engine
// construction.
var ErrInvalid = errors.New("invalid configuration")

// Display modes for the terminal front-end.
const (
	DisplayTUI   = "tui"
	DisplayPlain = "plain"
)

// Config holds every tunable of the simulator.
type Config struct {
	Width   int      `yaml:"width"`
	Height  int      `yaml:"height"`
	Density float64  `yaml:"density"`
	Delay   Duration `yaml:"delay"`
	Seed    int64    `yaml:"seed"`
	Pattern string   `yaml:"pattern"`
	Workers int      `yaml:"workers"`
	Display string   `yaml:"display"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Default returns the standard configuration: a 30x30 grid randomly seeded
// at density 0.3, stepping every 150ms.
func Default() Config {
	return Config{
		Width:     30,
		Height:    30,
		Density:   0.3,
		Delay:     Duration(150 * time.Millisecond),
		Seed:      42,
		Workers:   1,
		Display:   DisplayTUI,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.Float64Var(&c.Density, "density", c.Density, "initial alive probability per cell (0..1)")
	fs.DurationVar((*time.Duration)(&c.Delay), "delay", time.Duration(c.Delay), "pause between generations")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed for the initial grid")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "named starting pattern instead of a random fill")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines used to compute each step")
	fs.StringVar(&c.Display, "display", c.Display, "display mode: 'tui' or 'plain'")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "logging level: 'debug', 'info', 'warn', or 'error'")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log output format: 'text' or 'json'")
}

// Load reads a YAML file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// Merge applies the flags explicitly set on fs over base. flags must be the
// Config instance the FlagSet was bound to.
func Merge(base, flags Config, fs *flag.FlagSet) Config {
	merged := base
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			merged.Width = flags.Width
		case "height":
			merged.Height = flags.Height
		case "density":
			merged.Density = flags.Density
		case "delay":
			merged.Delay = flags.Delay
		case "seed":
			merged.Seed = flags.Seed
		case "pattern":
			merged.Pattern = flags.Pattern
		case "workers":
			merged.Workers = flags.Workers
		case "display":
			merged.Display = flags.Display
		case "log-level":
			merged.LogLevel = flags.LogLevel
		case "log-format":
			merged.LogFormat = flags.LogFormat
		}
	})
	return merged
}

// Validate checks every invariant the core assumes at construction time.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("%w: density must be within [0, 1], got %v", ErrInvalid, c.Density)
	}
	if c.Delay < 0 {
		return fmt.Errorf("%w: delay must be non-negative, got %v", ErrInvalid, time.Duration(c.Delay))
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalid, c.Workers)
	}
	if c.Display != DisplayTUI && c.Display != DisplayPlain {
		return fmt.Errorf("%w: display must be %q or %q, got %q", ErrInvalid, DisplayTUI, DisplayPlain, c.Display)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log-level must be 'debug', 'info', 'warn', or 'error', got %q", ErrInvalid, c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: log-format must be 'text' or 'json', got %q", ErrInvalid, c.LogFormat)
	}
	return nil
}
