package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"zero height", func(c *Config) { c.Height = 0 }},
		{"negative width", func(c *Config) { c.Width = -3 }},
		{"density below range", func(c *Config) { c.Density = -0.1 }},
		{"density above range", func(c *Config) { c.Density = 1.5 }},
		{"negative delay", func(c *Config) { c.Delay = Duration(-time.Second) }},
		{"zero workers", func(c *Config) { c.Workers = 0 }},
		{"unknown display", func(c *Config) { c.Display = "vr" }},
		{"unknown log level", func(c *Config) { c.LogLevel = "loud" }},
		{"unknown log format", func(c *Config) { c.LogFormat = "xml" }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := Default()
			c.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Fatalf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestBindAndParse(t *testing.T) {
	cfg := Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{
		"-width", "50", "-height", "20",
		"-density", "0.12", "-delay", "80ms",
		"-seed", "7", "-pattern", "glider",
		"-workers", "4", "-display", "plain",
	})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 50 || cfg.Height != 20 {
		t.Fatalf("dimensions = %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Density != 0.12 {
		t.Fatalf("density = %v", cfg.Density)
	}
	if time.Duration(cfg.Delay) != 80*time.Millisecond {
		t.Fatalf("delay = %v", time.Duration(cfg.Delay))
	}
	if cfg.Seed != 7 || cfg.Pattern != "glider" || cfg.Workers != 4 || cfg.Display != DisplayPlain {
		t.Fatalf("unexpected parse result: %+v", cfg)
	}
}

func TestLoadYAMLOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.yaml")
	data := "width: 64\nheight: 48\ndensity: 0.25\ndelay: 200ms\nlog_format: json\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 64 || cfg.Height != 48 {
		t.Fatalf("dimensions = %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Density != 0.25 {
		t.Fatalf("density = %v", cfg.Density)
	}
	if time.Duration(cfg.Delay) != 200*time.Millisecond {
		t.Fatalf("delay = %v", time.Duration(cfg.Delay))
	}
	if cfg.LogFormat != "json" {
		t.Fatalf("log format = %q", cfg.LogFormat)
	}
	// Untouched keys keep their defaults.
	if cfg.Seed != Default().Seed || cfg.Display != Default().Display {
		t.Fatalf("defaults lost during load: %+v", cfg)
	}
}

func TestLoadRejectsBadFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("missing file must error")
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("width: [oops\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("malformed YAML must error")
	}
}

func TestMergePrefersExplicitFlags(t *testing.T) {
	fileCfg := Default()
	fileCfg.Width = 64
	fileCfg.Density = 0.25
	fileCfg.Seed = 99

	flagCfg := Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	flagCfg.Bind(fs)
	if err := fs.Parse([]string{"-width", "10"}); err != nil {
		t.Fatal(err)
	}

	merged := Merge(fileCfg, flagCfg, fs)
	if merged.Width != 10 {
		t.Fatalf("explicit -width must win: got %d", merged.Width)
	}
	if merged.Density != 0.25 || merged.Seed != 99 {
		t.Fatalf("file values for unset flags must survive: %+v", merged)
	}
}
