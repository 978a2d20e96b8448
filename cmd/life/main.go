// Command life runs Conway's Game of Life in the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golife/internal/config"
	"golife/internal/engine"
	"golife/internal/life"
	"golife/internal/render"
	"golife/internal/seed"
	"golife/internal/tui"
)

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "life:", err)
		os.Exit(1)
	}
}

func run(out io.Writer, args []string) error {
	cfg, exit, err := parseArgs(args, out)
	if err != nil {
		return err
	}
	if exit {
		return nil
	}

	logOut := io.Writer(os.Stderr)
	if cfg.Display == config.DisplayTUI {
		// The screen owns the terminal while the TUI is up.
		logOut = io.Discard
	}
	slog.SetDefault(cfg.NewLogger(logOut))

	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.Display {
	case config.DisplayPlain:
		fmt.Fprintln(out, "Initializing Conway's Game of Life...")
		if cfg.Pattern != "" && cfg.Pattern != "random" {
			fmt.Fprintf(out, "Starting with a %s on a %dx%d grid...\n", cfg.Pattern, cfg.Width, cfg.Height)
		} else {
			fmt.Fprintf(out, "Starting with a random pattern on a %dx%d grid...\n", cfg.Width, cfg.Height)
		}
		time.Sleep(time.Second)

		console := render.NewConsole(out)
		final, err := eng.Run(ctx, console, time.Duration(cfg.Delay))
		if err != nil {
			return err
		}
		console.Goodbye(final)
	default:
		app, err := tui.New()
		if err != nil {
			return err
		}
		runCtx := app.Watch(ctx)
		final, runErr := eng.Run(runCtx, app, time.Duration(cfg.Delay))
		app.Close()
		if runErr != nil {
			return runErr
		}
		fmt.Fprintf(out, "Stopped at generation %s\n", final)
	}
	return nil
}

// parseArgs resolves the configuration from defaults, an optional YAML file,
// and flags, with explicit flags taking precedence over the file.
func parseArgs(args []string, out io.Writer) (config.Config, bool, error) {
	cfg := config.Default()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprint(out, `golife - Conway's Game of Life in the terminal.

Usage:
  life [options]

Options:
`)
		fs.PrintDefaults()
	}

	confPath := fs.String("config", "", "path to a YAML config file")
	cfg.Bind(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, true, nil
		}
		return cfg, false, err
	}

	if *confPath != "" {
		fileCfg, err := config.Load(*confPath)
		if err != nil {
			return cfg, false, err
		}
		cfg = config.Merge(fileCfg, cfg, fs)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, false, err
	}
	if cfg.Pattern != "" && cfg.Pattern != "random" {
		if _, ok := seed.Lookup(cfg.Pattern); !ok {
			return cfg, false, fmt.Errorf("unknown pattern %q (available: %s)",
				cfg.Pattern, strings.Join(seed.Names(), ", "))
		}
	}
	return cfg, false, nil
}

// newEngine builds the seeded grid and wraps it in an engine.
func newEngine(cfg config.Config) (*engine.Engine, error) {
	size, err := life.NewSize(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	grid := life.NewGrid(size)

	if cfg.Pattern != "" && cfg.Pattern != "random" {
		pat, _ := seed.Lookup(cfg.Pattern)
		if err := pat.PlaceCentered(grid); err != nil {
			return nil, err
		}
	} else if err := seed.Random(grid, cfg.Density, seed.NewRNG(cfg.Seed)); err != nil {
		return nil, err
	}

	return engine.New(grid, engine.WithWorkers(cfg.Workers)), nil
}
