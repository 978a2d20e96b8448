//go:build ebiten

// Command life-gui runs Conway's Game of Life in a pixel window.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"golife/internal/config"
	"golife/internal/engine"
	"golife/internal/gui"
	"golife/internal/life"
	"golife/internal/seed"
)

func main() {
	cfg := config.Default()
	scale := flag.Int("scale", 6, "pixel scale multiplier")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "grid width in cells")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "grid height in cells")
	flag.Float64Var(&cfg.Density, "density", cfg.Density, "initial alive probability per cell (0..1)")
	flag.DurationVar((*time.Duration)(&cfg.Delay), "delay", time.Duration(cfg.Delay), "pause between generations")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for the initial grid")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	factory := func(seedVal int64) (*engine.Engine, error) {
		size, err := life.NewSize(cfg.Width, cfg.Height)
		if err != nil {
			return nil, err
		}
		grid := life.NewGrid(size)
		if err := seed.Random(grid, cfg.Density, seed.NewRNG(seedVal)); err != nil {
			return nil, err
		}
		return engine.New(grid, engine.WithWorkers(cfg.Workers)), nil
	}

	game, err := gui.New(factory, time.Duration(cfg.Delay), *scale, cfg.Seed)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("golife")
	ebiten.SetWindowSize(cfg.Width*(*scale), cfg.Height*(*scale))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	fmt.Printf("Stopped at generation %s\n", game.Generation())
}
