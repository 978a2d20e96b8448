// Package engine owns the live (grid, generation) pair and drives the
// render/wait/step loop around the pure transition rule.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"golife/internal/life"
)

// Renderer consumes one fully-computed frame per completed step.
type Renderer interface {
	Render(grid *life.Grid, gen life.Generation)
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithWorkers sets the number of goroutines used to compute a step. Values
// below 2 keep the default single-threaded computation.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 1 {
			e.workers = n
		}
	}
}

// Engine holds exactly one live grid and one generation counter, replacing
// both together after every step.
type Engine struct {
	grid    *life.Grid
	gen     life.Generation
	workers int
}

// New constructs an Engine around the provided initial grid at generation 0.
func New(grid *life.Grid, opts ...Option) *Engine {
	e := &Engine{grid: grid, workers: 1}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Grid returns the current generation's grid.
func (e *Engine) Grid() *life.Grid { return e.grid }

// Generation returns the current generation counter.
func (e *Engine) Generation() life.Generation { return e.gen }

// Step computes the successor grid and swaps it in together with the
// incremented generation counter. The old grid is only ever read and the new
// grid only ever written, so the position space can be split across workers
// with nothing but a join before the swap.
func (e *Engine) Step() error {
	next := life.NewGrid(e.grid.Size())

	var err error
	if e.workers > 1 {
		err = e.computeParallel(next)
	} else {
		err = e.compute(next, 0, e.grid.Size().Height)
	}
	if err != nil {
		return err
	}

	e.grid = next
	e.gen = e.gen.Next()
	return nil
}

// compute fills rows [fromRow, toRow) of next from the current grid. Only
// alive results are written; a fresh grid already starts dead.
func (e *Engine) compute(next *life.Grid, fromRow, toRow int) error {
	width := e.grid.Size().Width
	for row := fromRow; row < toRow; row++ {
		for col := 0; col < width; col++ {
			p := life.Position{Row: row, Col: col}
			cell := life.NextState(e.grid.Cell(p), e.grid.CountLivingNeighbors(p))
			if !cell.IsAlive() {
				continue
			}
			if err := next.SetCell(p, cell); err != nil {
				return fmt.Errorf("writing successor cell: %w", err)
			}
		}
	}
	return nil
}

// computeParallel partitions the rows into contiguous bands, one errgroup
// goroutine per band. Bands are disjoint, so the workers never write the
// same location.
func (e *Engine) computeParallel(next *life.Grid) error {
	height := e.grid.Size().Height
	band := (height + e.workers - 1) / e.workers

	var eg errgroup.Group
	for from := 0; from < height; from += band {
		from, to := from, from+band
		if to > height {
			to = height
		}
		eg.Go(func() error {
			return e.compute(next, from, to)
		})
	}
	return eg.Wait()
}

// Run drives the loop: render the current frame, suspend for delay, then
// step. The delay is the sole suspension point and the only place where
// cancellation is observed, so the last-rendered grid is always a complete
// generation. Cancellation is a normal exit, not a failure; Run reports the
// final generation reached.
func (e *Engine) Run(ctx context.Context, r Renderer, delay time.Duration) (life.Generation, error) {
	size := e.grid.Size()
	slog.Info("simulation started",
		"width", size.Width, "height", size.Height,
		"delay", delay, "workers", e.workers)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	for {
		r.Render(e.grid, e.gen)

		select {
		case <-ctx.Done():
			slog.Info("simulation stopped", "generation", e.gen)
			return e.gen, nil
		case <-timer.C:
		}
		timer.Reset(delay)

		if err := e.Step(); err != nil {
			return e.gen, err
		}
	}
}
