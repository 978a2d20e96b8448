// Package seed populates fresh grids: density-based random fills and a small
// library of named starting patterns.
package seed

import (
	"fmt"

	"golife/internal/life"
)

// Random sets each position of g alive independently with probability
// density, drawing from the provided RNG.
func Random(g *life.Grid, density float64, rng *RNG) error {
	if density < 0 || density > 1 {
		return fmt.Errorf("density must be within [0, 1], got %v", density)
	}
	for _, p := range g.Size().Positions() {
		if rng.Float64() < density {
			if err := g.SetCell(p, life.Alive); err != nil {
				return fmt.Errorf("seeding %v: %w", p, err)
			}
		}
	}
	return nil
}
