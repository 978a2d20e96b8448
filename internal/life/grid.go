package life

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds reports a write aimed outside the owning grid. Reads never
// fail; out-of-bounds reads resolve to Dead per the open-boundary policy.
var ErrOutOfBounds = errors.New("position out of bounds")

// Grid maps every in-bounds position to a cell for one fixed Size. Cells are
// stored in a flat row-major slice, so every in-bounds lookup is O(1).
type Grid struct {
	size  Size
	cells []Cell
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(size Size) *Grid {
	return &Grid{size: size, cells: make([]Cell, size.Area())}
}

// Size returns the owning dimensions.
func (g *Grid) Size() Size { return g.size }

func (g *Grid) index(p Position) int { return p.Row*g.size.Width + p.Col }

// Cell returns the state at p, or Dead when p lies outside the grid.
func (g *Grid) Cell(p Position) Cell {
	if !g.size.Contains(p) {
		return Dead
	}
	return g.cells[g.index(p)]
}

// SetCell writes the state at p. Writes outside the grid are rejected: a
// caller holding an out-of-bounds position for a write has broken an
// invariant upstream, and that must surface rather than vanish.
func (g *Grid) SetCell(p Position, c Cell) error {
	if !g.size.Contains(p) {
		return fmt.Errorf("%w: %v outside %dx%d", ErrOutOfBounds, p, g.size.Width, g.size.Height)
	}
	g.cells[g.index(p)] = c
	return nil
}

// CountLivingNeighbors counts alive cells among the in-bounds Moore neighbors
// of p. Interior positions see up to 8 candidates, edges up to 5, corners up
// to 3; the ceilings fall out of bounds filtering, with no special cases.
func (g *Grid) CountLivingNeighbors(p Position) int {
	count := 0
	for _, n := range p.Neighbors() {
		if g.size.Contains(n) && g.cells[g.index(n)].IsAlive() {
			count++
		}
	}
	return count
}

// LivingCells returns the positions of all alive cells in row-major order.
func (g *Grid) LivingCells() []Position {
	var out []Position
	for row := 0; row < g.size.Height; row++ {
		for col := 0; col < g.size.Width; col++ {
			if g.cells[row*g.size.Width+col].IsAlive() {
				out = append(out, Position{Row: row, Col: col})
			}
		}
	}
	return out
}

// Population returns the number of alive cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c.IsAlive() {
			n++
		}
	}
	return n
}
