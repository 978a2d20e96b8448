package life

import "fmt"

// Position is an integer (row, column) grid coordinate. Positions carry no
// bounds knowledge of their own; a neighbor of a corner cell is a perfectly
// valid Position that a Grid will later discard.
type Position struct {
	Row int
	Col int
}

// mooreOffsets enumerates the 8 Moore-neighborhood deltas in row-major order.
var mooreOffsets = [8]Position{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Neighbors returns the 8 surrounding positions in a fixed row-major order.
// No bounds filtering happens here; that is the Grid's job.
func (p Position) Neighbors() [8]Position {
	var out [8]Position
	for i, d := range mooreOffsets {
		out[i] = Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
	}
	return out
}

// String formats the position as "(row, col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}
