package life

// Cell is the binary state of a single grid location.
type Cell uint8

const (
	// Dead is the inactive cell state. It is the zero value, so freshly
	// allocated grids start fully dead.
	Dead Cell = iota
	// Alive is the active cell state.
	Alive
)

// IsAlive reports whether the cell is in the alive state.
func (c Cell) IsAlive() bool { return c == Alive }

// String returns a human-readable state name.
func (c Cell) String() string {
	if c.IsAlive() {
		return "alive"
	}
	return "dead"
}
