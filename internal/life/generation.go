package life

import "strconv"

// Generation is a non-negative step counter. It is a plain value; the engine
// owns the single live instance and replaces it alongside the grid.
type Generation uint64

// Next returns the successor generation.
func (g Generation) Next() Generation { return g + 1 }

// String formats the counter as a decimal number.
func (g Generation) String() string {
	return strconv.FormatUint(uint64(g), 10)
}
