package life

// NextState applies Conway's transition rule (B3/S23) to a single cell. A
// live cell survives with 2 or 3 living neighbors and dies of under- or
// over-population otherwise; a dead cell becomes alive with exactly 3 living
// neighbors. The function is pure: no position, grid, or randomness enters,
// which is what keeps whole-generation transitions deterministic.
func NextState(current Cell, livingNeighbors int) Cell {
	if current.IsAlive() {
		if livingNeighbors == 2 || livingNeighbors == 3 {
			return Alive
		}
		return Dead
	}
	if livingNeighbors == 3 {
		return Alive
	}
	return Dead
}
