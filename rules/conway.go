package rules

/*
NextState applies Conway's Game of Life rules to determine the next state of a cell.

	alive, fewer than 2 neighbors -> dead (underpopulation)
	alive, 2 or 3 neighbors       -> alive
	alive, more than 3 neighbors  -> dead (overpopulation)
	dead, exactly 3 neighbors     -> alive (reproduction)
	dead, anything else           -> dead
*/
func NextState(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
