package rules

/*
NextState applies Conway's Game of Life rules to determine the next state of a cell.

	fewer than 2 neighbours: dies of underpopulation
	exactly 2 neighbours:    keeps its current state
	exactly 3 neighbours:    survives, or is born
	more than 3 neighbours:  dies of overpopulation
*/
func NextState(neighbours int, alive bool) bool {
	switch {
	case neighbours < 2, neighbours > 3:
		return false
	case neighbours == 3:
		return true
	default:
		return alive
	}
}
