package search

import "github.com/matzehuels/hillclimb/pkg/terrain"

// Heuristic estimates the remaining steps from a to b on a grid with the
// given number of columns.
type Heuristic func(cols int, a, b terrain.CellID) int

// Manhattan returns |Δrow| + |Δcol| between a and b.
func Manhattan(cols int, a, b terrain.CellID) int {
	ar, ac := int(a)/cols, int(a)%cols
	br, bc := int(b)/cols, int(b)%cols
	return abs(ar-br) + abs(ac-bc)
}

// Zero is the trivial heuristic; with it A* expands in the same order as
// Dijkstra's algorithm.
func Zero(int, terrain.CellID, terrain.CellID) int { return 0 }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
