package navgraph

import "github.com/matzehuels/hillclimb/pkg/terrain"

// Implicit computes adjacency on demand from the grid.
type Implicit struct {
	grid *terrain.Grid
	rule ClimbRule
}

// NewImplicit returns a lazily evaluated navigation graph over g.
func NewImplicit(g *terrain.Grid, opts ...Option) *Implicit {
	o := buildOptions(opts)
	return &Implicit{grid: g, rule: o.rule}
}

// Len returns the number of vertices.
func (g *Implicit) Len() int { return g.grid.Len() }

// Cols returns the grid width.
func (g *Implicit) Cols() int { return g.grid.Cols() }

// Neighbors appends the out-neighbours of u to dst.
func (g *Implicit) Neighbors(u terrain.CellID, dst []terrain.CellID) []terrain.CellID {
	return appendLegal(g.grid, g.rule, u, dst)
}

// EdgeCount walks every cell, so it costs O(R·C).
func (g *Implicit) EdgeCount() int {
	var buf []terrain.CellID
	total := 0
	for u := 0; u < g.grid.Len(); u++ {
		buf = g.Neighbors(terrain.CellID(u), buf[:0])
		total += len(buf)
	}
	return total
}

var _ Graph = (*Implicit)(nil)
