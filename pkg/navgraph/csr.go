package navgraph

import "github.com/matzehuels/hillclimb/pkg/terrain"

// CSR is a materialized navigation graph in compressed sparse row form:
// the out-neighbours of u are targets[offsets[u]:offsets[u+1]].
type CSR struct {
	cols    int
	offsets []int32
	targets []terrain.CellID
}

// Build materializes the navigation graph of g.
//
// Complexity: O(R·C) time and memory; each cell inspects at most four
// neighbours.
func Build(g *terrain.Grid, opts ...Option) *CSR {
	o := buildOptions(opts)
	n := g.Len()
	csr := &CSR{
		cols:    g.Cols(),
		offsets: make([]int32, n+1),
		targets: make([]terrain.CellID, 0, 4*n),
	}
	for u := 0; u < n; u++ {
		csr.targets = appendLegal(g, o.rule, terrain.CellID(u), csr.targets)
		csr.offsets[u+1] = int32(len(csr.targets))
	}
	return csr
}

// Len returns the number of vertices.
func (g *CSR) Len() int { return len(g.offsets) - 1 }

// Cols returns the grid width.
func (g *CSR) Cols() int { return g.cols }

// EdgeCount returns the number of directed edges.
func (g *CSR) EdgeCount() int { return len(g.targets) }

// Neighbors appends the out-neighbours of u to dst.
func (g *CSR) Neighbors(u terrain.CellID, dst []terrain.CellID) []terrain.CellID {
	return append(dst, g.targets[g.offsets[u]:g.offsets[u+1]]...)
}

var _ Graph = (*CSR)(nil)
