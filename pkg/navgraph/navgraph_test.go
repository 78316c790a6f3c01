package navgraph_test

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/hillclimb/pkg/navgraph"
	"github.com/matzehuels/hillclimb/pkg/terrain"
)

const reference = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
`

func mustParse(t testing.TB, s string) *terrain.Grid {
	t.Helper()
	g, err := terrain.ParseString(s)
	require.NoError(t, err)
	return g
}

// randomGrid returns a rows×cols grid with elevations drawn from a narrow
// band so that both legal and illegal moves are common.
func randomGrid(t testing.TB, rng *rand.Rand, rows, cols int) *terrain.Grid {
	t.Helper()
	cells := make([]byte, rows*cols)
	for i := range cells {
		cells[i] = byte('a' + rng.IntN(6))
	}
	s := rng.IntN(len(cells))
	e := rng.IntN(len(cells) - 1)
	if e >= s {
		e++
	}
	cells[s], cells[e] = 'S', 'E'
	var b strings.Builder
	for r := 0; r < rows; r++ {
		b.Write(cells[r*cols : (r+1)*cols])
		b.WriteByte('\n')
	}
	return mustParse(t, b.String())
}

func neighbors(g navgraph.Graph, u terrain.CellID) []terrain.CellID {
	return g.Neighbors(u, nil)
}

func TestBuild_Reference(t *testing.T) {
	grid := mustParse(t, reference)
	g := navgraph.Build(grid)

	assert.Equal(t, grid.Len(), g.Len())
	assert.Equal(t, grid.Cols(), g.Cols())

	// S at (0,0): south 'a' and east 'a', in N,S,W,E order.
	assert.Equal(t, []terrain.CellID{grid.ID(1, 0), grid.ID(0, 1)}, neighbors(g, grid.Start()))

	// 'b' at (0,2): may climb to 'c' below, descend west, but not climb to 'q'.
	assert.Equal(t, []terrain.CellID{grid.ID(1, 2), grid.ID(0, 1)}, neighbors(g, grid.ID(0, 2)))

	// E behaves as 'z': every neighbour is reachable downhill.
	assert.Len(t, neighbors(g, grid.Goal()), 4)

	// E counts as 'z': reachable level from 'z', not from 'x' two units below.
	assert.Contains(t, neighbors(g, grid.ID(2, 4)), grid.Goal())
	assert.Contains(t, neighbors(g, grid.ID(1, 4)), grid.ID(2, 4))
	assert.NotContains(t, neighbors(g, grid.ID(1, 5)), grid.Goal())
}

func TestBuild_SE(t *testing.T) {
	grid := mustParse(t, "SE")
	g := navgraph.Build(grid)

	// 'a' -> 'z' is a 25-unit climb; 'z' -> 'a' is a descent.
	assert.Empty(t, neighbors(g, grid.Start()))
	assert.Equal(t, []terrain.CellID{grid.Start()}, neighbors(g, grid.Goal()))
	assert.Equal(t, 1, g.EdgeCount())
}

// TestDescentAlwaysLegal checks that every adjacent pair whose target is not
// higher has an edge, and that no edge climbs more than one unit.
func TestDescentAlwaysLegal(t *testing.T) {
	rng := rand.New(rand.NewPCG(12, 2022))
	grids := []*terrain.Grid{mustParse(t, reference)}
	for i := 0; i < 25; i++ {
		grids = append(grids, randomGrid(t, rng, 2+rng.IntN(8), 2+rng.IntN(8)))
	}

	for _, grid := range grids {
		g := navgraph.Build(grid)
		for u := 0; u < grid.Len(); u++ {
			uid := terrain.CellID(u)
			out := neighbors(g, uid)
			r, c := grid.Coord(uid)
			for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
				nr, nc := r+d[0], c+d[1]
				if !grid.InBounds(nr, nc) {
					continue
				}
				v := grid.ID(nr, nc)
				legal := grid.Elevation(v) <= grid.Elevation(uid)+1
				require.Equal(t, legal, contains(out, v),
					"edge (%d,%d)->(%d,%d) elev %d->%d", r, c, nr, nc, grid.Elevation(uid), grid.Elevation(v))
			}
			for _, v := range out {
				vr, vc := grid.Coord(v)
				require.Equal(t, 1, abs(vr-r)+abs(vc-c), "edges connect orthogonal neighbours only")
			}
		}
	}
}

func TestImplicitMatchesCSR(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	grids := []*terrain.Grid{mustParse(t, reference), mustParse(t, "SE")}
	for i := 0; i < 20; i++ {
		grids = append(grids, randomGrid(t, rng, 1+rng.IntN(10), 2+rng.IntN(10)))
	}

	for _, grid := range grids {
		csr := navgraph.Build(grid)
		lazy := navgraph.NewImplicit(grid)
		require.Equal(t, csr.Len(), lazy.Len())
		require.Equal(t, csr.Cols(), lazy.Cols())
		require.Equal(t, csr.EdgeCount(), lazy.EdgeCount())
		for u := 0; u < grid.Len(); u++ {
			require.Equal(t, neighbors(csr, terrain.CellID(u)), neighbors(lazy, terrain.CellID(u)), "cell %d", u)
		}
	}
}

func TestWithRule(t *testing.T) {
	grid := mustParse(t, reference)
	rows, cols := grid.Rows(), grid.Cols()
	allPairs := 2 * (rows*(cols-1) + cols*(rows-1))

	free := navgraph.Build(grid, navgraph.WithRule(navgraph.MaxClimb(terrain.MaxElevation)))
	assert.Equal(t, allPairs, free.EdgeCount(), "unbounded climb connects every orthogonal pair")

	flat := navgraph.Build(grid, navgraph.WithRule(func(from, to int) bool { return from == to }))
	for u := 0; u < grid.Len(); u++ {
		for _, v := range neighbors(flat, terrain.CellID(u)) {
			assert.Equal(t, grid.Elevation(terrain.CellID(u)), grid.Elevation(v))
		}
	}

	def := navgraph.Build(grid, navgraph.WithRule(nil))
	assert.Equal(t, navgraph.Build(grid).EdgeCount(), def.EdgeCount(), "nil rule keeps the default")
}

func TestNeighborsReusesBuffer(t *testing.T) {
	grid := mustParse(t, reference)
	g := navgraph.Build(grid)

	buf := make([]terrain.CellID, 0, 4)
	out := g.Neighbors(grid.Goal(), buf)
	require.Len(t, out, 4)
	assert.Equal(t, &buf[:1][0], &out[:1][0], "appends into the caller's buffer")
}

func TestMaxClimb(t *testing.T) {
	rule := navgraph.MaxClimb(1)
	assert.True(t, rule(3, 4))
	assert.True(t, rule(3, 3))
	assert.True(t, rule(25, 0))
	assert.False(t, rule(3, 5))
}

func contains(ids []terrain.CellID, v terrain.CellID) bool {
	for _, id := range ids {
		if id == v {
			return true
		}
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
