package navgraph

import "github.com/matzehuels/hillclimb/pkg/terrain"

// ClimbRule reports whether a move from elevation from to elevation to is
// legal. Rules must be pure functions.
type ClimbRule func(from, to int) bool

// MaxClimb returns a rule that permits climbing at most n units and
// descending by any amount.
func MaxClimb(n int) ClimbRule {
	return func(from, to int) bool { return to <= from+n }
}

// DefaultRule allows a climb of at most one unit.
var DefaultRule = MaxClimb(1)

// Graph is a read-only directed graph over grid cells.
type Graph interface {
	// Len returns the number of vertices (grid cells).
	Len() int
	// Cols returns the grid width, needed to recover (row, col) from a CellID.
	Cols() int
	// Neighbors appends the out-neighbours of u to dst and returns the
	// extended slice. Passing a reused buffer avoids allocation.
	Neighbors(u terrain.CellID, dst []terrain.CellID) []terrain.CellID
	// EdgeCount returns the number of directed edges.
	EdgeCount() int
}

// Option configures graph construction.
type Option func(*options)

type options struct {
	rule ClimbRule
}

// WithRule replaces [DefaultRule]. A nil rule is ignored.
func WithRule(r ClimbRule) Option {
	return func(o *options) {
		if r != nil {
			o.rule = r
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{rule: DefaultRule}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// directions lists row/col offsets in north, south, west, east order.
var directions = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// appendLegal appends every legal move out of u.
func appendLegal(g *terrain.Grid, rule ClimbRule, u terrain.CellID, dst []terrain.CellID) []terrain.CellID {
	r, c := g.Coord(u)
	from := g.Elevation(u)
	for _, d := range directions {
		nr, nc := r+d[0], c+d[1]
		if !g.InBounds(nr, nc) {
			continue
		}
		v := g.ID(nr, nc)
		if rule(from, g.Elevation(v)) {
			dst = append(dst, v)
		}
	}
	return dst
}
