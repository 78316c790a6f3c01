package terrain

import (
	"slices"
	"strings"
)

// Glyphs recognised in terrain input.
const (
	StartMarker = 'S'
	GoalMarker  = 'E'
)

// Elevation bounds after decoding. 'a' maps to MinElevation and 'z' to
// MaxElevation; the markers are canonicalized to these bounds.
const (
	MinElevation = 0
	MaxElevation = int('z' - 'a')
)

// CellID is the row-major linearization of a grid coordinate.
type CellID int

// Grid is an immutable elevation matrix with a designated start and goal.
//
// The zero value is not usable - use [Parse], [ParseString] or [ParseFile].
type Grid struct {
	rows, cols int
	elev       []int8 // elevation per CellID
	glyph      []byte // original input byte per CellID
	start      CellID
	goal       CellID
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns the number of cells (Rows*Cols).
func (g *Grid) Len() int { return len(g.elev) }

// Start returns the cell that held the start marker.
func (g *Grid) Start() CellID { return g.start }

// Goal returns the cell that held the goal marker.
func (g *Grid) Goal() CellID { return g.goal }

// Elevation returns the canonicalized elevation of cell id.
func (g *Grid) Elevation(id CellID) int { return int(g.elev[id]) }

// Rune returns the glyph cell id had in the input ('S', 'E' or a letter).
func (g *Grid) Rune(id CellID) rune { return rune(g.glyph[id]) }

// ID linearizes (row, col). The coordinate must be in bounds.
func (g *Grid) ID(row, col int) CellID { return CellID(row*g.cols + col) }

// Coord returns the (row, col) of id. It is the inverse of [Grid.ID].
func (g *Grid) Coord(id CellID) (row, col int) {
	return int(id) / g.cols, int(id) % g.cols
}

// InBounds reports whether (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Lowest returns every cell at the minimum elevation, including the start
// cell, in ascending CellID order. This is the source set of the
// multi-source search.
func (g *Grid) Lowest() []CellID {
	var ids []CellID
	for i, e := range g.elev {
		if e == MinElevation {
			ids = append(ids, CellID(i))
		}
	}
	return slices.Clip(ids)
}

// String returns the grid in its input form.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(len(g.glyph) + g.rows)
	for r := 0; r < g.rows; r++ {
		b.Write(g.glyph[r*g.cols : (r+1)*g.cols])
		b.WriteByte('\n')
	}
	return b.String()
}
