package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/hillclimb/pkg/terrain"
)

// textStyles are the route highlight styles bound to one output's color
// profile.
type textStyles struct {
	path, endpoint, offPath lipgloss.Style
}

func newTextStyles(r *lipgloss.Renderer) textStyles {
	return textStyles{
		path:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("36")),
		endpoint: r.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		offPath:  r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// Text returns the input grid with route cells highlighted and the rest
// dimmed, styled for stdout. Use [TextFor] when writing anywhere else.
func Text(grid *terrain.Grid, path []terrain.CellID) string {
	return TextFor(lipgloss.DefaultRenderer(), grid, path)
}

// TextFor is [Text] with colors chosen for the output behind r. A renderer
// on a non-terminal writer drops all styling, leaving the grid exactly as
// it was read.
func TextFor(r *lipgloss.Renderer, grid *terrain.Grid, path []terrain.CellID) string {
	st := newTextStyles(r)
	in := onPath(grid, path)
	var b strings.Builder
	for row := 0; row < grid.Rows(); row++ {
		for c := 0; c < grid.Cols(); c++ {
			id := grid.ID(row, c)
			glyph := string(grid.Rune(id))
			switch {
			case id == grid.Start() || id == grid.Goal():
				b.WriteString(st.endpoint.Render(glyph))
			case in[id]:
				b.WriteString(st.path.Render(glyph))
			default:
				b.WriteString(st.offPath.Render(glyph))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Arrows draws the route as direction markers: each route cell points to
// its successor, the final cell is 'E' and every other cell is '.'.
func Arrows(grid *terrain.Grid, path []terrain.CellID) string {
	cells := []byte(strings.Repeat(".", grid.Len()))
	for i, id := range path {
		if i == len(path)-1 {
			cells[id] = terrain.GoalMarker
			break
		}
		cells[id] = arrow(grid, id, path[i+1])
	}
	return rows(cells, grid.Cols())
}

// Mask returns the route as a 0/1 matrix, one digit per cell.
func Mask(grid *terrain.Grid, path []terrain.CellID) string {
	cells := []byte(strings.Repeat("0", grid.Len()))
	for _, id := range path {
		cells[id] = '1'
	}
	return rows(cells, grid.Cols())
}

func arrow(grid *terrain.Grid, from, to terrain.CellID) byte {
	fr, fc := grid.Coord(from)
	tr, tc := grid.Coord(to)
	switch {
	case tr < fr:
		return '^'
	case tr > fr:
		return 'v'
	case tc < fc:
		return '<'
	default:
		return '>'
	}
}

func rows(cells []byte, cols int) string {
	var b strings.Builder
	b.Grow(len(cells) + len(cells)/cols)
	for i := 0; i < len(cells); i += cols {
		b.Write(cells[i : i+cols])
		b.WriteByte('\n')
	}
	return b.String()
}
