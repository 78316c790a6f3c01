package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	apperr "github.com/matzehuels/hillclimb/pkg/errors"
	"github.com/matzehuels/hillclimb/pkg/terrain"
)

// DOTOptions configures route graph rendering.
type DOTOptions struct {
	// Detailed adds the elevation to each node label.
	// When false, only the glyph is shown.
	Detailed bool
}

// ToDOT converts a route to Graphviz DOT format. Nodes are named "r<row>c<col>",
// pinned at their grid position, and chained in route order. An empty route
// yields a graph with no nodes.
func ToDOT(grid *terrain.Grid, path []terrain.CellID, opts DOTOptions) string {
	var buf bytes.Buffer
	buf.WriteString("digraph route {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for _, id := range path {
		r, c := grid.Coord(id)
		attrs := fmt.Sprintf("label=%q, pos=\"%d,%d!\"", label(grid, id, opts.Detailed), c, -r)
		if id == grid.Start() || id == grid.Goal() {
			attrs += ", fillcolor=gold"
		}
		fmt.Fprintf(&buf, "  %s [%s];\n", nodeName(grid, id), attrs)
	}

	if len(path) > 1 {
		buf.WriteString("\n")
	}
	for i := 1; i < len(path); i++ {
		fmt.Fprintf(&buf, "  %s -> %s;\n", nodeName(grid, path[i-1]), nodeName(grid, path[i]))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeName(grid *terrain.Grid, id terrain.CellID) string {
	r, c := grid.Coord(id)
	return fmt.Sprintf("r%dc%d", r, c)
}

func label(grid *terrain.Grid, id terrain.CellID, detailed bool) string {
	glyph := string(grid.Rune(id))
	if !detailed {
		return glyph
	}
	return fmt.Sprintf("%s\nelevation: %d", glyph, grid.Elevation(id))
}

// RenderXDOT lays out a DOT graph with Graphviz and returns the result in
// xdot form: the input graph annotated with node positions and drawing
// operations.
func RenderXDOT(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInternal, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.XDOT, &buf); err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInternal, err, "render")
	}
	return buf.Bytes(), nil
}
