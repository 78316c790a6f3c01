// Package render turns a solved grid into text or graph output.
//
// # Overview
//
// Every renderer takes the parsed [terrain.Grid] and the route found by the
// search (a slice of cell IDs from source to goal, possibly empty) and
// produces one of:
//
//   - [FormatText]: the input grid with the route highlighted via lipgloss
//     (plain text when the output is not a terminal)
//   - [FormatArrows]: '.' everywhere except the route, drawn as ^ v < >
//     arrows ending in 'E'
//   - [FormatMask]: a 0/1 matrix with 1 on every route cell
//   - [FormatDOT]: a Graphviz digraph of the route
//   - [FormatXDOT]: the same digraph laid out by Graphviz, with positions
//
// # Graphviz
//
// [RenderXDOT] runs the embedded Graphviz (goccy/go-graphviz, compiled to
// WebAssembly) so no external binary is required.
//
//	dot := render.ToDOT(grid, path, render.DOTOptions{})
//	xdot, err := render.RenderXDOT(ctx, dot)
//
// [terrain.Grid]: github.com/matzehuels/hillclimb/pkg/terrain.Grid
package render
