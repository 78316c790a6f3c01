// Package pkg provides the core libraries for hillclimb, an
// elevation-constrained shortest-path solver.
//
// # Overview
//
// hillclimb reads a heightmap of letters, where 'a' is lowest and 'z' is
// highest, and finds the fewest steps from a start cell to a goal cell when
// each step may climb at most one unit. The pkg directory is organized into
// these areas:
//
//  1. [terrain] - Grid parsing and the CellID coordinate scheme
//  2. [navgraph] - Directed move graphs (materialized CSR or implicit)
//  3. [search] - A*, breadth-first reference and the multi-source driver
//  4. [pipeline] - Orchestration (load → build → search → verify)
//  5. [render] - Route output as text, 0/1 masks and Graphviz graphs
//  6. [api] - HTTP front end
//
// Supporting packages are [errors] (coded errors), [observability] (hooks)
// and [buildinfo] (version metadata).
//
// # Architecture
//
// The typical data flow through hillclimb:
//
//	<DD>.txt or request body
//	         ↓
//	    [terrain] package (parse + validate)
//	         ↓
//	    [navgraph] package (legal moves)
//	         ↓
//	    [search] package (A* per source)
//	         ↓
//	    cost, route, stats
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/matzehuels/hillclimb/pkg/navgraph"
//	    "github.com/matzehuels/hillclimb/pkg/search"
//	    "github.com/matzehuels/hillclimb/pkg/terrain"
//	)
//
//	grid, _ := terrain.ParseFile("data/12.txt")
//	g := navgraph.Build(grid)
//	res, _ := search.AStar(context.Background(), g, grid.Start(), grid.Goal())
//	fmt.Println(res.Cost)
//
// Most callers use [pipeline.Runner], which adds defaults, validation,
// logging and hooks.
package pkg
