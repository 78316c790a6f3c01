// Package navgraph derives the directed navigation graph of a terrain grid.
//
// # Overview
//
// A move from cell u to an orthogonally adjacent cell v is legal when the
// [ClimbRule] accepts the pair of elevations. The standard rule, [DefaultRule],
// allows climbing at most one unit and descending any amount:
//
//	elevation(v) <= elevation(u) + 1
//
// The relation is asymmetric: a cliff two units high can be descended but not
// climbed. Every legal move costs exactly one step.
//
// # Representations
//
// Two implementations satisfy [Graph] and expose identical adjacency:
//
//   - [Build] materializes every edge up front into a compressed sparse row
//     (CSR) layout in a single O(R·C) pass. Best for repeated searches over
//     the same grid, such as the multi-source driver.
//   - [NewImplicit] computes neighbours on demand from the grid. It uses no
//     memory beyond the grid and suits very large inputs searched once.
//
// Neighbours are always reported in north, south, west, east order, which
// keeps search tie-breaking deterministic across both representations.
//
// # Concurrency
//
// Graphs are read-only after construction. A single instance is meant to be
// shared by every concurrent search; callers must not copy it per goroutine.
package navgraph
