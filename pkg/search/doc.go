// Package search finds minimum-step routes over a navigation graph.
//
// # Single Source
//
// [AStar] runs best-first search ordered by f = g + h, where g is the number
// of steps taken and h is the [Manhattan] distance to the goal. Every edge
// costs one step and no orthogonal route can be shorter than the Manhattan
// distance, so the heuristic is admissible (and consistent) and the first
// time the goal is popped from the frontier its cost is optimal. Ties on f
// are broken by insertion order, which makes the reported path deterministic
// for a given graph; the cost never depends on the tie-break.
//
// An unreachable goal is not an error: [AStar] returns a [Result] with
// Found == false. Errors are reserved for invalid arguments, cancellation and
// an expired per-search deadline ([WithDeadline]), which is reported with the
// TIMEOUT code from pkg/errors.
//
// # Multiple Sources
//
// [MultiSource] runs one independent [AStar] per source over the shared,
// read-only graph using a bounded worker pool, then reduces to the cheapest
// result. Sources that cannot reach the goal are skipped; if none can, the
// driver fails with NO_PATH_FROM_ANY_SOURCE.
//
// # Reference Search
//
// [BreadthFirst] ignores the heuristic entirely. It is the oracle used to
// verify A* results and is exposed for the CLI's --verify mode.
package search
