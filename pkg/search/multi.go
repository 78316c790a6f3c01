package search

import (
	"context"

	"golang.org/x/sync/errgroup"

	apperr "github.com/matzehuels/hillclimb/pkg/errors"
	"github.com/matzehuels/hillclimb/pkg/navgraph"
	"github.com/matzehuels/hillclimb/pkg/terrain"
)

// MultiSource returns the cheapest path to goal from any of sources.
//
// Each source gets an independent [AStar] run; at most [WithWorkers] run
// concurrently and all share g, which must not be mutated meanwhile. Among
// reachable sources the minimum cost wins and ties go to the lowest CellID.
// Result.Expanded sums expansions over every search and Result.Sources is
// len(sources).
//
// If no source reaches goal (or sources is empty) the error has code
// NO_PATH_FROM_ANY_SOURCE. The first search error (TIMEOUT, cancellation)
// aborts the remaining searches and is returned as is.
func MultiSource(ctx context.Context, g navgraph.Graph, sources []terrain.CellID, goal terrain.CellID, opts ...Option) (Result, error) {
	if len(sources) == 0 {
		return Result{}, apperr.New(apperr.ErrCodeNoPathFromAnySource, "no source cells to search from")
	}
	o := buildOptions(opts)

	results := make([]Result, len(sources))
	eg, ectx := errgroup.WithContext(ctx)
	eg.SetLimit(min(o.workers, len(sources)))
	for i, src := range sources {
		eg.Go(func() error {
			r, err := astar(ectx, g, src, goal, o)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Result{}, err
	}

	return reduce(results, goal)
}

// reduce picks the cheapest found result, preferring the lowest source on
// equal cost.
func reduce(results []Result, goal terrain.CellID) (Result, error) {
	best := -1
	expanded := 0
	for i, r := range results {
		expanded += r.Expanded
		if !r.Found {
			continue
		}
		if best < 0 || r.Cost < results[best].Cost ||
			(r.Cost == results[best].Cost && r.Source < results[best].Source) {
			best = i
		}
	}
	if best < 0 {
		return Result{Expanded: expanded, Sources: len(results)}, apperr.New(apperr.ErrCodeNoPathFromAnySource,
			"none of %d source cells can reach the goal cell %d", len(results), goal)
	}
	out := results[best]
	out.Expanded = expanded
	out.Sources = len(results)
	return out, nil
}
