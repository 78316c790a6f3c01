package search

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	apperr "github.com/matzehuels/hillclimb/pkg/errors"
	"github.com/matzehuels/hillclimb/pkg/navgraph"
	"github.com/matzehuels/hillclimb/pkg/terrain"
)

// checkEvery is the number of expansions between context checks.
const checkEvery = 1024

// Result is the outcome of a search.
type Result struct {
	// Found is false when the goal is unreachable; the remaining fields
	// other than Expanded and Sources are then zero.
	Found bool
	// Cost is the number of steps on the shortest path.
	Cost int
	// Path lists the cells from Source to the goal inclusive. It is nil
	// when path reconstruction is disabled.
	Path []terrain.CellID
	// Source is the cell the reported path starts from.
	Source terrain.CellID
	// Expanded counts vertices popped and settled, summed over all searches.
	Expanded int
	// Sources is the number of searches run (1 for [AStar]).
	Sources int
}

// AStar returns the shortest path from source to goal in g.
//
// An unreachable goal yields Found == false and a nil error. The error is
// non-nil only for out-of-range cells, an expired deadline (TIMEOUT) or a
// cancelled ctx; in the latter case it wraps ctx.Err().
func AStar(ctx context.Context, g navgraph.Graph, source, goal terrain.CellID, opts ...Option) (Result, error) {
	o := buildOptions(opts)
	return astar(ctx, g, source, goal, o)
}

func astar(ctx context.Context, g navgraph.Graph, source, goal terrain.CellID, o options) (Result, error) {
	n := g.Len()
	if err := checkCell(n, source, "source"); err != nil {
		return Result{}, err
	}
	if err := checkCell(n, goal, "goal"); err != nil {
		return Result{}, err
	}

	if o.deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.deadline)
		defer cancel()
	}
	if err := ctx.Err(); err != nil {
		return Result{}, interrupted(err, source, o.deadline)
	}

	cols := g.Cols()
	h := func(id terrain.CellID) int { return o.heuristic(cols, id, goal) }

	dist := make([]int, n)
	for i := range dist {
		dist[i] = -1
	}
	settled := make([]bool, n)
	var prev []terrain.CellID
	if o.path {
		prev = make([]terrain.CellID, n)
	}

	res := Result{Source: source, Sources: 1}
	q := &frontier{}
	dist[source] = 0
	q.push(source, 0, h(source))

	var nbrs []terrain.CellID
	for q.Len() > 0 {
		it := q.pop()
		if settled[it.id] || it.g > dist[it.id] {
			continue
		}
		settled[it.id] = true
		res.Expanded++

		if res.Expanded%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return res, interrupted(err, source, o.deadline)
			}
		}

		if it.id == goal {
			res.Found = true
			res.Cost = it.g
			if o.path {
				res.Path = tracePath(prev, source, goal)
			}
			return res, nil
		}

		nbrs = g.Neighbors(it.id, nbrs[:0])
		ng := it.g + 1
		for _, v := range nbrs {
			if settled[v] {
				continue
			}
			if d := dist[v]; d >= 0 && ng >= d {
				continue
			}
			dist[v] = ng
			if o.path {
				prev[v] = it.id
			}
			q.push(v, ng, ng+h(v))
		}
	}

	return Result{Source: source, Expanded: res.Expanded, Sources: 1}, nil
}

// tracePath walks predecessors back from goal.
func tracePath(prev []terrain.CellID, source, goal terrain.CellID) []terrain.CellID {
	path := []terrain.CellID{goal}
	for v := goal; v != source; {
		v = prev[v]
		path = append(path, v)
	}
	slices.Reverse(path)
	return path
}

func checkCell(n int, id terrain.CellID, role string) error {
	if id < 0 || int(id) >= n {
		return apperr.New(apperr.ErrCodeInvalidInput, "%s cell %d out of range [0, %d)", role, id, n)
	}
	return nil
}

// interrupted maps a context error to the error returned by a search.
func interrupted(err error, source terrain.CellID, deadline time.Duration) error {
	if errors.Is(err, context.DeadlineExceeded) && deadline > 0 {
		return apperr.Wrap(apperr.ErrCodeTimeout, err,
			"search from cell %d exceeded deadline of %s", source, deadline)
	}
	return fmt.Errorf("search from cell %d: %w", source, err)
}
