package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	apperr "github.com/matzehuels/hillclimb/pkg/errors"
	"github.com/matzehuels/hillclimb/pkg/navgraph"
	"github.com/matzehuels/hillclimb/pkg/observability"
	"github.com/matzehuels/hillclimb/pkg/search"
	"github.com/matzehuels/hillclimb/pkg/terrain"
)

// Runner executes pipeline runs. Both CLI and API use it so that stage
// logging and hooks are emitted the same way everywhere.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with different
// options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → build → search pipeline.
//
// Challenge 1 escalates an unreachable goal to a NOT_FOUND error; challenge 2
// fails with NO_PATH_FROM_ANY_SOURCE when no lowest cell reaches the goal.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := opts.Logger

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	grid, err := r.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Grid = grid
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.Rows = grid.Rows()
	result.Stats.Cols = grid.Cols()

	logger.Debug("loaded grid",
		"source", opts.Source(),
		"rows", grid.Rows(),
		"cols", grid.Cols(),
		"duration", result.Stats.LoadTime)

	// Stage 2: Build
	buildStart := time.Now()
	g := r.Build(ctx, grid, opts)
	result.Graph = g
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.EdgeCount = g.EdgeCount()

	logger.Debug("built graph",
		"mode", opts.Graph,
		"edges", result.Stats.EdgeCount,
		"duration", result.Stats.BuildTime)

	// Stage 3: Search
	searchStart := time.Now()
	res, err := r.Search(ctx, grid, g, opts)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	result.Search = res
	result.Stats.SearchTime = time.Since(searchStart)
	result.Stats.Sources = res.Sources
	result.Stats.Expanded = res.Expanded

	logger.Debug("found path",
		"challenge", opts.Challenge,
		"cost", res.Cost,
		"sources", res.Sources,
		"expanded", res.Expanded,
		"duration", result.Stats.SearchTime)

	// Stage 4: Verify
	if opts.Verify {
		verifyStart := time.Now()
		if err := r.Verify(grid, g, opts, res); err != nil {
			return nil, fmt.Errorf("verify: %w", err)
		}
		result.Verified = true
		result.Stats.VerifyTime = time.Since(verifyStart)
		logger.Debug("verified against breadth-first search", "duration", result.Stats.VerifyTime)
	}

	return result, nil
}

// Load parses the grid named by opts.
func (r *Runner) Load(ctx context.Context, opts Options) (*terrain.Grid, error) {
	source := opts.Source()
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, source)

	start := time.Now()
	var (
		grid *terrain.Grid
		err  error
	)
	if opts.Grid != "" {
		grid, err = terrain.ParseString(opts.Grid)
	} else {
		grid, err = terrain.ParseFile(source)
	}

	cells := 0
	if grid != nil {
		cells = grid.Len()
	}
	hooks.OnLoadComplete(ctx, source, cells, time.Since(start), err)
	return grid, err
}

// Build constructs the navigation graph in the mode selected by opts.Graph.
func (r *Runner) Build(ctx context.Context, grid *terrain.Grid, opts Options) navgraph.Graph {
	start := time.Now()
	var g navgraph.Graph
	switch opts.Graph {
	case GraphImplicit:
		g = navgraph.NewImplicit(grid)
	default:
		g = navgraph.Build(grid)
	}
	observability.Pipeline().OnBuildComplete(ctx, opts.Graph, g.EdgeCount(), time.Since(start))
	return g
}

// Search runs the challenge's search on g.
func (r *Runner) Search(ctx context.Context, grid *terrain.Grid, g navgraph.Graph, opts Options) (search.Result, error) {
	sources := r.sources(grid, opts)
	hooks := observability.Pipeline()
	hooks.OnSearchStart(ctx, opts.Challenge, len(sources))

	start := time.Now()
	var (
		res search.Result
		err error
	)
	if opts.IsMultiSource() {
		res, err = search.MultiSource(ctx, g, sources, grid.Goal(), opts.SearchOptions()...)
	} else {
		res, err = search.AStar(ctx, g, grid.Start(), grid.Goal(), opts.SearchOptions()...)
		if err == nil && !res.Found {
			err = apperr.New(apperr.ErrCodeNotFound, "no path found from %s to %s",
				coord(grid, grid.Start()), coord(grid, grid.Goal()))
		}
	}

	hooks.OnSearchComplete(ctx, opts.Challenge, res.Cost, res.Expanded, time.Since(start), err)
	return res, err
}

// Verify re-solves with breadth-first search from the same sources and
// compares the cost with res.
func (r *Runner) Verify(grid *terrain.Grid, g navgraph.Graph, opts Options, res search.Result) error {
	best := -1
	for _, s := range r.sources(grid, opts) {
		b := search.BreadthFirst(g, s, grid.Goal())
		if b.Found && (best < 0 || b.Cost < best) {
			best = b.Cost
		}
	}
	if best != res.Cost {
		return apperr.New(apperr.ErrCodeInternal,
			"A* cost %d disagrees with breadth-first cost %d", res.Cost, best)
	}
	return nil
}

func (r *Runner) sources(grid *terrain.Grid, opts Options) []terrain.CellID {
	if opts.IsMultiSource() {
		return grid.Lowest()
	}
	return []terrain.CellID{grid.Start()}
}

func coord(grid *terrain.Grid, id terrain.CellID) string {
	row, col := grid.Coord(id)
	return fmt.Sprintf("(%d,%d)", row, col)
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
