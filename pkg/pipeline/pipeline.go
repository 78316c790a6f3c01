// Package pipeline provides the core solve pipeline for hillclimb.
//
// This package implements the complete load → build → search pipeline that
// is shared by the CLI and the HTTP API. By centralizing this logic, both
// entry points resolve inputs, apply defaults and report errors identically.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Parse the terrain grid from a file or an in-memory string
//  2. Build: Construct the navigation graph (materialized CSR or implicit)
//  3. Search: A* from the start (challenge 1) or from every lowest cell
//     (challenge 2)
//
// An optional fourth stage re-runs the search with plain breadth-first
// search and fails if the costs disagree.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Challenge: 2,
//	    DataPath:  "data",
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Search.Cost)
package pipeline

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	apperr "github.com/matzehuels/hillclimb/pkg/errors"
	"github.com/matzehuels/hillclimb/pkg/navgraph"
	"github.com/matzehuels/hillclimb/pkg/search"
	"github.com/matzehuels/hillclimb/pkg/terrain"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultDay is the only puzzle day with a solver.
	DefaultDay = 12

	// DefaultChallenge is the single-source search from S.
	DefaultChallenge = 1

	// DefaultDataPath is the directory holding <DD>.txt puzzle inputs.
	DefaultDataPath = "data"

	// DefaultTimeout bounds each individual search.
	DefaultTimeout = 30 * time.Second
)

// Graph construction modes.
const (
	GraphCSR      = "csr"
	GraphImplicit = "implicit"
)

// DefaultGraph is the default graph construction mode.
const DefaultGraph = GraphCSR

// InlineSource names grids supplied in memory in logs and hooks.
const InlineSource = "inline"

// ValidGraphModes is the set of supported graph construction modes.
var ValidGraphModes = map[string]bool{
	GraphCSR:      true,
	GraphImplicit: true,
}

// solvers lists the challenges available per puzzle day.
var solvers = map[int][]int{
	12: {1, 2},
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Input options
	Day      int    `json:"day,omitempty"`
	Input    string `json:"input,omitempty"`     // Explicit grid file; wins over DataPath
	DataPath string `json:"data_path,omitempty"` // Directory searched for <DD>.txt
	Grid     string `json:"grid,omitempty"`      // Grid content; wins over both paths

	// Search options
	Challenge int           `json:"challenge"`
	Graph     string        `json:"graph,omitempty"`
	Workers   int           `json:"workers,omitempty"`
	Timeout   time.Duration `json:"timeout,omitempty"`
	SkipPath  bool          `json:"skip_path,omitempty"` // Do not reconstruct the route
	Verify    bool          `json:"verify,omitempty"`    // Cross-check with breadth-first search

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Grid is the parsed terrain.
	Grid *terrain.Grid

	// Graph is the navigation graph the search ran on.
	Graph navgraph.Graph

	// Search is the winning search result. Search.Found is always true on
	// success.
	Search search.Result

	// Verified is set when the breadth-first cross-check ran and agreed.
	Verified bool

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Rows       int
	Cols       int
	EdgeCount  int
	Sources    int
	Expanded   int
	LoadTime   time.Duration
	BuildTime  time.Duration
	SearchTime time.Duration
	VerifyTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateGraphMode checks that a graph construction mode is valid.
func ValidateGraphMode(mode string) error {
	if !ValidGraphModes[mode] {
		return apperr.New(apperr.ErrCodeInvalidInput,
			"invalid graph mode: %q (must be one of: csr, implicit)", mode)
	}
	return nil
}

// ValidateSolver checks that a solver exists for the day and challenge.
func ValidateSolver(day, challenge int) error {
	for _, c := range solvers[day] {
		if c == challenge {
			return nil
		}
	}
	return apperr.New(apperr.ErrCodeUnsupported,
		"no solver available for day %d, challenge %d", day, challenge)
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks option values and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Day == 0 {
		o.Day = DefaultDay
	}
	if o.Challenge == 0 {
		o.Challenge = DefaultChallenge
	}
	if err := ValidateSolver(o.Day, o.Challenge); err != nil {
		return err
	}
	if o.DataPath == "" {
		o.DataPath = DefaultDataPath
	}
	if o.Grid == "" {
		if err := apperr.ValidatePath(o.InputPath()); err != nil {
			return err
		}
	}
	if o.Graph == "" {
		o.Graph = DefaultGraph
	}
	if err := ValidateGraphMode(o.Graph); err != nil {
		return err
	}
	if err := apperr.ValidateWorkers(o.Workers); err != nil {
		return err
	}
	if err := apperr.ValidateTimeout(o.Timeout); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// InputPath returns the grid file the run reads: Input when set, otherwise
// <DataPath>/<DD>.txt with the day zero-padded.
func (o *Options) InputPath() string {
	if o.Input != "" {
		return o.Input
	}
	dir := o.DataPath
	if dir == "" {
		dir = DefaultDataPath
	}
	day := o.Day
	if day == 0 {
		day = DefaultDay
	}
	return filepath.Join(dir, fmt.Sprintf("%02d.txt", day))
}

// Source names where the grid comes from, for logs and hooks.
func (o *Options) Source() string {
	if o.Grid != "" {
		return InlineSource
	}
	return o.InputPath()
}

// IsMultiSource reports whether the run searches from every lowest cell.
func (o *Options) IsMultiSource() bool {
	return o.Challenge == 2
}

// SearchOptions translates pipeline options into search options.
func (o *Options) SearchOptions() []search.Option {
	return []search.Option{
		search.WithPath(!o.SkipPath),
		search.WithDeadline(o.Timeout),
		search.WithWorkers(o.Workers),
	}
}
