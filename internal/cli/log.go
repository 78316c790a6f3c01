// Package cli implements the hillclimb command-line interface.
//
// This package provides commands for solving hill-climb puzzles from input
// files, rendering the found route, picking inputs interactively and serving
// the solver over HTTP. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - solve: Print the fewest steps for challenge 1 or 2
//   - render: Draw the route as text, a 0/1 mask or a Graphviz graph
//   - pick: Choose an input and challenge interactively
//   - serve: Run the HTTP API
//   - config: Show the configuration file and effective settings
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/matzehuels/hillclimb/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	apperr "github.com/matzehuels/hillclimb/pkg/errors"
	"github.com/matzehuels/hillclimb/pkg/pipeline"
	"github.com/matzehuels/hillclimb/pkg/search"
	"github.com/matzehuels/hillclimb/pkg/terrain"
)

// newLogger creates the CLI logger writing to w at level, with
// "HH:MM:SS.ms" timestamps (e.g. "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// puzzleLogger returns the context logger tagged with the puzzle being
// solved, so every line of a run carries day and challenge.
func puzzleLogger(ctx context.Context, opts pipeline.Options) *log.Logger {
	return loggerFromContext(ctx).With("day", opts.Day, "challenge", opts.Challenge)
}

// progress times one solve and reports its outcome.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// solved logs the winning route: its step count, the cell it starts from,
// how many sources were searched and the elapsed time.
//
//	INFO Found a 31-step path cost=31 from=(0,0) sources=1 elapsed=2ms
func (p *progress) solved(grid *terrain.Grid, res search.Result) {
	row, col := grid.Coord(res.Source)
	p.logger.Info(fmt.Sprintf("Found a %d-step path", res.Cost),
		"cost", res.Cost,
		"from", fmt.Sprintf("(%d,%d)", row, col),
		"sources", res.Sources,
		"elapsed", time.Since(p.start).Round(time.Millisecond))
}

// failed logs a solve that ended without a route. The no-path outcomes are
// warnings since the input itself is fine.
func (p *progress) failed(err error) {
	elapsed := time.Since(p.start).Round(time.Millisecond)
	if apperr.IsNoSolution(err) {
		p.logger.Warn("No solution", "code", apperr.GetCode(err), "elapsed", elapsed)
		return
	}
	p.logger.Error("Solve failed", "code", apperr.GetCode(err), "elapsed", elapsed)
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx; commands read it back with loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger set by the root command, or
// log.Default() outside a command run.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
