package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	apperr "github.com/matzehuels/hillclimb/pkg/errors"
	"github.com/matzehuels/hillclimb/pkg/pipeline"
	"github.com/matzehuels/hillclimb/pkg/render"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	day       int
	challenge int
	dataPath  string        // directory holding <DD>.txt inputs
	input     string        // explicit input file, wins over dataPath
	workers   int           // concurrent searches for challenge 2
	timeout   time.Duration // per-search deadline
	graph     string        // csr or implicit
	showPath  bool          // draw the route on stderr
	verify    bool          // cross-check against breadth-first search
}

// solveCommand creates the solve command. The cost is the only thing
// written to stdout.
func (c *CLI) solveCommand() *cobra.Command {
	opts := solveOpts{
		day:       pipeline.DefaultDay,
		challenge: pipeline.DefaultChallenge,
	}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Print the fewest steps from the start (1) or any lowest cell (2) to the goal",
		Example: `  hillclimb solve --challenge 1
  hillclimb solve --challenge 2 --data-path inputs --show-path
  hillclimb solve --input grid.txt --graph implicit --verify`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.applyConfig(cmd, &opts)
			return c.runSolve(cmd.Context(), opts)
		},
	}

	c.addSolveFlags(cmd, &opts)
	cmd.Flags().BoolVar(&opts.showPath, "show-path", false, "draw the route on stderr (implied by --verbose)")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "cross-check the result with breadth-first search")

	return cmd
}

// addSolveFlags registers the flags shared by solve and render.
func (c *CLI) addSolveFlags(cmd *cobra.Command, opts *solveOpts) {
	cmd.Flags().IntVar(&opts.day, "day", opts.day, "puzzle day")
	cmd.Flags().IntVarP(&opts.challenge, "challenge", "c", opts.challenge, "challenge: 1 (from S) or 2 (from any lowest cell)")
	cmd.Flags().StringVar(&opts.dataPath, "data-path", pipeline.DefaultDataPath, "directory containing <DD>.txt inputs")
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "input file (overrides --data-path)")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "concurrent searches for challenge 2 (0 = number of CPUs)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", pipeline.DefaultTimeout, "deadline per search (0 = none)")
	cmd.Flags().StringVar(&opts.graph, "graph", pipeline.DefaultGraph, "graph representation: csr, implicit")
}

// applyConfig fills every flag the user did not set from the config file.
func (c *CLI) applyConfig(cmd *cobra.Command, opts *solveOpts) {
	flags := cmd.Flags()
	if !flags.Changed("data-path") {
		opts.dataPath = c.Config.DataPath
	}
	if !flags.Changed("workers") {
		opts.workers = c.Config.Workers
	}
	if !flags.Changed("timeout") {
		opts.timeout = c.Config.Timeout.Duration
	}
	if !flags.Changed("graph") {
		opts.graph = c.Config.Graph
	}
}

// pipelineOptions converts flags into pipeline options.
func (o solveOpts) pipelineOptions() pipeline.Options {
	return pipeline.Options{
		Day:       o.day,
		Challenge: o.challenge,
		DataPath:  o.dataPath,
		Input:     o.input,
		Workers:   o.workers,
		Timeout:   o.timeout,
		Graph:     o.graph,
		Verify:    o.verify,
	}
}

// runSolve executes the pipeline and prints the cost.
func (c *CLI) runSolve(ctx context.Context, opts solveOpts) error {
	popts := opts.pipelineOptions()
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	logger := puzzleLogger(ctx, popts)
	popts.Logger = logger
	popts.SkipPath = !opts.showPath && !c.verbose()

	logger.Debug("Solving", "input", popts.InputPath(), "graph", popts.Graph)

	var spinner *Spinner
	if !c.verbose() {
		spinner = newSpinnerWithContext(ctx, c.Err, fmt.Sprintf("Solving challenge %d...", popts.Challenge))
		spinner.Start()
	}

	prog := newProgress(logger)
	result, err := c.newRunner().Execute(ctx, popts)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return pipelineError(ctx, prog, err)
	}

	prog.solved(result.Grid, result.Search)
	if result.Verified {
		logger.Info("Verified against breadth-first search")
	}

	if !popts.SkipPath {
		fmt.Fprint(c.Err, render.TextFor(lipgloss.NewRenderer(c.Err), result.Grid, result.Search.Path))
	}
	fmt.Fprintln(c.Out, result.Search.Cost)
	return nil
}

// pipelineError picks the error a failed run reports. Coded errors win so
// a TIMEOUT or no-path outcome survives a later interrupt; uncoded errors
// after cancellation collapse to ctx.Err() for the exit status.
func pipelineError(ctx context.Context, prog *progress, err error) error {
	if apperr.GetCode(err) != "" {
		prog.failed(err)
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
