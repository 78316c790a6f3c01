package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hillclimb/pkg/pipeline"
	"github.com/matzehuels/hillclimb/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	solveOpts
	format string // text, arrows, mask, dot or xdot
	output string // output file; stdout when empty
}

// renderCommand creates the render command, which solves a challenge and
// draws the route instead of printing the cost.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		solveOpts: solveOpts{day: pipeline.DefaultDay, challenge: pipeline.DefaultChallenge},
		format:    render.FormatText,
	}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Draw the shortest route as text, a 0/1 mask or a Graphviz graph",
		Example: `  hillclimb render data/12.txt
  hillclimb render --challenge 2 --format arrows
  hillclimb render --format xdot -o route.xdot`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := render.ValidateFormat(opts.format); err != nil {
				return err
			}
			c.applyConfig(cmd, &opts.solveOpts)
			if len(args) == 1 {
				opts.input = args[0]
			}
			return c.runRender(cmd.Context(), opts)
		},
	}

	c.addSolveFlags(cmd, &opts.solveOpts)
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text, arrows, mask, dot, xdot")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

// runRender solves the challenge and writes the rendered route.
func (c *CLI) runRender(ctx context.Context, opts renderOpts) error {
	popts := opts.pipelineOptions()
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	logger := puzzleLogger(ctx, popts)
	popts.Logger = logger

	prog := newProgress(logger)
	result, err := c.newRunner().Execute(ctx, popts)
	if err != nil {
		return pipelineError(ctx, prog, err)
	}
	prog.solved(result.Grid, result.Search)

	spinner := newSpinnerWithContext(ctx, c.Err, fmt.Sprintf("Rendering %s...", opts.format))
	spinner.Start()
	data, err := render.Render(ctx, opts.format, result.Grid, result.Search.Path)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render %s: %w", opts.format, err)
	}
	spinner.Stop()

	if opts.output == "" {
		_, err := c.Out.Write(data)
		return err
	}

	// Files never get terminal styling.
	if opts.format == render.FormatText {
		data = []byte(ansi.Strip(string(data)))
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", opts.output, err)
	}

	printSuccess("Rendered %s", opts.format)
	printFile(opts.output)
	printStats(result.Stats)
	if opts.format == render.FormatDOT {
		printNewline()
		printNextStep("Lay out", "dot -Tsvg "+opts.output)
	}
	return nil
}
