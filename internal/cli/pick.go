package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hillclimb/pkg/pipeline"
)

// pickCommand creates the pick command, which lists the puzzle inputs in the
// data path and solves the one chosen interactively.
func (c *CLI) pickCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Choose a puzzle input and challenge interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.applyConfig(cmd, &opts)
			return c.runPick(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.dataPath, "data-path", pipeline.DefaultDataPath, "directory containing <DD>.txt inputs")
	return cmd
}

// runPick shows the puzzle list and solves the selection.
func (c *CLI) runPick(ctx context.Context, opts solveOpts) error {
	puzzles, err := discoverPuzzles(opts.dataPath)
	if err != nil {
		return err
	}
	if len(puzzles) == 0 {
		printError("No puzzle inputs found in %s", opts.dataPath)
		return fmt.Errorf("no puzzle inputs found in %s", opts.dataPath)
	}

	printInfo("Found %d puzzles in %s", len(puzzles), opts.dataPath)
	printNewline()

	p := tea.NewProgram(NewPuzzleListModel(puzzles), tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	fm, ok := finalModel.(PuzzleListModel)
	if !ok || fm.Selected == nil {
		printDetail("No selection made")
		return nil
	}

	opts.day = fm.Selected.Day
	opts.challenge = fm.Selected.Challenge
	opts.input = fm.Selected.Path

	popts := opts.pipelineOptions()
	popts.Logger = puzzleLogger(ctx, popts)
	popts.SkipPath = true
	prog := newProgress(popts.Logger)

	spinner := newSpinnerWithContext(ctx, c.Err, fmt.Sprintf("Solving day %02d, challenge %d...", opts.day, opts.challenge))
	spinner.Start()
	result, err := c.newRunner().Execute(ctx, popts)
	if err != nil {
		spinner.StopWithError("Solve failed")
		return pipelineError(ctx, prog, err)
	}
	spinner.StopWithSuccess(fmt.Sprintf("Day %02d, challenge %d", opts.day, opts.challenge))

	row, col := result.Grid.Coord(result.Search.Source)
	printKeyValue("Steps", StyleNumber.Render(fmt.Sprint(result.Search.Cost)))
	printKeyValue("From", fmt.Sprintf("(%d,%d)", row, col))
	printStats(result.Stats)
	return nil
}
