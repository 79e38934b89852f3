package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/statespace/cubepath"
	"github.com/katalvlaran/statespace/internal/report"
)

func newCubeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cube",
		Short: "Fold a segment chain into a cube",
		Long: `Searches for headings that fold a chain of rigid segments into a WIDTH³ cube,
turning 90 degrees at every joint and entering every cell exactly once.
Puzzles come from the config file (built-ins: small, standard) or from --width/--intervals.`,
		Args: cobra.NoArgs,
		RunE: runCube,
	}
	cmd.Flags().StringP("preset", "p", "small", "named puzzle from the config")
	cmd.Flags().Int("width", 0, "cube edge length for a custom puzzle")
	cmd.Flags().IntSlice("intervals", nil, "segment lengths for a custom puzzle, e.g. 1,1,1,1,1,1,1")

	return cmd
}

func runCube(cmd *cobra.Command, _ []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}

	var (
		puzzle *cubepath.Puzzle
		name   string
	)
	flags := cmd.Flags()
	if flags.Changed("width") || flags.Changed("intervals") {
		width, _ := flags.GetInt("width")
		intervals, _ := flags.GetIntSlice("intervals")
		if puzzle, err = cubepath.New(intervals, width); err != nil {
			return err
		}
		name = fmt.Sprintf("cube custom %dx%dx%d", width, width, width)
	} else {
		preset, _ := flags.GetString("preset")
		if puzzle, err = e.cfg.Puzzle(preset); err != nil {
			return err
		}
		name = "cube " + preset
	}

	res, err := run[cubepath.Path](cmd.Context(), e, puzzle)
	if err != nil {
		return err
	}

	return finish(cmd, report.FromResult(name, res, cubepath.Letters))
}
