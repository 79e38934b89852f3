package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/statespace/internal/report"
	"github.com/katalvlaran/statespace/state"
	"github.com/katalvlaran/statespace/wordladder"
)

func newLadderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ladder START GOAL",
		Short: "Solve a word ladder",
		Long: `Finds a chain of dictionary words from START to GOAL, changing one letter per step.
With the default bfs strategy the ladder is as short as possible.`,
		Args: cobra.ExactArgs(2),
		RunE: runLadder,
	}
	cmd.Flags().StringP("dict", "d", "", "newline-delimited word list (overrides config)")
	cmd.Flags().Bool("skip-precheck", false, "search even when the goal is provably unreachable")

	return cmd
}

func runLadder(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	path := e.cfg.Dictionary
	if cmd.Flags().Changed("dict") {
		path, _ = cmd.Flags().GetString("dict")
	}
	dict, err := wordladder.LoadDictionaryFile(path)
	if err != nil {
		return err
	}
	e.logger.Debug("dictionary loaded", "path", path, "words", dict.Len())

	start, goal := args[0], args[1]
	ladder, err := wordladder.New(dict, start, goal)
	if err != nil {
		return err
	}
	name := fmt.Sprintf("ladder %s -> %s", start, goal)

	if skip, _ := cmd.Flags().GetBool("skip-precheck"); !skip && !dict.Reachable(start, goal) {
		e.logger.Warn("goal unreachable, search skipped", "start", start, "goal", goal)
		return finish(cmd, report.Summary{Problem: name, Discipline: e.discipline.String()})
	}

	res, err := run[state.Path[string]](cmd.Context(), e, ladder)
	if err != nil {
		return err
	}
	s := report.FromResult(name, res, func(p state.Path[string]) []string { return p.Tokens() })
	s.Separator = " -> "

	return finish(cmd, s)
}
