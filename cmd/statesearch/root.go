package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/statespace/frontier"
	"github.com/katalvlaran/statespace/internal/config"
	"github.com/katalvlaran/statespace/internal/logging"
	"github.com/katalvlaran/statespace/internal/report"
	"github.com/katalvlaran/statespace/metrics"
	"github.com/katalvlaran/statespace/search"
)

// errNoSolution marks a search that terminated without a final state.
var errNoSolution = errors.New("no solution")

// env is the resolved runtime configuration shared by subcommands.
type env struct {
	cfg        config.Config
	discipline frontier.Discipline
	logger     *slog.Logger
	collector  *metrics.Collector
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "statesearch",
		Short:         "Breadth- and depth-first search over bundled puzzles",
		Long:          `statesearch solves word ladders and cube-folding puzzles with a generic BFS/DFS engine.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "YAML config file (default "+config.DefaultPath+" if present)")
	pf.StringP("strategy", "s", "", "frontier discipline: bfs|dfs")
	pf.Int("max-visits", 0, "stop after this many visited states (0 = unbounded)")
	pf.String("log-level", "", "debug|info|warn|error")
	pf.Bool("no-color", false, "disable colored output")
	pf.String("metrics-addr", "", "serve Prometheus /metrics on this address while the search runs (for watching long searches; the endpoint closes on exit)")

	root.AddCommand(newLadderCmd(), newCubeCmd(), newVersionCmd())

	return root
}

// setup loads the config file, applies flag overrides and builds the
// logger and optional metrics endpoint.
func setup(cmd *cobra.Command) (*env, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	required := path != ""
	if !required {
		path = config.DefaultPath
	}
	cfg, err := config.Load(path, required)
	if err != nil {
		return nil, err
	}

	if flags.Changed("strategy") {
		cfg.Strategy, _ = flags.GetString("strategy")
	}
	if flags.Changed("max-visits") {
		cfg.MaxVisits, _ = flags.GetInt("max-visits")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("metrics-addr") {
		cfg.MetricsAddr, _ = flags.GetString("metrics-addr")
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	if noColor, _ := flags.GetBool("no-color"); noColor {
		color.NoColor = true
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	e := &env{cfg: cfg, logger: logging.New(level)}
	if e.discipline, err = cfg.Discipline(); err != nil {
		return nil, err
	}

	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		if e.collector, err = metrics.NewCollector(reg); err != nil {
			return nil, err
		}
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler(reg))
		go func() {
			e.logger.Info("serving metrics", "addr", cfg.MetricsAddr)
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				e.logger.Error("metrics server stopped", "error", err)
			}
		}()
	}

	return e, nil
}

// run executes one search with the configured discipline, budget, logger,
// metrics and interrupt handling.
func run[S any](ctx context.Context, e *env, p search.Problem[S]) (search.Result[S], error) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []search.Option[S]{
		search.WithContext[S](ctx),
		search.WithMaxVisits[S](e.cfg.MaxVisits),
		search.WithLogger[S](e.logger),
	}
	if e.collector != nil {
		opts = append(opts, metrics.Options[S](e.collector, e.discipline)...)
	}

	res, err := search.Search(p, e.discipline, opts...)
	if err != nil {
		if e.collector != nil {
			e.collector.Aborted(e.discipline, res.Visited)
		}
		return res, err
	}
	e.logger.Debug("search done", "outcome", res.Outcome(), "visited", res.Visited)

	return res, nil
}

// finish prints the summary and maps an exhausted search to errNoSolution.
func finish(cmd *cobra.Command, s report.Summary) error {
	if err := report.Render(cmd.OutOrStdout(), s); err != nil {
		return err
	}
	if !s.Found {
		return fmt.Errorf("%s: %w", s.Problem, errNoSolution)
	}

	return nil
}
