package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hopreach/core"
	"github.com/katalvlaran/hopreach/edgelist"
	"github.com/katalvlaran/hopreach/report"
	"github.com/katalvlaran/hopreach/stats"
)

func addAnalysisFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int("sample-size", 0, "vertices sampled per analysis")
	f.Int("max-depth", 0, "largest hop bound profiled")
	f.Int("workers", 0, "concurrent traversals")
	f.Int64("seed", 0, "seed for reproducible sampling")
}

func newProfileCmd(a *app) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "profile <edgelist>",
		Short: "Report the sampled vertex reaching the most users at each depth",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, agg, err := a.prepare(cmd, args[0])
			if err != nil {
				return err
			}
			rows, err := agg.DepthProfile(cmd.Context(), g)
			if err != nil {
				return err
			}
			w := report.New(cmd.OutOrStdout())
			w.Verbose = verbose

			return w.Profile(rows)
		},
	}
	addAnalysisFlags(cmd)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print mean and standard deviation per depth")

	return cmd
}

func newOverlapCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "overlap <edgelist>",
		Short: "Report how many direct neighbors lie inside the sampled 2-hop neighborhoods",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, agg, err := a.prepare(cmd, args[0])
			if err != nil {
				return err
			}
			ratio, err := agg.OverlapRatio(cmd.Context(), g)
			if err != nil {
				return err
			}

			return report.New(cmd.OutOrStdout()).Overlap(ratio)
		},
	}
	addAnalysisFlags(cmd)

	return cmd
}

// prepare loads the graph at path and builds the configured aggregator.
func (a *app) prepare(cmd *cobra.Command, path string) (*core.Graph, *stats.Aggregator, error) {
	ropts, err := a.readerOptions()
	if err != nil {
		return nil, nil, err
	}
	g, _, err := edgelist.LoadFile(cmd.Context(), path, ropts, a.builderOptions()...)
	if err != nil {
		a.log.Error("hopreach: cannot load graph", slog.String("path", path), slog.Any("error", err))
		return nil, nil, err
	}

	ac := a.cfg.Analysis
	opts := []stats.Option{
		stats.WithSampleSize(ac.SampleSize),
		stats.WithMaxDepth(ac.MaxDepth),
		stats.WithWorkers(ac.Workers),
		stats.WithMetrics(a.metrics),
		stats.WithLogger(a.log),
	}
	if r := a.rng(); r != nil {
		opts = append(opts, stats.WithRand(r))
	}
	agg, err := stats.New(opts...)
	if err != nil {
		return nil, nil, err
	}

	return g, agg, nil
}
