package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hopreach/batch"
	"github.com/katalvlaran/hopreach/edgelist"
	"github.com/katalvlaran/hopreach/report"
)

func newBatchesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batches <edgelist>",
		Short: "Dump extended degree and non-isolated vertices for shuffled edge batches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ropts, err := a.readerOptions()
			if err != nil {
				return err
			}
			recs, st, err := edgelist.ReadFile(cmd.Context(), args[0], ropts...)
			if err != nil {
				a.log.Error("hopreach: cannot read edge list", slog.String("path", args[0]), slog.Any("error", err))
				return err
			}
			a.log.Info("hopreach: records read",
				slog.Int("records", st.Records),
				slog.Int("skipped", st.Skipped),
			)

			bc := batch.Config{
				Size:          a.cfg.Batch.Size,
				MaxBatches:    a.cfg.Batch.MaxBatches,
				ResetPerBatch: a.cfg.Batch.ResetPerBatch,
				Rand:          a.rng(),
				Builder:       a.builderOptions(),
				Metrics:       a.metrics,
				Logger:        a.log,
			}
			w := report.New(cmd.OutOrStdout())
			w.Top = a.cfg.Batch.Top

			return batch.Run(cmd.Context(), recs, bc, w.Batch)
		},
	}

	f := cmd.Flags()
	f.Bool("reset", true, "fresh graph per batch (false accumulates)")
	f.Int("batch-size", 0, "records per batch")
	f.Int("max-batches", 0, "batches processed at most")
	f.Int("top", 0, "list only the n largest extended degrees")
	f.Int64("seed", 0, "seed for the batch order")

	return cmd
}
