package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hopreach/builder"
	"github.com/katalvlaran/hopreach/edgelist"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		n      int
		p      float64
		prefix string
	)
	cmd := &cobra.Command{
		Use:       "generate <path|cycle|star|complete|random>",
		Short:     "Write a synthetic edge list to stdout",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"path", "cycle", "star", "complete", "random"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var ctor builder.Constructor
			switch args[0] {
			case "path":
				ctor = builder.Path(n)
			case "cycle":
				ctor = builder.Cycle(n)
			case "star":
				ctor = builder.Star(n)
			case "complete":
				ctor = builder.Complete(n)
			case "random":
				ctor = builder.RandomSparse(n, p)
			default:
				return fmt.Errorf("unknown topology %q", args[0])
			}

			var bopts []builder.BuilderOption
			if prefix != "" {
				bopts = append(bopts, builder.WithSymbNumb(prefix))
			}
			if r := a.rng(); r != nil {
				bopts = append(bopts, builder.WithRand(r))
			} else {
				bopts = append(bopts, builder.WithSeed(time.Now().UnixNano()))
			}
			recs, err := builder.Generate(bopts, ctor)
			if err != nil {
				return err
			}
			delim, err := edgelist.ParseDelimiter(a.cfg.Input.Delimiter)
			if err != nil {
				return err
			}

			return edgelist.Write(cmd.OutOrStdout(), recs, delim)
		},
	}

	f := cmd.Flags()
	f.IntVar(&n, "n", 10, "vertex count")
	f.Float64Var(&p, "p", 0.01, "edge probability (random)")
	f.StringVar(&prefix, "prefix", "", "vertex ID prefix (default decimal IDs)")
	f.Int64("seed", 0, "seed for random topologies")

	return cmd
}
