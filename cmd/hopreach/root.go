package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hopreach/config"
	"github.com/katalvlaran/hopreach/core"
	"github.com/katalvlaran/hopreach/edgelist"
	"github.com/katalvlaran/hopreach/metrics"
)

// app is the state shared by every sub-command of one invocation.
type app struct {
	configPath string

	cfg     config.Config
	log     *slog.Logger
	runID   string
	reg     *prometheus.Registry
	metrics *metrics.Metrics
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "hopreach",
		Short:        "Bounded-depth reachability statistics for undirected edge lists",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file (default ./"+config.DefaultPath+" if present)")
	pf.String("log-level", "", "debug|info|warn|error")
	pf.String("log-format", "", "text|json|auto")
	pf.String("metrics-file", "", "write prometheus metrics to this file on exit")
	pf.String("delimiter", "", `field delimiter: "whitespace", "tab" or one character`)
	pf.String("comment", "", "skip lines starting with this prefix")
	pf.Bool("self-loops", true, "keep x–x edges")

	root.AddCommand(
		newProfileCmd(a),
		newOverlapCmd(a),
		newBatchesCmd(a),
		newGenerateCmd(a),
	)
	for _, sub := range root.Commands() {
		sub.RunE = a.withMetricsFlush(sub.RunE)
	}

	return root
}

// setup resolves the configuration, applies flags on top of it, then builds
// the logger and the metrics registry.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.Log.Format, _ = flags.GetString("log-format")
	}
	if flags.Changed("metrics-file") {
		cfg.Metrics.File, _ = flags.GetString("metrics-file")
	}
	if flags.Changed("delimiter") {
		cfg.Input.Delimiter, _ = flags.GetString("delimiter")
	}
	if flags.Changed("comment") {
		cfg.Input.CommentPrefix, _ = flags.GetString("comment")
	}
	if flags.Changed("self-loops") {
		cfg.Graph.SelfLoops, _ = flags.GetBool("self-loops")
	}
	if err := applyLocalFlags(cmd, &cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.runID = uuid.NewString()
	a.log = newLogger(cmd.ErrOrStderr(), cfg.Log).With(slog.String("run_id", a.runID))
	a.reg = prometheus.NewRegistry()
	a.metrics = metrics.New(a.reg)

	a.log.Debug("hopreach: configured",
		slog.String("command", cmd.Name()),
		slog.Int("sample_size", cfg.Analysis.SampleSize),
		slog.Int("max_depth", cfg.Analysis.MaxDepth),
		slog.Int("workers", cfg.Analysis.Workers),
	)

	return nil
}

// applyLocalFlags copies sub-command flags that were set onto cfg.
func applyLocalFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	ints := map[string]*int{
		"sample-size": &cfg.Analysis.SampleSize,
		"max-depth":   &cfg.Analysis.MaxDepth,
		"workers":     &cfg.Analysis.Workers,
		"batch-size":  &cfg.Batch.Size,
		"max-batches": &cfg.Batch.MaxBatches,
		"top":         &cfg.Batch.Top,
	}
	for name, dst := range ints {
		if flags.Lookup(name) == nil || !flags.Changed(name) {
			continue
		}
		v, err := flags.GetInt(name)
		if err != nil {
			return err
		}
		*dst = v
	}
	if flags.Lookup("seed") != nil && flags.Changed("seed") {
		seed, err := flags.GetInt64("seed")
		if err != nil {
			return err
		}
		cfg.Analysis.Seed = &seed
	}
	if flags.Lookup("reset") != nil && flags.Changed("reset") {
		reset, err := flags.GetBool("reset")
		if err != nil {
			return err
		}
		cfg.Batch.ResetPerBatch = reset
	}

	return nil
}

func newLogger(w io.Writer, lc config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: lc.SlogLevel()}
	format := lc.Format
	if format == "auto" {
		format = "json"
		if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
			format = "text"
		}
	}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// withMetricsFlush writes the metrics file after run returns, also when it
// fails. A run error takes precedence over a write error.
func (a *app) withMetricsFlush(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		if ferr := a.flushMetrics(); err == nil {
			err = ferr
		}
		return err
	}
}

func (a *app) flushMetrics() error {
	if a.reg == nil || a.cfg.Metrics.File == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(a.cfg.Metrics.File, a.reg); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	a.log.Debug("hopreach: metrics written", slog.String("file", a.cfg.Metrics.File))

	return nil
}

// readerOptions turns the input section into edgelist options.
func (a *app) readerOptions() ([]edgelist.Option, error) {
	delim, err := edgelist.ParseDelimiter(a.cfg.Input.Delimiter)
	if err != nil {
		return nil, err
	}

	return []edgelist.Option{
		edgelist.WithDelimiter(delim),
		edgelist.WithCommentPrefix(a.cfg.Input.CommentPrefix),
		edgelist.WithMetrics(a.metrics),
		edgelist.WithLogger(a.log),
	}, nil
}

func (a *app) builderOptions() []core.BuilderOption {
	return []core.BuilderOption{core.WithSelfLoops(a.cfg.Graph.SelfLoops)}
}

// rng returns a generator for the configured seed, or nil to use fresh ones.
func (a *app) rng() *rand.Rand {
	if a.cfg.Analysis.Seed == nil {
		return nil
	}

	return rand.New(rand.NewSource(*a.cfg.Analysis.Seed))
}
