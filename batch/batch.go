// Package batch runs the extended-degree and component analyses over an edge
// stream cut into fixed-size chunks, visited in shuffled order.
//
// Two modes are supported. With ResetPerBatch (the default) every batch is a
// fresh graph built from its chunk alone. Without it a single builder keeps
// accumulating and each batch analyses a snapshot of everything added so far.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/hopreach/components"
	"github.com/katalvlaran/hopreach/core"
	"github.com/katalvlaran/hopreach/degree"
	"github.com/katalvlaran/hopreach/edgelist"
	"github.com/katalvlaran/hopreach/metrics"
	"github.com/katalvlaran/hopreach/sample"
)

// Defaults for Config.
const (
	DefaultSize       = 1000
	DefaultMaxBatches = 20
)

var (
	// ErrBatchSize is returned for a chunk size below 1.
	ErrBatchSize = errors.New("batch: size must be positive")

	// ErrCallbackNil is returned by Run when fn is nil.
	ErrCallbackNil = errors.New("batch: callback is nil")
)

// Config controls Run. Use DefaultConfig and override fields.
type Config struct {
	Size          int  // records per chunk
	MaxBatches    int  // batches processed at most; 0 processes every chunk
	ResetPerBatch bool // fresh graph per batch instead of a growing one

	Rand    *rand.Rand // chunk-order source; nil draws a fresh one
	Builder []core.BuilderOption
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// DefaultConfig returns size 1000, at most 20 batches, reset per batch.
func DefaultConfig() Config {
	return Config{
		Size:          DefaultSize,
		MaxBatches:    DefaultMaxBatches,
		ResetPerBatch: true,
	}
}

// Result describes one analysed batch.
type Result struct {
	Index   int // 1-based position in processing order
	Chunk   int // 0-based chunk number in input order
	Records int // records in this chunk

	Vertices int // of the analysed graph
	Edges    int

	ExtendedDegree map[string]int
	NonIsolated    []string // sorted

	Graph *core.Graph
}

// Chunks cuts records into consecutive slices of at most size records.
// The slices alias records.
func Chunks(records []edgelist.Record, size int) ([][]edgelist.Record, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBatchSize, size)
	}
	out := make([][]edgelist.Record, 0, (len(records)+size-1)/size)
	for lo := 0; lo < len(records); lo += size {
		hi := min(lo+size, len(records))
		out = append(out, records[lo:hi:hi])
	}

	return out, nil
}

// Run chunks records, shuffles the chunk order and hands each analysed batch
// to fn, stopping after cfg.MaxBatches. An error from fn stops the run and is
// returned as is. The context is checked before every batch.
func Run(ctx context.Context, records []edgelist.Record, cfg Config, fn func(Result) error) error {
	if fn == nil {
		return ErrCallbackNil
	}
	chunks, err := Chunks(records, cfg.Size)
	if err != nil {
		return err
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	limit := len(chunks)
	if cfg.MaxBatches > 0 {
		limit = min(limit, cfg.MaxBatches)
	}
	order := sample.Indices(len(chunks), limit, cfg.Rand)

	started := time.Now()
	cumulative := core.NewBuilder(cfg.Builder...)
	for i, c := range order {
		if err := ctx.Err(); err != nil {
			return err
		}

		var g *core.Graph
		if cfg.ResetPerBatch {
			b := core.NewBuilder(append([]core.BuilderOption{core.WithCapacity(2 * len(chunks[c]))}, cfg.Builder...)...)
			addAll(b, chunks[c])
			g = b.Build()
		} else {
			addAll(cumulative, chunks[c])
			g = cumulative.Snapshot()
		}

		res := Result{
			Index:          i + 1,
			Chunk:          c,
			Records:        len(chunks[c]),
			Vertices:       g.VertexCount(),
			Edges:          g.EdgeCount(),
			ExtendedDegree: degree.Table(g),
			NonIsolated:    components.NonIsolated(g),
			Graph:          g,
		}
		cfg.Metrics.ObserveBatch(cfg.ResetPerBatch)
		cfg.Metrics.SetGraphVertices(res.Vertices)
		log.Debug("batch: processed",
			slog.Int("index", res.Index),
			slog.Int("chunk", res.Chunk),
			slog.Int("records", res.Records),
			slog.Int("vertices", res.Vertices),
			slog.Int("non_isolated", len(res.NonIsolated)),
		)

		if err := fn(res); err != nil {
			return err
		}
	}

	log.Info("batch: run complete",
		slog.Int("chunks", len(chunks)),
		slog.Int("processed", len(order)),
		slog.Bool("reset_per_batch", cfg.ResetPerBatch),
		slog.Duration("took", time.Since(started)),
	)

	return nil
}

func addAll(b *core.Builder, recs []edgelist.Record) {
	for _, r := range recs {
		b.AddEdge(r.U, r.V)
	}
}
