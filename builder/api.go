package builder

import (
	"fmt"

	"github.com/katalvlaran/hopreach/core"
	"github.com/katalvlaran/hopreach/edgelist"
)

// sink receives the vertices and edges a Constructor emits.
// *core.Builder satisfies it.
type sink interface {
	AddVertex(id string)
	AddEdge(u, v string)
}

// Constructor emits one topology into s using the resolved configuration.
// Constructors validate parameters before emitting anything and never panic.
type Constructor func(s sink, cfg builderConfig) error

// BuildGraph applies cons in order to a fresh core.Builder configured with
// gopts and returns the frozen graph. Isolated vertices survive.
func BuildGraph(gopts []core.BuilderOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	b := core.NewBuilder(gopts...)
	if err := run(b, bopts, cons); err != nil {
		return nil, err
	}

	return b.Build(), nil
}

// Generate applies cons in order and returns the emitted edges as records,
// numbered from line 1. Isolated vertices have no record and are lost.
func Generate(bopts []BuilderOption, cons ...Constructor) ([]edgelist.Record, error) {
	rs := &recordSink{}
	if err := run(rs, bopts, cons); err != nil {
		return nil, err
	}

	return rs.recs, nil
}

func run(s sink, bopts []BuilderOption, cons []Constructor) error {
	cfg := newBuilderConfig(bopts...)
	if cfg.err != nil {
		return fmt.Errorf("BuildGraph: %w", cfg.err)
	}
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return nil
}

type recordSink struct {
	recs []edgelist.Record
}

func (r *recordSink) AddVertex(string) {}

func (r *recordSink) AddEdge(u, v string) {
	r.recs = append(r.recs, edgelist.Record{U: u, V: v, Line: len(r.recs) + 1})
}
