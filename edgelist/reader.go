package edgelist

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/katalvlaran/hopreach/core"
)

// ctxEvery is how many lines are parsed between context checks.
const ctxEvery = 4096

// Read parses r and returns every well-formed edge in input order.
func Read(ctx context.Context, r io.Reader, opts ...Option) ([]Record, Stats, error) {
	var recs []Record
	st, err := scan(ctx, r, opts, func(rec Record) { recs = append(recs, rec) })
	if err != nil {
		return nil, st, err
	}

	return recs, st, nil
}

// ReadFile opens path and reads it like Read. Open failures wrap ErrLoad.
func ReadFile(ctx context.Context, path string, opts ...Option) ([]Record, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer f.Close()

	return Read(ctx, f, opts...)
}

// Load parses r and adds every well-formed edge to b.
func Load(ctx context.Context, r io.Reader, b *core.Builder, opts ...Option) (Stats, error) {
	if b == nil {
		return Stats{}, ErrBuilderNil
	}

	return scan(ctx, r, opts, func(rec Record) { b.AddEdge(rec.U, rec.V) })
}

// LoadFile opens path, loads it into a fresh builder and returns the frozen
// graph. bopts configure the builder (self-loop policy, capacity).
func LoadFile(ctx context.Context, path string, opts []Option, bopts ...core.BuilderOption) (*core.Graph, Stats, error) {
	o, err := build(opts)
	if err != nil {
		return nil, Stats{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer f.Close()

	started := time.Now()
	b := core.NewBuilder(bopts...)
	st, err := Load(ctx, f, b, opts...)
	if err != nil {
		return nil, st, err
	}
	g := b.Build()
	o.metrics.SetGraphVertices(g.VertexCount())

	gs := g.Stats()
	o.log.Info("edgelist: graph loaded",
		slog.String("path", path),
		slog.Int("lines", st.Lines),
		slog.Int("records", st.Records),
		slog.Int("skipped", st.Skipped),
		slog.Int("vertices", gs.Vertices),
		slog.Int("edges", gs.Edges),
		slog.Int("self_loops", gs.SelfLoops),
		slog.Int("max_degree", gs.MaxDegree),
		slog.Duration("took", time.Since(started)),
	)

	return g, st, nil
}

// scan drives the shared line loop, handing well-formed records to emit.
func scan(ctx context.Context, r io.Reader, opts []Option, emit func(Record)) (Stats, error) {
	o, err := build(opts)
	if err != nil {
		return Stats{}, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)

	var st Stats
	for sc.Scan() {
		st.Lines++
		if st.Lines%ctxEvery == 0 {
			if err := ctx.Err(); err != nil {
				return st, err
			}
		}

		line := sc.Text()
		if o.comment != "" && strings.HasPrefix(strings.TrimLeft(line, " \t"), o.comment) {
			st.Comments++
			continue
		}
		u, v, ok := split(line, o.delim)
		if !ok {
			st.Skipped++
			o.log.Debug("edgelist: line skipped", slog.Int("line", st.Lines))
			continue
		}
		st.Records++
		emit(Record{U: u, V: v, Line: st.Lines})
	}
	o.metrics.AddSkipped(st.Skipped)

	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return st, fmt.Errorf("%w: line %d exceeds %d bytes", ErrLoad, st.Lines+1, MaxLineBytes)
		}
		return st, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	return st, nil
}

// split returns the two tokens of line, or ok=false when the line does not
// hold exactly two non-empty tokens.
func split(line string, delim rune) (u, v string, ok bool) {
	if delim == 0 {
		f := strings.Fields(line)
		if len(f) != 2 {
			return "", "", false
		}
		return f[0], f[1], true
	}

	parts := strings.Split(line, string(delim))
	if len(parts) != 2 {
		return "", "", false
	}
	u, v = strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if u == "" || v == "" {
		return "", "", false
	}

	return u, v, true
}
