// Package bfs provides tunable options and error definitions
// for depth-bounded breadth-first reachability over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for reachability execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid argument or Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures Reach behavior via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation when Reach runs.
type Option func(*Options)

// Options holds parameters and callbacks for one Reach call.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per dequeue.
	Ctx context.Context

	// OnVisit is called when a vertex is dequeued, with its hop distance.
	// Returning an error aborts the traversal and propagates that error.
	OnVisit func(id string, depth int) error

	// CountOnly skips materialising Order and Depth; only layer counts are kept.
	CountOnly bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, no hook,
// and full result materialisation.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnVisit:   nil,
		CountOnly: false,
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run on every dequeued vertex.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithCountOnly keeps only per-depth counts. Use it when the caller needs
// |reach| and not the membership itself; it avoids one map entry per vertex.
func WithCountOnly() Option {
	return func(o *Options) {
		o.CountOnly = true
	}
}

// withDepth validates the hop bound. Negative depths are a violation.
func withDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: max depth cannot be negative (%d)", ErrOptionViolation, d)
		}
	}
}

// Result holds the vertices reachable from Start within the hop bound:
//   - Order: vertices in FIFO visit sequence, Start first.
//   - Depth: vertex ID → shortest hop distance from Start.
//   - Layers: Layers[d] is the number of vertices at exactly hop d.
//
// With WithCountOnly, Order and Depth are nil and only Layers is filled.
type Result struct {
	Start  string
	Order  []string
	Depth  map[string]int
	Layers []int

	total int
}

// Len returns |reach|, Start included.
func (r *Result) Len() int { return r.total }

// Contains reports whether id was reached. Always false in count-only mode.
func (r *Result) Contains(id string) bool {
	_, ok := r.Depth[id]

	return ok
}

// WithinDepth returns how many vertices lie at hop distance ≤ d.
// For d at or beyond the traversal bound this equals Len.
func (r *Result) WithinDepth(d int) int {
	if d < 0 {
		return 0
	}
	n := 0
	for i := 0; i <= d && i < len(r.Layers); i++ {
		n += r.Layers[i]
	}

	return n
}

// Set returns the reached vertices as a set. Empty in count-only mode.
func (r *Result) Set() map[string]struct{} {
	out := make(map[string]struct{}, len(r.Order))
	for _, id := range r.Order {
		out[id] = struct{}{}
	}

	return out
}
