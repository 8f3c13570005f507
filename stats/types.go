// Package stats turns per-vertex reachability into ranked, depth-indexed
// summaries: the depth profile (most-reaching sampled vertex per hop bound)
// and the neighbor/2-hop overlap ratio.
package stats

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"

	"github.com/katalvlaran/hopreach/metrics"
)

// Defaults used when the corresponding option is not supplied.
const (
	DefaultSampleSize = 100
	DefaultMaxDepth   = 6
	DefaultWorkers    = 1

	// OverlapDepth is the hop bound of the 2-hop neighbourhood in OverlapRatio.
	OverlapDepth = 2
)

// Sentinel errors for aggregation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("stats: graph is nil")

	// ErrOptionViolation is returned by New when an invalid Option is supplied.
	ErrOptionViolation = errors.New("stats: invalid option supplied")
)

// DistanceMap maps a sampled vertex to its proportions, one entry per depth
// in ascending order: DistanceMap[v][d-1] is |reach(v, d)| / |V|.
type DistanceMap map[string][]float64

// DepthBest is one row of a depth profile.
type DepthBest struct {
	Depth      int
	Vertex     string  // most-reaching sampled vertex; "" when there is no data
	Proportion float64 // its share of all vertices, in [0, 1]
	Mean       float64 // mean proportion over the sample at this depth
	StdDev     float64 // sample standard deviation; 0 for fewer than two samples
	Samples    int
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithSampleSize sets how many vertices are sampled per analysis (k ≥ 0).
func WithSampleSize(k int) Option {
	return func(a *Aggregator) {
		if k < 0 {
			a.err = fmt.Errorf("%w: sample size cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		a.sampleSize = k
	}
}

// WithMaxDepth sets the largest hop bound of the depth profile (d ≥ 1).
func WithMaxDepth(d int) Option {
	return func(a *Aggregator) {
		if d < 1 {
			a.err = fmt.Errorf("%w: max depth must be at least 1 (%d)", ErrOptionViolation, d)
			return
		}
		a.maxDepth = d
	}
}

// WithWorkers sets how many traversals may run concurrently (n ≥ 1).
// The output does not depend on n.
func WithWorkers(n int) Option {
	return func(a *Aggregator) {
		if n < 1 {
			a.err = fmt.Errorf("%w: workers must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		a.workers = n
	}
}

// WithRand injects the generator used for sampling. Without it (or WithSeed)
// every analysis draws a freshly seeded sample.
func WithRand(r *rand.Rand) Option {
	return func(a *Aggregator) { a.rng = r }
}

// WithSeed is WithRand with a deterministic generator.
func WithSeed(seed int64) Option {
	return func(a *Aggregator) { a.rng = rand.New(rand.NewSource(seed)) }
}

// WithMetrics attaches prometheus collectors. nil disables instrumentation.
func WithMetrics(m *metrics.Metrics) Option {
	return func(a *Aggregator) { a.metrics = m }
}

// WithLogger sets the structured logger. nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(a *Aggregator) {
		if l != nil {
			a.log = l
		}
	}
}

// Aggregator drives sampling and bounded reachability over a frozen graph.
// It is safe for concurrent use; rngMu serialises access to the generator.
type Aggregator struct {
	sampleSize int
	maxDepth   int
	workers    int

	rngMu sync.Mutex
	rng   *rand.Rand

	metrics *metrics.Metrics
	log     *slog.Logger

	err error
}

// New builds an Aggregator. Returns ErrOptionViolation for invalid options.
func New(opts ...Option) (*Aggregator, error) {
	a := &Aggregator{
		sampleSize: DefaultSampleSize,
		maxDepth:   DefaultMaxDepth,
		workers:    DefaultWorkers,
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.err != nil {
		return nil, a.err
	}

	return a, nil
}

// MaxDepth reports the configured profile depth.
func (a *Aggregator) MaxDepth() int { return a.maxDepth }

// SampleSize reports the configured sample size.
func (a *Aggregator) SampleSize() int { return a.sampleSize }
