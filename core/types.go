package core

import "sync"

// BuilderOption configures a Builder before any edge is inserted.
type BuilderOption func(b *Builder)

// WithSelfLoops sets the self-loop policy. With allow==true (the default)
// AddEdge(x, x) records x as its own neighbor; with allow==false the vertex
// is registered but the loop edge is dropped and counted in DroppedLoops.
func WithSelfLoops(allow bool) BuilderOption {
	return func(b *Builder) { b.allowLoops = allow }
}

// WithCapacity pre-sizes the vertex map for roughly n vertices.
// Non-positive values are ignored.
func WithCapacity(n int) BuilderOption {
	return func(b *Builder) {
		if n > 0 {
			b.capacity = n
		}
	}
}

// Builder accumulates undirected edges and freezes them into a Graph.
//
// mu guards adj and the counters; a Builder may be filled from several
// goroutines, but a frozen Graph never shares memory with it.
type Builder struct {
	mu sync.Mutex

	allowLoops bool
	capacity   int

	// adj[u][v] = struct{}{} for every neighbor v of u.
	adj map[string]map[string]struct{}

	edges        int // unique undirected edges, loops included
	loops        int // stored self-loops
	droppedLoops int // self-loops rejected by policy
}

// Graph is an immutable undirected graph in CSR form.
//
// ids is sorted ascending; index maps an ID back to its position.
// Neighbors of vertex i are targets[offsets[i]:offsets[i+1]], sorted ascending.
type Graph struct {
	ids     []string
	index   map[string]int32
	offsets []int
	targets []int32

	edges int
	loops int
}

// GraphStats is a read-only summary of a frozen Graph.
type GraphStats struct {
	Vertices  int // distinct vertex IDs
	Edges     int // unique undirected edges, self-loops included
	SelfLoops int // vertices listed as their own neighbor
	Isolated  int // vertices with degree 0
	MaxDegree int // largest neighbor-set size
}

// NewBuilder returns an empty Builder. Self-loops are allowed by default.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{allowLoops: true}
	for _, opt := range opts {
		opt(b)
	}
	b.adj = make(map[string]map[string]struct{}, b.capacity)

	return b
}

// FromEdges builds a Graph from a list of endpoint pairs in one call.
// It is a convenience for fixtures and examples.
func FromEdges(edges [][2]string, opts ...BuilderOption) *Graph {
	b := NewBuilder(opts...)
	for _, e := range edges {
		b.AddEdge(e[0], e[1])
	}

	return b.Build()
}
