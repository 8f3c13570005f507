package core

import (
	"slices"
)

// AddVertex registers id with an empty neighbor set if it is not yet known.
// Complexity: O(1).
func (b *Builder) AddVertex(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.ensure(id)
}

// AddEdge inserts the undirected edge u–v. Missing endpoints are created,
// each starting with an empty neighbor set. Repeating an edge (in either
// orientation) has no effect.
// Complexity: O(1) amortized.
func (b *Builder) AddEdge(u, v string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	nu := b.ensure(u)
	if u == v {
		if !b.allowLoops {
			b.droppedLoops++
			return
		}
		if _, ok := nu[u]; !ok {
			nu[u] = struct{}{}
			b.edges++
			b.loops++
		}
		return
	}

	nv := b.ensure(v)
	if _, ok := nu[v]; ok {
		return
	}
	nu[v] = struct{}{}
	nv[u] = struct{}{}
	b.edges++
}

// VertexCount reports the number of distinct vertices added so far.
func (b *Builder) VertexCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.adj)
}

// DroppedLoops reports how many self-loops were rejected by WithSelfLoops(false).
func (b *Builder) DroppedLoops() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.droppedLoops
}

// Build freezes the accumulated edges into a Graph and resets the Builder to
// an empty state with the same options. The returned Graph does not share
// memory with the Builder.
// Complexity: O(V log V + E log d).
func (b *Builder) Build() *Graph {
	b.mu.Lock()
	defer b.mu.Unlock()

	g := freeze(b.adj, b.edges, b.loops)
	b.adj = make(map[string]map[string]struct{}, b.capacity)
	b.edges, b.loops, b.droppedLoops = 0, 0, 0

	return g
}

// Snapshot freezes a copy of the accumulated edges while the Builder keeps
// its state, so later AddEdge calls extend the same graph.
// Complexity: O(V log V + E log d).
func (b *Builder) Snapshot() *Graph {
	b.mu.Lock()
	defer b.mu.Unlock()

	return freeze(b.adj, b.edges, b.loops)
}

// ensure returns the neighbor set of id, creating it if absent.
// Caller must hold b.mu.
func (b *Builder) ensure(id string) map[string]struct{} {
	nbrs, ok := b.adj[id]
	if !ok {
		nbrs = make(map[string]struct{})
		b.adj[id] = nbrs
	}

	return nbrs
}

// freeze converts map-of-sets adjacency into sorted CSR form.
func freeze(adj map[string]map[string]struct{}, edges, loops int) *Graph {
	n := len(adj)
	ids := make([]string, 0, n)
	total := 0
	for id, nbrs := range adj {
		ids = append(ids, id)
		total += len(nbrs)
	}
	slices.Sort(ids)

	index := make(map[string]int32, n)
	for i, id := range ids {
		index[id] = int32(i)
	}

	offsets := make([]int, n+1)
	targets := make([]int32, 0, total)
	for i, id := range ids {
		start := len(targets)
		for nbr := range adj[id] {
			targets = append(targets, index[nbr])
		}
		// IDs are sorted, so sorting indices sorts neighbors by ID.
		slices.Sort(targets[start:])
		offsets[i+1] = len(targets)
	}

	return &Graph{
		ids:     ids,
		index:   index,
		offsets: offsets,
		targets: targets,
		edges:   edges,
		loops:   loops,
	}
}
