// Package degree computes the extended-degree metric of a core.Graph.
//
// The extended degree of v is its direct degree plus, for each neighbor n,
// deg(n) − 1:
//
//	ext(v) = |adj[v]| + Σ_{n ∈ adj[v]} max(|adj[n]| − 1, 0)
//
// It is a multiset sum, not a 2-hop vertex count: a vertex reachable through
// several neighbors is counted once per path, and each triangle through v adds
// two. Treat it as a coarse, cheap proxy for 2-hop reach; use bfs.Reach with a
// bound of 2 for the exact neighbourhood size.
package degree

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/hopreach/core"
)

// Entry pairs a vertex with its extended degree.
type Entry struct {
	Vertex string
	Value  int
}

// Extended returns ext(v). Unknown vertices and a nil graph yield 0.
// Complexity: O(deg(v)).
func Extended(g *core.Graph, v string) int {
	if g == nil {
		return 0
	}
	i, ok := g.Index(v)
	if !ok {
		return 0
	}

	return extendedAt(g, i)
}

func extendedAt(g *core.Graph, i int) int {
	nbrs := g.NeighborIndices(i)
	total := len(nbrs)
	for _, n := range nbrs {
		// symmetry guarantees deg(n) ≥ 1; clamp anyway
		if d := g.DegreeAt(int(n)); d > 1 {
			total += d - 1
		}
	}

	return total
}

// Table returns ext(v) for every vertex of g.
// Complexity: O(V + E).
func Table(g *core.Graph) map[string]int {
	if g == nil {
		return map[string]int{}
	}
	out := make(map[string]int, g.VertexCount())
	for i := 0; i < g.VertexCount(); i++ {
		out[g.ID(i)] = extendedAt(g, i)
	}

	return out
}

// Top returns the n entries with the largest value, ties broken by the
// lexicographically smallest vertex. n <= 0 returns every entry in that order.
func Top(table map[string]int, n int) []Entry {
	out := make([]Entry, 0, len(table))
	for v, x := range table {
		out = append(out, Entry{Vertex: v, Value: x})
	}
	slices.SortFunc(out, func(a, b Entry) int {
		if c := cmp.Compare(b.Value, a.Value); c != 0 {
			return c
		}
		return cmp.Compare(a.Vertex, b.Vertex)
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}

	return out
}
