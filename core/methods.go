package core

import "slices"

// VertexCount returns the number of distinct vertices. O(1).
func (g *Graph) VertexCount() int { return len(g.ids) }

// EdgeCount returns the number of unique undirected edges, self-loops included. O(1).
func (g *Graph) EdgeCount() int { return g.edges }

// HasVertex reports whether id was ever inserted. O(1).
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.index[id]

	return ok
}

// Index returns the dense index of id and whether it exists.
func (g *Graph) Index(id string) (int, bool) {
	i, ok := g.index[id]

	return int(i), ok
}

// ID returns the vertex ID stored at dense index i.
// It panics if i is out of range, like a slice access.
func (g *Graph) ID(i int) string { return g.ids[i] }

// Vertices returns all vertex IDs in ascending order.
// The slice is a copy; callers may modify it.
func (g *Graph) Vertices() []string { return slices.Clone(g.ids) }

// Degree returns the size of id's neighbor set, or 0 for an unknown id.
// A stored self-loop contributes 1.
func (g *Graph) Degree(id string) int {
	i, ok := g.index[id]
	if !ok {
		return 0
	}

	return g.DegreeAt(int(i))
}

// DegreeAt returns the degree of the vertex at dense index i.
func (g *Graph) DegreeAt(i int) int { return g.offsets[i+1] - g.offsets[i] }

// NeighborIndices returns the sorted neighbor indices of vertex i.
// The slice aliases internal storage and must not be modified; its capacity is
// clipped so append never overwrites a neighboring list.
func (g *Graph) NeighborIndices(i int) []int32 {
	lo, hi := g.offsets[i], g.offsets[i+1]

	return g.targets[lo:hi:hi]
}

// Neighbors returns id's neighbor IDs in ascending order, or an empty slice
// for an unknown id. The slice is a fresh copy.
func (g *Graph) Neighbors(id string) []string {
	i, ok := g.index[id]
	if !ok {
		return []string{}
	}
	nbrs := g.NeighborIndices(int(i))
	out := make([]string, len(nbrs))
	for k, j := range nbrs {
		out[k] = g.ids[j]
	}

	return out
}

// HasEdge reports whether u and v are adjacent. Symmetric by construction.
// Complexity: O(log d(u)).
func (g *Graph) HasEdge(u, v string) bool {
	iu, ok := g.index[u]
	if !ok {
		return false
	}
	iv, ok := g.index[v]
	if !ok {
		return false
	}
	_, found := slices.BinarySearch(g.NeighborIndices(int(iu)), iv)

	return found
}

// Stats scans the graph once and returns a summary. O(V).
func (g *Graph) Stats() GraphStats {
	st := GraphStats{
		Vertices:  len(g.ids),
		Edges:     g.edges,
		SelfLoops: g.loops,
	}
	for i := range g.ids {
		d := g.DegreeAt(i)
		if d == 0 {
			st.Isolated++
		}
		if d > st.MaxDegree {
			st.MaxDegree = d
		}
	}

	return st
}
