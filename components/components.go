// Package components finds connected components of a core.Graph and the set
// of non-isolated vertices (members of components with at least two vertices).
//
// Both functions make one sweep over all vertices with a shared visited array:
// an unvisited vertex seeds an iterative stack traversal that collects its
// whole component, and every vertex is pushed at most once. Each adjacency list
// is therefore scanned once per call, not once per seed.
//
// Time:   O(V + E).
// Memory: O(V) for visited flags, the stack, and the output.
package components

import (
	"slices"

	"github.com/katalvlaran/hopreach/core"
)

// sweep calls fn with the member indices of each component, in order of the
// component's smallest vertex index. The members slice is reused between calls.
func sweep(g *core.Graph, fn func(members []int32)) {
	n := g.VertexCount()
	seen := make([]bool, n)
	var stack, comp []int32

	for seed := 0; seed < n; seed++ {
		if seen[seed] {
			continue
		}
		seen[seed] = true
		stack = append(stack[:0], int32(seed))
		comp = comp[:0]

		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, u)
			for _, v := range g.NeighborIndices(int(u)) {
				if !seen[v] {
					seen[v] = true
					stack = append(stack, v)
				}
			}
		}
		fn(comp)
	}
}

// Components returns every connected component, each sorted ascending, ordered
// by smallest member. Isolated vertices appear as singletons.
// A nil graph yields nil.
func Components(g *core.Graph) [][]string {
	if g == nil {
		return nil
	}
	var out [][]string
	sweep(g, func(members []int32) {
		out = append(out, toIDs(g, members))
	})

	return out
}

// NonIsolated returns, in ascending order, every vertex whose component has at
// least two members. A vertex whose only edge is a self-loop is a singleton
// component and is excluded. A nil graph yields an empty slice.
func NonIsolated(g *core.Graph) []string {
	out := []string{}
	if g == nil {
		return out
	}
	var keep []int32
	sweep(g, func(members []int32) {
		if len(members) >= 2 {
			keep = append(keep, members...)
		}
	})
	slices.Sort(keep)
	for _, i := range keep {
		out = append(out, g.ID(int(i)))
	}

	return out
}

// toIDs converts indices to IDs; sorting indices sorts IDs.
func toIDs(g *core.Graph, members []int32) []string {
	idx := slices.Clone(members)
	slices.Sort(idx)
	ids := make([]string, len(idx))
	for k, i := range idx {
		ids[k] = g.ID(int(i))
	}

	return ids
}
