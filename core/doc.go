// Package core provides the adjacency store shared by every hopreach analysis:
// an undirected, unweighted graph keyed by opaque string vertex IDs.
//
// The package follows a build-then-freeze discipline:
//
//   - A Builder accepts edge insertions (AddEdge, AddVertex). It is safe for
//     concurrent writers; a single mutex serialises them.
//   - Build (or Snapshot) freezes the accumulated adjacency into an immutable
//     *Graph. A Graph has no mutating methods, so any number of goroutines may
//     read it without locking.
//
// Representation
//
//	Vertex IDs are sorted once at freeze time and interned to dense indices
//	0..V-1. Adjacency is stored in CSR form (offsets + int32 targets) with each
//	neighbor list sorted ascending, so every query is deterministic:
//	Vertices(), Neighbors() and NeighborIndices() always return sorted results.
//
// Invariants
//
//   - Symmetry: v ∈ adj[u] ⇔ u ∈ adj[v] for every inserted pair.
//   - Neighbor sets are duplicate-free; repeated AddEdge calls are idempotent.
//   - A vertex exists only once it has been referenced by AddEdge or AddVertex.
//     Queries for unknown IDs report degree 0 and no neighbors; unknown IDs are
//     never counted by VertexCount.
//   - Self-loops are a Builder policy (WithSelfLoops). When allowed, AddEdge(x, x)
//     stores x ∈ adj[x]; when disallowed, x is registered but the edge is dropped.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//	Builder.AddEdge      O(1) amortized
//	Builder.Build        O(V log V + E log d)
//	Graph.Degree         O(1) after an O(1) index lookup
//	Graph.HasEdge        O(log d)
//	Graph.Neighbors      O(d) (allocates)
//	Graph.NeighborIndices O(1) (shared, read-only)
package core
