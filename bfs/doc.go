// Package bfs provides depth-bounded breadth-first reachability over a
// frozen core.Graph.
//
// What
//
//   - Reach(g, start, d) returns every vertex within d hops of start,
//     start itself included at depth 0.
//   - The Result carries:
//   - Order: FIFO visit sequence
//   - Depth: vertex → shortest hop distance from start
//   - Layers: number of vertices at each exact hop distance
//   - WithinDepth(k) answers |reach(g, start, k)| for every k ≤ d from a
//     single traversal, because a FIFO frontier assigns true shortest
//     distances.
//
// Traversal order
//
//	The frontier is a queue, never a stack. A stack-based walk bounded by
//	depth can miss vertices that a longer branch reached first with a larger
//	depth; FIFO order makes the hop bound exact.
//
// Contract
//
//   - Reach(g, v, 0) == {v}
//   - Reach(g, v, d) ⊆ Reach(g, v, d+1)
//   - Unknown start → {start}
//   - Self-loops and 2-cycles terminate (visited guard).
//
// Options
//
//   - WithContext(ctx):  cancellation, checked once per dequeue.
//   - WithCountOnly():   keep Layers only; Order and Depth stay nil.
//   - WithOnVisit(fn):   hook per dequeued vertex; an error aborts.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V); the visited set is pooled across calls.
//
// Concurrency
//
//	Reach only reads the Graph, so any number of calls may run in parallel
//	on the same frozen instance.
package bfs
