// Package builder generates synthetic undirected topologies for hopreach:
// paths, cycles, stars, complete graphs and Erdős–Rényi-style random graphs.
//
// Every topology is a Constructor. Constructors never touch a graph directly;
// they emit vertices and edges into a sink, so the same constructor can either
// fill a core.Builder (BuildGraph) or produce the edge records a file would
// contain (Generate, then edgelist.Write).
//
// Vertex identifiers come from an IDFn (decimal by default, see WithIDScheme).
// Stochastic constructors need a random source from WithSeed or WithRand and
// fail with ErrNeedRandSource otherwise; for a fixed seed the output is
// identical across runs because pairs are tried in a fixed order.
//
// Errors:
//
//	ErrTooFewVertices      n below the topology's minimum
//	ErrInvalidProbability  p outside [0, 1]
//	ErrNeedRandSource      stochastic constructor without a generator
//	ErrOptionViolation     nil option value (WithIDScheme(nil), WithRand(nil))
//	ErrConstructFailed     nil constructor passed to BuildGraph / Generate
package builder
