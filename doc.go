// Package hopreach estimates how reachability in a large undirected social
// graph grows with hop distance.
//
// The module is organised as small packages, leaves first:
//
//	core/        build-then-freeze adjacency store (Builder → immutable Graph)
//	sample/      uniform vertex sampling with an injected random source
//	bfs/         bounded-depth FIFO reachability (Reach, ReachCount)
//	degree/      extended degree: deg(v) + Σ (deg(n) − 1)
//	components/  connected components and the non-isolated vertex set
//	stats/       depth profile and neighbor / 2-hop overlap over a sample
//	batch/       shuffled fixed-size batches over the raw edge stream
//	edgelist/    edge-list reading and writing
//	report/      text output of profiles, overlaps and batch dumps
//	config/      defaults → YAML → HOPREACH_* environment, validated
//	metrics/     prometheus collectors
//	builder/     synthetic topologies (path, cycle, star, complete, G(n,p))
//	cmd/hopreach the command-line front end
//
// A typical run loads an edge list into a core.Graph, hands it to a
// stats.Aggregator, which samples vertices and runs one bounded traversal per
// sampled vertex, and prints the per-depth winner:
//
//	g, _, err := edgelist.LoadFile(ctx, "edges.txt", nil)
//	agg, err := stats.New(stats.WithSeed(1), stats.WithWorkers(4))
//	rows, err := agg.DepthProfile(ctx, g)
//	err = report.New(os.Stdout).Profile(rows)
package hopreach
