package stats

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/hopreach/bfs"
	"github.com/katalvlaran/hopreach/core"
	"github.com/katalvlaran/hopreach/sample"
)

// DepthProfile samples the graph once and, for each depth 1..MaxDepth in
// ascending order, reports the sampled vertex that reaches the largest share
// of all vertices. Ties go to the lexicographically smallest vertex ID.
// An empty graph yields one row per depth with Vertex "" and zero values.
func (a *Aggregator) DepthProfile(ctx context.Context, g *core.Graph) ([]DepthBest, error) {
	started := time.Now()
	dm, order, err := a.Distances(ctx, g)
	if err != nil {
		return nil, err
	}

	rows := make([]DepthBest, 0, a.maxDepth)
	values := make([]float64, 0, len(order))
	for depth := 1; depth <= a.maxDepth; depth++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		vertex, best := Best(dm, depth)

		values = values[:0]
		for _, v := range order {
			values = append(values, dm[v][depth-1])
		}
		mean, sd := meanStdDev(values)

		row := DepthBest{
			Depth:      depth,
			Vertex:     vertex,
			Proportion: best,
			Mean:       mean,
			StdDev:     sd,
			Samples:    len(values),
		}
		rows = append(rows, row)
		a.log.Debug("stats: depth summarised",
			slog.Int("depth", depth),
			slog.String("vertex", vertex),
			slog.Float64("proportion", best),
			slog.Float64("mean", mean),
		)
	}

	a.log.Info("stats: depth profile complete",
		slog.Int("vertices", g.VertexCount()),
		slog.Int("samples", len(order)),
		slog.Int("max_depth", a.maxDepth),
		slog.Duration("took", time.Since(started)),
	)

	return rows, nil
}

// Distances builds the DistanceMap for one sample and returns it with the
// sample order. For every depth, each sampled vertex appends exactly one value.
//
// Each vertex is traversed once with the bound set to MaxDepth; its value at
// depth d is the number of vertices found within d hops, which equals
// |reach(v, d)| because the frontier is FIFO.
func (a *Aggregator) Distances(ctx context.Context, g *core.Graph) (DistanceMap, []string, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	order := a.draw(g)
	results, err := a.traverse(ctx, g, order, a.maxDepth, "profile", bfs.WithCountOnly())
	if err != nil {
		return nil, nil, err
	}

	total := g.VertexCount()
	dm := make(DistanceMap, len(order))
	for depth := 1; depth <= a.maxDepth; depth++ {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		for i, v := range order {
			dm[v] = append(dm[v], proportion(results[i].WithinDepth(depth), total))
		}
	}

	return dm, order, nil
}

// Best returns the vertex with the largest proportion at depth (1-based) and
// that proportion. Ties go to the lexicographically smallest ID; vertices with
// no value at depth are ignored. An empty map yields ("", 0).
func Best(dm DistanceMap, depth int) (string, float64) {
	var (
		bestID string
		best   float64
		found  bool
	)
	for v, props := range dm {
		if depth < 1 || depth > len(props) {
			continue
		}
		p := props[depth-1]
		if !found || p > best || (p == best && v < bestID) {
			bestID, best, found = v, p, true
		}
	}

	return bestID, best
}

// draw takes one sample under rngMu.
func (a *Aggregator) draw(g *core.Graph) []string {
	if a.rng == nil {
		return sample.Sample(g, a.sampleSize)
	}
	a.rngMu.Lock()
	defer a.rngMu.Unlock()

	return sample.Sample(g, a.sampleSize, sample.WithRand(a.rng))
}

// traverse runs one bounded search per vertex, at most a.workers at a time.
// results[i] belongs to vertices[i], so the outcome is independent of
// scheduling. The context is checked before each vertex is started.
func (a *Aggregator) traverse(ctx context.Context, g *core.Graph, vertices []string, depth int, analysis string, opts ...bfs.Option) ([]*bfs.Result, error) {
	results := make([]*bfs.Result, len(vertices))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(a.workers)

	for i, v := range vertices {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			start := time.Now()
			res, err := bfs.Reach(g, v, depth, append([]bfs.Option{bfs.WithContext(egCtx)}, opts...)...)
			if err != nil {
				return err
			}
			a.metrics.ObserveTraversal(analysis, res.Len(), time.Since(start))
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	// break above leaves nil slots only when the parent context ended
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// proportion guards the empty-graph division.
func proportion(n, total int) float64 {
	if total == 0 {
		return 0
	}

	return float64(n) / float64(total)
}

// meanStdDev wraps stat.MeanStdDev, mapping the undefined cases to 0.
func meanStdDev(x []float64) (mean, sd float64) {
	switch len(x) {
	case 0:
		return 0, 0
	case 1:
		return x[0], 0
	default:
		return stat.MeanStdDev(x, nil)
	}
}
