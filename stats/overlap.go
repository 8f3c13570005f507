package stats

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/hopreach/core"
)

// Overlap carries the two sums behind OverlapRatio.
type Overlap struct {
	Shared    int // Σ |adj(v) ∩ reach(v, 2)|
	Followers int // Σ |reach(v, 2)|
	Samples   int
}

// Ratio returns Shared / Followers, or 0 when Followers is 0.
func (o Overlap) Ratio() float64 { return proportion(o.Shared, o.Followers) }

// OverlapRatio samples the graph and, over the sample, divides the number of
// direct neighbors found inside each vertex's 2-hop neighbourhood by the total
// size of those neighbourhoods. The result lies in [0, 1]; 0 for an empty graph.
func (a *Aggregator) OverlapRatio(ctx context.Context, g *core.Graph) (float64, error) {
	o, err := a.Overlap(ctx, g)
	if err != nil {
		return 0, err
	}

	return o.Ratio(), nil
}

// Overlap is OverlapRatio returning the underlying sums.
func (a *Aggregator) Overlap(ctx context.Context, g *core.Graph) (Overlap, error) {
	if g == nil {
		return Overlap{}, ErrGraphNil
	}
	order := a.draw(g)
	results, err := a.traverse(ctx, g, order, OverlapDepth, "overlap")
	if err != nil {
		return Overlap{}, err
	}

	o := Overlap{Samples: len(order)}
	for i, v := range order {
		res := results[i]
		for _, n := range g.Neighbors(v) {
			if res.Contains(n) {
				o.Shared++
			}
		}
		o.Followers += res.Len()
	}

	a.log.Info("stats: overlap complete",
		slog.Int("samples", o.Samples),
		slog.Int("shared", o.Shared),
		slog.Int("followers", o.Followers),
	)

	return o, nil
}
