package stats_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hopreach/core"
	"github.com/katalvlaran/hopreach/stats"
)

// ExampleAggregator_DepthProfile ranks the vertices of a five-vertex path.
// Depths 1 and 3 are ties broken by identifier.
func ExampleAggregator_DepthProfile() {
	g := core.FromEdges([][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}, {"d", "e"}})

	agg, err := stats.New(stats.WithSeed(1), stats.WithMaxDepth(3), stats.WithLogger(quiet))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	rows, err := agg.DepthProfile(context.Background(), g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range rows {
		fmt.Printf("%d %s %.2f\n", r.Depth, r.Vertex, r.Proportion)
	}
	// Output:
	// 1 b 0.60
	// 2 c 1.00
	// 3 b 1.00
}
