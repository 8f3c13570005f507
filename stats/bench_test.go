package stats_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/hopreach/builder"
	"github.com/katalvlaran/hopreach/core"
	"github.com/katalvlaran/hopreach/stats"
)

func benchGraph(b *testing.B) *core.Graph {
	b.Helper()
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(5000, 0.0008))
	if err != nil {
		b.Fatal(err)
	}

	return g
}

func BenchmarkDepthProfile(b *testing.B) {
	g := benchGraph(b)
	for _, workers := range []int{1, 4} {
		agg, err := stats.New(stats.WithSeed(1), stats.WithWorkers(workers), stats.WithLogger(quiet))
		if err != nil {
			b.Fatal(err)
		}
		b.Run(map[int]string{1: "sequential", 4: "workers4"}[workers], func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := agg.DepthProfile(context.Background(), g); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkOverlapRatio(b *testing.B) {
	g := benchGraph(b)
	agg, err := stats.New(stats.WithSeed(1), stats.WithLogger(quiet))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := agg.OverlapRatio(context.Background(), g); err != nil {
			b.Fatal(err)
		}
	}
}
