package degree_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/hopreach/core"
	"github.com/katalvlaran/hopreach/degree"
)

func TestExtended_Fixture(t *testing.T) {
	// A–B, A–C, B–D, C–E, D–E: a 5-cycle, every vertex has degree 2
	g := core.FromEdges([][2]string{
		{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "E"}, {"D", "E"},
	})
	for _, v := range g.Vertices() {
		assert.Equal(t, 4, degree.Extended(g, v), v)
	}
}

func TestExtended_Star(t *testing.T) {
	b := core.NewBuilder()
	for i := 0; i < 5; i++ {
		b.AddEdge("hub", fmt.Sprintf("l%d", i))
	}
	g := b.Build()

	assert.Equal(t, 5, degree.Extended(g, "hub"), "leaves have degree 1 and add nothing")
	assert.Equal(t, 1+4, degree.Extended(g, "l0"), "leaf sees hub plus hub's other leaves")
}

// TestExtended_TriangleDoubleCounts documents the non-deduplicated sum:
// in a triangle each vertex reaches the two others, yet ext = 2 + 1 + 1.
func TestExtended_TriangleDoubleCounts(t *testing.T) {
	g := core.FromEdges([][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}})
	assert.Equal(t, 4, degree.Extended(g, "A"))
}

func TestExtended_EdgeCases(t *testing.T) {
	assert.Equal(t, 0, degree.Extended(nil, "A"))

	b := core.NewBuilder()
	b.AddVertex("solo")
	b.AddEdge("loop", "loop")
	g := b.Build()
	assert.Equal(t, 0, degree.Extended(g, "solo"))
	assert.Equal(t, 0, degree.Extended(g, "missing"))
	assert.Equal(t, 1, degree.Extended(g, "loop"), "self-loop: degree 1, neighbor (itself) adds 0")
}

func TestTableAndTop(t *testing.T) {
	g := core.FromEdges([][2]string{{"A", "B"}, {"A", "C"}, {"A", "D"}, {"B", "C"}})
	table := degree.Table(g)
	assert.Equal(t, map[string]int{"A": 5, "B": 5, "C": 5, "D": 3}, table)

	top := degree.Top(table, 3)
	assert.Equal(t, []degree.Entry{{Vertex: "A", Value: 5}, {Vertex: "B", Value: 5}, {Vertex: "C", Value: 5}}, top)
	assert.Len(t, degree.Top(table, 0), 4)
	assert.Empty(t, degree.Table(nil))
}
