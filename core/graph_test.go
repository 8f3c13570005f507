package core_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hopreach/core"
)

// fixture is the five-vertex graph A–B, A–C, B–D, C–E, D–E.
func fixture() *core.Graph {
	return core.FromEdges([][2]string{
		{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "E"}, {"D", "E"},
	})
}

func TestBuilder_AddEdgeCreatesBothEndpoints(t *testing.T) {
	b := core.NewBuilder()
	b.AddEdge("X", "Y")
	assert.Equal(t, 2, b.VertexCount())

	g := b.Build()
	assert.True(t, g.HasVertex("X"))
	assert.True(t, g.HasVertex("Y"))
	assert.Equal(t, []string{"Y"}, g.Neighbors("X"))
	assert.Equal(t, []string{"X"}, g.Neighbors("Y"))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestBuilder_Idempotent(t *testing.T) {
	b := core.NewBuilder()
	b.AddEdge("A", "B")
	b.AddEdge("A", "B")
	b.AddEdge("B", "A")
	g := b.Build()

	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 1, g.Degree("A"))
	assert.Equal(t, 1, g.Degree("B"))
}

func TestBuilder_BuildResets(t *testing.T) {
	b := core.NewBuilder()
	b.AddEdge("A", "B")
	first := b.Build()
	assert.Equal(t, 0, b.VertexCount(), "builder must be empty after Build")

	b.AddEdge("C", "D")
	second := b.Build()
	assert.False(t, second.HasVertex("A"))
	assert.False(t, first.HasVertex("C"), "frozen graph must not see later inserts")
}

func TestBuilder_SnapshotKeepsState(t *testing.T) {
	b := core.NewBuilder()
	b.AddEdge("A", "B")
	snap := b.Snapshot()
	b.AddEdge("B", "C")
	later := b.Snapshot()

	assert.Equal(t, 2, snap.VertexCount())
	assert.Equal(t, 3, later.VertexCount())
	assert.False(t, snap.HasEdge("B", "C"))
	assert.True(t, later.HasEdge("C", "B"))
}

func TestBuilder_SelfLoopPolicy(t *testing.T) {
	allowed := core.NewBuilder()
	allowed.AddEdge("X", "X")
	g := allowed.Build()
	assert.True(t, g.HasEdge("X", "X"))
	assert.Equal(t, 1, g.Degree("X"))
	assert.Equal(t, 1, g.Stats().SelfLoops)

	denied := core.NewBuilder(core.WithSelfLoops(false))
	denied.AddEdge("X", "X")
	assert.Equal(t, 1, denied.DroppedLoops())
	g = denied.Build()
	assert.True(t, g.HasVertex("X"), "vertex is registered even when the loop is dropped")
	assert.Equal(t, 0, g.Degree("X"))
	assert.Equal(t, 0, g.EdgeCount())
}

func TestGraph_UnknownVertex(t *testing.T) {
	g := fixture()
	assert.False(t, g.HasVertex("Z"))
	assert.Equal(t, 0, g.Degree("Z"))
	assert.Empty(t, g.Neighbors("Z"))
	assert.False(t, g.HasEdge("A", "Z"))
	assert.Equal(t, 5, g.VertexCount(), "queries must not grow the vertex universe")
}

func TestGraph_SortedQueries(t *testing.T) {
	g := core.FromEdges([][2]string{{"m", "z"}, {"m", "a"}, {"m", "k"}})
	assert.Equal(t, []string{"a", "k", "m", "z"}, g.Vertices())
	assert.Equal(t, []string{"a", "k", "z"}, g.Neighbors("m"))

	i, ok := g.Index("m")
	require.True(t, ok)
	assert.Equal(t, "m", g.ID(i))
	nbrs := g.NeighborIndices(i)
	assert.Len(t, nbrs, 3)
	assert.Equal(t, len(nbrs), cap(nbrs), "capacity must be clipped")
}

func TestGraph_Stats(t *testing.T) {
	b := core.NewBuilder()
	b.AddEdge("A", "B")
	b.AddEdge("A", "C")
	b.AddVertex("lonely")
	st := b.Build().Stats()

	assert.Equal(t, core.GraphStats{Vertices: 4, Edges: 2, SelfLoops: 0, Isolated: 1, MaxDegree: 2}, st)
}

// TestGraph_Symmetry checks v ∈ adj[u] ⇔ u ∈ adj[v] on a random multigraph input.
func TestGraph_Symmetry(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	b := core.NewBuilder()
	for k := 0; k < 2000; k++ {
		b.AddEdge(fmt.Sprintf("n%d", rnd.Intn(300)), fmt.Sprintf("n%d", rnd.Intn(300)))
	}
	g := b.Build()

	for _, u := range g.Vertices() {
		for _, v := range g.Neighbors(u) {
			require.True(t, g.HasEdge(v, u), "missing mirror %s→%s", v, u)
		}
	}
}

func TestGraph_Empty(t *testing.T) {
	g := core.NewBuilder().Build()
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Empty(t, g.Vertices())
	assert.Equal(t, core.GraphStats{}, g.Stats())
}
