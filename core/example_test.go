package core_test

import (
	"fmt"

	"github.com/katalvlaran/hopreach/core"
)

// ExampleBuilder demonstrates the build-then-freeze flow.
func ExampleBuilder() {
	b := core.NewBuilder()
	b.AddEdge("alice", "bob")
	b.AddEdge("bob", "carol")
	b.AddEdge("carol", "alice")

	g := b.Build()
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Neighbors of bob:", g.Neighbors("bob"))
	fmt.Println("Edges:", g.EdgeCount())

	// Output:
	// Vertices: [alice bob carol]
	// Neighbors of bob: [alice carol]
	// Edges: 3
}

// ExampleBuilder_Snapshot shows cumulative freezing.
func ExampleBuilder_Snapshot() {
	b := core.NewBuilder()
	b.AddEdge("A", "B")
	fmt.Println(b.Snapshot().VertexCount())
	b.AddEdge("C", "D")
	fmt.Println(b.Snapshot().VertexCount())

	// Output:
	// 2
	// 4
}
