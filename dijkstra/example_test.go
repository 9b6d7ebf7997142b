package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/graphplay/dijkstra"
	"github.com/katalvlaran/graphplay/graph"
	"github.com/katalvlaran/graphplay/trace"
)

// ExampleDijkstra computes distances on a small undirected graph and prints
// one shortest path.
func ExampleDijkstra() {
	snap, _ := graph.NewSnapshot(
		[]graph.Vertex{{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"}},
		[]graph.EdgeSpec{
			{Source: "A", Target: "B", Weight: 4},
			{Source: "A", Target: "C", Weight: 1},
			{Source: "C", Target: "B", Weight: 2},
			{Source: "B", Target: "D", Weight: 1},
		},
		false,
	)
	rec := trace.NewRecorder()
	res, _ := dijkstra.Dijkstra(snap, rec)

	fmt.Println("dist(D):", res.Dist["D"])
	fmt.Println("path:", res.Path("D"))
	fmt.Println("ops:", rec.Len())
	// Output:
	// dist(D): 4
	// path: [A C B D]
	// ops: 16
}
