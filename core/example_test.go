package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathfuzz/core"
)

// ExampleFromAdjacencyList builds the blind-search demo graph in declared order.
func ExampleFromAdjacencyList() {
	g, err := core.FromAdjacencyList([]core.Adjacency[string]{
		{Node: "A", Arcs: []core.Arc[string]{{To: "B"}, {To: "C"}}},
		{Node: "B", Arcs: []core.Arc[string]{{To: "D"}, {To: "E"}}},
		{Node: "C", Arcs: []core.Arc[string]{{To: "F"}}},
		{Node: "D"},
		{Node: "E", Arcs: []core.Arc[string]{{To: "F"}}},
		{Node: "F"},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Vertices())
	nbrs, _ := g.NeighborIDs("B")
	fmt.Println(nbrs)
	// Output:
	// [A B C D E F]
	// [D E]
}

// ExampleFromAdjacency shows that an undeclared neighbor is a construction error.
func ExampleFromAdjacency() {
	_, err := core.FromAdjacency(map[string][]string{"A": {"ghost"}})
	fmt.Println(errors.Is(err, core.ErrVertexNotFound))
	// Output:
	// true
}
