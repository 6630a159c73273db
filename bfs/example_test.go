package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/pathfuzz/bfs"
	"github.com/katalvlaran/pathfuzz/core"
)

// ExampleSearch finds the fewest-hop route in the blind-search demo graph.
func ExampleSearch() {
	g, _ := core.FromAdjacency(map[string][]string{
		"A": {"B", "C"},
		"B": {"D", "E"},
		"C": {"F"},
		"D": {},
		"E": {"F"},
		"F": {},
	})

	res, err := bfs.Search(g, "A", "F")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.Hops())
	// Output:
	// [A C F] 2
}

// ExampleSearch_notFound shows that an unreachable goal is not an error.
func ExampleSearch_notFound() {
	g, _ := core.FromAdjacency(map[int][]int{1: {2}, 2: {}, 3: {}})

	res, err := bfs.Search(g, 1, 3)
	fmt.Println(res.Found, res.Path, err)
	// Output:
	// false [] <nil>
}
