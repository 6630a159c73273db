package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/pathfuzz/core"
	"github.com/katalvlaran/pathfuzz/dfs"
)

// ExampleSearch contrasts the two documented push orders on the demo graph.
func ExampleSearch() {
	g, _ := core.FromAdjacency(map[string][]string{
		"A": {"B", "C"},
		"B": {"D", "E"},
		"C": {"F"},
		"D": {},
		"E": {"F"},
		"F": {},
	})

	last, _ := dfs.Search(g, "A", "F")
	first, _ := dfs.Search(g, "A", "F", dfs.WithDeclaredOrderFirst())

	fmt.Println("declared:", last.Path, last.Order)
	fmt.Println("reversed:", first.Path, first.Order)
	// Output:
	// declared: [A C F] [A C F]
	// reversed: [A B E F] [A B D E F]
}
