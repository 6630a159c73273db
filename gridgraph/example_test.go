package gridgraph_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pathfuzz/astar"
	"github.com/katalvlaran/pathfuzz/gridgraph"
)

// ExampleParseMaze finds the cheapest route around an expensive cell.
func ExampleParseMaze() {
	m, _ := gridgraph.ParseMaze(strings.NewReader("S9G\n.1.\n"), gridgraph.DefaultGridOptions())
	g, _ := m.Grid.ToGraph()
	res, _ := astar.Search(g, m.StartID(), m.GoalID(), m.Grid.Heuristic(m.Goal.X, m.Goal.Y))

	fmt.Print(m.Render(res.Path))
	fmt.Println("cost", res.Cost)
	// Output:
	// S9G
	// ***
	// cost 4
}
