// Package gridgraph turns a 2D grid of cell costs into a search graph.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid. Cells below WallThreshold
//     are walls; any other value is the cost of stepping into the cell.
//   - ToGraph builds a weighted *core.Graph[string] over the open cells with
//     IDs "x,y", ready for bfs, dfs and astar.
//   - Heuristic gives A* an admissible Manhattan (Conn4) or octile (Conn8)
//     estimate.
//   - ConnectedComponents and Reachable answer region questions without a
//     search.
//   - ParseMaze and Maze.Render read and draw text mazes.
//
// Complexity:
//
//   - ToGraph:             O(W×H×d), Memory: O(W×H×d)   (d = 4 or 8).
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadSymbol, ErrMarker: malformed text maze.
//   - ErrBlocked: a requested cell is outside the grid or a wall.
package gridgraph
