package gridgraph

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathfuzz/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		WallThreshold:   opts.WallThreshold,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Open reports whether (x,y) is in bounds and not a wall.
func (gg *GridGraph) Open(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.WallThreshold
}

// CellAt returns the open cell at (x,y), or ErrBlocked.
func (gg *GridGraph) CellAt(x, y int) (Cell, error) {
	if !gg.Open(x, y) {
		return Cell{}, fmt.Errorf("%w: %d,%d", ErrBlocked, x, y)
	}

	return Cell{X: x, Y: y, Value: gg.CellValues[y][x]}, nil
}

// NeighborOffsets returns the precomputed neighbor offsets, N first, clockwise.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// ID formats the vertex identifier "x,y" of cell (x,y).
func ID(x, y int) string {
	return strconv.Itoa(x) + "," + strconv.Itoa(y)
}

// ParseID is the inverse of ID.
func ParseID(id string) (x, y int, ok bool) {
	xs, ys, found := strings.Cut(id, ",")
	if !found {
		return 0, 0, false
	}
	x, errX := strconv.Atoi(xs)
	y, errY := strconv.Atoi(ys)
	if errX != nil || errY != nil {
		return 0, 0, false
	}

	return x, y, true
}

// step reports whether a move by d from (x,y) is allowed and its cost.
// Diagonal moves may not cut a wall corner.
func (gg *GridGraph) step(x, y int, d [2]int) (float64, bool) {
	nx, ny := x+d[0], y+d[1]
	if !gg.Open(nx, ny) {
		return 0, false
	}
	cost := float64(gg.CellValues[ny][nx])
	if d[0] != 0 && d[1] != 0 {
		if !gg.Open(x+d[0], y) || !gg.Open(x, y+d[1]) {
			return 0, false
		}
		cost *= math.Sqrt2
	}

	return cost, true
}

// ToGraph converts the open cells into a weighted, directed *core.Graph[string].
// Vertices are added row by row with IDs from ID; arcs follow NeighborOffsets
// order, so searches break ties N, (NE,) E, (SE,) S, (SW,) W, (NW).
// Walls are not vertices.
// Complexity: O(W×H×d) time and memory.
func (gg *GridGraph) ToGraph() (*core.Graph[string], error) {
	g := core.NewGraph[string](core.WithWeighted())
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.Open(x, y) {
				if err := g.AddVertex(ID(x, y)); err != nil {
					return nil, fmt.Errorf("gridgraph: add vertex %s: %w", ID(x, y), err)
				}
			}
		}
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Open(x, y) {
				continue
			}
			for _, d := range gg.neighborOffsets {
				cost, ok := gg.step(x, y, d)
				if !ok {
					continue
				}
				if err := g.AddEdge(ID(x, y), ID(x+d[0], y+d[1]), cost); err != nil {
					return nil, fmt.Errorf("gridgraph: add arc %s→%s: %w", ID(x, y), ID(x+d[0], y+d[1]), err)
				}
			}
		}
	}

	return g, nil
}

// minCost is the cheapest open cell value, or 0 on an all-wall grid.
func (gg *GridGraph) minCost() float64 {
	best := math.Inf(1)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.Open(x, y) && float64(gg.CellValues[y][x]) < best {
				best = float64(gg.CellValues[y][x])
			}
		}
	}
	if math.IsInf(best, 1) || best < 0 {
		return 0
	}

	return best
}

// Heuristic returns an admissible estimate of the remaining cost to (gx, gy):
// the Manhattan distance under Conn4 or the octile distance under Conn8,
// scaled by the cheapest open cell. IDs that ParseID rejects estimate 0.
func (gg *GridGraph) Heuristic(gx, gy int) core.HeuristicFunc[string] {
	unit := gg.minCost()
	conn := gg.Conn

	return func(id string) float64 {
		x, y, ok := ParseID(id)
		if !ok {
			return 0
		}
		dx := math.Abs(float64(x - gx))
		dy := math.Abs(float64(y - gy))
		if conn == Conn8 {
			return unit * (math.Max(dx, dy) + (math.Sqrt2-1)*math.Min(dx, dy))
		}

		return unit * (dx + dy)
	}
}

// index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
