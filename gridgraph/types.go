// Package gridgraph defines core types, options, and sentinel errors
// for treating a 2D cost grid as a search graph.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadSymbol indicates a maze character outside the accepted set.
	ErrBadSymbol = errors.New("gridgraph: unknown maze symbol")
	// ErrMarker indicates a missing or repeated start (S) or goal (G) marker.
	ErrMarker = errors.New("gridgraph: maze needs exactly one S and one G")
	// ErrBlocked indicates a coordinate that is out of bounds or a wall.
	ErrBlocked = errors.New("gridgraph: cell is outside the grid or a wall")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "4" or "8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "8"
	}

	return "4"
}

// Cell represents a single grid cell with its coordinates and stored value.
type Cell struct {
	X, Y  int // Coordinates within the grid
	Value int // Entry cost of the cell; below WallThreshold it is a wall
}

// GridOptions contains tunable parameters for grid conversion.
type GridOptions struct {
	// WallThreshold is the smallest value that is passable. Cells below it are walls.
	WallThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// WallThreshold=1 (0 is a wall), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		WallThreshold: 1,
		Conn:          Conn4,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// CellValues[y][x] holds the entry cost of (x, y); stepping into a cell costs
// its value, and a diagonal step costs value·√2.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	WallThreshold   int
	neighborOffsets [][2]int
}
