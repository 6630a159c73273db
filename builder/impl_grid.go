// SPDX-License-Identifier: MIT
// Package: pathfuzz/builder
//
// impl_grid.go — Grid(rows, cols): a 4-neighborhood lattice with IDs "r,c".
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Vertices in row-major order; IDs use the fixed "r,c" scheme, not cfg.idFn.
//   • For each cell, emit Right (r,c+1) then Down (r+1,c) when present.
//     WithBidirectional adds Left and Up as mirrors.
//
// GridManhattan supplies the matching A* estimate.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathfuzz/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// GridID returns the vertex ID Grid assigns to cell (r, c).
func GridID(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := GridID(r, c)
				if err := g.AddVertex(id); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, id, err)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := link(g, cfg, methodGrid, u, GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(g, cfg, methodGrid, u, GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// GridManhattan returns unit·(|r-goalR| + |c-goalC|) for every cell of a
// rows×cols grid. It is admissible whenever every arc costs at least unit.
func GridManhattan(rows, cols, goalR, goalC int, unit float64) core.Heuristic[string] {
	h := make(core.Heuristic[string], rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			d := math.Abs(float64(r-goalR)) + math.Abs(float64(c-goalC))
			h[GridID(r, c)] = unit * d
		}
	}

	return h
}
