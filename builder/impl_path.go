// SPDX-License-Identifier: MIT
// Package: pathfuzz/builder
//
// impl_path.go - Path(n): vertices idFn(0..n-1), arcs (i-1)→i for i=1..n-1.
//
// n ≥ 2, else ErrTooFewVertices. Arc order is by increasing i.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfuzz/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple directed path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodPath, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := link(g, cfg, methodPath, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
