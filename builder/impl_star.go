// SPDX-License-Identifier: MIT
// Package: pathfuzz/builder
//
// impl_star.go - Star(n): hub "Center" plus leaves idFn(1..n-1), spokes Center→leaf.
//
// n ≥ 2, else ErrTooFewVertices. With WithBidirectional the leaves can reach
// the hub as well.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfuzz/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2

	// CenterVertexID is the fixed hub ID used by Star.
	CenterVertexID = "Center"
)

// Star returns a Constructor that builds a star with n vertices.
func Star(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, CenterVertexID, err)
		}
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := g.AddVertex(leaf); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, leaf, err)
			}
			if err := link(g, cfg, methodStar, CenterVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
