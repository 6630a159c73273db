// SPDX-License-Identifier: MIT
// Package: pathfuzz/builder
//
// impl_cycle.go — Cycle(n): vertices idFn(0..n-1), arcs i→(i+1)%n.
//
// n ≥ 3, else ErrTooFewVertices. The closing arc (n-1)→0 is emitted last.
// Search engines must terminate on this fixture, which is why it exists.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfuzz/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a directed ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodCycle, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := link(g, cfg, methodCycle, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}
