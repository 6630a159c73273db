// SPDX-License-Identifier: MIT
// Package: pathfuzz/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi-like directed arcs.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices), 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - 0 < p < 1 needs an RNG (else ErrNeedRandSource); p ∈ {0,1} is deterministic.
//   - Trials run over ordered pairs (i,j), i asc then j asc; i == j is tried
//     only when g.Looped().
//   - The trial for (i,j) draws from the RNG before the cost does, so a fixed
//     seed reproduces both topology and costs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfuzz/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor that samples each admissible arc
// independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if !(p >= 0 && p <= 1) {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addVertices(g, cfg, methodRandomSparse, n); err != nil {
			return err
		}

		loops := g.Looped()
		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := 0; j < n; j++ {
				if i == j && !loops {
					continue
				}
				var keep bool
				switch {
				case p == 0:
					keep = false
				case p == 1:
					keep = true
				default:
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := link(g, cfg, methodRandomSparse, u, cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
