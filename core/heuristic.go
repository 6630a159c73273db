package core

import (
	"fmt"
	"math"
)

// Estimator yields a remaining-cost estimate for a vertex. ok is false when
// the estimator has no value for id.
type Estimator[N comparable] interface {
	Estimate(id N) (h float64, ok bool)
}

// Heuristic is a table of non-negative remaining-cost estimates to a fixed goal.
// Admissibility (never overestimating) is the caller's responsibility.
type Heuristic[N comparable] map[N]float64

// Estimate implements Estimator.
func (h Heuristic[N]) Estimate(id N) (float64, bool) {
	v, ok := h[id]

	return v, ok
}

// Validate rejects negative or NaN entries with ErrBadHeuristic.
func (h Heuristic[N]) Validate() error {
	for id, v := range h {
		if math.IsNaN(v) || v < 0 {
			return fmt.Errorf("%w: h(%v)=%g", ErrBadHeuristic, id, v)
		}
	}

	return nil
}

// Covers reports the vertices of g that have no entry in h.
// An empty result means the table can drive a search over all of g.
func (h Heuristic[N]) Covers(g *Graph[N]) []N {
	var missing []N
	for _, v := range g.Vertices() {
		if _, ok := h[v]; !ok {
			missing = append(missing, v)
		}
	}

	return missing
}

// HeuristicFunc adapts a plain function to Estimator; it always reports ok.
type HeuristicFunc[N comparable] func(id N) float64

// Estimate implements Estimator.
func (f HeuristicFunc[N]) Estimate(id N) (float64, bool) { return f(id), true }

// ZeroHeuristic estimates 0 everywhere, which turns A* into uniform-cost search.
type ZeroHeuristic[N comparable] struct{}

// Estimate implements Estimator.
func (ZeroHeuristic[N]) Estimate(N) (float64, bool) { return 0, true }
