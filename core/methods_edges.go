// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges grouped by source in vertex insertion order,
//     each group in declaration order.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"math"
)

// AddEdge appends the arc from→to with the given cost to from's outgoing
// list. Missing endpoints are created, so declaration order is preserved
// even when edges are added before their vertices.
//
// Steps:
//  1. Validate cost (finite, non-negative; zero on unweighted graphs) and loops.
//  2. Lock mu, ensure both endpoints exist.
//  3. Reject a parallel edge unless multi-edges are enabled.
//  4. Append the edge to adjacency[from].
//
// Complexity: O(1) amortized, O(deg(from)) when multi-edges are disabled.
func (g *Graph[N]) AddEdge(from, to N, cost float64) error {
	if err := g.checkCost(cost); err != nil {
		return fmt.Errorf("%w: %v→%v cost=%g", err, from, to, cost)
	}
	if from == to && !g.cfg.allowLoops {
		return fmt.Errorf("%w: %v", ErrLoopNotAllowed, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)

	if !g.cfg.allowMulti && g.hasEdgeLocked(from, to) {
		return fmt.Errorf("%w: %v→%v", ErrMultiEdgeNotAllowed, from, to)
	}

	g.adjacency[from] = append(g.adjacency[from], Edge[N]{From: from, To: to, Cost: cost})
	g.edgeCount++

	return nil
}

// checkCost enforces the cost policy of the graph.
func (g *Graph[N]) checkCost(cost float64) error {
	if math.IsNaN(cost) || math.IsInf(cost, 0) || cost < 0 {
		return ErrBadWeight
	}
	if !g.cfg.weighted && cost != 0 {
		return ErrBadWeight
	}

	return nil
}

// HasEdge reports whether at least one edge from→to exists.
func (g *Graph[N]) HasEdge(from, to N) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasEdgeLocked(from, to)
}

func (g *Graph[N]) hasEdgeLocked(from, to N) bool {
	for _, e := range g.adjacency[from] {
		if e.To == to {
			return true
		}
	}

	return false
}

// Edges returns a snapshot of every edge. Order: sources in vertex insertion
// order, then each source's edges in declaration order.
// Complexity: O(V+E).
func (g *Graph[N]) Edges() []Edge[N] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge[N], 0, g.edgeCount)
	for _, v := range g.order {
		out = append(out, g.adjacency[v]...)
	}

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph[N]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
