// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, AdjacencyList).
// Determinism:
//   - Neighbors() and NeighborIDs() follow declaration order.
//   - AdjacencyList() follows vertex insertion order.
// Concurrency:
//   - Read operations hold mu read lock; returned slices are independent copies.

package core

import "fmt"

// Neighbors returns the outgoing edges of id in declaration order.
//
// Returns:
//   - []Edge[N]: a fresh copy, safe to retain and mutate.
//   - error: ErrVertexNotFound if id is absent.
//
// A vertex with no outgoing edges yields an empty slice (dead end).
//
// Complexity: O(d), where d is the out-degree of id.
func (g *Graph[N]) Neighbors(id N) ([]Edge[N], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.present[id]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, id)
	}

	src := g.adjacency[id]
	out := make([]Edge[N], len(src))
	copy(out, src)

	return out, nil
}

// NeighborIDs returns the destinations of id's outgoing edges in declaration
// order. Parallel edges on a multigraph produce repeated IDs.
func (g *Graph[N]) NeighborIDs(id N) ([]N, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	ids := make([]N, len(edges))
	for i, e := range edges {
		ids[i] = e.To
	}

	return ids, nil
}

// AdjacencyList returns a snapshot of the graph as an ordered adjacency list,
// one entry per vertex in insertion order. Feeding the result back into
// FromAdjacencyList rebuilds an equivalent graph.
func (g *Graph[N]) AdjacencyList() []Adjacency[N] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Adjacency[N], 0, len(g.order))
	for _, v := range g.order {
		arcs := make([]Arc[N], len(g.adjacency[v]))
		for i, e := range g.adjacency[v] {
			arcs[i] = Arc[N]{To: e.To, Cost: e.Cost}
		}
		out = append(out, Adjacency[N]{Node: v, Arcs: arcs})
	}

	return out
}
