// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/HasVertex/Vertices/VertexCount/OutDegree.
// Determinism:
//   - Vertices() returns vertices in insertion order.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import "fmt"

// AddVertex registers id as a vertex. Adding an existing vertex is a no-op.
//
// Complexity: O(1) amortized.
func (g *Graph[N]) AddVertex(id N) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id)

	return nil
}

// addVertexLocked inserts id if absent. Caller must hold mu for writing.
func (g *Graph[N]) addVertexLocked(id N) {
	if _, ok := g.present[id]; ok {
		return
	}
	g.present[id] = struct{}{}
	g.order = append(g.order, id)
}

// HasVertex reports whether the vertex exists.
// Complexity: O(1).
func (g *Graph[N]) HasVertex(id N) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.present[id]

	return ok
}

// Vertices returns a fresh slice of all vertices in insertion order.
// Complexity: O(V).
func (g *Graph[N]) Vertices() []N {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]N, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph[N]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// OutDegree returns the number of outgoing edges of id.
// Returns ErrVertexNotFound if id is absent.
func (g *Graph[N]) OutDegree(id N) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.present[id]; !ok {
		return 0, fmt.Errorf("%w: %v", ErrVertexNotFound, id)
	}

	return len(g.adjacency[id]), nil
}
