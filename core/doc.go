// Package core provides a thread-safe, in-memory directed graph over opaque
// comparable vertex identifiers, plus the heuristic tables consumed by
// informed search.
//
// The Graph G = (V,E) is built for search:
//
//   - Directed arcs only; an undirected link is two arcs.
//   - Weighted vs. unweighted costs (WithWeighted). Costs are float64 and
//     must be finite and non-negative.
//   - Parallel edges (WithMultiEdges) and self-loops (WithLoops) are opt-in.
//   - Declaration order is preserved: Neighbors(v) returns v's arcs in the
//     order they were added, which is what makes BFS/DFS results reproducible.
//
// Construction:
//
//	// incremental
//	g := core.NewGraph[string](core.WithWeighted())
//	_ = g.AddEdge("A", "B", 1)
//
//	// from a literal; dangling neighbors are rejected with ErrVertexNotFound
//	g, err := core.FromAdjacency(map[string][]string{
//	    "A": {"B", "C"},
//	    "B": {},
//	    "C": {},
//	})
//
// Heuristics:
//
//	h := core.Heuristic[string]{"A": 6, "B": 4, "C": 0}
//	if err := h.Validate(); err != nil { ... }  // ErrBadHeuristic on negative/NaN
//
// Any Estimator works with astar.Search: Heuristic (table), HeuristicFunc
// (closure), ZeroHeuristic (uniform-cost).
//
// Concurrency:
//
//	All methods take a sync.RWMutex. Searches only read, so any number of
//	concurrent searches may share one Graph. Mutating a Graph while a search
//	runs on it is not supported.
package core
