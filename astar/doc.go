// Package astar provides A* least-cost path search over a weighted core.Graph
// guided by a caller-supplied remaining-cost estimate.
//
// The frontier is ordered by f = g + h. Among equal f, the record pushed first
// is expanded first, and arcs are pushed in declaration order, so results are
// deterministic: on the demo graph both A→B→E→F and A→C→F cost 7, and the
// C route wins because its F record enters the frontier first.
//
// Estimates come from a core.Estimator: a core.Heuristic table, a
// core.HeuristicFunc, or core.ZeroHeuristic for uniform-cost search. A vertex
// with no estimate fails the search with ErrMissingHeuristic instead of being
// silently treated as 0.
//
// Usage
//
//	h := core.Heuristic[string]{"A": 6, "B": 4, "C": 2, "D": 4, "E": 1, "F": 0}
//	res, err := astar.Search(g, "A", "F", h,
//	    astar.WithContext(ctx),
//	    astar.WithMaxCost(50),
//	)
//	if err == nil && res.Found {
//	    fmt.Println(res.Path, res.Cost)
//	}
package astar
