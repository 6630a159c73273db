// Package bfs provides breadth-first path search over a core.Graph,
// returning the first path found from a start vertex to a goal vertex.
//
// What
//
//   - Maintains a FIFO frontier of (vertex, parent) records seeded with start.
//   - Removes the oldest record; skips it if the vertex is already expanded;
//     otherwise marks it expanded, returns if it is the goal, and enqueues one
//     record per outgoing arc in declaration order.
//   - Visited status is checked on removal only, so a vertex may sit in the
//     frontier several times; duplicates are dropped lazily.
//   - Returns a Result with Path, Found, Cost, Order (expansion order),
//     Expanded and Truncated.
//
// Why
//
//   - On any graph the first path found has the fewest edges.
//   - Unreachable goals are a normal outcome: Found == false, err == nil.
//
// Determinism
//
//	core.Graph keeps declaration order, and BFS enqueues neighbors in that
//	order, so the same graph, start and goal always yield the same path.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(E) records (lazy duplicates), each O(1): paths are rebuilt
//     from parent indexes only once, on success.
//
// Usage
//
//	res, err := bfs.Search(g, "A", "F")
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ErrNeighbors,
//	    // context errors or OnVisit errors
//	}
//	if res.Found {
//	    fmt.Println(res.Path)
//	}
//
//	res, err = bfs.Search(g, "A", "F",
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithMaxExpansions(1000),
//	    bfs.WithFilterNeighbor(func(curr, nbr string) bool { return nbr != "blocked" }),
//	    bfs.WithOnVisit(func(id string, depth int) error { return nil }),
//	    bfs.WithLogger(logger),
//	)
//
// Options
//
//   - DefaultOptions(): background context, discard logger, no limits, no hooks.
//   - WithContext(ctx):         cancellation, checked once per expansion.
//   - WithMaxDepth(d):          never enqueue records deeper than d edges (d > 0).
//   - WithMaxExpansions(n):     stop after n expansions; Result.Truncated is set.
//   - WithFilterNeighbor(fn):   skip arcs for which fn(curr, neighbor) == false.
//   - WithOnVisit(fn):          hook on expansion; returning an error aborts.
//   - WithLogger(l):            slog logger for the outcome record.
package bfs
