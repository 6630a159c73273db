// Package dfs implements depth-first path search on core.Graph.
//
// Search(g, start, goal, opts...) keeps a LIFO stack of (vertex, parent)
// records. It pops the newest record, drops it if the vertex was already
// expanded, otherwise expands it: returns if it is the goal, else pushes one
// record per outgoing arc. The first path found is returned; it is not
// necessarily the shortest.
//
// Canonical order:
//
//	By default arcs are pushed in declaration order, so the LAST-declared
//	neighbor is popped and explored first. For
//
//	    A→{B,C}, B→{D,E}, C→{F}, E→{F}
//
//	Search(g, "A", "F") expands A, C, F and returns [A C F].
//	WithDeclaredOrderFirst() pushes in reverse so the FIRST-declared neighbor
//	is explored first: A, B, D, E, F and [A B E F].
//	Either way the result is a pure function of (graph, start, goal, order).
//
// Options:
//
//   - WithContext(ctx)          cancellation, checked once per expansion.
//   - WithPushOrder(p)          PushDeclared (default) or PushReversed.
//   - WithDeclaredOrderFirst()  shorthand for WithPushOrder(PushReversed).
//   - WithMaxDepth(limit)       never push records deeper than limit edges.
//   - WithMaxExpansions(n)      stop after n expansions; Result.Truncated is set.
//   - WithFilterNeighbor(fn)    skip arcs; return false to skip.
//   - WithOnVisit(fn)           expansion hook; error aborts.
//   - WithLogger(l)             slog logger for the outcome record.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(E) records; paths are rebuilt from parent indexes on success.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is missing.
//   - ErrOptionViolation        for invalid options.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit (wrapped).
//
// Not reaching the goal is not an error: Result.Found is false.
package dfs
