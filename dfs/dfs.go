// Package dfs implements iterative depth-first path search on core.Graph.
package dfs

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/pathfuzz/core"
	"github.com/katalvlaran/pathfuzz/internal/telemetry"
	"github.com/katalvlaran/pathfuzz/internal/trail"
)

const algorithm = "dfs"

// dfsWalker encapsulates state during DFS.
type dfsWalker[N comparable] struct {
	graph   *core.Graph[N]
	opts    Options
	ctx     context.Context
	goal    N
	onVisit func(N, int) error
	filter  func(N, N) bool
	arena   *trail.Arena[N]
	stack   []int // arena indexes, LIFO
	visited map[N]struct{}
	res     *Result[N]
}

// Search performs depth-first search on g from start and returns the first
// path that reaches goal. The path is not necessarily the shortest.
//
// The stack is seeded with start. Each iteration pops the most recently
// pushed record, skips it if already expanded, marks it, returns on goal,
// and pushes one record per outgoing arc (see PushOrder) without checking
// the visited set.
//
// Unreachable or unknown goals give Found == false and a nil error.
func Search[N comparable](g *core.Graph[N], start, goal N, opts ...Option) (*Result[N], error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	onVisit, filter, err := hooks[N](o)
	if err != nil {
		return nil, err
	}

	// 3. Verify start
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	ctx, span := telemetry.StartSearch(o.Ctx, algorithm, start, goal)
	began := time.Now()

	// 4. Initialize walker with capacity hints
	n := g.VertexCount()
	w := &dfsWalker[N]{
		graph:   g,
		opts:    o,
		ctx:     ctx,
		goal:    goal,
		onVisit: onVisit,
		filter:  filter,
		arena:   trail.New[N](n),
		stack:   make([]int, 0, n),
		visited: make(map[N]struct{}, n),
		res:     &Result[N]{Order: make([]N, 0, n)},
	}
	w.stack = append(w.stack, w.arena.Seed(start))

	// 5. Traverse
	err = w.loop()

	telemetry.FinishSearch(span, o.Logger, telemetry.Outcome{
		Algorithm: algorithm,
		Found:     w.res.Found,
		Truncated: w.res.Truncated,
		Expanded:  w.res.Expanded,
		PathLen:   len(w.res.Path),
		Cost:      w.res.Cost,
		Elapsed:   time.Since(began),
		Err:       err,
	})
	if err != nil {
		return nil, err
	}

	return w.res, nil
}

func (w *dfsWalker[N]) loop() error {
	for len(w.stack) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		idx := w.pop()
		rec := w.arena.At(idx)
		if _, seen := w.visited[rec.Node]; seen {
			continue
		}
		if w.opts.MaxExpansions > 0 && w.res.Expanded >= w.opts.MaxExpansions {
			w.res.Truncated = true
			return nil
		}

		w.visited[rec.Node] = struct{}{}
		w.res.Order = append(w.res.Order, rec.Node)
		w.res.Expanded++
		if err := w.onVisit(rec.Node, rec.Depth); err != nil {
			return fmt.Errorf("dfs: OnVisit error at %v: %w", rec.Node, err)
		}

		if rec.Node == w.goal {
			w.res.Path = w.arena.Path(idx)
			w.res.Cost = rec.Cost
			w.res.Found = true
			return nil
		}
		if err := w.pushNeighbors(idx, rec); err != nil {
			return err
		}
	}

	return nil
}

func (w *dfsWalker[N]) pop() int {
	last := len(w.stack) - 1
	idx := w.stack[last]
	w.stack = w.stack[:last]

	return idx
}

// pushNeighbors pushes rec's arcs per the configured PushOrder.
func (w *dfsWalker[N]) pushNeighbors(idx int, rec trail.Record[N]) error {
	edges, err := w.graph.Neighbors(rec.Node)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %v: %v", ErrNeighbors, rec.Node, err)
	}
	if w.opts.MaxDepth > 0 && rec.Depth+1 > w.opts.MaxDepth {
		return nil
	}
	if w.opts.Order == PushReversed {
		for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
			edges[i], edges[j] = edges[j], edges[i]
		}
	}
	for _, e := range edges {
		if !w.filter(rec.Node, e.To) {
			continue
		}
		w.stack = append(w.stack, w.arena.Extend(idx, e.To, e.Cost))
	}

	return nil
}
