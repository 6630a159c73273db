// Package bfs provides breadth-first path search over a core.Graph.
//
// Search explores records in FIFO order and returns the first path that
// reaches the goal, which is a fewest-edges path.
package bfs

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/pathfuzz/core"
	"github.com/katalvlaran/pathfuzz/internal/telemetry"
	"github.com/katalvlaran/pathfuzz/internal/trail"
)

const algorithm = "bfs"

// walker encapsulates mutable BFS state for one call.
type walker[N comparable] struct {
	graph   *core.Graph[N]
	opts    Options
	ctx     context.Context
	goal    N
	onVisit func(N, int) error
	filter  func(N, N) bool
	arena   *trail.Arena[N]
	queue   []int // arena indexes, FIFO
	visited map[N]struct{}
	res     *Result[N]
}

// Search runs breadth-first search on g from start until goal is expanded.
//
// Records are (vertex, parent) entries in an arena; neighbors are enqueued
// in declaration order without checking the visited set, and duplicates are
// dropped when dequeued. A goal that is unreachable or absent from g yields
// Found == false and a nil error.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
// ErrNeighbors, context errors, or a wrapped OnVisit error.
func Search[N comparable](g *core.Graph[N], start, goal N, opts ...Option) (*Result[N], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	onVisit, filter, err := hooks[N](o)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	ctx, span := telemetry.StartSearch(o.Ctx, algorithm, start, goal)
	began := time.Now()

	n := g.VertexCount()
	w := &walker[N]{
		graph:   g,
		opts:    o,
		ctx:     ctx,
		goal:    goal,
		onVisit: onVisit,
		filter:  filter,
		arena:   trail.New[N](n),
		queue:   make([]int, 0, n),
		visited: make(map[N]struct{}, n),
		res:     &Result[N]{Order: make([]N, 0, n)},
	}
	w.queue = append(w.queue, w.arena.Seed(start))
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

// loop processes the queue until the goal is expanded, the queue empties,
// a limit trips, or the context is cancelled.
func (w *walker[N]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		idx := w.dequeue()
		rec := w.arena.At(idx)
		if _, seen := w.visited[rec.Node]; seen {
			continue
		}
		if w.opts.MaxExpansions > 0 && w.res.Expanded >= w.opts.MaxExpansions {
			w.res.Truncated = true
			return nil
		}
		if err := w.visit(rec); err != nil {
			return err
		}
		if rec.Node == w.goal {
			w.res.Path = w.arena.Path(idx)
			w.res.Cost = rec.Cost
			w.res.Found = true
			return nil
		}
		if err := w.enqueueNeighbors(idx, rec); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the oldest arena index.
func (w *walker[N]) dequeue() int {
	idx := w.queue[0]
	w.queue = w.queue[1:]

	return idx
}

// visit marks the vertex expanded, records it in Order and calls OnVisit.
func (w *walker[N]) visit(rec trail.Record[N]) error {
	w.visited[rec.Node] = struct{}{}
	w.res.Order = append(w.res.Order, rec.Node)
	w.res.Expanded++
	if err := w.onVisit(rec.Node, rec.Depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", rec.Node, err)
	}

	return nil
}

// enqueueNeighbors appends one record per outgoing arc, in declaration order.
func (w *walker[N]) enqueueNeighbors(idx int, rec trail.Record[N]) error {
	edges, err := w.graph.Neighbors(rec.Node)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %v: %v", ErrNeighbors, rec.Node, err)
	}
	if w.opts.MaxDepth > 0 && rec.Depth+1 > w.opts.MaxDepth {
		return nil
	}
	for _, e := range edges {
		if !w.filter(rec.Node, e.To) {
			continue
		}
		w.queue = append(w.queue, w.arena.Extend(idx, e.To, e.Cost))
	}

	return nil
}
