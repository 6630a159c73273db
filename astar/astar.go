// Package astar implements A* best-first search on weighted graphs.
//
// The frontier is a binary min-heap keyed by f = g + h(node), where g is the
// cost so far. Entries with equal f leave the heap in insertion order. The
// visited check happens when an entry is popped, not when it is pushed, so
// the first pop of the goal carries an optimal cost under a consistent
// heuristic.
package astar

import (
	"container/heap"
	"context"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/pathfuzz/core"
	"github.com/katalvlaran/pathfuzz/internal/telemetry"
	"github.com/katalvlaran/pathfuzz/internal/trail"
)

const algorithm = "astar"

// Search finds a least-cost path from start to goal in g guided by h.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. h must be non-nil (ErrNilHeuristic).
//  3. options must be valid (ErrOptionViolation).
//  4. g must contain start (ErrStartVertexNotFound).
//
// During the search every vertex entering the frontier must have a
// non-negative estimate (ErrMissingHeuristic, ErrBadHeuristic). Admissibility
// is not checked; with an inadmissible h the result is still a valid path
// but may not be optimal.
//
// Complexity:
//
//   - Time:  O(E log E)
//   - Space: O(E) (lazy duplicates in the heap and the record arena)
func Search[N comparable](g *core.Graph[N], start, goal N, h core.Estimator[N], opts ...Option) (*Result[N], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	onVisit := func(N, float64, float64) error { return nil }
	if cfg.onVisit != nil {
		fn, ok := cfg.onVisit.(func(N, float64, float64) error)
		if !ok {
			return nil, fmt.Errorf("%w: OnVisit has type %T", ErrOptionViolation, cfg.onVisit)
		}
		onVisit = fn
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	ctx, span := telemetry.StartSearch(cfg.Ctx, algorithm, start, goal)
	began := time.Now()

	n := g.VertexCount()
	r := &runner[N]{
		g:       g,
		h:       h,
		options: cfg,
		ctx:     ctx,
		goal:    goal,
		onVisit: onVisit,
		arena:   trail.New[N](n),
		visited: make(map[N]struct{}, n),
		pq:      make(frontier, 0, n),
		res:     &Result[N]{Order: make([]N, 0, n)},
	}
	err := r.init(start)
	if err == nil {
		err = r.process()
	}

	telemetry.FinishSearch(span, cfg.Logger, telemetry.Outcome{
		Algorithm: algorithm,
		Found:     r.res.Found,
		Truncated: r.res.Truncated,
		Expanded:  r.res.Expanded,
		PathLen:   len(r.res.Path),
		Cost:      r.res.Cost,
		Elapsed:   time.Since(began),
		Err:       err,
	})
	if err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single A* execution.
type runner[N comparable] struct {
	g       *core.Graph[N]
	h       core.Estimator[N]
	options Options
	ctx     context.Context
	goal    N
	onVisit func(N, float64, float64) error
	arena   *trail.Arena[N]
	visited map[N]struct{}
	pq      frontier
	seq     uint64 // next insertion sequence number
	res     *Result[N]
}

// init seeds the frontier with (start, g=0).
func (r *runner[N]) init(start N) error {
	heap.Init(&r.pq)

	return r.push(r.arena.Seed(start))
}

// push computes f for the arena record and adds it to the frontier.
func (r *runner[N]) push(idx int) error {
	rec := r.arena.At(idx)
	est, ok := r.h.Estimate(rec.Node)
	if !ok {
		return fmt.Errorf("%w: %v", ErrMissingHeuristic, rec.Node)
	}
	if math.IsNaN(est) || est < 0 {
		return fmt.Errorf("%w: h(%v)=%g", ErrBadHeuristic, rec.Node, est)
	}
	heap.Push(&r.pq, &entry{idx: idx, g: rec.Cost, f: rec.Cost + est, seq: r.seq})
	r.seq++

	return nil
}

// process repeatedly pops the minimum-f entry until the goal is expanded or
// the frontier empties.
func (r *runner[N]) process() error {
	for r.pq.Len() > 0 {
		select {
		case <-r.ctx.Done():
			return r.ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*entry)
		rec := r.arena.At(item.idx)

		// stale duplicate
		if _, seen := r.visited[rec.Node]; seen {
			continue
		}
		if r.options.MaxExpansions > 0 && r.res.Expanded >= r.options.MaxExpansions {
			r.res.Truncated = true
			return nil
		}

		r.visited[rec.Node] = struct{}{}
		r.res.Order = append(r.res.Order, rec.Node)
		r.res.Expanded++
		if err := r.onVisit(rec.Node, item.g, item.f); err != nil {
			return fmt.Errorf("astar: OnVisit error at %v: %w", rec.Node, err)
		}

		if rec.Node == r.goal {
			r.res.Path = r.arena.Path(item.idx)
			r.res.Cost = rec.Cost
			r.res.Found = true
			return nil
		}
		if err := r.relax(item.idx, rec); err != nil {
			return err
		}
	}

	return nil
}

// relax pushes one entry per outgoing arc of rec, in declaration order.
func (r *runner[N]) relax(idx int, rec trail.Record[N]) error {
	edges, err := r.g.Neighbors(rec.Node)
	if err != nil {
		return fmt.Errorf("astar: failed to get neighbors of %v: %w", rec.Node, err)
	}
	for _, e := range edges {
		if r.options.MaxCost > 0 && rec.Cost+e.Cost > r.options.MaxCost {
			continue
		}
		if err := r.push(r.arena.Extend(idx, e.To, e.Cost)); err != nil {
			return err
		}
	}

	return nil
}

// entry is a frontier record: arena index, cost so far g, key f and
// insertion sequence used to break ties on f.
type entry struct {
	idx int
	g   float64
	f   float64
	seq uint64
}

// frontier is a min-heap of *entry ordered by (f, seq).
type frontier []*entry

// Len returns the number of items in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by f, then by earlier insertion.
func (pq frontier) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x; called by heap.Push.
func (pq *frontier) Push(x any) { *pq = append(*pq, x.(*entry)) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *frontier) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
