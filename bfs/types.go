// Package bfs provides tunable options, error definitions and the result
// type for breadth-first path search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/pathfuzz/internal/telemetry"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start vertex is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Logger receives one Debug record per search; discarded by default.
	Logger *slog.Logger

	// MaxDepth, if > 0, never pushes records deeper than MaxDepth edges.
	// A value of 0 disables the limit.
	MaxDepth int

	// MaxExpansions, if > 0, stops the search with a truncated NotFound
	// after that many vertices have been expanded. 0 disables the limit.
	MaxExpansions int

	// onVisit holds a func(id N, depth int) error; typed at Search time.
	onVisit any

	// filter holds a func(curr, neighbor N) bool; typed at Search time.
	filter any

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - discard logger
//   - no depth or expansion limits
//   - no hooks, no filtering.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: telemetry.DiscardLogger(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxDepth bounds path length in edges.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMaxExpansions bounds the number of expanded vertices; n < 0 is invalid.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnVisit registers a callback run when a vertex is expanded; returning
// an error stops the search. N must match the graph's vertex type, otherwise
// Search reports ErrOptionViolation.
func WithOnVisit[N comparable](fn func(id N, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// WithFilterNeighbor skips arcs curr→neighbor for which fn returns false.
func WithFilterNeighbor[N comparable](fn func(curr, neighbor N) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.filter = fn
		}
	}
}

// hooks resolves the type-erased callbacks for vertex type N.
func hooks[N comparable](o Options) (func(N, int) error, func(N, N) bool, error) {
	visit := func(N, int) error { return nil }
	filter := func(N, N) bool { return true }
	if o.onVisit != nil {
		fn, ok := o.onVisit.(func(N, int) error)
		if !ok {
			return nil, nil, fmt.Errorf("%w: OnVisit has type %T", ErrOptionViolation, o.onVisit)
		}
		visit = fn
	}
	if o.filter != nil {
		fn, ok := o.filter.(func(N, N) bool)
		if !ok {
			return nil, nil, fmt.Errorf("%w: FilterNeighbor has type %T", ErrOptionViolation, o.filter)
		}
		filter = fn
	}

	return visit, filter, nil
}

// Result holds the outcome of a BFS path search.
//
// NotFound is reported as Found == false with a nil Path; it is a normal
// outcome, not an error.
type Result[N comparable] struct {
	// Path is start..goal inclusive, nil when not found.
	Path []N

	// Found reports whether goal was reached.
	Found bool

	// Cost is the sum of edge costs along Path (zero on unweighted graphs).
	Cost float64

	// Order lists vertices in expansion order.
	Order []N

	// Expanded is len(Order).
	Expanded int

	// Truncated is set when MaxExpansions stopped the search early.
	Truncated bool
}

// Hops returns the number of edges on Path, or -1 when not found.
func (r *Result[N]) Hops() int {
	if !r.Found {
		return -1
	}

	return len(r.Path) - 1
}
