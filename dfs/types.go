// Package dfs defines types and options for depth-first path search,
// including cancellation, expansion hooks, depth and expansion limits,
// neighbor filtering and the neighbor push order.
package dfs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/pathfuzz/internal/telemetry"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Search.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("dfs: neighbor iteration error")
)

// PushOrder selects how a vertex's arcs are pushed onto the stack.
type PushOrder int

const (
	// PushDeclared pushes arcs in declaration order, so the last-declared
	// neighbor is popped, and explored, first. This is the default.
	PushDeclared PushOrder = iota

	// PushReversed pushes arcs in reverse declaration order, so the
	// first-declared neighbor is explored first.
	PushReversed
)

// String returns the order's name.
func (p PushOrder) String() string {
	switch p {
	case PushDeclared:
		return "declared"
	case PushReversed:
		return "reversed"
	default:
		return fmt.Sprintf("PushOrder(%d)", int(p))
	}
}

// Option configures optional behavior of DFS.
type Option func(*Options)

// Options holds configurable parameters for DFS path search.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// Logger receives one Debug record per search; discarded by default.
	Logger *slog.Logger

	// Order selects the neighbor push order. Default PushDeclared.
	Order PushOrder

	// MaxDepth, if > 0, never pushes records deeper than MaxDepth edges.
	MaxDepth int

	// MaxExpansions, if > 0, stops with a truncated NotFound after that many expansions.
	MaxExpansions int

	onVisit any // func(id N, depth int) error
	filter  any // func(curr, neighbor N) bool

	err error
}

// DefaultOptions returns Options with:
//   - Background context
//   - discard logger
//   - PushDeclared order
//   - no depth or expansion limits, no hooks, no filtering.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: telemetry.DiscardLogger(),
		Order:  PushDeclared,
	}
}

// WithContext sets the context for cancellation.
// Passing a nil context has no effect.
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

// WithDeclaredOrderFirst explores the first-declared neighbor first
// (PushReversed).
func WithDeclaredOrderFirst() Option {
	return WithPushOrder(PushReversed)
}

// WithPushOrder selects the neighbor push order explicitly.
func WithPushOrder(p PushOrder) Option {
	return func(o *Options) {
		if p != PushDeclared && p != PushReversed {
			o.err = fmt.Errorf("%w: unknown push order %v", ErrOptionViolation, p)
			return
		}
		o.Order = p
	}
}

// WithMaxDepth limits path length to limit edges (> 0); 0 disables, negative is invalid.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
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

// WithOnVisit installs fn as the expansion hook. An error aborts the search.
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

// Result captures the outcome of a depth-first path search.
type Result[N comparable] struct {
	// Path is start..goal inclusive, nil when not found.
	Path []N

	// Found reports whether goal was reached.
	Found bool

	// Cost is the sum of edge costs along Path.
	Cost float64

	// Order records vertices in expansion (pre-order) sequence.
	Order []N

	// Expanded is len(Order).
	Expanded int

	// Truncated is set when MaxExpansions stopped the search early.
	Truncated bool
}
