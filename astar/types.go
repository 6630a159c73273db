// Package astar defines options, sentinel errors and the result type for
// A* best-first search on weighted graphs.
package astar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/pathfuzz/internal/telemetry"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex does not exist.
	ErrStartVertexNotFound = errors.New("astar: start vertex not found in graph")

	// ErrNilHeuristic indicates that no Estimator was supplied.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrMissingHeuristic indicates that the Estimator had no value for a
	// vertex entering the frontier.
	ErrMissingHeuristic = errors.New("astar: heuristic has no estimate for vertex")

	// ErrBadHeuristic indicates a negative or NaN estimate.
	ErrBadHeuristic = errors.New("astar: heuristic estimate must be non-negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Options configures the behavior of Search.
//
// Ctx            – cancellation, checked once per expansion.
// Logger         – slog logger for the outcome record (discarded by default).
// MaxExpansions  – if > 0, stop with a truncated NotFound after that many expansions.
// MaxCost        – if > 0, records whose cost-so-far exceeds MaxCost are not pushed.
type Options struct {
	Ctx           context.Context
	Logger        *slog.Logger
	MaxExpansions int
	MaxCost       float64

	onVisit any // func(id N, g, f float64) error

	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns Options with a background context, a discard
// logger and no limits.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: telemetry.DiscardLogger(),
	}
}

// WithContext sets the cancellation context; nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the structured logger; nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
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

// WithMaxCost prunes records whose cost-so-far exceeds c; c < 0 is invalid.
func WithMaxCost(c float64) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%g)", ErrOptionViolation, c)
			return
		}
		o.MaxCost = c
	}
}

// WithOnVisit installs a hook called on each expansion with the vertex, its
// cost-so-far g and its key f = g + h. An error aborts the search.
func WithOnVisit[N comparable](fn func(id N, g, f float64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// Result contains the outcome of a search.
//
// Not found is Found == false, Path == nil, Cost == 0 and a nil error.
type Result[N comparable] struct {
	Path      []N
	Cost      float64
	Found     bool
	Order     []N
	Expanded  int
	Truncated bool
}
