// SPDX-License-Identifier: MIT
// Package core defines the central Graph and Edge types and the Heuristic
// table, and provides thread-safe primitives for building and querying
// directed search graphs.
//
// This file declares Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrBadWeight           - negative/NaN/Inf cost, or non-zero cost on an unweighted graph.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//	ErrBadHeuristic        - negative or NaN heuristic estimate.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a cost that is negative, NaN or infinite, or a
	// non-zero cost provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad edge cost")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrBadHeuristic indicates a heuristic table holding a negative or NaN estimate.
	ErrBadHeuristic = errors.New("core: bad heuristic estimate")
)

// Edge is one outgoing arc From→To carrying a non-negative Cost.
// Cost is zero on unweighted graphs.
type Edge[N comparable] struct {
	// From is the source vertex.
	From N

	// To is the destination vertex.
	To N

	// Cost is the traversal cost of the arc.
	Cost float64
}

// config holds the construction flags shared by every Graph instantiation.
type config struct {
	weighted   bool // allow non-zero costs
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(c *config)

// WithWeighted allows non-zero edge costs in the Graph.
func WithWeighted() GraphOption {
	return func(c *config) { c.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(c *config) { c.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(c *config) { c.allowLoops = true }
}

// Graph is a directed graph over opaque comparable vertex identifiers.
//
// Outgoing edges of each vertex are kept in declaration order, and vertices
// in insertion order, so every traversal over a Graph is reproducible.
// mu guards all fields; searches only take the read lock.
type Graph[N comparable] struct {
	mu sync.RWMutex

	cfg config

	// order lists vertices in insertion order; present is its membership index.
	order   []N
	present map[N]struct{}

	// adjacency[from] is the ordered outgoing edge list of from.
	adjacency map[N][]Edge[N]

	edgeCount int
}

// NewGraph creates an empty Graph with the given options.
// By default a Graph is unweighted, without loops, without multi-edges.
// Complexity: O(1)
func NewGraph[N comparable](opts ...GraphOption) *Graph[N] {
	g := &Graph[N]{
		present:   make(map[N]struct{}),
		adjacency: make(map[N][]Edge[N]),
	}
	for _, opt := range opts {
		opt(&g.cfg)
	}

	return g
}

// Weighted reports whether the Graph accepts non-zero edge costs.
func (g *Graph[N]) Weighted() bool { return g.cfg.weighted }

// Looped reports whether self-loops are allowed.
func (g *Graph[N]) Looped() bool { return g.cfg.allowLoops }

// Multigraph reports whether parallel edges are allowed.
func (g *Graph[N]) Multigraph() bool { return g.cfg.allowMulti }
