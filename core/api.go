// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Constructors building a validated Graph from adjacency literals.
// Policy:
//   - Every neighbor must itself be declared as a node; a dangling reference
//     is rejected with ErrVertexNotFound instead of being auto-created.
//   - Declared neighbor order is preserved verbatim.

package core

import "fmt"

// Arc is one outgoing entry of an adjacency literal.
type Arc[N comparable] struct {
	To   N
	Cost float64
}

// Adjacency is one node of an ordered adjacency literal with its outgoing arcs.
// An empty Arcs slice declares a dead end.
type Adjacency[N comparable] struct {
	Node N
	Arcs []Arc[N]
}

// FromAdjacencyList builds a Graph from an ordered adjacency literal.
//
// Implementation:
//   - Stage 1: Register every declared node, in list order.
//   - Stage 2: For each node, verify every arc target was declared.
//   - Stage 3: Add arcs in declared order via AddEdge (cost/loop/multi policy applies).
//
// Errors:
//   - ErrVertexNotFound: an arc references an undeclared node.
//   - Any AddEdge error (ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed).
//
// Complexity: O(V+E).
func FromAdjacencyList[N comparable](list []Adjacency[N], opts ...GraphOption) (*Graph[N], error) {
	g := NewGraph[N](opts...)
	for _, adj := range list {
		if err := g.AddVertex(adj.Node); err != nil {
			return nil, err
		}
	}
	for _, adj := range list {
		for _, arc := range adj.Arcs {
			if !g.HasVertex(arc.To) {
				return nil, fmt.Errorf("%w: %v→%v references undeclared node", ErrVertexNotFound, adj.Node, arc.To)
			}
			if err := g.AddEdge(adj.Node, arc.To, arc.Cost); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// FromAdjacency builds an unweighted Graph from a node→neighbors map.
// Neighbor order within each slice is preserved; vertex insertion order
// follows map iteration and is therefore unspecified.
func FromAdjacency[N comparable](adj map[N][]N, opts ...GraphOption) (*Graph[N], error) {
	list := make([]Adjacency[N], 0, len(adj))
	for node, nbrs := range adj {
		arcs := make([]Arc[N], len(nbrs))
		for i, to := range nbrs {
			arcs[i] = Arc[N]{To: to}
		}
		list = append(list, Adjacency[N]{Node: node, Arcs: arcs})
	}

	return FromAdjacencyList(list, opts...)
}

// FromWeightedAdjacency builds a weighted Graph from a node→arcs map.
// WithWeighted is implied.
func FromWeightedAdjacency[N comparable](adj map[N][]Arc[N], opts ...GraphOption) (*Graph[N], error) {
	list := make([]Adjacency[N], 0, len(adj))
	for node, arcs := range adj {
		list = append(list, Adjacency[N]{Node: node, Arcs: arcs})
	}

	return FromAdjacencyList(list, append([]GraphOption{WithWeighted()}, opts...)...)
}
