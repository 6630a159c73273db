// SPDX-License-Identifier: MIT
// Package core_test verifies graph construction policies, declaration-order
// adjacency and heuristic table validation.

package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfuzz/core"
)

// TestGraph_Options asserts GraphOption flags are applied.
func TestGraph_Options(t *testing.T) {
	g := core.NewGraph[string]()
	assert.False(t, g.Weighted())
	assert.False(t, g.Looped())
	assert.False(t, g.Multigraph())

	g = core.NewGraph[string](core.WithWeighted(), core.WithLoops(), core.WithMultiEdges())
	assert.True(t, g.Weighted())
	assert.True(t, g.Looped())
	assert.True(t, g.Multigraph())
}

// TestAddEdge_Policies checks cost, loop and multi-edge rejection.
func TestAddEdge_Policies(t *testing.T) {
	u := core.NewGraph[string]()
	require.ErrorIs(t, u.AddEdge("A", "B", 1), core.ErrBadWeight, "non-zero cost on unweighted graph")
	require.ErrorIs(t, u.AddEdge("A", "A", 0), core.ErrLoopNotAllowed)
	require.NoError(t, u.AddEdge("A", "B", 0))
	require.ErrorIs(t, u.AddEdge("A", "B", 0), core.ErrMultiEdgeNotAllowed)

	w := core.NewGraph[string](core.WithWeighted())
	require.ErrorIs(t, w.AddEdge("A", "B", -1), core.ErrBadWeight)
	require.ErrorIs(t, w.AddEdge("A", "B", math.NaN()), core.ErrBadWeight)
	require.ErrorIs(t, w.AddEdge("A", "B", math.Inf(1)), core.ErrBadWeight)
	require.NoError(t, w.AddEdge("A", "B", 2.5))

	m := core.NewGraph[int](core.WithMultiEdges(), core.WithLoops())
	require.NoError(t, m.AddEdge(1, 2, 0))
	require.NoError(t, m.AddEdge(1, 2, 0))
	require.NoError(t, m.AddEdge(1, 1, 0))
	assert.Equal(t, 3, m.EdgeCount())
	ids, err := m.NeighborIDs(1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 1}, ids)
}

// TestNeighbors_DeclarationOrder locks in that adjacency is never re-sorted.
func TestNeighbors_DeclarationOrder(t *testing.T) {
	g := core.NewGraph[string]()
	for _, to := range []string{"Z", "B", "e10", "e2", "A"} {
		require.NoError(t, g.AddEdge("S", to, 0))
	}
	ids, err := g.NeighborIDs("S")
	require.NoError(t, err)
	assert.Equal(t, []string{"Z", "B", "e10", "e2", "A"}, ids)
	assert.Equal(t, []string{"S", "Z", "B", "e10", "e2", "A"}, g.Vertices())

	// dead end
	ids, err = g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = g.Neighbors("missing")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestNeighbors_ReturnsCopy ensures callers cannot mutate graph storage.
func TestNeighbors_ReturnsCopy(t *testing.T) {
	g := core.NewGraph[string](core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", 1))
	edges, err := g.Neighbors("A")
	require.NoError(t, err)
	edges[0].Cost = 99

	again, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, 1.0, again[0].Cost)
}

// TestFromAdjacency_Dangling rejects neighbors that were never declared.
func TestFromAdjacency_Dangling(t *testing.T) {
	_, err := core.FromAdjacency(map[string][]string{
		"A": {"B", "X"},
		"B": {},
	})
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestFromWeightedAdjacency builds the demo weighted graph.
func TestFromWeightedAdjacency(t *testing.T) {
	g, err := core.FromWeightedAdjacency(map[string][]core.Arc[string]{
		"A": {{To: "B", Cost: 1}, {To: "C", Cost: 4}},
		"B": {{To: "D", Cost: 2}, {To: "E", Cost: 5}},
		"C": {{To: "F", Cost: 3}},
		"D": {},
		"E": {{To: "F", Cost: 1}},
		"F": {},
	})
	require.NoError(t, err)
	assert.True(t, g.Weighted())
	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 6, g.EdgeCount())

	edges, err := g.Neighbors("B")
	require.NoError(t, err)
	assert.Equal(t, []core.Edge[string]{{From: "B", To: "D", Cost: 2}, {From: "B", To: "E", Cost: 5}}, edges)

	deg, err := g.OutDegree("D")
	require.NoError(t, err)
	assert.Zero(t, deg)
}

// TestAdjacencyList_RoundTrip rebuilds an equivalent graph from its snapshot.
func TestAdjacencyList_RoundTrip(t *testing.T) {
	g := core.NewGraph[string](core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "C", 3))
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddVertex("Z"))

	h, err := core.FromAdjacencyList(g.AdjacencyList(), core.WithWeighted())
	require.NoError(t, err)
	assert.Equal(t, g.Vertices(), h.Vertices())
	assert.Equal(t, g.Edges(), h.Edges())
}

// TestHeuristic checks table lookup, validation and coverage.
func TestHeuristic(t *testing.T) {
	h := core.Heuristic[string]{"A": 6, "B": 0}
	require.NoError(t, h.Validate())

	v, ok := h.Estimate("A")
	assert.True(t, ok)
	assert.Equal(t, 6.0, v)
	_, ok = h.Estimate("Q")
	assert.False(t, ok)

	require.ErrorIs(t, core.Heuristic[string]{"A": -1}.Validate(), core.ErrBadHeuristic)
	require.ErrorIs(t, core.Heuristic[string]{"A": math.NaN()}.Validate(), core.ErrBadHeuristic)

	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("B", "C", 0))
	assert.Equal(t, []string{"C"}, h.Covers(g))

	var z core.ZeroHeuristic[string]
	v, ok = z.Estimate("anything")
	assert.True(t, ok)
	assert.Zero(t, v)

	f := core.HeuristicFunc[int](func(id int) float64 { return float64(10 - id) })
	v, ok = f.Estimate(4)
	assert.True(t, ok)
	assert.Equal(t, 6.0, v)
}
