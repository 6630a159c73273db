package astar_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfuzz/astar"
	"github.com/katalvlaran/pathfuzz/builder"
	"github.com/katalvlaran/pathfuzz/core"
)

// demo builds A→(B,1),(C,4); B→(D,2),(E,5); C→(F,3); E→(F,1) plus isolated Z.
func demo(t *testing.T) (*core.Graph[string], core.Heuristic[string]) {
	t.Helper()
	g, err := core.FromAdjacencyList([]core.Adjacency[string]{
		{Node: "A", Arcs: []core.Arc[string]{{To: "B", Cost: 1}, {To: "C", Cost: 4}}},
		{Node: "B", Arcs: []core.Arc[string]{{To: "D", Cost: 2}, {To: "E", Cost: 5}}},
		{Node: "C", Arcs: []core.Arc[string]{{To: "F", Cost: 3}}},
		{Node: "D"},
		{Node: "E", Arcs: []core.Arc[string]{{To: "F", Cost: 1}}},
		{Node: "F"},
		{Node: "Z"},
	}, core.WithWeighted())
	require.NoError(t, err)
	h := core.Heuristic[string]{"A": 6, "B": 4, "C": 2, "D": 4, "E": 1, "F": 0, "Z": 0}

	return g, h
}

// TestSearch_DemoTie: [A B E F] and [A C F] both cost 7. F via C enters the
// frontier before F via E, so insertion order selects [A C F].
func TestSearch_DemoTie(t *testing.T) {
	g, h := demo(t)
	res, err := astar.Search(g, "A", "F", h)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []string{"A", "C", "F"}, res.Path)
	assert.Equal(t, 7.0, res.Cost)
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, res.Order)
	assert.Equal(t, 6, res.Expanded)

	// the cost is no worse than the alternative route
	assert.LessOrEqual(t, res.Cost, 1.0+5.0+1.0)
}

// TestSearch_TieBreakByInsertion flips declaration order to flip the winner.
func TestSearch_TieBreakByInsertion(t *testing.T) {
	build := func(first, second string) *core.Graph[string] {
		g := core.NewGraph[string](core.WithWeighted())
		require.NoError(t, g.AddEdge("S", first, 1))
		require.NoError(t, g.AddEdge("S", second, 1))
		require.NoError(t, g.AddEdge("X", "G", 1))
		require.NoError(t, g.AddEdge("Y", "G", 1))
		return g
	}
	var zero core.ZeroHeuristic[string]

	res, err := astar.Search(build("X", "Y"), "S", "G", zero)
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "X", "G"}, res.Path)

	res, err = astar.Search(build("Y", "X"), "S", "G", zero)
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "Y", "G"}, res.Path)
}

// TestSearch_Optimal prefers the cheaper longer route.
func TestSearch_Optimal(t *testing.T) {
	g := core.NewGraph[int](core.WithWeighted())
	require.NoError(t, g.AddEdge(1, 3, 5))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(3, 4, 1))

	h := core.HeuristicFunc[int](func(id int) float64 { return float64(4 - id) * 0.5 })
	res, err := astar.Search(g, 1, 4, h)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, res.Path)
	assert.Equal(t, 3.0, res.Cost)

	// uniform-cost agrees
	res0, err := astar.Search(g, 1, 4, core.ZeroHeuristic[int]{})
	require.NoError(t, err)
	assert.Equal(t, res.Path, res0.Path)
	assert.Equal(t, res.Cost, res0.Cost)
}

// TestSearch_NotFound covers unreachable and unknown goals.
func TestSearch_NotFound(t *testing.T) {
	g, h := demo(t)
	for _, goal := range []string{"Z", "ghost"} {
		res, err := astar.Search(g, "A", goal, h)
		require.NoError(t, err)
		assert.False(t, res.Found)
		assert.Nil(t, res.Path)
		assert.Zero(t, res.Cost)
	}
}

// TestSearch_Errors verifies input validation.
func TestSearch_Errors(t *testing.T) {
	g, h := demo(t)

	_, err := astar.Search[string](nil, "A", "F", h)
	require.ErrorIs(t, err, astar.ErrNilGraph)

	_, err = astar.Search[string](g, "A", "F", nil)
	require.ErrorIs(t, err, astar.ErrNilHeuristic)

	_, err = astar.Search(g, "Q", "F", h)
	require.ErrorIs(t, err, astar.ErrStartVertexNotFound)

	_, err = astar.Search(g, "A", "F", h, astar.WithMaxExpansions(-1))
	require.ErrorIs(t, err, astar.ErrOptionViolation)

	_, err = astar.Search(g, "A", "F", h, astar.WithMaxCost(-1))
	require.ErrorIs(t, err, astar.ErrOptionViolation)

	_, err = astar.Search(g, "A", "F", core.Heuristic[string]{"A": 6, "B": 4})
	require.ErrorIs(t, err, astar.ErrMissingHeuristic)

	_, err = astar.Search(g, "A", "F", core.HeuristicFunc[string](func(string) float64 { return math.NaN() }))
	require.ErrorIs(t, err, astar.ErrBadHeuristic)

	_, err = astar.Search(g, "A", "F", h, astar.WithOnVisit(func(int, float64, float64) error { return nil }))
	require.ErrorIs(t, err, astar.ErrOptionViolation)
}

// TestSearch_Limits covers MaxExpansions, MaxCost and OnVisit.
func TestSearch_Limits(t *testing.T) {
	g, h := demo(t)

	res, err := astar.Search(g, "A", "F", h, astar.WithMaxExpansions(2))
	require.NoError(t, err)
	assert.True(t, res.Truncated)
	assert.False(t, res.Found)
	assert.Equal(t, []string{"A", "B"}, res.Order)

	// a budget of 6 excludes both cost-7 routes
	res, err = astar.Search(g, "A", "F", h, astar.WithMaxCost(6))
	require.NoError(t, err)
	assert.False(t, res.Found)

	keys := map[string]float64{}
	_, err = astar.Search(g, "A", "F", h, astar.WithOnVisit(func(id string, gCost, f float64) error {
		keys[id] = f
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 6, "B": 5, "C": 6, "D": 7, "E": 7, "F": 7}, keys)

	halt := errors.New("halt")
	_, err = astar.Search(g, "A", "F", h, astar.WithOnVisit(func(id string, _, _ float64) error {
		return halt
	}))
	require.ErrorIs(t, err, halt)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = astar.Search(g, "A", "F", h, astar.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestSearch_Idempotent expects identical results on repeated calls.
func TestSearch_Idempotent(t *testing.T) {
	g, h := demo(t)
	first, err := astar.Search(g, "A", "F", h)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := astar.Search(g, "A", "F", h)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// TestSearch_Unweighted treats every arc as zero cost and follows h.
func TestSearch_Unweighted(t *testing.T) {
	g, err := core.FromAdjacency(map[string][]string{"A": {"B", "C"}, "B": {"D"}, "C": {"D"}, "D": {}})
	require.NoError(t, err)
	h := core.Heuristic[string]{"A": 0, "B": 1, "C": 0, "D": 0}

	res, err := astar.Search(g, "A", "D", h)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "D"}, res.Path)
	assert.Zero(t, res.Cost)
}

// TestSearch_GridAgreesWithUniformCost checks optimality against uniform-cost
// search on seeded random grids with an admissible Manhattan estimate.
func TestSearch_GridAgreesWithUniformCost(t *testing.T) {
	const n = 10
	for seed := int64(1); seed <= 5; seed++ {
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithWeighted()},
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithIntegerWeight(1, 9), builder.WithBidirectional()},
			builder.Grid(n, n),
		)
		require.NoError(t, err)
		goal := builder.GridID(n-1, n-1)

		informed, err := astar.Search(g, "0,0", goal, builder.GridManhattan(n, n, n-1, n-1, 1))
		require.NoError(t, err)
		uniform, err := astar.Search(g, "0,0", goal, core.ZeroHeuristic[string]{})
		require.NoError(t, err)

		require.True(t, informed.Found)
		assert.Equal(t, uniform.Cost, informed.Cost, "seed %d", seed)
		assert.LessOrEqual(t, informed.Expanded, uniform.Expanded, "seed %d", seed)
		assert.Equal(t, "0,0", informed.Path[0])
		assert.Equal(t, goal, informed.Path[len(informed.Path)-1])
	}
}
