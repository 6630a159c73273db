package batch_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfuzz/batch"
	"github.com/katalvlaran/pathfuzz/core"
	"github.com/katalvlaran/pathfuzz/scenario"
)

func TestRun_Default(t *testing.T) {
	doc, err := scenario.Default()
	require.NoError(t, err)

	rep, err := batch.Run(context.Background(), doc, batch.WithWorkers(2))
	require.NoError(t, err)
	require.Len(t, rep.Outcomes, 4)
	assert.Zero(t, rep.Failed)
	_, err = uuid.Parse(rep.RunID)
	require.NoError(t, err)

	byID := make(map[string]batch.Outcome)
	seen := make(map[string]bool)
	for i, o := range rep.Outcomes {
		assert.Equal(t, doc.Queries[i].ID, o.ID, "outcomes keep query order")
		assert.False(t, seen[o.InvocationID])
		seen[o.InvocationID] = true
		byID[o.ID] = o
	}

	assert.Equal(t, []string{"A", "C", "F"}, byID["bfs-demo"].Path)
	assert.Equal(t, []string{"A", "C", "F"}, byID["dfs-demo"].Path)
	assert.Equal(t, []string{"A", "C", "F"}, byID["astar-demo"].Path)
	assert.Equal(t, 7.0, byID["astar-demo"].Cost)
	assert.InDelta(t, 5.0, byID["tip-7-3"].Output, 1e-12)
	assert.False(t, byID["tip-7-3"].Fallback)
}

func TestRun_FailuresAreIsolated(t *testing.T) {
	doc, err := scenario.Load(strings.NewReader(`
graphs:
  - name: ok
    adjacency: [{node: A, edges: [{to: B}]}, {node: B}]
  - name: broken
    adjacency: [{node: A, edges: [{to: Z}]}]
rulebases:
  - name: r
    variables:
      - {name: x, terms: {lo: [0, 0, 5]}}
    rules:
      - {op: or, when: [{variable: x, is: lo}], then: 1}
queries:
  - {id: good, algorithm: bfs, graph: ok, start: A, goal: B}
  - {id: bad-graph, algorithm: dfs, graph: broken, start: A, goal: Z}
  - {id: bad-start, algorithm: bfs, graph: ok, start: Q, goal: B}
  - {id: missing-input, algorithm: fuzzy, rulebase: r, inputs: {y: 1}}
  - {id: unreachable, algorithm: dfs, graph: ok, start: B, goal: A}
`))
	require.NoError(t, err)

	rep, err := batch.Run(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, 3, rep.Failed)

	o := rep.Outcomes
	assert.True(t, o[0].Found)
	assert.ErrorIs(t, o[1].Err, core.ErrVertexNotFound)
	assert.NotEmpty(t, o[1].Error)
	assert.Error(t, o[2].Err)
	assert.Error(t, o[3].Err)
	assert.NoError(t, o[4].Err)
	assert.False(t, o[4].Found)
}

func TestRun_Errors(t *testing.T) {
	_, err := batch.Run(context.Background(), nil)
	require.ErrorIs(t, err, batch.ErrNilDocument)

	doc, err := scenario.Default()
	require.NoError(t, err)
	_, err = batch.Run(context.Background(), doc, batch.WithWorkers(0))
	require.ErrorIs(t, err, batch.ErrBadWorkers)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rep, err := batch.Run(ctx, doc)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, rep)
}
