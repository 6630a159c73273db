package scenario_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfuzz/builder"
	"github.com/katalvlaran/pathfuzz/core"
	"github.com/katalvlaran/pathfuzz/fuzzy"
	"github.com/katalvlaran/pathfuzz/scenario"
)

func TestDefault(t *testing.T) {
	doc, err := scenario.Default()
	require.NoError(t, err)
	require.Len(t, doc.Graphs, 2)
	require.Len(t, doc.Queries, 4)

	g, err := doc.Graph("demo")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, g.Vertices())
	assert.False(t, g.Weighted())
	nbrs, err := g.NeighborIDs("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "E"}, nbrs)

	wg, err := doc.Graph("demo-weighted")
	require.NoError(t, err)
	assert.True(t, wg.Weighted())
	assert.Equal(t, 6, wg.EdgeCount())

	h, err := doc.Heuristic("demo-h")
	require.NoError(t, err)
	assert.Equal(t, builder.DemoHeuristic(), h)
	assert.Empty(t, h.Covers(wg))

	rb, err := doc.RuleBase("tip")
	require.NoError(t, err)
	inf, err := rb.Infer(map[string]float64{"food": 7, "service": 3})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, inf.Output, 1e-12)

	inf, err = rb.Infer(map[string]float64{"food": 5, "service": 5})
	require.NoError(t, err)
	assert.Equal(t, fuzzy.TipFallback, inf.Output)
}

func TestDefault_RuleBaseMatchesPreset(t *testing.T) {
	doc, err := scenario.Default()
	require.NoError(t, err)
	rb, err := doc.RuleBase("tip")
	require.NoError(t, err)
	preset := fuzzy.TipRuleBase()

	for _, in := range [][2]float64{{0, 0}, {7, 3}, {9, 8}, {2.5, 6}, {10, 10}} {
		inputs := map[string]float64{"food": in[0], "service": in[1]}
		a, err := rb.Infer(inputs)
		require.NoError(t, err)
		b, err := preset.Infer(inputs)
		require.NoError(t, err)
		assert.InDelta(t, b.Output, a.Output, 1e-12, "%v", in)
	}
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want error
	}{
		{"unknown field", "graphs: []\nextra: 1\n", scenario.ErrInvalidScenario},
		{"bad algorithm", `
queries:
  - {id: q, algorithm: ida, graph: g, start: A, goal: B}
`, scenario.ErrInvalidScenario},
		{"astar without heuristic", `
graphs:
  - name: g
    adjacency: [{node: A}]
queries:
  - {id: q, algorithm: astar, graph: g, start: A, goal: A}
`, scenario.ErrInvalidScenario},
		{"unknown graph", `
queries:
  - {id: q, algorithm: bfs, graph: nope, start: A, goal: B}
`, scenario.ErrUnknownGraph},
		{"unknown heuristic", `
graphs:
  - name: g
    adjacency: [{node: A}]
queries:
  - {id: q, algorithm: astar, graph: g, heuristic: h, start: A, goal: A}
`, scenario.ErrUnknownHeuristic},
		{"unknown rulebase", `
queries:
  - {id: q, algorithm: fuzzy, rulebase: tip, inputs: {food: 1}}
`, scenario.ErrUnknownRuleBase},
		{"duplicate query id", `
graphs:
  - name: g
    adjacency: [{node: A}]
queries:
  - {id: q, algorithm: bfs, graph: g, start: A, goal: A}
  - {id: q, algorithm: dfs, graph: g, start: A, goal: A}
`, scenario.ErrInvalidScenario},
		{"shape arity", `
rulebases:
  - name: r
    variables:
      - {name: x, terms: {lo: [0, 5]}}
    rules:
      - {op: or, when: [{variable: x, is: lo}], then: 1}
`, scenario.ErrInvalidScenario},
		{"negative cost", `
graphs:
  - name: g
    weighted: true
    adjacency: [{node: A, edges: [{to: A, cost: -1}]}]
`, scenario.ErrInvalidScenario},
		{"not yaml", "graphs: [", scenario.ErrInvalidScenario},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scenario.Load(strings.NewReader(tc.yaml))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoad_TooLarge(t *testing.T) {
	big := bytes.Repeat([]byte("#"), scenario.MaxScenarioSize+1)
	_, err := scenario.Load(bytes.NewReader(big))
	require.ErrorIs(t, err, scenario.ErrTooLarge)
}

func TestBuild_Errors(t *testing.T) {
	doc, err := scenario.Load(strings.NewReader(`
graphs:
  - name: dangling
    adjacency: [{node: A, edges: [{to: Z}]}]
  - name: costly
    adjacency: [{node: A, edges: [{to: B, cost: 2}]}, {node: B}]
rulebases:
  - name: shuffled
    variables:
      - {name: x, terms: {lo: [5, 0, 0]}}
    rules:
      - {op: or, when: [{variable: x, is: lo}], then: 1}
  - name: typo
    variables:
      - {name: x, terms: {lo: [0, 0, 5]}}
    rules:
      - {op: or, when: [{variable: x, is: low}], then: 1}
`))
	require.NoError(t, err)

	_, err = doc.Graph("dangling")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = doc.Graph("costly")
	require.ErrorIs(t, err, core.ErrBadWeight)
	_, err = doc.Graph("missing")
	require.ErrorIs(t, err, scenario.ErrUnknownGraph)
	_, err = doc.Heuristic("missing")
	require.ErrorIs(t, err, scenario.ErrUnknownHeuristic)
	_, err = doc.RuleBase("shuffled")
	require.ErrorIs(t, err, fuzzy.ErrShapeOrder)
	_, err = doc.RuleBase("typo")
	require.ErrorIs(t, err, fuzzy.ErrUnknownTerm)
	_, err = doc.RuleBase("missing")
	require.ErrorIs(t, err, scenario.ErrUnknownRuleBase)
}

func TestFromGraph_RoundTrip(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(9), builder.WithIntegerWeight(1, 4)},
		builder.Grid(3, 3),
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, scenario.Encode(&buf, &scenario.Document{
		Graphs: []scenario.GraphSpec{scenario.FromGraph("grid", g)},
	}))

	doc, err := scenario.Load(&buf)
	require.NoError(t, err)
	back, err := doc.Graph("grid")
	require.NoError(t, err)
	assert.Equal(t, g.Vertices(), back.Vertices())
	assert.Equal(t, g.Edges(), back.Edges())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
graphs:
  - name: g
    adjacency: [{node: A, edges: [{to: B}]}, {node: B}]
`), 0o600))

	doc, err := scenario.LoadFile(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, doc.Graphs, 1)

	_, err = scenario.LoadFile(context.Background(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
