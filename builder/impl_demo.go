// SPDX-License-Identifier: MIT
// Package: pathfuzz/builder
//
// impl_demo.go - the two reference graphs used throughout the docs and tests.
//
//	A→{B,C}  B→{D,E}  C→{F}  D→{}  E→{F}  F→{}
//
// Demo emits them in exactly that order. On a weighted graph the arcs carry
// the fixed costs A→B 1, A→C 4, B→D 2, B→E 5, C→F 3, E→F 1, ignoring cfg's
// weight function; on an unweighted graph every cost is 0.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfuzz/core"
)

const methodDemo = "Demo"

var demoArcs = []struct {
	from, to string
	cost     float64
}{
	{"A", "B", 1}, {"A", "C", 4},
	{"B", "D", 2}, {"B", "E", 5},
	{"C", "F", 3},
	{"E", "F", 1},
}

// Demo returns a Constructor for the six-node reference graph.
func Demo() Constructor {
	return func(g *core.Graph[string], _ builderConfig) error {
		for _, id := range []string{"A", "B", "C", "D", "E", "F"} {
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodDemo, id, err)
			}
		}
		for _, a := range demoArcs {
			w := 0.0
			if g.Weighted() {
				w = a.cost
			}
			if err := g.AddEdge(a.from, a.to, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodDemo, a.from, a.to, w, err)
			}
		}

		return nil
	}
}

// DemoHeuristic returns the admissible estimate to F for the weighted Demo graph.
func DemoHeuristic() core.Heuristic[string] {
	return core.Heuristic[string]{"A": 6, "B": 4, "C": 2, "D": 4, "E": 1, "F": 0}
}
