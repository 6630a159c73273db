package scenario

import (
	"fmt"

	"github.com/katalvlaran/pathfuzz/core"
	"github.com/katalvlaran/pathfuzz/fuzzy"
)

func (d *Document) graphSpec(name string) (GraphSpec, bool) {
	for _, g := range d.Graphs {
		if g.Name == name {
			return g, true
		}
	}
	return GraphSpec{}, false
}

func (d *Document) heuristicSpec(name string) (HeuristicSpec, bool) {
	for _, h := range d.Heuristics {
		if h.Name == name {
			return h, true
		}
	}
	return HeuristicSpec{}, false
}

func (d *Document) ruleBaseSpec(name string) (RuleBaseSpec, bool) {
	for _, rb := range d.RuleBases {
		if rb.Name == name {
			return rb, true
		}
	}
	return RuleBaseSpec{}, false
}

// Graph builds the named graph. Declared node and edge order is preserved;
// an edge to an undeclared node fails with core.ErrVertexNotFound.
func (d *Document) Graph(name string) (*core.Graph[string], error) {
	spec, ok := d.graphSpec(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGraph, name)
	}
	list := make([]core.Adjacency[string], len(spec.Adjacency))
	for i, n := range spec.Adjacency {
		arcs := make([]core.Arc[string], len(n.Edges))
		for j, e := range n.Edges {
			arcs[j] = core.Arc[string]{To: e.To, Cost: e.Cost}
		}
		list[i] = core.Adjacency[string]{Node: n.Node, Arcs: arcs}
	}
	var opts []core.GraphOption
	if spec.Weighted {
		opts = append(opts, core.WithWeighted())
	}
	g, err := core.FromAdjacencyList(list, opts...)
	if err != nil {
		return nil, fmt.Errorf("scenario: graph %q: %w", name, err)
	}

	return g, nil
}

// Heuristic returns a copy of the named estimate table.
func (d *Document) Heuristic(name string) (core.Heuristic[string], error) {
	spec, ok := d.heuristicSpec(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
	}
	h := make(core.Heuristic[string], len(spec.Values))
	for k, v := range spec.Values {
		h[k] = v
	}

	return h, nil
}

// RuleBase converts the named rule base and validates it.
func (d *Document) RuleBase(name string) (fuzzy.RuleBase, error) {
	spec, ok := d.ruleBaseSpec(name)
	if !ok {
		return fuzzy.RuleBase{}, fmt.Errorf("%w: %q", ErrUnknownRuleBase, name)
	}
	rb := fuzzy.RuleBase{Fallback: spec.Fallback}
	for _, v := range spec.Variables {
		terms := make(map[string]fuzzy.Shape, len(v.Terms))
		for term, pts := range v.Terms {
			if len(pts) != 3 {
				return fuzzy.RuleBase{}, fmt.Errorf("%w: %s.%s needs 3 breakpoints", ErrInvalidScenario, v.Name, term)
			}
			terms[term] = fuzzy.Shape{A: pts[0], B: pts[1], C: pts[2]}
		}
		rb.Variables = append(rb.Variables, fuzzy.Variable{Name: v.Name, Terms: terms})
	}
	for _, r := range spec.Rules {
		op, err := fuzzy.ParseOp(r.Op)
		if err != nil {
			return fuzzy.RuleBase{}, fmt.Errorf("scenario: rule base %q: %w", name, err)
		}
		clauses := make([]fuzzy.Clause, len(r.When))
		for i, c := range r.When {
			clauses[i] = fuzzy.Clause{Variable: c.Variable, Term: c.Is}
		}
		rb.Rules = append(rb.Rules, fuzzy.Rule{Op: op, Antecedents: clauses, Output: r.Then, Weight: r.Weight})
	}
	if err := rb.Validate(); err != nil {
		return fuzzy.RuleBase{}, fmt.Errorf("scenario: rule base %q: %w", name, err)
	}

	return rb, nil
}

// FromGraph renders g as a GraphSpec named name.
func FromGraph(name string, g *core.Graph[string]) GraphSpec {
	spec := GraphSpec{Name: name, Weighted: g.Weighted()}
	for _, adj := range g.AdjacencyList() {
		n := NodeSpec{Node: adj.Node}
		for _, a := range adj.Arcs {
			n.Edges = append(n.Edges, EdgeSpec{To: a.To, Cost: a.Cost})
		}
		spec.Adjacency = append(spec.Adjacency, n)
	}

	return spec
}
