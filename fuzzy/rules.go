// SPDX-License-Identifier: MIT
//
// File: rules.go
// Role: Rule-table inference: linguistic variables, AND/OR rules with output
//       singletons, and weighted-average defuzzification over any number of rules.

package fuzzy

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/katalvlaran/pathfuzz/internal/telemetry"
)

// Op combines the degrees of a rule's antecedents.
type Op int

const (
	// And takes the minimum degree.
	And Op = iota + 1
	// Or takes the maximum degree.
	Or
)

// String implements fmt.Stringer.
func (op Op) String() string {
	switch op {
	case And:
		return "and"
	case Or:
		return "or"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// ParseOp maps "and"/"or" (any case) to an Op.
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "and":
		return And, nil
	case "or":
		return Or, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadOp, s)
	}
}

// Variable is a linguistic input with named membership terms.
type Variable struct {
	Name  string
	Terms map[string]Shape
}

// Clause refers to one term of one variable, e.g. service is poor.
type Clause struct {
	Variable string
	Term     string
}

// Rule fires toward Output with activation Weight·Op(degrees of Antecedents).
// A zero Weight counts as 1.
type Rule struct {
	Op          Op
	Antecedents []Clause
	Output      float64
	Weight      float64
}

func (r Rule) weight() float64 {
	if r.Weight == 0 {
		return 1
	}

	return r.Weight
}

// RuleBase is a set of variables and the rules over them. Fallback is the
// output when no rule fires.
type RuleBase struct {
	Variables []Variable
	Rules     []Rule
	Fallback  float64
}

// Inference reports one RuleBase.Infer pass.
//
// Degrees maps variable → term → membership degree. Activations is indexed
// like RuleBase.Rules.
type Inference struct {
	Output      float64
	Degrees     map[string]map[string]float64
	Activations []float64
	Fallback    bool
}

// Validate checks that variables are unique with ordered shapes and that every
// rule is non-empty, well-weighted and refers only to declared terms.
func (rb RuleBase) Validate() error {
	terms := make(map[string]map[string]Shape, len(rb.Variables))
	for _, v := range rb.Variables {
		if _, dup := terms[v.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateVariable, v.Name)
		}
		for name, s := range v.Terms {
			if err := s.Validate(); err != nil {
				return fmt.Errorf("variable %q term %q: %w", v.Name, name, err)
			}
		}
		terms[v.Name] = v.Terms
	}
	if len(rb.Rules) == 0 {
		return ErrNoRules
	}
	for i, r := range rb.Rules {
		if r.Op != And && r.Op != Or {
			return fmt.Errorf("rule %d: %w: %v", i, ErrBadOp, r.Op)
		}
		if len(r.Antecedents) == 0 {
			return fmt.Errorf("rule %d: %w", i, ErrEmptyRule)
		}
		if math.IsNaN(r.Weight) || math.IsInf(r.Weight, 0) || r.Weight < 0 {
			return fmt.Errorf("rule %d: %w: %g", i, ErrBadWeight, r.Weight)
		}
		if math.IsNaN(r.Output) || math.IsInf(r.Output, 0) {
			return fmt.Errorf("rule %d: %w: %g", i, ErrBadSingleton, r.Output)
		}
		for _, c := range r.Antecedents {
			vt, ok := terms[c.Variable]
			if !ok {
				return fmt.Errorf("rule %d: %w: %q", i, ErrUnknownVariable, c.Variable)
			}
			if _, ok := vt[c.Term]; !ok {
				return fmt.Errorf("rule %d: %w: %s is %q", i, ErrUnknownTerm, c.Variable, c.Term)
			}
		}
	}

	return nil
}

// Infer evaluates every rule against inputs and defuzzifies the activations
// against the rule outputs. Every declared variable needs a finite input.
// WithFallback overrides rb.Fallback.
func (rb RuleBase) Infer(inputs map[string]float64, opts ...Option) (Inference, error) {
	if err := rb.Validate(); err != nil {
		return Inference{}, err
	}
	cfg := buildOptions(opts)
	fallback := rb.Fallback
	if cfg.hasFallback {
		fallback = cfg.fallback
	}

	inf := Inference{
		Degrees:     make(map[string]map[string]float64, len(rb.Variables)),
		Activations: make([]float64, len(rb.Rules)),
	}
	for _, v := range rb.Variables {
		x, ok := inputs[v.Name]
		if !ok {
			return Inference{}, fmt.Errorf("%w: %q", ErrMissingInput, v.Name)
		}
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Inference{}, fmt.Errorf("%w: %s=%g", ErrBadInput, v.Name, x)
		}
		deg := make(map[string]float64, len(v.Terms))
		for name, s := range v.Terms {
			deg[name] = s.Degree(x)
		}
		inf.Degrees[v.Name] = deg
	}

	outputs := make([]float64, len(rb.Rules))
	for i, r := range rb.Rules {
		act := inf.Degrees[r.Antecedents[0].Variable][r.Antecedents[0].Term]
		for _, c := range r.Antecedents[1:] {
			d := inf.Degrees[c.Variable][c.Term]
			if r.Op == And {
				act = math.Min(act, d)
			} else {
				act = math.Max(act, d)
			}
		}
		inf.Activations[i] = act * r.weight()
		outputs[i] = r.Output
	}
	inf.Output, inf.Fallback = reduce(inf.Activations, outputs, fallback)

	telemetry.ObserveInference(inf.Fallback)
	cfg.Logger.Debug("fuzzy infer",
		slog.Int("rules", len(rb.Rules)),
		slog.Float64("output", inf.Output),
		slog.Bool("fallback", inf.Fallback),
	)

	return inf, nil
}
