// Package fuzzy implements Mamdani-style inference with singleton outputs.
//
// Membership is piecewise linear: Degree(x, a, b, c) evaluates a triangle or,
// when two breakpoints coincide, a left or right shoulder. Evaluate runs the
// fixed two-input, two-rule pass (an OR rule toward a low output and an AND
// rule toward a high output). RuleBase generalizes it to any number of
// variables and weighted rules. Both defuzzify with WeightedAverage and fall
// back to a fixed value when no rule fires.
//
//	r := fuzzy.Tip(7, 3)
//	fmt.Printf("%.2f%%\n", r.Output) // 5.00%
//
//	inf, err := fuzzy.TipRuleBase().Infer(map[string]float64{"food": 7, "service": 3})
package fuzzy
