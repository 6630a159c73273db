package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathfuzz/fuzzy"
)

type fuzzyFlags struct {
	food, service float64
	ruleBase      string
	inputs        map[string]string
}

// fuzzyView is the rendered result of one inference pass.
type fuzzyView struct {
	RuleBase    string                        `json:"rulebase"`
	Inputs      map[string]float64            `json:"inputs"`
	Output      float64                       `json:"output"`
	Fallback    bool                          `json:"fallback"`
	Degrees     map[string]map[string]float64 `json:"degrees"`
	Activations []float64                     `json:"activations"`
}

func newFuzzyCmd(a *app) *cobra.Command {
	f := &fuzzyFlags{}
	cmd := &cobra.Command{
		Use:   "fuzzy",
		Short: "Run one fuzzy inference pass",
		Long: `Without --rulebase, evaluates the built-in restaurant-tip model on
--food and --service. With --rulebase, evaluates the named scenario rule base
on --input name=value pairs (food and service are used when none are given).`,
		Example: `  pathfuzz fuzzy --food 7 --service 3
  pathfuzz fuzzy --scenario s.yaml --rulebase comfort --input temp=21 --input humidity=40`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFuzzy(cmd, a, f)
		},
	}
	fl := cmd.Flags()
	fl.Float64Var(&f.food, "food", 7, "food quality 0-10")
	fl.Float64Var(&f.service, "service", 3, "service quality 0-10")
	fl.StringVar(&f.ruleBase, "rulebase", "", "rule base name in the scenario")
	fl.StringToStringVar(&f.inputs, "input", nil, "input variable as name=value (repeatable)")

	return cmd
}

func runFuzzy(cmd *cobra.Command, a *app, f *fuzzyFlags) error {
	inputs := map[string]float64{"food": f.food, "service": f.service}
	if len(f.inputs) > 0 {
		inputs = make(map[string]float64, len(f.inputs))
		for k, s := range f.inputs {
			x, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return fmt.Errorf("--input %s=%q: %w", k, s, err)
			}
			inputs[k] = x
		}
	}

	rb := fuzzy.TipRuleBase()
	name := "tip (built-in)"
	if f.ruleBase != "" {
		doc, err := a.document(cmd)
		if err != nil {
			return err
		}
		if rb, err = doc.RuleBase(f.ruleBase); err != nil {
			return err
		}
		name = f.ruleBase
	}
	inf, err := rb.Infer(inputs, fuzzy.WithLogger(a.logger))
	if err != nil {
		return err
	}

	v := fuzzyView{
		RuleBase:    name,
		Inputs:      inputs,
		Output:      inf.Output,
		Fallback:    inf.Fallback,
		Degrees:     inf.Degrees,
		Activations: inf.Activations,
	}

	return a.emit(cmd, v, func(w io.Writer) {
		fmt.Fprintf(w, "output: %.2f", v.Output)
		if v.Fallback {
			fmt.Fprint(w, " (no rule fired, fallback)")
		}
		fmt.Fprintln(w)
		for _, name := range sortedKeys(v.Degrees) {
			terms := v.Degrees[name]
			for _, term := range sortedKeys(terms) {
				fmt.Fprintf(w, "  %s is %s: %.3f\n", name, term, terms[term])
			}
		}
		for i, act := range v.Activations {
			fmt.Fprintf(w, "  rule %d: %.3f\n", i+1, act)
		}
	})
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

type curveFlags struct {
	shape  []float64
	lo, hi float64
	points int
}

func newCurveCmd(a *app) *cobra.Command {
	f := &curveFlags{}
	cmd := &cobra.Command{
		Use:     "curve",
		Short:   "Sample a membership function for plotting",
		Example: `  pathfuzz curve --shape 0,0,5 --lo 0 --hi 10 --points 200`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(f.shape) != 3 {
				return fmt.Errorf("--shape needs exactly 3 breakpoints, got %d", len(f.shape))
			}
			s, err := fuzzy.NewShape(f.shape[0], f.shape[1], f.shape[2])
			if err != nil {
				return err
			}
			pts := fuzzy.Sample(s, f.lo, f.hi, f.points)
			return a.emit(cmd, pts, func(w io.Writer) {
				for _, p := range pts {
					fmt.Fprintf(w, "%g\t%g\n", p.X, p.Degree)
				}
			})
		},
	}
	fl := cmd.Flags()
	fl.Float64SliceVar(&f.shape, "shape", []float64{0, 0, 5}, "breakpoints a,b,c")
	fl.Float64Var(&f.lo, "lo", 0, "first sample")
	fl.Float64Var(&f.hi, "hi", 10, "last sample")
	fl.IntVar(&f.points, "points", 200, "number of samples")

	return cmd
}
