package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathfuzz/builder"
	"github.com/katalvlaran/pathfuzz/core"
	"github.com/katalvlaran/pathfuzz/scenario"
)

type generateFlags struct {
	kind          string
	name          string
	n             int
	rows, cols    int
	p             float64
	seed          int64
	weighted      bool
	minCost       int
	maxCost       int
	bidirectional bool
}

func newGenerateCmd(_ *app) *cobra.Command {
	f := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a generated graph as a scenario document",
		Example: `  pathfuzz generate --kind grid --rows 3 --cols 3 --weighted --seed 7
  pathfuzz generate --kind random --n 20 --p 0.1 --seed 1 > random.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctor, err := f.constructor()
			if err != nil {
				return err
			}
			var gopts []core.GraphOption
			if f.weighted {
				gopts = append(gopts, core.WithWeighted())
			}
			bopts := []builder.BuilderOption{
				builder.WithSeed(f.seed),
				builder.WithIntegerWeight(f.minCost, f.maxCost),
			}
			if f.bidirectional {
				bopts = append(bopts, builder.WithBidirectional())
			}
			g, err := builder.BuildGraph(gopts, bopts, ctor)
			if err != nil {
				return err
			}
			name := f.name
			if name == "" {
				name = f.kind
			}
			doc := &scenario.Document{Graphs: []scenario.GraphSpec{scenario.FromGraph(name, g)}}
			if f.kind == "demo" && f.weighted {
				doc.Heuristics = []scenario.HeuristicSpec{{Name: name + "-h", Values: builder.DemoHeuristic()}}
			}
			return scenario.Encode(cmd.OutOrStdout(), doc)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.kind, "kind", "grid", "path, cycle, star, grid, random or demo")
	fl.StringVar(&f.name, "name", "", "graph name (default: --kind)")
	fl.IntVar(&f.n, "n", 6, "vertex count for path, cycle, star and random")
	fl.IntVar(&f.rows, "rows", 3, "grid rows")
	fl.IntVar(&f.cols, "cols", 3, "grid columns")
	fl.Float64Var(&f.p, "p", 0.2, "arc probability for random")
	fl.Int64Var(&f.seed, "seed", 1, "random seed for topology and costs")
	fl.BoolVar(&f.weighted, "weighted", false, "attach integer arc costs")
	fl.IntVar(&f.minCost, "min-cost", 1, "smallest arc cost")
	fl.IntVar(&f.maxCost, "max-cost", 9, "largest arc cost")
	fl.BoolVar(&f.bidirectional, "bidirectional", false, "mirror every arc")

	return cmd
}

func (f *generateFlags) constructor() (builder.Constructor, error) {
	if f.minCost < 0 || f.maxCost < f.minCost {
		return nil, fmt.Errorf("need 0 <= --min-cost <= --max-cost, got %d and %d", f.minCost, f.maxCost)
	}
	switch f.kind {
	case "path":
		return builder.Path(f.n), nil
	case "cycle":
		return builder.Cycle(f.n), nil
	case "star":
		return builder.Star(f.n), nil
	case "grid":
		return builder.Grid(f.rows, f.cols), nil
	case "random":
		return builder.RandomSparse(f.n, f.p), nil
	case "demo":
		return builder.Demo(), nil
	default:
		return nil, fmt.Errorf("unknown --kind %q", f.kind)
	}
}
