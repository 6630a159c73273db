package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathfuzz/astar"
	"github.com/katalvlaran/pathfuzz/bfs"
	"github.com/katalvlaran/pathfuzz/dfs"
	"github.com/katalvlaran/pathfuzz/scenario"
)

type searchFlags struct {
	algorithm     string
	graph         string
	heuristic     string
	start, goal   string
	maxExpansions int
	declaredFirst bool
}

// searchView is the rendered result of one search.
type searchView struct {
	Algorithm string   `json:"algorithm"`
	Graph     string   `json:"graph"`
	Start     string   `json:"start"`
	Goal      string   `json:"goal"`
	Found     bool     `json:"found"`
	Path      []string `json:"path"`
	Cost      float64  `json:"cost"`
	Order     []string `json:"order"`
	Expanded  int      `json:"expanded"`
	Truncated bool     `json:"truncated,omitempty"`
}

func newSearchCmd(a *app) *cobra.Command {
	f := &searchFlags{}
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find a path between two nodes of a scenario graph",
		Example: `  pathfuzz search --algorithm bfs --graph demo --start A --goal F
  pathfuzz search --algorithm astar --graph demo-weighted --heuristic demo-h --start A --goal F`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSearch(cmd, a, f)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.algorithm, "algorithm", "a", scenario.AlgorithmBFS, "bfs, dfs or astar")
	fl.StringVarP(&f.graph, "graph", "g", "demo", "graph name in the scenario")
	fl.StringVar(&f.heuristic, "heuristic", "", "heuristic name (astar only)")
	fl.StringVar(&f.start, "start", "A", "start node")
	fl.StringVar(&f.goal, "goal", "F", "goal node")
	fl.IntVar(&f.maxExpansions, "max-expansions", 0, "stop after N expansions (0 = unlimited)")
	fl.BoolVar(&f.declaredFirst, "declared-first", false, "dfs: explore the first-declared neighbor first")

	return cmd
}

func runSearch(cmd *cobra.Command, a *app, f *searchFlags) error {
	doc, err := a.document(cmd)
	if err != nil {
		return err
	}
	g, err := doc.Graph(f.graph)
	if err != nil {
		return err
	}

	v := searchView{Algorithm: f.algorithm, Graph: f.graph, Start: f.start, Goal: f.goal}
	ctx := cmd.Context()
	switch f.algorithm {
	case scenario.AlgorithmBFS:
		res, err := bfs.Search(g, f.start, f.goal,
			bfs.WithContext(ctx), bfs.WithLogger(a.logger), bfs.WithMaxExpansions(f.maxExpansions))
		if err != nil {
			return err
		}
		v.Found, v.Path, v.Cost, v.Order, v.Expanded, v.Truncated = res.Found, res.Path, res.Cost, res.Order, res.Expanded, res.Truncated
	case scenario.AlgorithmDFS:
		opts := []dfs.Option{dfs.WithContext(ctx), dfs.WithLogger(a.logger), dfs.WithMaxExpansions(f.maxExpansions)}
		if f.declaredFirst {
			opts = append(opts, dfs.WithDeclaredOrderFirst())
		}
		res, err := dfs.Search(g, f.start, f.goal, opts...)
		if err != nil {
			return err
		}
		v.Found, v.Path, v.Cost, v.Order, v.Expanded, v.Truncated = res.Found, res.Path, res.Cost, res.Order, res.Expanded, res.Truncated
	case scenario.AlgorithmAStar:
		if f.heuristic == "" {
			return fmt.Errorf("--heuristic is required for astar")
		}
		h, err := doc.Heuristic(f.heuristic)
		if err != nil {
			return err
		}
		res, err := astar.Search(g, f.start, f.goal, h,
			astar.WithContext(ctx), astar.WithLogger(a.logger), astar.WithMaxExpansions(f.maxExpansions))
		if err != nil {
			return err
		}
		v.Found, v.Path, v.Cost, v.Order, v.Expanded, v.Truncated = res.Found, res.Path, res.Cost, res.Order, res.Expanded, res.Truncated
	default:
		return fmt.Errorf("unknown --algorithm %q (want bfs, dfs or astar)", f.algorithm)
	}

	return a.emit(cmd, v, func(w io.Writer) {
		if !v.Found {
			fmt.Fprintf(w, "%s: no path from %s to %s (expanded %d", v.Algorithm, v.Start, v.Goal, v.Expanded)
			if v.Truncated {
				fmt.Fprint(w, ", truncated")
			}
			fmt.Fprintln(w, ")")
			return
		}
		fmt.Fprintf(w, "%s: %s\n", v.Algorithm, strings.Join(v.Path, " → "))
		if g.Weighted() {
			fmt.Fprintf(w, "cost: %g\n", v.Cost)
		}
		fmt.Fprintf(w, "expanded: %s\n", strings.Join(v.Order, " "))
	})
}
