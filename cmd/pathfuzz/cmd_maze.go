package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathfuzz/astar"
	"github.com/katalvlaran/pathfuzz/bfs"
	"github.com/katalvlaran/pathfuzz/dfs"
	"github.com/katalvlaran/pathfuzz/gridgraph"
	"github.com/katalvlaran/pathfuzz/scenario"
)

// mazeView is the rendered result of a maze search.
type mazeView struct {
	Algorithm string   `json:"algorithm"`
	Found     bool     `json:"found"`
	Path      []string `json:"path"`
	Cost      float64  `json:"cost"`
	Expanded  int      `json:"expanded"`
	Regions   int      `json:"regions"`
	Drawing   string   `json:"drawing"`
}

func newMazeCmd(a *app) *cobra.Command {
	var (
		algorithm string
		diagonal  bool
	)
	cmd := &cobra.Command{
		Use:   "maze FILE",
		Short: "Solve a text maze (# wall, . open, 1-9 cost, S start, G goal)",
		Long: `Reads a text maze from FILE ("-" for stdin), converts its open cells to a
weighted graph and prints the maze with the found path drawn as '*'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			opts := gridgraph.DefaultGridOptions()
			if diagonal {
				opts.Conn = gridgraph.Conn8
			}
			m, err := gridgraph.ParseMaze(r, opts)
			if err != nil {
				return err
			}
			v, err := solveMaze(cmd, a, m, algorithm)
			if err != nil {
				return err
			}
			return a.emit(cmd, v, func(w io.Writer) {
				fmt.Fprint(w, v.Drawing)
				if v.Found {
					fmt.Fprintf(w, "%s: cost %g, %d steps, expanded %d\n", v.Algorithm, v.Cost, len(v.Path)-1, v.Expanded)
				} else {
					fmt.Fprintf(w, "%s: no path (expanded %d, %d regions)\n", v.Algorithm, v.Expanded, v.Regions)
				}
			})
		},
	}
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", scenario.AlgorithmAStar, "bfs, dfs or astar")
	cmd.Flags().BoolVar(&diagonal, "diagonal", false, "allow diagonal moves (8-connectivity)")

	return cmd
}

func solveMaze(cmd *cobra.Command, a *app, m *gridgraph.Maze, algorithm string) (mazeView, error) {
	switch algorithm {
	case scenario.AlgorithmBFS, scenario.AlgorithmDFS, scenario.AlgorithmAStar:
	default:
		return mazeView{}, fmt.Errorf("unknown --algorithm %q (want bfs, dfs or astar)", algorithm)
	}
	v := mazeView{Algorithm: algorithm, Regions: len(m.Grid.ConnectedComponents())}
	if !m.Grid.Reachable(m.Start.X, m.Start.Y, m.Goal.X, m.Goal.Y) {
		a.logger.Info("goal is in a different region", "regions", v.Regions)
		v.Drawing = m.Render(nil)
		return v, nil
	}
	g, err := m.Grid.ToGraph()
	if err != nil {
		return v, err
	}

	ctx := cmd.Context()
	switch algorithm {
	case scenario.AlgorithmBFS:
		res, err := bfs.Search(g, m.StartID(), m.GoalID(), bfs.WithContext(ctx), bfs.WithLogger(a.logger))
		if err != nil {
			return v, err
		}
		v.Found, v.Path, v.Cost, v.Expanded = res.Found, res.Path, res.Cost, res.Expanded
	case scenario.AlgorithmDFS:
		res, err := dfs.Search(g, m.StartID(), m.GoalID(), dfs.WithContext(ctx), dfs.WithLogger(a.logger))
		if err != nil {
			return v, err
		}
		v.Found, v.Path, v.Cost, v.Expanded = res.Found, res.Path, res.Cost, res.Expanded
	case scenario.AlgorithmAStar:
		h := m.Grid.Heuristic(m.Goal.X, m.Goal.Y)
		res, err := astar.Search(g, m.StartID(), m.GoalID(), h, astar.WithContext(ctx), astar.WithLogger(a.logger))
		if err != nil {
			return v, err
		}
		v.Found, v.Path, v.Cost, v.Expanded = res.Found, res.Path, res.Cost, res.Expanded
	}
	v.Drawing = m.Render(v.Path)

	return v, nil
}
