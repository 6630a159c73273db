package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathfuzz/batch"
	"github.com/katalvlaran/pathfuzz/scenario"
)

func newBatchCmd(a *app) *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run every query in the scenario concurrently",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := a.document(cmd)
			if err != nil {
				return err
			}
			rep, err := batch.Run(cmd.Context(), doc, batch.WithWorkers(workers), batch.WithLogger(a.logger))
			if err != nil {
				return err
			}
			if err := a.emit(cmd, rep, func(w io.Writer) { printReport(w, rep) }); err != nil {
				return err
			}
			if rep.Failed > 0 {
				return fmt.Errorf("%d of %d queries failed", rep.Failed, len(rep.Outcomes))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "w", runtime.GOMAXPROCS(0), "queries in flight")

	return cmd
}

func printReport(w io.Writer, rep *batch.Report) {
	fmt.Fprintf(w, "run %s: %d queries, %d failed, %s\n", rep.RunID, len(rep.Outcomes), rep.Failed, rep.Elapsed)
	for _, o := range rep.Outcomes {
		switch {
		case o.Err != nil:
			fmt.Fprintf(w, "  %-16s %-5s error: %v\n", o.ID, o.Algorithm, o.Err)
		case o.Algorithm == scenario.AlgorithmFuzzy:
			fmt.Fprintf(w, "  %-16s %-5s output %.2f\n", o.ID, o.Algorithm, o.Output)
		case o.Found:
			fmt.Fprintf(w, "  %-16s %-5s %s (cost %g, expanded %d)\n",
				o.ID, o.Algorithm, strings.Join(o.Path, " → "), o.Cost, o.Expanded)
		default:
			fmt.Fprintf(w, "  %-16s %-5s not found (expanded %d)\n", o.ID, o.Algorithm, o.Expanded)
		}
	}
}
