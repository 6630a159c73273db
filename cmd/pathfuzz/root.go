package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathfuzz/scenario"
)

// app carries the persistent flags and the resources built from them.
type app struct {
	scenarioPath string
	logLevel     string
	jsonOut      bool

	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "pathfuzz",
		Short: "Graph search (BFS, DFS, A*) and fuzzy inference over YAML scenarios",
		Long: `pathfuzz runs breadth-first, depth-first and A* path searches and
Mamdani-style fuzzy inference. Graphs, heuristics and rule bases come from a
scenario file (--scenario) or from the embedded reference scenario.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(a.logLevel, a.jsonOut, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.scenarioPath, "scenario", "", "scenario YAML file (default: embedded reference scenario)")
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.BoolVar(&a.jsonOut, "json", false, "emit JSON (default when stdout is not a terminal)")

	root.AddCommand(
		newSearchCmd(a),
		newFuzzyCmd(a),
		newCurveCmd(a),
		newBatchCmd(a),
		newGenerateCmd(a),
		newMazeCmd(a),
		newServeMetricsCmd(a),
	)

	return root
}

// newLogger builds a stderr slog logger at the named level.
func newLogger(level string, jsonOut bool, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if jsonOut {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// document loads --scenario or the embedded default.
func (a *app) document(cmd *cobra.Command) (*scenario.Document, error) {
	if a.scenarioPath == "" {
		return scenario.Default()
	}

	return scenario.LoadFile(cmd.Context(), a.scenarioPath)
}

// wantJSON reports whether output should be JSON: --json, or stdout is a
// file that is not a terminal.
func (a *app) wantJSON(w io.Writer) bool {
	if a.jsonOut {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
}

// emit writes v as indented JSON or calls text for the human rendering.
func (a *app) emit(cmd *cobra.Command, v any, text func(w io.Writer)) error {
	w := cmd.OutOrStdout()
	if a.wantJSON(w) {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(w)

	return nil
}
