// Package batch runs every query of a scenario document concurrently.
//
// Graphs, heuristics and rule bases referenced by the queries are built once
// before fan-out and shared read-only by the workers. A failing query is
// recorded in its Outcome and never cancels its siblings; only the caller's
// context aborts the run.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pathfuzz/astar"
	"github.com/katalvlaran/pathfuzz/bfs"
	"github.com/katalvlaran/pathfuzz/core"
	"github.com/katalvlaran/pathfuzz/dfs"
	"github.com/katalvlaran/pathfuzz/fuzzy"
	"github.com/katalvlaran/pathfuzz/internal/telemetry"
	"github.com/katalvlaran/pathfuzz/scenario"
)

// ErrNilDocument is returned by Run when doc is nil.
var ErrNilDocument = errors.New("batch: document is nil")

// ErrBadWorkers indicates a non-positive worker count.
var ErrBadWorkers = errors.New("batch: workers must be positive")

// Options configures Run.
type Options struct {
	Workers int
	Logger  *slog.Logger

	err error
}

// Option represents a functional option for Run.
type Option func(*Options)

// DefaultOptions uses GOMAXPROCS workers and a discard logger.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Logger:  telemetry.DiscardLogger(),
	}
}

// WithWorkers bounds the number of queries in flight; n must be positive.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadWorkers, n)
			return
		}
		o.Workers = n
	}
}

// WithLogger sets the structured logger; nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Outcome is the result of one query. Search fields are zero for fuzzy
// queries and Output/Fallback are zero for searches.
type Outcome struct {
	ID           string        `json:"id"`
	InvocationID string        `json:"invocation_id"`
	Algorithm    string        `json:"algorithm"`
	Found        bool          `json:"found,omitempty"`
	Path         []string      `json:"path,omitempty"`
	Cost         float64       `json:"cost,omitempty"`
	Expanded     int           `json:"expanded,omitempty"`
	Truncated    bool          `json:"truncated,omitempty"`
	Output       float64       `json:"output,omitempty"`
	Fallback     bool          `json:"fallback,omitempty"`
	Duration     time.Duration `json:"duration_ns"`
	Err          error         `json:"-"`
	Error        string        `json:"error,omitempty"`
}

// Report collects the outcomes of one Run in query order.
type Report struct {
	RunID    string        `json:"run_id"`
	Outcomes []Outcome     `json:"outcomes"`
	Failed   int           `json:"failed"`
	Elapsed  time.Duration `json:"elapsed_ns"`
}

// shared holds the inputs built once per run.
type shared struct {
	graphs     map[string]*core.Graph[string]
	graphErr   map[string]error
	heuristics map[string]core.Heuristic[string]
	heurErr    map[string]error
	rules      map[string]fuzzy.RuleBase
	rulesErr   map[string]error
}

// Run executes every query in doc with at most Workers in flight.
// The returned error is non-nil only for invalid arguments or when ctx ends
// before all queries finish; per-query failures live in Outcome.Err.
func Run(ctx context.Context, doc *scenario.Document, opts ...Option) (*Report, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	runID := uuid.NewString()
	ctx, span := telemetry.Tracer().Start(ctx, "pathfuzz.batch.Run")
	defer span.End()
	span.SetAttributes(
		attribute.String("batch.run_id", runID),
		attribute.Int("batch.queries", len(doc.Queries)),
		attribute.Int("batch.workers", cfg.Workers),
	)

	start := time.Now()
	cfg.Logger.Info("batch started",
		slog.String("run_id", runID),
		slog.Int("queries", len(doc.Queries)),
		slog.Int("workers", cfg.Workers),
	)

	inputs := prepare(doc)
	report := &Report{RunID: runID, Outcomes: make([]Outcome, len(doc.Queries))}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, q := range doc.Queries {
		i, q := i, q
		g.Go(func() error {
			report.Outcomes[i] = execute(gCtx, q, inputs, cfg.Logger)
			return nil
		})
	}
	_ = g.Wait()

	for i := range report.Outcomes {
		if report.Outcomes[i].Err != nil {
			report.Failed++
		}
	}
	report.Elapsed = time.Since(start)

	cfg.Logger.Info("batch finished",
		slog.String("run_id", runID),
		slog.Int("failed", report.Failed),
		slog.Duration("elapsed", report.Elapsed),
	)
	if err := ctx.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "canceled")
		return report, err
	}
	span.SetStatus(codes.Ok, "done")

	return report, nil
}

// prepare builds each referenced graph, heuristic and rule base exactly once.
func prepare(doc *scenario.Document) *shared {
	s := &shared{
		graphs:     make(map[string]*core.Graph[string]),
		graphErr:   make(map[string]error),
		heuristics: make(map[string]core.Heuristic[string]),
		heurErr:    make(map[string]error),
		rules:      make(map[string]fuzzy.RuleBase),
		rulesErr:   make(map[string]error),
	}
	for _, q := range doc.Queries {
		if q.Algorithm == scenario.AlgorithmFuzzy {
			if _, done := s.rules[q.RuleBase]; done {
				continue
			}
			if _, done := s.rulesErr[q.RuleBase]; done {
				continue
			}
			rb, err := doc.RuleBase(q.RuleBase)
			if err != nil {
				s.rulesErr[q.RuleBase] = err
				continue
			}
			s.rules[q.RuleBase] = rb
			continue
		}

		if _, done := s.graphs[q.Graph]; !done {
			if _, failed := s.graphErr[q.Graph]; !failed {
				if gr, err := doc.Graph(q.Graph); err != nil {
					s.graphErr[q.Graph] = err
				} else {
					s.graphs[q.Graph] = gr
				}
			}
		}
		if q.Algorithm == scenario.AlgorithmAStar {
			if _, done := s.heuristics[q.Heuristic]; !done {
				if _, failed := s.heurErr[q.Heuristic]; !failed {
					if h, err := doc.Heuristic(q.Heuristic); err != nil {
						s.heurErr[q.Heuristic] = err
					} else {
						s.heuristics[q.Heuristic] = h
					}
				}
			}
		}
	}

	return s
}

// execute runs one query against the shared inputs.
func execute(ctx context.Context, q scenario.QuerySpec, in *shared, logger *slog.Logger) (out Outcome) {
	out = Outcome{ID: q.ID, InvocationID: uuid.NewString(), Algorithm: q.Algorithm}
	began := time.Now()
	defer func() {
		out.Duration = time.Since(began)
		if out.Err != nil {
			out.Error = out.Err.Error()
			logger.Warn("query failed",
				slog.String("id", q.ID),
				slog.String("invocation_id", out.InvocationID),
				slog.String("error", out.Error),
			)
		}
	}()

	if q.Algorithm == scenario.AlgorithmFuzzy {
		if err := in.rulesErr[q.RuleBase]; err != nil {
			out.Err = err
			return out
		}
		inf, err := in.rules[q.RuleBase].Infer(q.Inputs, fuzzy.WithLogger(logger))
		if err != nil {
			out.Err = err
			return out
		}
		out.Output, out.Fallback = inf.Output, inf.Fallback
		return out
	}

	if err := in.graphErr[q.Graph]; err != nil {
		out.Err = err
		return out
	}
	g := in.graphs[q.Graph]

	switch q.Algorithm {
	case scenario.AlgorithmBFS:
		res, err := bfs.Search(g, q.Start, q.Goal,
			bfs.WithContext(ctx), bfs.WithLogger(logger), bfs.WithMaxExpansions(q.MaxExpansions))
		if err != nil {
			out.Err = err
			return out
		}
		out.Found, out.Path, out.Cost, out.Expanded, out.Truncated = res.Found, res.Path, res.Cost, res.Expanded, res.Truncated
	case scenario.AlgorithmDFS:
		res, err := dfs.Search(g, q.Start, q.Goal,
			dfs.WithContext(ctx), dfs.WithLogger(logger), dfs.WithMaxExpansions(q.MaxExpansions))
		if err != nil {
			out.Err = err
			return out
		}
		out.Found, out.Path, out.Cost, out.Expanded, out.Truncated = res.Found, res.Path, res.Cost, res.Expanded, res.Truncated
	case scenario.AlgorithmAStar:
		if err := in.heurErr[q.Heuristic]; err != nil {
			out.Err = err
			return out
		}
		res, err := astar.Search(g, q.Start, q.Goal, in.heuristics[q.Heuristic],
			astar.WithContext(ctx), astar.WithLogger(logger), astar.WithMaxExpansions(q.MaxExpansions))
		if err != nil {
			out.Err = err
			return out
		}
		out.Found, out.Path, out.Cost, out.Expanded, out.Truncated = res.Found, res.Path, res.Cost, res.Expanded, res.Truncated
	default:
		out.Err = fmt.Errorf("batch: unsupported algorithm %q", q.Algorithm)
	}

	return out
}
