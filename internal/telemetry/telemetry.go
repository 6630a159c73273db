// Package telemetry holds the Prometheus metrics and the OpenTelemetry tracer
// shared by the search engines and the fuzzy evaluator.
//
// Without a registered TracerProvider the tracer is a no-op, and the metrics
// live in the default Prometheus registry until something scrapes them, so
// library callers pay only a few atomic increments per call.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Search outcome labels.
const (
	ResultFound     = "found"
	ResultNotFound  = "not_found"
	ResultTruncated = "truncated"
	ResultCanceled  = "canceled"
	ResultError     = "error"
)

var (
	searchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pathfuzz_search_total",
		Help: "Total searches by algorithm and outcome",
	}, []string{"algorithm", "result"})

	searchExpanded = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pathfuzz_search_expanded_nodes",
		Help:    "Nodes expanded per search",
		Buckets: prometheus.ExponentialBuckets(1, 2, 16),
	}, []string{"algorithm"})

	searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pathfuzz_search_duration_seconds",
		Help:    "Search duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
	}, []string{"algorithm"})

	fuzzyInferenceTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pathfuzz_fuzzy_inference_total",
		Help: "Total fuzzy inference passes",
	})

	fuzzyFallbackTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pathfuzz_fuzzy_fallback_total",
		Help: "Fuzzy inference passes where every rule activation was zero",
	})
)

var tracer = otel.Tracer("github.com/katalvlaran/pathfuzz")

// Tracer returns the package tracer.
func Tracer() trace.Tracer { return tracer }

// StartSearch opens a span for one search call.
func StartSearch(ctx context.Context, algorithm string, start, goal any) (context.Context, trace.Span) {
	return tracer.Start(ctx, "pathfuzz."+algorithm+".Search",
		trace.WithAttributes(
			attribute.String("search.algorithm", algorithm),
			attribute.String("search.start", fmt.Sprint(start)),
			attribute.String("search.goal", fmt.Sprint(goal)),
		),
	)
}

// Outcome summarizes a finished search for FinishSearch.
type Outcome struct {
	Algorithm string
	Found     bool
	Truncated bool
	Expanded  int
	PathLen   int
	Cost      float64
	Elapsed   time.Duration
	Err       error
}

// label maps an outcome to its metric label.
func (o Outcome) label() string {
	switch {
	case errors.Is(o.Err, context.Canceled), errors.Is(o.Err, context.DeadlineExceeded):
		return ResultCanceled
	case o.Err != nil:
		return ResultError
	case o.Found:
		return ResultFound
	case o.Truncated:
		return ResultTruncated
	default:
		return ResultNotFound
	}
}

// FinishSearch records metrics, annotates and ends span, and logs the outcome.
func FinishSearch(span trace.Span, logger *slog.Logger, o Outcome) {
	result := o.label()
	searchTotal.WithLabelValues(o.Algorithm, result).Inc()
	searchExpanded.WithLabelValues(o.Algorithm).Observe(float64(o.Expanded))
	searchDuration.WithLabelValues(o.Algorithm).Observe(o.Elapsed.Seconds())

	span.SetAttributes(
		attribute.String("search.result", result),
		attribute.Int("search.expanded", o.Expanded),
		attribute.Int("search.path_len", o.PathLen),
		attribute.Float64("search.cost", o.Cost),
	)
	if o.Err != nil {
		span.RecordError(o.Err)
		span.SetStatus(codes.Error, result)
		logger.Warn("search aborted",
			slog.String("algorithm", o.Algorithm),
			slog.String("error", o.Err.Error()),
			slog.Int("expanded", o.Expanded),
		)
	} else {
		span.SetStatus(codes.Ok, result)
		logger.Debug("search finished",
			slog.String("algorithm", o.Algorithm),
			slog.String("result", result),
			slog.Int("expanded", o.Expanded),
			slog.Int("path_len", o.PathLen),
			slog.Float64("cost", o.Cost),
			slog.Duration("duration", o.Elapsed),
		)
	}
	span.End()
}

// ObserveInference counts one fuzzy inference pass.
func ObserveInference(fallback bool) {
	fuzzyInferenceTotal.Inc()
	if fallback {
		fuzzyFallbackTotal.Inc()
	}
}

// DiscardLogger returns a logger that drops every record.
func DiscardLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }
