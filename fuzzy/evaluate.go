package fuzzy

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/pathfuzz/internal/telemetry"
)

// Evaluate runs the fixed two-rule inference pass:
//
//	low  = max(Degree(input2, low2),  Degree(input1, low1))   // OR  → outputLow
//	high = min(Degree(input2, high2), Degree(input1, high1))  // AND → outputHigh
//
// and defuzzifies with WeightedAverage. When both activations are zero the
// output is the midpoint of outputLow and outputHigh unless WithFallback
// overrides it. Evaluate is pure apart from metrics and debug logging.
func Evaluate(input1, input2 float64, low1, high1, low2, high2 Shape, outputLow, outputHigh float64, opts ...Option) Result {
	cfg := buildOptions(opts)
	fallback := (outputLow + outputHigh) / 2
	if cfg.hasFallback {
		fallback = cfg.fallback
	}

	r := Result{
		Low1:  low1.Degree(input1),
		High1: high1.Degree(input1),
		Low2:  low2.Degree(input2),
		High2: high2.Degree(input2),
	}
	r.LowActivation = math.Max(r.Low2, r.Low1)
	r.HighActivation = math.Min(r.High2, r.High1)
	r.Output, r.Fallback = reduce(
		[]float64{r.LowActivation, r.HighActivation},
		[]float64{outputLow, outputHigh},
		fallback,
	)

	telemetry.ObserveInference(r.Fallback)
	cfg.Logger.Debug("fuzzy evaluate",
		slog.Float64("input1", input1),
		slog.Float64("input2", input2),
		slog.Float64("low", r.LowActivation),
		slog.Float64("high", r.HighActivation),
		slog.Float64("output", r.Output),
		slog.Bool("fallback", r.Fallback),
	)

	return r
}
