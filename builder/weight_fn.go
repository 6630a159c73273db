package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the arc cost used when no WeightFn is configured.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an arc cost from an optional RNG. Costs must be finite
// and non-negative; core.Graph rejects anything else.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always yields value. Panics if value < 0 or not finite.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be finite and ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn samples uniformly in [lo, hi). With a nil RNG it yields
// DefaultEdgeWeight. Panics unless 0 ≤ lo ≤ hi.
func UniformWeightFn(lo, hi float64) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ lo ≤ hi, got lo=%g, hi=%g", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if hi == lo {
			return lo
		}
		return lo + rng.Float64()*(hi-lo)
	}
}

// IntegerWeightFn samples integers uniformly in [lo, hi], which keeps path
// costs exact in tests. With a nil RNG it yields DefaultEdgeWeight.
// Panics unless 0 ≤ lo ≤ hi.
func IntegerWeightFn(lo, hi int) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("IntegerWeightFn: require 0 ≤ lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		return float64(lo + rng.Intn(hi-lo+1))
	}
}

// WithConstantWeight sets a fixed arc cost.
func WithConstantWeight(w float64) BuilderOption { return WithWeightFn(ConstantWeightFn(w)) }

// WithUniformWeight draws costs from UniformWeightFn(lo, hi).
func WithUniformWeight(lo, hi float64) BuilderOption { return WithWeightFn(UniformWeightFn(lo, hi)) }

// WithIntegerWeight draws costs from IntegerWeightFn(lo, hi).
func WithIntegerWeight(lo, hi int) BuilderOption { return WithWeightFn(IntegerWeightFn(lo, hi)) }
