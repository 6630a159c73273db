package fuzzy

import (
	"fmt"
	"math"
)

// WeightedAverage defuzzifies rule activations against their output
// singletons: Σ(activations[i]·singletons[i]) / Σactivations[i].
// When every activation is zero it returns fallback.
//
// Errors: ErrLengthMismatch, ErrBadActivation (negative or NaN activation).
func WeightedAverage(activations, singletons []float64, fallback float64) (float64, error) {
	if len(activations) != len(singletons) {
		return 0, fmt.Errorf("%w: %d activations, %d singletons",
			ErrLengthMismatch, len(activations), len(singletons))
	}
	for i, a := range activations {
		if math.IsNaN(a) || a < 0 {
			return 0, fmt.Errorf("%w: activations[%d]=%g", ErrBadActivation, i, a)
		}
	}
	out, _ := reduce(activations, singletons, fallback)

	return out, nil
}

// reduce is WeightedAverage on pre-validated input; used reports whether the
// fallback was taken.
func reduce(activations, singletons []float64, fallback float64) (out float64, used bool) {
	var num, total float64
	for i, a := range activations {
		num += a * singletons[i]
		total += a
	}
	if total == 0 {
		return fallback, true
	}

	return num / total, false
}
