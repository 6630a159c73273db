// SPDX-License-Identifier: MIT
// Package: pathfuzz/builder
//
// config.go — resolved builder knobs and their deterministic defaults.
//
// Defaults:
//   • idFn          = DefaultIDFn       ("0","1","2",...)
//   • rng           = nil               (no randomness unless seeded)
//   • weightFn      = DefaultWeightFn   (constant 1)
//   • bidirectional = false             (arcs follow the documented direction only)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn

	// bidirectional mirrors every emitted arc with its reverse.
	bidirectional bool
}

// newBuilderConfig applies opts in order over the defaults; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// cost draws the next arc cost: weightFn on weighted graphs, 0 otherwise.
func (cfg builderConfig) cost(weighted bool) float64 {
	if !weighted {
		return 0
	}

	return cfg.weightFn(cfg.rng)
}
