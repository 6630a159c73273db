// Package builder provides deterministic graph fixtures for core.Graph[string]:
// Path, Cycle, Star, Grid, RandomSparse and the six-node Demo graph.
//
// Fixtures are composed with BuildGraph:
//
//	g, err := builder.BuildGraph(
//	    []core.GraphOption{core.WithWeighted()},
//	    []builder.BuilderOption{builder.WithSeed(42), builder.WithIntegerWeight(1, 9)},
//	    builder.Grid(8, 8),
//	)
//
// The same options, seed and constructor order always produce the same graph,
// so fixtures are safe to use in golden tests and benchmarks.
package builder
