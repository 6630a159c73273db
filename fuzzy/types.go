// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, membership shapes, options and result types for the
//       fuzzy inference evaluator.

package fuzzy

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/pathfuzz/internal/telemetry"
)

// Sentinel errors.
var (
	// ErrShapeOrder indicates breakpoints that violate a <= b <= c.
	ErrShapeOrder = errors.New("fuzzy: shape breakpoints must satisfy a <= b <= c")

	// ErrLengthMismatch indicates activations and singletons of different lengths.
	ErrLengthMismatch = errors.New("fuzzy: activations and singletons differ in length")

	// ErrBadActivation indicates a negative or NaN activation passed to the reducer.
	ErrBadActivation = errors.New("fuzzy: activation must be non-negative")

	// ErrUnknownVariable indicates a rule clause naming an undeclared variable.
	ErrUnknownVariable = errors.New("fuzzy: unknown variable")

	// ErrDuplicateVariable indicates two variables sharing a name.
	ErrDuplicateVariable = errors.New("fuzzy: duplicate variable")

	// ErrUnknownTerm indicates a rule clause naming an undeclared term.
	ErrUnknownTerm = errors.New("fuzzy: unknown term")

	// ErrMissingInput indicates that Infer received no value for a declared variable.
	ErrMissingInput = errors.New("fuzzy: missing input")

	// ErrBadInput indicates a NaN or infinite input value.
	ErrBadInput = errors.New("fuzzy: input must be finite")

	// ErrEmptyRule indicates a rule without antecedents.
	ErrEmptyRule = errors.New("fuzzy: rule has no antecedents")

	// ErrNoRules indicates a rule base without rules.
	ErrNoRules = errors.New("fuzzy: rule base has no rules")

	// ErrBadOp indicates a rule combinator other than And or Or.
	ErrBadOp = errors.New("fuzzy: unknown rule combinator")

	// ErrBadWeight indicates a negative, NaN or infinite rule weight.
	ErrBadWeight = errors.New("fuzzy: rule weight must be finite and non-negative")

	// ErrBadSingleton indicates a NaN or infinite rule output.
	ErrBadSingleton = errors.New("fuzzy: rule output must be finite")
)

// Kind classifies a Shape by the branch Degree takes for it.
type Kind int

const (
	// Triangle rises on (A,B), peaks at B and falls on (B,C).
	Triangle Kind = iota
	// LeftShoulder (A == B) is 1 for x <= A and falls to 0 at C.
	LeftShoulder
	// RightShoulder (B == C) rises from A and is 1 for x >= C.
	RightShoulder
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Triangle:
		return "triangle"
	case LeftShoulder:
		return "left-shoulder"
	case RightShoulder:
		return "right-shoulder"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Shape is a piecewise-linear membership function with breakpoints A <= B <= C.
// The zero value is the degenerate shape at 0.
type Shape struct {
	A, B, C float64
}

// NewShape returns Shape{a, b, c} or ErrShapeOrder when a > b or b > c.
func NewShape(a, b, c float64) (Shape, error) {
	s := Shape{A: a, B: b, C: c}
	if err := s.Validate(); err != nil {
		return Shape{}, err
	}

	return s, nil
}

// Validate reports ErrShapeOrder for out-of-order or NaN breakpoints.
func (s Shape) Validate() error {
	if !(s.A <= s.B && s.B <= s.C) {
		return fmt.Errorf("%w: (%g, %g, %g)", ErrShapeOrder, s.A, s.B, s.C)
	}

	return nil
}

// Kind reports which branch Degree takes. A == B wins over B == C, so a
// fully degenerate shape is a LeftShoulder.
func (s Shape) Kind() Kind {
	switch {
	case s.A == s.B:
		return LeftShoulder
	case s.B == s.C:
		return RightShoulder
	default:
		return Triangle
	}
}

// Degree evaluates x against s. See the package-level Degree.
func (s Shape) Degree(x float64) float64 { return Degree(x, s.A, s.B, s.C) }

// Options configures Evaluate and RuleBase.Infer.
type Options struct {
	Logger *slog.Logger

	fallback    float64
	hasFallback bool
}

// Option represents a functional option for Evaluate and Infer.
type Option func(*Options)

// DefaultOptions returns Options with a discard logger and no fallback
// override.
func DefaultOptions() Options {
	return Options{Logger: telemetry.DiscardLogger()}
}

// WithFallback sets the value returned when every rule activation is zero.
func WithFallback(v float64) Option {
	return func(o *Options) {
		o.fallback = v
		o.hasFallback = true
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

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Result reports one two-rule Evaluate pass.
//
// Low1/High1 are input1's degrees in its low and high shapes, Low2/High2 the
// same for input2. LowActivation drives toward the low output, HighActivation
// toward the high output. Fallback is set when both activations were zero.
type Result struct {
	Output         float64
	Low1, High1    float64
	Low2, High2    float64
	LowActivation  float64
	HighActivation float64
	Fallback       bool
}
