package scenario

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathfuzz/internal/telemetry"
)

//go:embed default.yaml
var defaultScenarioYAML []byte

var validate = validator.New()

// Default returns the embedded reference scenario: the demo graphs, their
// heuristic, the restaurant-tip rule base and one query per algorithm.
func Default() (*Document, error) {
	return Load(bytes.NewReader(defaultScenarioYAML))
}

// LoadFile reads and validates the scenario at path.
func LoadFile(ctx context.Context, path string) (*Document, error) {
	_, span := telemetry.Tracer().Start(ctx, "pathfuzz.scenario.LoadFile")
	defer span.End()
	span.SetAttributes(attribute.String("scenario.path", path))

	f, err := os.Open(path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "open failed")
		return nil, fmt.Errorf("scenario: open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Load(f)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "load failed")
		return nil, fmt.Errorf("scenario: %s: %w", path, err)
	}
	span.SetAttributes(
		attribute.Int("scenario.graphs", len(doc.Graphs)),
		attribute.Int("scenario.queries", len(doc.Queries)),
	)

	return doc, nil
}

// Load decodes one YAML document from r and validates it. Unknown fields are
// rejected.
func Load(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxScenarioSize+1))
	if err != nil {
		return nil, fmt.Errorf("scenario: read: %w", err)
	}
	if len(data) > MaxScenarioSize {
		return nil, fmt.Errorf("%w: over %d bytes", ErrTooLarge, MaxScenarioSize)
	}

	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Validate checks struct tags and cross references between queries and the
// graphs, heuristics and rule bases they name.
func (d *Document) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	for _, q := range d.Queries {
		if q.Algorithm != AlgorithmFuzzy {
			if _, ok := d.graphSpec(q.Graph); !ok {
				return fmt.Errorf("query %q: %w: %q", q.ID, ErrUnknownGraph, q.Graph)
			}
		}
		if q.Algorithm == AlgorithmAStar {
			if _, ok := d.heuristicSpec(q.Heuristic); !ok {
				return fmt.Errorf("query %q: %w: %q", q.ID, ErrUnknownHeuristic, q.Heuristic)
			}
		}
		if q.Algorithm == AlgorithmFuzzy {
			if _, ok := d.ruleBaseSpec(q.RuleBase); !ok {
				return fmt.Errorf("query %q: %w: %q", q.ID, ErrUnknownRuleBase, q.RuleBase)
			}
		}
	}

	return nil
}

// Encode writes d as YAML with two-space indentation.
func Encode(w io.Writer, d *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("scenario: encode: %w", err)
	}

	return enc.Close()
}
