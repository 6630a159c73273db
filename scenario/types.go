// Package scenario loads graphs, heuristic tables, fuzzy rule bases and
// queries from YAML documents and turns them into validated engine inputs.
//
// Thread Safety:
//
//	A loaded *Document is read-only; its builder methods are safe for
//	concurrent use.
package scenario

import "errors"

// MaxScenarioSize caps the bytes read from a single scenario document (1MB).
const MaxScenarioSize = 1024 * 1024

// Sentinel errors.
var (
	// ErrInvalidScenario wraps structural validation failures.
	ErrInvalidScenario = errors.New("scenario: invalid document")

	// ErrUnknownGraph indicates a reference to an undeclared graph.
	ErrUnknownGraph = errors.New("scenario: unknown graph")

	// ErrUnknownHeuristic indicates a reference to an undeclared heuristic.
	ErrUnknownHeuristic = errors.New("scenario: unknown heuristic")

	// ErrUnknownRuleBase indicates a reference to an undeclared rule base.
	ErrUnknownRuleBase = errors.New("scenario: unknown rule base")

	// ErrTooLarge indicates a document over MaxScenarioSize.
	ErrTooLarge = errors.New("scenario: document too large")
)

// Algorithm names accepted in QuerySpec.Algorithm.
const (
	AlgorithmBFS   = "bfs"
	AlgorithmDFS   = "dfs"
	AlgorithmAStar = "astar"
	AlgorithmFuzzy = "fuzzy"
)

// Document is the root of a scenario file.
type Document struct {
	Graphs     []GraphSpec     `yaml:"graphs,omitempty" validate:"unique=Name,dive"`
	Heuristics []HeuristicSpec `yaml:"heuristics,omitempty" validate:"unique=Name,dive"`
	RuleBases  []RuleBaseSpec  `yaml:"rulebases,omitempty" validate:"unique=Name,dive"`
	Queries    []QuerySpec     `yaml:"queries,omitempty" validate:"unique=ID,dive"`
}

// GraphSpec is a named graph given as an ordered adjacency list.
type GraphSpec struct {
	Name      string     `yaml:"name" validate:"required"`
	Weighted  bool       `yaml:"weighted"`
	Adjacency []NodeSpec `yaml:"adjacency" validate:"required,min=1,unique=Node,dive"`
}

// NodeSpec declares one node and its outgoing edges in order.
type NodeSpec struct {
	Node  string     `yaml:"node" validate:"required"`
	Edges []EdgeSpec `yaml:"edges,omitempty" validate:"dive"`
}

// EdgeSpec is one outgoing edge. Cost must be 0 on unweighted graphs.
type EdgeSpec struct {
	To   string  `yaml:"to" validate:"required"`
	Cost float64 `yaml:"cost,omitempty" validate:"gte=0"`
}

// HeuristicSpec is a named table of remaining-cost estimates.
type HeuristicSpec struct {
	Name   string             `yaml:"name" validate:"required"`
	Values map[string]float64 `yaml:"values" validate:"required,min=1,dive,gte=0"`
}

// RuleBaseSpec is a named fuzzy rule base.
type RuleBaseSpec struct {
	Name      string         `yaml:"name" validate:"required"`
	Fallback  float64        `yaml:"fallback"`
	Variables []VariableSpec `yaml:"variables" validate:"required,min=1,unique=Name,dive"`
	Rules     []RuleSpec     `yaml:"rules" validate:"required,min=1,dive"`
}

// VariableSpec maps term names to [a, b, c] membership breakpoints.
type VariableSpec struct {
	Name  string               `yaml:"name" validate:"required"`
	Terms map[string][]float64 `yaml:"terms" validate:"required,min=1,dive,len=3"`
}

// RuleSpec reads as: when <clauses joined by op> then <output>.
type RuleSpec struct {
	Op     string       `yaml:"op" validate:"required,oneof=and or"`
	When   []ClauseSpec `yaml:"when" validate:"required,min=1,dive"`
	Then   float64      `yaml:"then"`
	Weight float64      `yaml:"weight,omitempty" validate:"gte=0"`
}

// ClauseSpec reads as: <variable> is <term>.
type ClauseSpec struct {
	Variable string `yaml:"variable" validate:"required"`
	Is       string `yaml:"is" validate:"required"`
}

// QuerySpec is one unit of work for the batch runner.
type QuerySpec struct {
	ID            string             `yaml:"id" validate:"required"`
	Algorithm     string             `yaml:"algorithm" validate:"required,oneof=bfs dfs astar fuzzy"`
	Graph         string             `yaml:"graph,omitempty" validate:"required_unless=Algorithm fuzzy"`
	Heuristic     string             `yaml:"heuristic,omitempty" validate:"required_if=Algorithm astar"`
	RuleBase      string             `yaml:"rulebase,omitempty" validate:"required_if=Algorithm fuzzy"`
	Start         string             `yaml:"start,omitempty" validate:"required_unless=Algorithm fuzzy"`
	Goal          string             `yaml:"goal,omitempty" validate:"required_unless=Algorithm fuzzy"`
	Inputs        map[string]float64 `yaml:"inputs,omitempty" validate:"required_if=Algorithm fuzzy"`
	MaxExpansions int                `yaml:"max_expansions,omitempty" validate:"gte=0"`
}
