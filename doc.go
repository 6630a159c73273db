// Package pathfuzz is a small toolkit for path search on directed graphs and
// for rule-based fuzzy inference.
//
// What is inside?
//
//	• Graph model: generic Graph[N] with declaration-ordered adjacency
//	• Uninformed search: breadth-first (bfs) and depth-first (dfs)
//	• Informed search: A* with pluggable estimates (astar)
//	• Fuzzy inference: shoulder/triangle membership, min/max rule
//	  activation and weighted-average reduction (fuzzy)
//	• Scenarios: YAML documents naming graphs, heuristics, rule bases
//	  and queries (scenario), run concurrently by batch
//
// Layout:
//
//	core/      — Graph[N], arcs, adjacency builders, heuristic tables
//	bfs/       — breadth-first path search
//	dfs/       — depth-first path search with selectable push order
//	astar/     — A* best-first search
//	fuzzy/     — membership functions, rule bases, the tip model
//	gridgraph/ — cost grids and text mazes as search graphs
//	builder/   — deterministic graph generators (path, cycle, star, grid, random)
//	scenario/  — YAML load/validate/encode and graph/rulebase materialisation
//	batch/     — bounded concurrent execution of scenario queries
//	cmd/       — the pathfuzz command-line tool
//
// The reference graph used throughout the docs:
//
//	A ──1──▶ B ──2──▶ D
//	│        │
//	4        5
//	▼        ▼
//	C        E
//	│        │
//	3        1
//	▼        │
//	F ◀──────┘
//
// BFS and DFS (default order) return A → C → F; A* with the table
// h = {A:6 B:4 C:2 D:4 E:1 F:0} returns A → C → F at cost 7.
//
//	go install github.com/katalvlaran/pathfuzz/cmd/pathfuzz@latest
package pathfuzz
