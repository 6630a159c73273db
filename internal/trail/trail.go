// Package trail stores search records in an append-only arena where each
// record points at its parent by index. Paths are rebuilt once, on success,
// by walking parent links back to the root.
package trail

// Root is the parent index of the seed record.
const Root = -1

// Record is one frontier entry: the node reached, the record it was reached
// from, its depth in edges and the accumulated cost.
type Record[N comparable] struct {
	Node   N
	Parent int
	Depth  int
	Cost   float64
}

// Arena is the append-only record store owned by a single search call.
type Arena[N comparable] struct {
	records []Record[N]
}

// New returns an Arena with room for capacity records.
func New[N comparable](capacity int) *Arena[N] {
	return &Arena[N]{records: make([]Record[N], 0, capacity)}
}

// Seed appends the root record for start and returns its index.
func (a *Arena[N]) Seed(start N) int {
	a.records = append(a.records, Record[N]{Node: start, Parent: Root})

	return len(a.records) - 1
}

// Extend appends a child of parent reached over an edge of the given cost
// and returns its index. parent must be an index previously returned by
// Seed or Extend.
func (a *Arena[N]) Extend(parent int, node N, cost float64) int {
	p := a.records[parent]
	a.records = append(a.records, Record[N]{
		Node:   node,
		Parent: parent,
		Depth:  p.Depth + 1,
		Cost:   p.Cost + cost,
	})

	return len(a.records) - 1
}

// At returns the record at index i.
func (a *Arena[N]) At(i int) Record[N] { return a.records[i] }

// Len returns the number of records stored.
func (a *Arena[N]) Len() int { return len(a.records) }

// Path reconstructs root..i inclusive.
func (a *Arena[N]) Path(i int) []N {
	path := make([]N, a.records[i].Depth+1)
	for k := len(path) - 1; i != Root; k-- {
		path[k] = a.records[i].Node
		i = a.records[i].Parent
	}

	return path
}
