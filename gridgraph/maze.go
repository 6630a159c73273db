package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Maze symbols.
const (
	SymbolWall  = '#'
	SymbolOpen  = '.'
	SymbolStart = 'S'
	SymbolGoal  = 'G'
	SymbolPath  = '*'
)

// Maze is a parsed text grid with its start and goal cells.
type Maze struct {
	Grid  *GridGraph
	Start Cell
	Goal  Cell
}

// ParseMaze reads a text maze, one row per line:
//
//	#        wall (value 0)
//	. or ' ' open, cost 1
//	1..9     open, cost of the digit
//	S, G     start and goal, cost 1
//
// Trailing blank lines are ignored. Rows must all have the same width.
// opts.WallThreshold is forced to 1.
func ParseMaze(r io.Reader, opts GridOptions) (*Maze, error) {
	var (
		rows        [][]int
		start, goal []Cell
	)
	sc := bufio.NewScanner(r)
	for y := 0; sc.Scan(); y++ {
		line := strings.TrimRight(sc.Text(), "\r")
		row := make([]int, 0, len(line))
		for x, ch := range []rune(line) {
			switch {
			case ch == SymbolWall:
				row = append(row, 0)
			case ch == SymbolOpen || ch == ' ':
				row = append(row, 1)
			case ch >= '1' && ch <= '9':
				row = append(row, int(ch-'0'))
			case ch == SymbolStart:
				start = append(start, Cell{X: x, Y: y, Value: 1})
				row = append(row, 1)
			case ch == SymbolGoal:
				goal = append(goal, Cell{X: x, Y: y, Value: 1})
				row = append(row, 1)
			default:
				return nil, fmt.Errorf("%w %q at %d,%d", ErrBadSymbol, ch, x, y)
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read maze: %w", err)
	}
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	if len(start) != 1 || len(goal) != 1 {
		return nil, fmt.Errorf("%w: found %d S and %d G", ErrMarker, len(start), len(goal))
	}

	opts.WallThreshold = 1
	gg, err := NewGridGraph(rows, opts)
	if err != nil {
		return nil, err
	}

	return &Maze{Grid: gg, Start: start[0], Goal: goal[0]}, nil
}

// StartID and GoalID return the vertex IDs of the markers.
func (m *Maze) StartID() string { return ID(m.Start.X, m.Start.Y) }
func (m *Maze) GoalID() string  { return ID(m.Goal.X, m.Goal.Y) }

// Render draws the maze with path cells marked '*'. Markers keep their
// letters and IDs that ParseID rejects are skipped.
func (m *Maze) Render(path []string) string {
	gg := m.Grid
	canvas := make([][]rune, gg.Height)
	for y := range canvas {
		canvas[y] = make([]rune, gg.Width)
		for x := range canvas[y] {
			v := gg.CellValues[y][x]
			switch {
			case v < gg.WallThreshold:
				canvas[y][x] = SymbolWall
			case v == 1:
				canvas[y][x] = SymbolOpen
			case v <= 9:
				canvas[y][x] = rune('0' + v)
			default:
				canvas[y][x] = '+'
			}
		}
	}
	for _, id := range path {
		if x, y, ok := ParseID(id); ok && gg.InBounds(x, y) {
			canvas[y][x] = SymbolPath
		}
	}
	canvas[m.Start.Y][m.Start.X] = SymbolStart
	canvas[m.Goal.Y][m.Goal.X] = SymbolGoal

	var b strings.Builder
	for _, row := range canvas {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}

	return b.String()
}
