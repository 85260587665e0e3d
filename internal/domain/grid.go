package domain

import "strings"

// Cell is one grid position. The zero value is a blank cell.
type Cell struct {
	Symbol rune
	// Locked marks cells written by a stroke; flood fill never crosses them.
	Locked bool
}

// Blank reports whether nothing has been drawn in the cell.
func (c Cell) Blank() bool { return c.Symbol == 0 }

// Grid is a fixed-size rectangular array of cells, indexed [row][col].
type Grid struct {
	rows [][]Cell
}

// NewGrid allocates a blank grid. Negative sizes produce an empty grid.
func NewGrid(cols, rows int) *Grid {
	if cols < 0 || rows < 0 {
		return &Grid{}
	}
	g := &Grid{rows: make([][]Cell, rows)}
	for y := range g.rows {
		g.rows[y] = make([]Cell, cols)
	}
	return g
}

// IsEmpty reports whether no canvas has been established yet.
func (g *Grid) IsEmpty() bool {
	return g == nil || len(g.rows) == 0
}

// Rows is the grid height, border included.
func (g *Grid) Rows() int {
	if g == nil {
		return 0
	}
	return len(g.rows)
}

// Cols is the grid width, border included.
func (g *Grid) Cols() int {
	if g.IsEmpty() {
		return 0
	}
	return len(g.rows[0])
}

// Contains reports whether p addresses a cell of the grid.
func (g *Grid) Contains(p Point) bool {
	return p.Y >= 0 && p.Y < g.Rows() && p.X >= 0 && p.X < len(g.rows[p.Y])
}

// At returns the cell at p; ok is false when p is outside the grid.
func (g *Grid) At(p Point) (c Cell, ok bool) {
	if !g.Contains(p) {
		return Cell{}, false
	}
	return g.rows[p.Y][p.X], true
}

// Set writes c at p and reports whether p was inside the grid.
func (g *Grid) Set(p Point, c Cell) bool {
	if !g.Contains(p) {
		return false
	}
	g.rows[p.Y][p.X] = c
	return true
}

// Clone returns a deep copy. Cloning a nil grid yields an empty grid.
func (g *Grid) Clone() *Grid {
	if g == nil {
		return &Grid{}
	}
	out := &Grid{rows: make([][]Cell, len(g.rows))}
	for y, row := range g.rows {
		out.rows[y] = make([]Cell, len(row))
		copy(out.rows[y], row)
	}
	return out
}

// String renders the grid as a snapshot: one line per row, each terminated
// by a newline, blanks as spaces.
func (g *Grid) String() string {
	if g.IsEmpty() {
		return "\n"
	}

	var b strings.Builder
	b.Grow(g.Rows() * (g.Cols() + 1))
	for y, row := range g.rows {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			if c.Blank() {
				b.WriteByte(' ')
				continue
			}
			b.WriteRune(c.Symbol)
		}
	}
	b.WriteByte('\n')
	return b.String()
}
