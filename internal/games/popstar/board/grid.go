package board

import (
	"fmt"
	"strings"
)

// Grid is a fixed-size rows x cols matrix of cells.
// Cells are stored in row-major order: index = row*cols + col.
// Every position always holds a cell; vacated slots are cells with Alive=false.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// NewGrid creates a grid whose cells are all vacated.
func NewGrid(rows, cols int) *Grid {
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.cells[g.index(P(r, c))] = Cell{Pos: P(r, c), Color: NoColor}
		}
	}
	return g
}

// NewRandomGrid creates a grid filled with alive cells of random colours.
func NewRandomGrid(rows, cols int, pal Palette) *Grid {
	g := NewGrid(rows, cols)
	for i := range g.cells {
		g.cells[i] = pal.fresh(g.cells[i].Pos)
	}
	return g
}

// FromColors builds a grid from a row-major colour matrix.
// Negative entries produce vacated cells.
func FromColors(colors [][]ColorID) (*Grid, error) {
	rows := len(colors)
	cols := 0
	if rows > 0 {
		cols = len(colors[0])
	}
	g := NewGrid(rows, cols)
	for r, line := range colors {
		if len(line) != cols {
			return nil, fmt.Errorf("board: row %d has %d columns, want %d", r, len(line), cols)
		}
		for c, color := range line {
			if color >= 0 {
				g.cells[g.index(P(r, c))] = Cell{Pos: P(r, c), Color: color, Alive: true}
			}
		}
	}
	return g, nil
}

// Parse builds a grid from a text layout, one line per row.
// Letters 'A'..'Z' are colours 0..25 and '.' is a vacated cell.
// Blank lines and surrounding spaces are ignored.
func Parse(layout string) (*Grid, error) {
	var colors [][]ColorID
	for _, line := range strings.Split(layout, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]ColorID, 0, len(line))
		for _, ch := range line {
			switch {
			case ch == '.':
				row = append(row, NoColor)
			case ch >= 'A' && ch <= 'Z':
				row = append(row, ColorID(ch-'A'))
			default:
				return nil, fmt.Errorf("board: unexpected rune %q in layout", ch)
			}
		}
		colors = append(colors, row)
	}
	return FromColors(colors)
}

// MustParse is like Parse but panics on error.
func MustParse(layout string) *Grid {
	g, err := Parse(layout)
	if err != nil {
		panic(err)
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// index converts a position to a flat array index.
func (g *Grid) index(p Pos) int {
	return p.Row*g.cols + p.Col
}

// InBounds returns true if the position is inside the grid.
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Get returns the cell at p.
func (g *Grid) Get(p Pos) (Cell, error) {
	if !g.InBounds(p) {
		return Cell{}, fmt.Errorf("board: get %v: %w", p, ErrOutOfBounds)
	}
	return g.cells[g.index(p)], nil
}

// Set stores cell at p. The cell's Pos is rewritten to p.
func (g *Grid) Set(p Pos, cell Cell) error {
	if !g.InBounds(p) {
		return fmt.Errorf("board: set %v: %w", p, ErrOutOfBounds)
	}
	cell.Pos = p
	g.cells[g.index(p)] = cell
	return nil
}

// at returns the cell at an in-bounds position.
func (g *Grid) at(p Pos) Cell {
	return g.cells[g.index(p)]
}

// put stores a cell at an in-bounds position.
func (g *Grid) put(p Pos, cell Cell) {
	cell.Pos = p
	g.cells[g.index(p)] = cell
}

// Neighbors4 returns the in-bounds up, down, left and right neighbours of p.
func (g *Grid) Neighbors4(p Pos) []Pos {
	if !g.InBounds(p) {
		return nil
	}
	out := make([]Pos, 0, 4)
	for _, d := range offsets4 {
		n := p.Add(d[0], d[1])
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Cells returns a row-major copy of all cells.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// AliveCount returns the number of alive cells.
func (g *Grid) AliveCount() int {
	n := 0
	for _, cell := range g.cells {
		if cell.Alive {
			n++
		}
	}
	return n
}

// ColumnAlive returns the number of alive cells in column col.
// Out-of-range columns have none.
func (g *Grid) ColumnAlive(col int) int {
	if col < 0 || col >= g.cols {
		return 0
	}
	n := 0
	for r := 0; r < g.rows; r++ {
		if g.at(P(r, col)).Alive {
			n++
		}
	}
	return n
}

// Equal returns true if both grids have the same dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, cell := range g.cells {
		if cell != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid in the Parse layout.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			sb.WriteRune(cellRune(g.at(P(r, c))))
		}
	}
	return sb.String()
}

func cellRune(cell Cell) rune {
	if !cell.Alive {
		return '.'
	}
	if cell.Color >= 0 && cell.Color < 26 {
		return 'A' + rune(cell.Color)
	}
	return '?'
}
