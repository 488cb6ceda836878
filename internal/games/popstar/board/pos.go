package board

import "fmt"

// Pos is a grid position. Row 0 is the top row, Col 0 the leftmost column.
type Pos struct {
	Row int
	Col int
}

// P is a convenience constructor for Pos.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Add returns a new Pos offset by (dr, dc).
func (p Pos) Add(dr, dc int) Pos {
	return Pos{Row: p.Row + dr, Col: p.Col + dc}
}

// Less orders positions row-major.
func (p Pos) Less(other Pos) bool {
	if p.Row != other.Row {
		return p.Row < other.Row
	}
	return p.Col < other.Col
}

// offsets4 lists the orthogonal neighbours: up, down, left, right.
var offsets4 = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
