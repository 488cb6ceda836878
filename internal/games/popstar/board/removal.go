package board

import "fmt"

// RemovalKind tells how a set of cells was removed.
type RemovalKind int

const (
	RemovalMatch  RemovalKind = iota // Player-selected group
	RemovalColumn                    // Forced clear of one column
)

// String returns the string representation of a removal kind.
func (k RemovalKind) String() string {
	switch k {
	case RemovalMatch:
		return "match"
	case RemovalColumn:
		return "column"
	default:
		return "unknown"
	}
}

// RemovedCell records one vacated cell for effects and sound.
type RemovedCell struct {
	Pos   Pos
	Color ColorID
}

// RemovalResult describes one removal.
type RemovalResult struct {
	Kind  RemovalKind
	Count int
	Color ColorID // NoColor when the removed cells differ in colour
	Cells []RemovedCell
}

// Remove vacates every listed cell. Each position must be in bounds, alive,
// and listed once; otherwise nothing is changed and an error is returned.
func Remove(g *Grid, positions []Pos) (RemovalResult, error) {
	return g.remove(RemovalMatch, positions)
}

// RemoveColumn vacates every alive cell in column col.
// It is equivalent to Remove with that column's alive positions.
func RemoveColumn(g *Grid, col int) (RemovalResult, error) {
	if col < 0 || col >= g.cols {
		return RemovalResult{}, fmt.Errorf("board: remove column %d: %w", col, ErrOutOfBounds)
	}
	positions := make([]Pos, 0, g.rows)
	for r := 0; r < g.rows; r++ {
		if g.at(P(r, col)).Alive {
			positions = append(positions, P(r, col))
		}
	}
	return g.remove(RemovalColumn, positions)
}

func (g *Grid) remove(kind RemovalKind, positions []Pos) (RemovalResult, error) {
	// Validate everything first so a bad call leaves the grid untouched
	listed := make(map[Pos]bool, len(positions))
	for _, p := range positions {
		if !g.InBounds(p) {
			return RemovalResult{}, fmt.Errorf("board: remove %v: %w", p, ErrOutOfBounds)
		}
		if listed[p] || !g.at(p).Alive {
			return RemovalResult{}, fmt.Errorf("board: remove %v: %w", p, ErrAlreadyRemoved)
		}
		listed[p] = true
	}

	result := RemovalResult{
		Kind:  kind,
		Count: len(positions),
		Color: NoColor,
		Cells: make([]RemovedCell, 0, len(positions)),
	}
	for i, p := range positions {
		cell := g.at(p)
		if i == 0 {
			result.Color = cell.Color
		} else if cell.Color != result.Color {
			result.Color = NoColor
		}
		result.Cells = append(result.Cells, RemovedCell{Pos: p, Color: cell.Color})

		cell.Alive = false
		g.put(p, cell)
	}
	if len(positions) == 0 {
		result.Color = NoColor
	}
	return result, nil
}
