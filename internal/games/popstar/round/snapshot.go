package round

import "github.com/vovakirdan/popstar/internal/games/popstar/board"

// CellView is the read-only presentation state of one grid slot.
type CellView struct {
	Pos   board.Pos
	Color board.ColorID
	Alive bool

	// FallFrom is where the cell started its current fall; equal to Pos when
	// at rest. FallProgress runs from 0 at FallFrom to 1 at Pos.
	FallFrom     board.Pos
	FallProgress float64

	// ShrinkProgress runs from 0 to 1 while a removed cell disappears.
	// Alive cells report 0.
	ShrinkProgress float64
}

// Snapshot is a copy of everything a renderer needs for one tick.
type Snapshot struct {
	Tick  uint64
	Rows  int
	Cols  int
	Cells []CellView // row-major
	Score int
	State State
	Stats Stats

	Removals []board.RemovalResult

	// ClearColumn is the next column a forced clear removes, -1 otherwise.
	ClearColumn int
	// HasMove is false when no group of the minimum size is left.
	HasMove bool
}

// Snapshot returns the current presentation state.
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		Tick:        c.tick,
		Rows:        c.grid.Rows(),
		Cols:        c.grid.Cols(),
		Score:       c.score,
		State:       c.state,
		Stats:       c.stats,
		ClearColumn: -1,
		HasMove:     c.state != ForcedClearing,
	}
	if c.state == ForcedClearing {
		s.ClearColumn = c.clearCol
	}
	if len(c.removals) > 0 {
		s.Removals = make([]board.RemovalResult, len(c.removals))
		copy(s.Removals, c.removals)
	}

	cells := c.grid.Cells()
	s.Cells = make([]CellView, len(cells))
	for i, cell := range cells {
		v := CellView{
			Pos:          cell.Pos,
			Color:        cell.Color,
			Alive:        cell.Alive,
			FallFrom:     cell.Pos,
			FallProgress: 1,
		}
		if cell.Alive {
			v.FallFrom, v.FallProgress = c.motion.fallOf(cell.Pos)
		} else {
			v.ShrinkProgress = c.motion.shrinkOf(cell.Pos)
		}
		s.Cells[i] = v
	}
	return s
}

// At returns the view of the cell at (row, col).
func (s Snapshot) At(row, col int) (CellView, bool) {
	if row < 0 || row >= s.Rows || col < 0 || col >= s.Cols {
		return CellView{}, false
	}
	return s.Cells[row*s.Cols+col], true
}
