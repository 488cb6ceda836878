package board

// Move records a cell relocation caused by gravity or compaction.
// Spawned cells have a From outside the grid: above the top row for
// collapse, past the right edge for compaction.
type Move struct {
	From    Pos
	To      Pos
	Spawned bool
}

// Collapse lets alive cells fall to the bottom of their column, keeping their
// colour and relative order, and fills the slots above with fresh alive cells.
// It returns one Move per cell that changed row or was spawned.
func Collapse(g *Grid, pal Palette) []Move {
	var moves []Move
	for col := 0; col < g.cols; col++ {
		// Collect alive cells bottom to top
		survivors := make([]Cell, 0, g.rows)
		for row := g.rows - 1; row >= 0; row-- {
			if cell := g.at(P(row, col)); cell.Alive {
				survivors = append(survivors, cell)
			}
		}

		row := g.rows - 1
		for _, cell := range survivors {
			to := P(row, col)
			if cell.Pos != to {
				moves = append(moves, Move{From: cell.Pos, To: to})
			}
			g.put(to, cell)
			row--
		}

		// Spawn above, stacked so the lowest new cell starts just over the top edge
		missing := row + 1
		for ; row >= 0; row-- {
			to := P(row, col)
			g.put(to, pal.fresh(to))
			moves = append(moves, Move{From: P(row-missing, col), To: to, Spawned: true})
		}
	}
	return moves
}

// CompactColumnsLeft removes columns with no alive cells by shifting every
// column to their right one step left, preserving rows and colours. Columns
// left without a source are filled with fresh alive cells.
func CompactColumnsLeft(g *Grid, pal Palette) []Move {
	var moves []Move
	dst := 0
	for src := 0; src < g.cols; src++ {
		if g.ColumnAlive(src) == 0 {
			continue
		}
		if src != dst {
			for row := 0; row < g.rows; row++ {
				cell := g.at(P(row, src))
				if cell.Alive {
					moves = append(moves, Move{From: P(row, src), To: P(row, dst)})
				}
				g.put(P(row, dst), cell)
			}
		}
		dst++
	}

	for col := dst; col < g.cols; col++ {
		for row := 0; row < g.rows; row++ {
			to := P(row, col)
			g.put(to, pal.fresh(to))
			moves = append(moves, Move{From: P(row, col+g.cols-dst), To: to, Spawned: true})
		}
	}
	return moves
}

// Settled returns true if every column holds its alive cells in a contiguous
// bottom block and no empty column sits left of a non-empty one.
func Settled(g *Grid) bool {
	seenEmpty := false
	for col := 0; col < g.cols; col++ {
		alive := g.ColumnAlive(col)
		if alive == 0 {
			seenEmpty = true
			continue
		}
		if seenEmpty {
			return false
		}
		for row := 0; row < g.rows-alive; row++ {
			if g.at(P(row, col)).Alive {
				return false
			}
		}
	}
	return true
}
