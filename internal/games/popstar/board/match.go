package board

import (
	"fmt"
	"sort"

	"github.com/kamstrup/intmap"
)

// ConnectedGroup returns every alive cell of the origin's colour reachable from
// origin through orthogonal steps, origin included. The result is sorted
// row-major. A lone cell yields a group of size 1.
func ConnectedGroup(g *Grid, origin Pos) ([]Pos, error) {
	if !g.InBounds(origin) {
		return nil, fmt.Errorf("board: group at %v: %w", origin, ErrOutOfBounds)
	}
	start := g.at(origin)
	if !start.Alive {
		return nil, fmt.Errorf("board: group at %v: %w", origin, ErrInvalidOrigin)
	}
	return g.flood(origin, start.Color), nil
}

// flood runs an explicit-stack fill so recursion depth never depends on grid size.
func (g *Grid) flood(origin Pos, color ColorID) []Pos {
	visited := intmap.New[int, struct{}](16)
	visited.Put(g.index(origin), struct{}{})

	stack := []Pos{origin}
	var group []Pos
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		group = append(group, p)

		for _, d := range offsets4 {
			n := p.Add(d[0], d[1])
			if !g.InBounds(n) {
				continue
			}
			idx := g.index(n)
			if _, seen := visited.Get(idx); seen {
				continue
			}
			cell := g.cells[idx]
			if !cell.Alive || cell.Color != color {
				continue
			}
			visited.Put(idx, struct{}{})
			stack = append(stack, n)
		}
	}

	sort.Slice(group, func(i, j int) bool {
		return group[i].Less(group[j])
	})
	return group
}

// HasAnyMove returns true if some alive cell has an alive neighbour of the
// same colour. Checking the down and right neighbours of every cell visits
// each adjacency exactly once.
func HasAnyMove(g *Grid) bool {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			cell := g.at(P(r, c))
			if !cell.Alive {
				continue
			}
			// Check bottom neighbour
			if r < g.rows-1 {
				below := g.at(P(r+1, c))
				if below.Alive && below.Color == cell.Color {
					return true
				}
			}
			// Check right neighbour
			if c < g.cols-1 {
				right := g.at(P(r, c+1))
				if right.Alive && right.Color == cell.Color {
					return true
				}
			}
		}
	}
	return false
}

// HasMoveOfSize returns true if some connected group has at least size cells.
func HasMoveOfSize(g *Grid, size int) bool {
	if size <= 2 {
		return HasAnyMove(g)
	}
	seen := make([]bool, len(g.cells))
	for i, cell := range g.cells {
		if !cell.Alive || seen[i] {
			continue
		}
		group := g.flood(cell.Pos, cell.Color)
		if len(group) >= size {
			return true
		}
		for _, p := range group {
			seen[g.index(p)] = true
		}
	}
	return false
}
