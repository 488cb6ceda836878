package board_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/popstar/internal/games/popstar/board"
)

// constSource always yields the same colour.
type constSource int

func (c constSource) Intn(n int) int { return int(c) % n }

func TestCollapseKeepsOrderAndFills(t *testing.T) {
	g := board.MustParse(`
		AB
		.C
		B.
		.D
	`)
	pal := board.NewPalette(5, constSource(4)) // fresh cells are 'E'

	moves := board.Collapse(g, pal)

	assert.Equal(t, "EE\nEB\nAC\nBD", g.String())
	assert.Equal(t, 8, g.AliveCount())
	assert.True(t, board.Settled(g))

	spawned := 0
	for _, m := range moves {
		if m.Spawned {
			spawned++
			assert.Less(t, m.From.Row, 0)
		} else {
			assert.Greater(t, m.To.Row, m.From.Row)
			assert.Equal(t, m.From.Col, m.To.Col)
		}
	}
	assert.Equal(t, 3, spawned)
}

func TestCollapseNoopOnFullGrid(t *testing.T) {
	g := board.MustParse("AB\nCD")
	moves := board.Collapse(g, board.NewPalette(4, constSource(0)))
	assert.Empty(t, moves)
	assert.Equal(t, "AB\nCD", g.String())
}

func TestCompactColumnsLeft(t *testing.T) {
	g := board.MustParse(`
		.A..
		.B.C
	`)
	pal := board.NewPalette(5, constSource(4))

	moves := board.CompactColumnsLeft(g, pal)

	assert.Equal(t, "A.EE\nBCEE", g.String())
	assert.True(t, board.Settled(g))

	shifted := 0
	for _, m := range moves {
		if !m.Spawned {
			shifted++
			assert.Equal(t, m.From.Row, m.To.Row)
			assert.Less(t, m.To.Col, m.From.Col)
		}
	}
	assert.Equal(t, 3, shifted)
}

func TestCompactColumnsLeftNoEmptyColumns(t *testing.T) {
	g := board.MustParse(".A\nBC")
	moves := board.CompactColumnsLeft(g, board.NewPalette(3, constSource(0)))
	assert.Empty(t, moves)
	assert.Equal(t, ".A\nBC", g.String())
}

func TestCollapseInvariantRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	pal := board.NewPalette(5, rng)

	for i := 0; i < 200; i++ {
		g := board.NewRandomGrid(1+rng.Intn(8), 1+rng.Intn(8), pal)
		colors := map[int][]board.ColorID{}
		for _, cell := range g.Cells() {
			if rng.Intn(3) == 0 {
				require.NoError(t, g.Set(cell.Pos, board.Cell{Color: board.NoColor}))
				continue
			}
			colors[cell.Pos.Col] = append(colors[cell.Pos.Col], cell.Color)
		}

		board.Collapse(g, pal)
		board.CompactColumnsLeft(g, pal)

		assert.True(t, board.Settled(g), "grid:\n%s", g)
		assert.Equal(t, g.Rows()*g.Cols(), g.AliveCount())

		// Survivors keep colour and order at the bottom of their column
		for col := 0; col < g.Cols(); col++ {
			want := colors[col]
			for k := range want {
				cell, err := g.Get(board.P(g.Rows()-len(want)+k, col))
				require.NoError(t, err)
				assert.Equal(t, want[k], cell.Color)
			}
		}
	}
}
