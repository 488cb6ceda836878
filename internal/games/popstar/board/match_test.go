package board_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/popstar/internal/games/popstar/board"
)

func TestConnectedGroup(t *testing.T) {
	g := board.MustParse(`
		AAB
		ABB
		CAB
	`)

	group, err := board.ConnectedGroup(g, board.P(0, 0))
	require.NoError(t, err)
	assert.Equal(t, []board.Pos{board.P(0, 0), board.P(0, 1), board.P(1, 0)}, group)

	group, err = board.ConnectedGroup(g, board.P(2, 2))
	require.NoError(t, err)
	assert.Equal(t, []board.Pos{board.P(0, 2), board.P(1, 1), board.P(1, 2), board.P(2, 2)}, group)

	// Diagonal contact does not connect
	group, err = board.ConnectedGroup(g, board.P(2, 1))
	require.NoError(t, err)
	assert.Equal(t, []board.Pos{board.P(2, 1)}, group)
}

func TestConnectedGroupSkipsVacated(t *testing.T) {
	g := board.MustParse(`
		A.A
		AAA
	`)
	group, err := board.ConnectedGroup(g, board.P(0, 0))
	require.NoError(t, err)
	assert.Len(t, group, 5)

	_, err = board.ConnectedGroup(g, board.P(0, 1))
	assert.True(t, errors.Is(err, board.ErrInvalidOrigin))

	_, err = board.ConnectedGroup(g, board.P(5, 5))
	assert.True(t, errors.Is(err, board.ErrOutOfBounds))
}

func TestConnectedGroupHandlesCycles(t *testing.T) {
	g := board.MustParse(`
		AAAA
		ABBA
		AAAA
	`)
	group, err := board.ConnectedGroup(g, board.P(1, 0))
	require.NoError(t, err)
	assert.Len(t, group, 10)

	seen := map[board.Pos]bool{}
	for _, p := range group {
		assert.False(t, seen[p], "duplicate %v", p)
		seen[p] = true
	}
}

func TestConnectedGroupLargeBoard(t *testing.T) {
	g := board.NewRandomGrid(200, 200, board.NewPalette(1, nil))
	group, err := board.ConnectedGroup(g, board.P(100, 100))
	require.NoError(t, err)
	assert.Len(t, group, 200*200)
}

func TestHasAnyMove(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		want   bool
	}{
		{"checkerboard", "AB\nBA", false},
		{"horizontal pair", "AA\nBC", true},
		{"vertical pair", "AB\nAC", true},
		{"pair at bottom right", "ABC\nCAB\nBCC", true},
		{"pair split by vacated", "A.A\nBCB", false},
		{"vacated neighbours", "..\n..", false},
		{"single cell", "A", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, board.HasAnyMove(board.MustParse(tt.layout)))
		})
	}
}

func TestHasAnyMoveAgreesWithGroups(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		rows, cols := 1+rng.Intn(6), 1+rng.Intn(6)
		g := board.NewRandomGrid(rows, cols, board.NewPalette(2+rng.Intn(4), rng))
		// Vacate some cells so pending slots are covered too
		for _, cell := range g.Cells() {
			if rng.Intn(5) == 0 {
				require.NoError(t, g.Set(cell.Pos, board.Cell{Color: board.NoColor}))
			}
		}

		want := false
		for _, cell := range g.Cells() {
			if !cell.Alive {
				continue
			}
			group, err := board.ConnectedGroup(g, cell.Pos)
			require.NoError(t, err)
			if len(group) >= 2 {
				want = true
				break
			}
		}
		assert.Equal(t, want, board.HasAnyMove(g), "grid:\n%s", g)
	}
}

func TestConnectedGroupMaximalAndStable(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		rows, cols := 1+rng.Intn(7), 1+rng.Intn(7)
		g := board.NewRandomGrid(rows, cols, board.NewPalette(2+rng.Intn(3), rng))
		cells := g.Cells()
		origin := cells[rng.Intn(len(cells))]

		group, err := board.ConnectedGroup(g, origin.Pos)
		require.NoError(t, err)

		in := make(map[board.Pos]bool, len(group))
		for _, p := range group {
			in[p] = true
		}
		require.True(t, in[origin.Pos], "group must contain its origin")

		// Every member matches the origin and no matching neighbour is left out.
		for _, p := range group {
			cell, err := g.Get(p)
			require.NoError(t, err)
			assert.True(t, cell.Alive)
			assert.Equal(t, origin.Color, cell.Color)
			for _, n := range g.Neighbors4(p) {
				nc, err := g.Get(n)
				require.NoError(t, err)
				if nc.Alive && nc.Color == origin.Color {
					assert.True(t, in[n], "neighbour %v of %v missing from group\n%s", n, p, g)
				}
			}
		}

		// Vacating a cell outside the group leaves the group unchanged.
		var outside []board.Pos
		for _, c := range cells {
			if c.Alive && !in[c.Pos] {
				outside = append(outside, c.Pos)
			}
		}
		if len(outside) == 0 {
			continue
		}
		victim := outside[rng.Intn(len(outside))]
		require.NoError(t, g.Set(victim, board.Cell{Color: board.NoColor}))

		again, err := board.ConnectedGroup(g, origin.Pos)
		require.NoError(t, err)
		assert.Equal(t, group, again, "group changed after vacating %v\n%s", victim, g)
	}
}

func TestHasMoveOfSize(t *testing.T) {
	g := board.MustParse(`
		AAB
		CDB
	`)
	assert.True(t, board.HasMoveOfSize(g, 2))
	assert.False(t, board.HasMoveOfSize(g, 3))

	g = board.MustParse(`
		AAB
		ADB
	`)
	assert.True(t, board.HasMoveOfSize(g, 3))
	assert.False(t, board.HasMoveOfSize(g, 4))
}
