package board_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/popstar/internal/games/popstar/board"
)

func TestRemoveGroup(t *testing.T) {
	g := board.MustParse(`
		AAB
		ABB
	`)
	group, err := board.ConnectedGroup(g, board.P(0, 0))
	require.NoError(t, err)

	res, err := board.Remove(g, group)
	require.NoError(t, err)
	assert.Equal(t, board.RemovalMatch, res.Kind)
	assert.Equal(t, 3, res.Count)
	assert.Equal(t, board.ColorID(0), res.Color)
	assert.Len(t, res.Cells, 3)
	assert.Equal(t, "..B\n.BB", g.String())
}

func TestRemoveRejectsWholeCall(t *testing.T) {
	tests := []struct {
		name      string
		positions []board.Pos
		wantErr   error
	}{
		{"duplicate", []board.Pos{board.P(0, 0), board.P(0, 1), board.P(0, 0)}, board.ErrAlreadyRemoved},
		{"vacated cell", []board.Pos{board.P(0, 0), board.P(1, 2)}, board.ErrAlreadyRemoved},
		{"out of bounds", []board.Pos{board.P(0, 0), board.P(4, 0)}, board.ErrOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := board.MustParse("AAB\nAB.")
			before := g.Clone()

			_, err := board.Remove(g, tt.positions)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.True(t, before.Equal(g), "grid changed on failed removal")
		})
	}
}

func TestRemoveColumn(t *testing.T) {
	g := board.MustParse(`
		AB.
		CDA
		.EB
	`)

	res, err := board.RemoveColumn(g, 2)
	require.NoError(t, err)
	assert.Equal(t, board.RemovalColumn, res.Kind)
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, board.NoColor, res.Color)
	assert.Equal(t, 0, g.ColumnAlive(2))
	assert.Equal(t, 2, g.ColumnAlive(0))

	res, err = board.RemoveColumn(g, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Count)

	_, err = board.RemoveColumn(g, 3)
	assert.True(t, errors.Is(err, board.ErrOutOfBounds))
}

func TestRemoveColumnSingleColour(t *testing.T) {
	g := board.MustParse("AB\nAB")
	res, err := board.RemoveColumn(g, 1)
	require.NoError(t, err)
	assert.Equal(t, board.ColorID(1), res.Color)
}
