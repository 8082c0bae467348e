package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/waxwing/gambit/pkg/board"
)

func TestNewStandardPosition(t *testing.T) {
	pos := board.NewStandardPosition()

	wk, ok := pos.King(board.White)
	assert.True(t, ok)
	assert.Equal(t, board.NewSquare(4, 0), wk)

	bk, ok := pos.King(board.Black)
	assert.True(t, ok)
	assert.Equal(t, board.NewSquare(4, 7), bk)

	assert.Equal(t, 8, pos.PieceCount(board.White, board.Pawn))
	assert.Equal(t, 8, pos.PieceCount(board.Black, board.Pawn))
	assert.Equal(t, 2, pos.PieceCount(board.White, board.Knight))
	assert.Equal(t, 1, pos.PieceCount(board.White, board.Queen))

	for file := 0; file < 8; file++ {
		assert.False(t, pos.Get(board.NewSquare(file, 1)).HasMoved)
		assert.False(t, pos.Get(board.NewSquare(file, 0)).HasMoved)
	}

	expected := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"
	assert.Equal(t, expected, pos.String())
}

func TestPositionGetSetOutOfBounds(t *testing.T) {
	var pos board.Position
	assert.Equal(t, board.Empty, pos.Get(board.NewSquare(-1, 0)))
	assert.Equal(t, board.Empty, pos.Get(board.NewSquare(8, 0)))
}

func TestPositionClone(t *testing.T) {
	pos := board.NewStandardPosition()
	clone := pos.Clone()

	clone.Set(board.NewSquare(4, 1), board.Empty)

	assert.Equal(t, board.Pawn, pos.Get(board.NewSquare(4, 1)).Kind)
	assert.Equal(t, board.Empty, clone.Get(board.NewSquare(4, 1)))
}

func TestPositionKingMissing(t *testing.T) {
	var pos board.Position
	_, ok := pos.King(board.White)
	assert.False(t, ok)
}
