package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/waxwing/gambit/pkg/board"
)

func TestNewGame(t *testing.T) {
	gs := board.NewGame()

	assert.Equal(t, board.White, gs.SideToMove)
	assert.False(t, gs.HasLastMove)
	assert.Equal(t, 0, gs.HalfmoveClock)
	assert.Equal(t, 0, gs.PlyCount)
	assert.Equal(t, 1, gs.History.Count(board.RepetitionHash(&gs.Position)))
}

func TestGameStateCloneIsIndependent(t *testing.T) {
	gs := board.NewGame()
	clone := gs.Clone()

	clone.Position.Set(board.NewSquare(4, 1), board.Empty)
	clone.SideToMove = board.Black

	assert.Equal(t, board.Pawn, gs.Position.Get(board.NewSquare(4, 1)).Kind)
	assert.Equal(t, board.White, gs.SideToMove)
}

func TestIsThreefoldRepetition(t *testing.T) {
	gs := board.NewGame()
	h := board.RepetitionHash(&gs.Position)

	assert.False(t, gs.IsThreefoldRepetition())

	gs.History.Push(h)
	gs.History.Push(h)
	assert.True(t, gs.IsThreefoldRepetition())
}

func TestIsThreefoldRepetitionIgnoresHasMoved(t *testing.T) {
	gs := board.NewGame()

	// A rook that shuffled out and back differs from the starting position
	// only in HasMoved; it must still count as the same position for
	// repetition purposes even though it hashes differently for the
	// transposition table.
	shuffled := gs.Clone()
	rook := shuffled.Position.Get(board.NewSquare(0, 0))
	rook.HasMoved = true
	shuffled.Position.Set(board.NewSquare(0, 0), rook)

	assert.NotEqual(t, board.Hash(&gs.Position), board.Hash(&shuffled.Position))
	assert.Equal(t, board.RepetitionHash(&gs.Position), board.RepetitionHash(&shuffled.Position))

	shuffled.History.Push(board.RepetitionHash(&shuffled.Position))
	shuffled.History.Push(board.RepetitionHash(&shuffled.Position))
	assert.True(t, shuffled.IsThreefoldRepetition())
}

func TestIsFiftyMoveDraw(t *testing.T) {
	gs := board.NewGame()
	assert.False(t, gs.IsFiftyMoveDraw())

	gs.HalfmoveClock = 99
	assert.False(t, gs.IsFiftyMoveDraw())

	gs.HalfmoveClock = 100
	assert.True(t, gs.IsFiftyMoveDraw())
}
