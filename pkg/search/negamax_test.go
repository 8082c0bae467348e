package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waxwing/gambit/pkg/board"
	"github.com/waxwing/gambit/pkg/eval"
	"github.com/waxwing/gambit/pkg/fen"
	"github.com/waxwing/gambit/pkg/search"
)

func TestSearchFindsMateInOne(t *testing.T) {
	ctx := context.Background()
	gs, err := fen.Decode("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	require.NoError(t, err)

	s := search.NewSearcher(eval.NewEvaluator(eval.DefaultWeights()))
	v := s.Search(ctx, &gs, 1)

	want, err := board.ParseMove("a1a8")
	require.NoError(t, err)

	assert.Equal(t, 1, v.Len)
	assert.True(t, v.Moves[0].Equals(want), "expected a1a8, got %v", v.Moves[0])
	assert.Equal(t, search.CheckmateScore, v.Score)
}

func TestSearchCapturesHangingQueen(t *testing.T) {
	ctx := context.Background()
	gs, err := fen.Decode("q3k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	require.NoError(t, err)

	s := search.NewSearcher(eval.NewEvaluator(eval.DefaultWeights()))
	v := s.Search(ctx, &gs, 2)

	want, err := board.ParseMove("a1a8")
	require.NoError(t, err)
	assert.True(t, v.Moves[0].Equals(want), "expected a1a8, got %v", v.Moves[0])
	assert.Greater(t, float64(v.Score), 0.0)
}

func TestSearchReturnsLegalMove(t *testing.T) {
	ctx := context.Background()
	gs := board.NewGame()

	s := search.NewSearcher(eval.NewEvaluator(eval.DefaultWeights()))
	v := s.Search(ctx, &gs, 2)

	require.Greater(t, v.Len, 0)
}

func TestSearchStartingPositionIsRoughlyBalanced(t *testing.T) {
	ctx := context.Background()
	gs := board.NewGame()

	s := search.NewSearcher(eval.NewEvaluator(eval.DefaultWeights()))
	v := s.Search(ctx, &gs, 2)

	// With identical material and mirrored structure on both sides, a shallow
	// search should stay well short of anything resembling a forced mate or
	// major material swing.
	assert.Less(t, float64(v.Score), 1000.0)
	assert.Greater(t, float64(v.Score), -1000.0)
}

func TestSearchRespectsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gs := board.NewGame()
	s := search.NewSearcher(eval.NewEvaluator(eval.DefaultWeights()))

	v := s.Search(ctx, &gs, 3)
	assert.Equal(t, search.DrawScore, v.Score)
}
