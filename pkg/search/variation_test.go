package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/waxwing/gambit/pkg/board"
	"github.com/waxwing/gambit/pkg/eval"
	"github.com/waxwing/gambit/pkg/search"
)

func TestVariationLineEmpty(t *testing.T) {
	var v search.Variation
	assert.Empty(t, v.Line())
}

func TestVariationString(t *testing.T) {
	m1, _ := board.ParseMove("e2e4")
	var v search.Variation
	v.Moves[0] = m1
	v.Len = 1
	v.Score = eval.Score(12.5)

	assert.Equal(t, "score=12.50 pv=e2e4", v.String())
}
