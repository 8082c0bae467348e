// Package search implements negamax alpha-beta search with static futility
// pruning over pkg/board/pkg/rules, memoizing leaf evaluations through the
// evaluator's transposition table.
package search

import (
	"fmt"

	"github.com/waxwing/gambit/pkg/board"
	"github.com/waxwing/gambit/pkg/eval"
)

// variationCapacity bounds the principal variation at 224 moves --
// comfortably above any line a max_depth≈4 search can produce, but fixed so
// Variation stays a plain value type, array-over-slice, like board.Position.
const variationCapacity = 224

// Variation is a move sequence and its score, returned by Search: the chosen
// move plus the principal continuation.
type Variation struct {
	Moves [variationCapacity]board.Move
	Len   int
	Score eval.Score
}

// Line returns the variation's moves as a slice, for display.
func (v *Variation) Line() []board.Move {
	return v.Moves[:v.Len]
}

// prepend sets v to {m} ++ child, truncating to capacity if child alone
// would overflow it.
func (v *Variation) prepend(m board.Move, child *Variation) {
	v.Moves[0] = m
	v.Len = 1
	for i := 0; i < child.Len && v.Len < variationCapacity; i++ {
		v.Moves[v.Len] = child.Moves[i]
		v.Len++
	}
}

func (v Variation) String() string {
	return fmt.Sprintf("score=%v pv=%v", v.Score, board.PrintMoves(v.Line()))
}
