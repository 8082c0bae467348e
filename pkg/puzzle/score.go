package puzzle

import (
	"context"

	"github.com/waxwing/gambit/pkg/board"
	"github.com/waxwing/gambit/pkg/eval"
	"github.com/waxwing/gambit/pkg/fen"
	"github.com/waxwing/gambit/pkg/rules"
	"github.com/waxwing/gambit/pkg/search"
)

// Score plays p's reference line move by move against a freshly constructed
// searcher over w, so that no transposition-table state leaks between
// puzzles. It reports whether the puzzle was solved.
func Score(p Puzzle, w eval.Weights, depth int) (bool, error) {
	gs, err := fen.Decode(p.FEN)
	if err != nil {
		return false, err
	}
	if len(p.Moves) == 0 {
		return false, nil
	}

	s := search.NewSearcher(eval.NewEvaluator(w))
	ctx := context.Background()

	// Move 0 is the setup move, played by the opponent before the puzzle's
	// side even gets a turn.
	setup, err := board.ParseMove(p.Moves[0])
	if err != nil {
		return false, nil
	}
	gs = rules.ApplyMove(gs, setup)

	for i := 1; i < len(p.Moves); i += 2 {
		reference := p.Moves[i]

		variation := s.Search(ctx, &gs, depth)
		if variation.Len == 0 {
			return false, nil
		}
		engineMove := variation.Moves[0]

		child := rules.ApplyMove(gs, engineMove)
		mates := rules.IsCheckmate(&child)

		if engineMove.String() != reference && !mates {
			return false, nil
		}

		gs = child
		if mates {
			return true, nil
		}

		if i+1 < len(p.Moves) {
			reply, err := board.ParseMove(p.Moves[i+1])
			if err != nil {
				return false, nil
			}
			gs = rules.ApplyMove(gs, reply)
		}
	}

	return true, nil
}
