package search

import (
	"context"

	"github.com/seekerror/stdlib/pkg/util/contextx"
	"github.com/waxwing/gambit/pkg/board"
	"github.com/waxwing/gambit/pkg/eval"
	"github.com/waxwing/gambit/pkg/rules"
)

// CheckmateScore dwarfs any evaluator term so a forced mate always outranks a
// merely large material score; StalemateScore mirrors the evaluator's default
// stalemate-guard magnitude, and DrawScore is a neutral 0.
const (
	CheckmateScore      eval.Score = 1000000000
	StalemateScore      eval.Score = 500
	DrawScore           eval.Score = 0
	StaticFutilityMargin           = 150
)

// Searcher runs negamax alpha-beta search against one Evaluator.
type Searcher struct {
	Eval *eval.Evaluator
}

// NewSearcher returns a Searcher backed by e.
func NewSearcher(e *eval.Evaluator) *Searcher {
	return &Searcher{Eval: e}
}

// Search is the top-level entry point, called with cur_depth=0. It first
// checks for an immediate mate, then runs the recursive negamax.
func (s *Searcher) Search(ctx context.Context, gs *board.GameState, maxDepth int) Variation {
	side := gs.SideToMove

	for _, m := range rules.GenerateLegal(gs) {
		child := rules.ApplyMove(*gs, m)
		if rules.IsCheckmate(&child) {
			var v Variation
			v.Moves[0] = m
			v.Len = 1
			v.Score = CheckmateScore
			return v
		}
	}

	return s.negamax(ctx, gs, 0, maxDepth, side, eval.NegInf, eval.Inf)
}

// negamax is the recursive alpha-beta search, returning the score from side's
// perspective.
func (s *Searcher) negamax(ctx context.Context, gs *board.GameState, curDepth, maxDepth int, side board.Color, alpha, beta eval.Score) Variation {
	if rules.IsCheckmate(gs) {
		return Variation{Score: -CheckmateScore}
	}
	if rules.IsStalemate(gs) {
		return Variation{Score: -StalemateScore}
	}
	if gs.IsThreefoldRepetition() {
		return Variation{Score: DrawScore}
	}
	if gs.IsFiftyMoveDraw() {
		return Variation{Score: DrawScore}
	}
	if curDepth >= maxDepth {
		static := s.Eval.Evaluate(gs)
		return Variation{Score: eval.Score(side.Unit()) * static}
	}
	if contextx.IsCancelled(ctx) {
		return Variation{Score: DrawScore}
	}

	best := Variation{Score: eval.NegInf}
	adopted := false
	var fallback *Variation

	moves := rules.GenerateLegal(gs)
	for _, m := range moves {
		child := rules.ApplyMove(*gs, m)

		if adopted {
			staticScore := eval.Score(side.Unit()) * s.Eval.Evaluate(&child)
			if staticScore < best.Score-StaticFutilityMargin {
				gs.Stats.FutilityPrunes++
				continue
			}
		}

		result := s.negamax(ctx, &child, curDepth+1, maxDepth, side.Opponent(), -beta, -alpha)
		score := -result.Score

		if curDepth == 0 {
			score += endgameAdvancementBonus(gs, &child, m)
		}

		if fallback == nil {
			var fb Variation
			fb.prepend(m, &result)
			fb.Score = score
			fallback = &fb
		}

		if score > best.Score {
			best.prepend(m, &result)
			best.Score = score
			adopted = true
		}

		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			gs.Stats.AlphaBetaCutoffs++
			break
		}
	}

	if !adopted && fallback != nil {
		return *fallback
	}
	return best
}

// endgameAdvancementBonus is a depth-0-only bonus for a non-pawn, non-king
// piece that reduced its Chebyshev distance to the enemy king and landed
// somewhere it cannot immediately be captured.
func endgameAdvancementBonus(before, after *board.GameState, m board.Move) eval.Score {
	mover := before.Position.Get(m.From)
	if mover.Kind == board.Pawn || mover.Kind == board.King {
		return 0
	}

	enemyKing, ok := before.Position.King(mover.Color.Opponent())
	if !ok {
		return 0
	}

	distBefore := board.ChebyshevDistance(m.From, enemyKing)
	distAfter := board.ChebyshevDistance(m.To, enemyKing)
	if distAfter >= distBefore {
		return 0
	}

	if rules.IsAttacked(&after.Position, m.To, mover.Color.Opponent()) {
		return 0
	}

	delta := distBefore - distAfter
	return eval.Score(float64(delta) * (5 - float64(distAfter)) * 0.5)
}
