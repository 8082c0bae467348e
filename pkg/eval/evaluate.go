package eval

import (
	"github.com/waxwing/gambit/pkg/board"
	"github.com/waxwing/gambit/pkg/rules"
)

// Evaluator computes a static evaluation against a fixed set of Weights,
// memoizing by position hash. Not safe to share across goroutines that use
// different Weights; the trainer gives each worker its own Evaluator (see
// pkg/trainer), the engine gives its single game loop one.
type Evaluator struct {
	Weights Weights
	tt      *Table
}

// NewEvaluator returns an Evaluator over w with a fresh transposition table.
func NewEvaluator(w Weights) *Evaluator {
	return &Evaluator{Weights: w, tt: NewTable()}
}

// Evaluate returns the White-perspective static score of gs. Total: every
// position produces a value, even ill-formed ones missing a king.
func (e *Evaluator) Evaluate(gs *board.GameState) Score {
	key := Key(board.Hash(&gs.Position))
	if s, ok := e.tt.Lookup(key); ok {
		gs.Stats.TranspositionHits++
		return s
	}

	s := e.compute(gs)
	e.tt.Store(key, s)
	gs.Stats.Evaluations++
	return s
}

func (e *Evaluator) compute(gs *board.GameState) Score {
	w := &e.Weights
	pos := &gs.Position

	var score float64

	endgame := pos.PieceCount(board.Black, board.Knight)+
		pos.PieceCount(board.Black, board.Bishop)+
		pos.PieceCount(board.Black, board.Rook)+
		pos.PieceCount(board.Black, board.Queen) <= 2

	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			sq := board.Square{File: file, Rank: rank}
			p := pos.Get(sq)
			if p.IsEmpty() {
				continue
			}
			unit := p.Color.Unit()

			// 1. Material.
			score += unit * w.Material[p.Kind]

			// 2. Centre table.
			score += unit * w.CenterTable[file][rank] * w.CenterTableScale

			// 3. Piece-square tables.
			if t, ok := pstFor(p.Kind, endgame); ok {
				score += unit * w.PST[t][file][rank] * w.PSTScale[t]
			}

			// 4. Development penalty.
			if !p.HasMoved && onStartingSquare(p, sq) {
				score -= unit * w.DevelopmentPenaltyPerMove * float64(gs.PlyCount)
			}

			switch p.Kind {
			case board.Pawn:
				score += unit * pawnTerms(pos, sq, p, w)
			case board.Knight:
				score -= unit * knightTerms(sq, w)
			case board.Bishop, board.Rook, board.Queen:
				score += unit * sliderMobility(pos, sq, p.Kind, w)
			case board.King:
				score += unit * kingSafety(pos, sq, p, w)
			}
		}
	}

	// 9. Check.
	if rules.InCheck(gs, board.White) {
		score -= w.CheckPenalty
	}
	if rules.InCheck(gs, board.Black) {
		score += w.CheckBonus
	}

	result := Crop(Score(score))

	// 10. Stalemate guard: overrides everything above.
	if rules.IsStalemate(gs) {
		result = Score(gs.SideToMove.Opponent().Unit() * w.StalemateValue)
	}

	return result
}

// pstFor maps a piece kind (and endgame mode, for the king) to its table.
func pstFor(k board.Kind, endgame bool) (PST, bool) {
	switch k {
	case board.Pawn:
		return PawnPST, true
	case board.Knight:
		return KnightPST, true
	case board.Bishop:
		return BishopPST, true
	case board.Rook:
		return RookPST, true
	case board.Queen:
		return QueenPST, true
	case board.King:
		if endgame {
			return KingEndgamePST, true
		}
		return KingMidgamePST, true
	default:
		return 0, false
	}
}

// onStartingSquare reports whether sq is p's canonical square in the
// standard starting position, for the development penalty.
func onStartingSquare(p board.Piece, sq board.Square) bool {
	homeRank := 0
	if p.Color == board.Black {
		homeRank = 7
	}
	if p.Kind == board.Pawn {
		pawnRank := 1
		if p.Color == board.Black {
			pawnRank = 6
		}
		return sq.Rank == pawnRank
	}
	if sq.Rank != homeRank {
		return false
	}
	switch p.Kind {
	case board.Rook:
		return sq.File == 0 || sq.File == 7
	case board.Knight:
		return sq.File == 1 || sq.File == 6
	case board.Bishop:
		return sq.File == 2 || sq.File == 5
	case board.Queen:
		return sq.File == 3
	case board.King:
		return sq.File == 4
	default:
		return false
	}
}

// isCentralFile reports whether file is d or e (indices 3, 4).
func isCentralFile(file int) bool {
	return file == 3 || file == 4
}

// pawnTerms computes the central-pawn and promotion-proximity terms for one
// pawn, already signed to the pawn's own side (the caller applies unit on
// top, matching every other term).
func pawnTerms(pos *board.Position, sq board.Square, p board.Piece, w *Weights) float64 {
	var v float64

	if isCentralFile(sq.File) && (sq.Rank == 3 || sq.Rank == 4) {
		behindRank := sq.Rank - 1
		if p.Color == board.Black {
			behindRank = sq.Rank + 1
		}
		defended := false
		for _, df := range []int{-1, 1} {
			behind := board.Square{File: sq.File + df, Rank: behindRank}
			if behind.IsValid() {
				bp := pos.Get(behind)
				if bp.Kind == board.Pawn && bp.Color == p.Color {
					defended = true
					break
				}
			}
		}
		if !defended {
			v -= w.CentralPawnUndefendedPenalty
		}
		v += w.CentralPawnPresenceBonus
	}

	promoteRank := 7
	if p.Color == board.Black {
		promoteRank = 0
	}
	dist := promoteRank - sq.Rank
	if dist < 0 {
		dist = -dist
	}
	switch {
	case dist <= w.PromotionImmediateDistance:
		v += w.PromotionImmediateBonus
	case dist <= w.PromotionDelayedDistance:
		v += w.PromotionDelayedBonus
	}

	return v
}

// knightTerms computes the backstop and edge penalties, already a positive
// magnitude the caller subtracts.
func knightTerms(sq board.Square, w *Weights) float64 {
	var v float64
	onBackRank := sq.Rank == 0 || sq.Rank == 7
	if onBackRank && sq.File >= 1 && sq.File <= 4 {
		v += w.KnightBackstopPenalty
	}
	if sq.File == 0 || sq.File == 7 {
		v += w.KnightEdgePenalty
	}
	return v
}

// sliderMobility counts the squares a bishop/rook/queen on sq can reach
// (blocked by the first piece in each direction; that piece's square counts
// whichever side the piece belongs to).
func sliderMobility(pos *board.Position, sq board.Square, k board.Kind, w *Weights) float64 {
	var directions [][2]int
	switch k {
	case board.Bishop:
		directions = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	case board.Rook:
		directions = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	case board.Queen:
		directions = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}, {1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	}

	n := 0
	for _, d := range directions {
		cur := sq
		for {
			cur = board.Square{File: cur.File + d[0], Rank: cur.Rank + d[1]}
			if !cur.IsValid() {
				break
			}
			n++
			if !pos.Get(cur).IsEmpty() {
				break
			}
		}
	}
	return float64(n) * w.SliderMobilityPerSquare
}

// kingSafety computes the bundle of king-safety terms for the king at sq.
func kingSafety(pos *board.Position, sq board.Square, p board.Piece, w *Weights) float64 {
	var v float64

	if p.HasMoved {
		v -= w.KingHasMovedPenalty
	}
	if isCentralFile(sq.File) && sq.Rank >= 1 && sq.Rank <= 4 {
		v -= w.KingCenterExposurePenalty
	}

	homeRank := 0
	if p.Color == board.Black {
		homeRank = 7
	}
	if sq.Rank == homeRank {
		if sq.File == 6 {
			rook := pos.Get(board.Square{File: 5, Rank: homeRank})
			if rook.Kind == board.Rook && rook.Color == p.Color {
				v += w.KingCastledBonus
			}
		} else if sq.File == 2 {
			rook := pos.Get(board.Square{File: 3, Rank: homeRank})
			if rook.Kind == board.Rook && rook.Color == p.Color {
				v += w.KingCastledBonus
			}
		}
	}

	enemy := p.Color.Opponent()
	for _, o := range [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}} {
		adj := board.Square{File: sq.File + o[0], Rank: sq.Rank + o[1]}
		if adj.IsValid() && rules.IsAttacked(pos, adj, enemy) {
			v += w.KingAdjacentAttackBonus
		}
	}

	if w.IslandTermEnabled {
		v += islandTerm(pos, sq, p, w)
	}

	return v
}

// islandTerm computes the optional "unreachable to enemy king" bonus:
// squares adjacent to this king that the enemy king cannot itself reach in
// one move, counted once each. Disabled by default.
func islandTerm(pos *board.Position, sq board.Square, p board.Piece, w *Weights) float64 {
	enemyKingSq, ok := pos.King(p.Color.Opponent())
	if !ok {
		return 0
	}
	n := 0
	for _, o := range [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}} {
		adj := board.Square{File: sq.File + o[0], Rank: sq.Rank + o[1]}
		if !adj.IsValid() {
			continue
		}
		if board.ChebyshevDistance(adj, enemyKingSq) > 1 {
			n++
		}
	}
	return float64(n) * w.IslandBonus
}
