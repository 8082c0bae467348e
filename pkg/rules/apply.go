package rules

import "github.com/waxwing/gambit/pkg/board"

// ApplyMove returns a new GameState with m played against gs. gs is left
// untouched -- the caller (search, puzzle scorer, engine) owns the clone,
// and replaces its own state only once a move is actually chosen, never
// mutating in place mid-search.
//
// ApplyMove trusts that m is one of the moves GenerateLegal or
// GeneratePseudoLegal produced (or a reference move already checked against
// that list); it does not re-validate legality.
func ApplyMove(gs board.GameState, m board.Move) board.GameState {
	next := gs.Clone()

	mover := next.Position.Get(m.From)
	isPawn := mover.Kind == board.Pawn
	isCapture := !next.Position.Get(m.To).IsEmpty()

	// En passant: the captured pawn sits beside the destination square, not on it.
	if isPawn && m.From.File != m.To.File && !isCapture {
		capturedRank := m.From.Rank
		next.Position.Set(board.Square{File: m.To.File, Rank: capturedRank}, board.Empty)
		isCapture = true
	}

	// Castling: move the rook alongside the king.
	if mover.Kind == board.King && abs(m.To.File-m.From.File) == 2 {
		rank := m.From.Rank
		if m.To.File > m.From.File { // kingside
			rook := next.Position.Get(board.Square{File: 7, Rank: rank})
			rook.HasMoved = true
			next.Position.Set(board.Square{File: 7, Rank: rank}, board.Empty)
			next.Position.Set(board.Square{File: 5, Rank: rank}, rook)
		} else { // queenside
			rook := next.Position.Get(board.Square{File: 0, Rank: rank})
			rook.HasMoved = true
			next.Position.Set(board.Square{File: 0, Rank: rank}, board.Empty)
			next.Position.Set(board.Square{File: 3, Rank: rank}, rook)
		}
	}

	mover.HasMoved = true
	if isPawn && (m.To.Rank == 0 || m.To.Rank == 7) {
		promo := m.Promotion
		if !promo.IsValid() || promo == board.Pawn || promo == board.King {
			promo = board.Queen
		}
		mover.Kind = promo
	}

	next.Position.Set(m.From, board.Empty)
	next.Position.Set(m.To, mover)

	if isPawn || isCapture {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}

	next.LastMove = m
	next.HasLastMove = true
	next.PlyCount++
	next.SideToMove = next.SideToMove.Opponent()
	next.History.Push(board.RepetitionHash(&next.Position))

	return next
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
