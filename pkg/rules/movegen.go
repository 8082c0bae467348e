package rules

import "github.com/waxwing/gambit/pkg/board"

// GeneratePseudoLegal returns every pseudo-legal move for gs.SideToMove, in a
// fixed deterministic order: outer loop over files 0..7, inner loop over
// ranks 0..7, and for each piece a fixed per-kind move order. This order
// decides which of two equally-scored moves the search keeps.
func GeneratePseudoLegal(gs *board.GameState) []board.Move {
	var moves []board.Move
	side := gs.SideToMove

	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			from := board.Square{File: file, Rank: rank}
			piece := gs.Position.Get(from)
			if piece.IsEmpty() || piece.Color != side {
				continue
			}

			switch piece.Kind {
			case board.Pawn:
				moves = append(moves, pawnMoves(gs, from)...)
			case board.Knight:
				moves = append(moves, offsetMoves(&gs.Position, from, side, knightOffsets[:])...)
			case board.Bishop:
				moves = append(moves, sliderMoves(&gs.Position, from, side, bishopDirections[:])...)
			case board.Rook:
				moves = append(moves, sliderMoves(&gs.Position, from, side, rookDirections[:])...)
			case board.Queen:
				moves = append(moves, sliderMoves(&gs.Position, from, side, queenDirections[:])...)
			case board.King:
				moves = append(moves, offsetMoves(&gs.Position, from, side, kingOffsets[:])...)
				moves = append(moves, castlingMoves(gs, from)...)
			}
		}
	}
	return moves
}

// GenerateLegal filters GeneratePseudoLegal down to moves that do not leave the
// mover's own king in check.
func GenerateLegal(gs *board.GameState) []board.Move {
	side := gs.SideToMove
	pseudo := GeneratePseudoLegal(gs)

	legal := make([]board.Move, 0, len(pseudo))
	for _, m := range pseudo {
		next := ApplyMove(*gs, m)
		if !InCheck(&next, side) {
			legal = append(legal, m)
		}
	}
	return legal
}

func pawnMoves(gs *board.GameState, from board.Square) []board.Move {
	pos := &gs.Position
	side := gs.Position.Get(from).Color

	forward := 1
	startRank := 1
	promoteRank := 7
	if side == board.Black {
		forward = -1
		startRank = 6
		promoteRank = 0
	}

	var moves []board.Move

	one := board.Square{File: from.File, Rank: from.Rank + forward}
	if one.IsValid() && pos.Get(one).IsEmpty() {
		moves = append(moves, promote(from, one, one.Rank == promoteRank))

		if from.Rank == startRank {
			two := board.Square{File: from.File, Rank: from.Rank + 2*forward}
			if pos.Get(two).IsEmpty() {
				moves = append(moves, board.Move{From: from, To: two})
			}
		}
	}

	for _, df := range []int{-1, 1} {
		to := board.Square{File: from.File + df, Rank: from.Rank + forward}
		if !to.IsValid() {
			continue
		}
		target := pos.Get(to)
		if !target.IsEmpty() && target.Color != side {
			moves = append(moves, promote(from, to, to.Rank == promoteRank))
		}
	}

	if ep, ok := enPassantTarget(gs, from, side); ok {
		moves = append(moves, board.Move{From: from, To: ep})
	}

	return moves
}

func promote(from, to board.Square, isPromotion bool) board.Move {
	if isPromotion {
		return board.Move{From: from, To: to, Promotion: board.Queen}
	}
	return board.Move{From: from, To: to}
}

// enPassantTarget reports the capture square iff the previous move was an
// enemy pawn two-square advance onto a square file-adjacent to this pawn on
// its fifth rank.
func enPassantTarget(gs *board.GameState, from board.Square, side board.Color) (board.Square, bool) {
	if !gs.HasLastMove {
		return board.Square{}, false
	}
	last := gs.LastMove

	fifthRank, fromRank, toRank, captureRank := 4, 6, 4, 5
	if side == board.Black {
		fifthRank, fromRank, toRank, captureRank = 3, 1, 3, 2
	}

	if from.Rank != fifthRank {
		return board.Square{}, false
	}
	mover := gs.Position.Get(last.To)
	if mover.Kind != board.Pawn || mover.Color == side {
		return board.Square{}, false
	}
	if last.From.Rank != fromRank || last.To.Rank != toRank {
		return board.Square{}, false
	}
	if abs(last.To.File-from.File) != 1 {
		return board.Square{}, false
	}
	return board.Square{File: last.To.File, Rank: captureRank}, true
}

func offsetMoves(pos *board.Position, from board.Square, side board.Color, offsets [][2]int) []board.Move {
	var moves []board.Move
	for _, o := range offsets {
		to := board.Square{File: from.File + o[0], Rank: from.Rank + o[1]}
		if !to.IsValid() {
			continue
		}
		target := pos.Get(to)
		if target.IsEmpty() || target.Color != side {
			moves = append(moves, board.Move{From: from, To: to})
		}
	}
	return moves
}

func sliderMoves(pos *board.Position, from board.Square, side board.Color, directions [][2]int) []board.Move {
	var moves []board.Move
	for _, d := range directions {
		cur := from
		for {
			cur = board.Square{File: cur.File + d[0], Rank: cur.Rank + d[1]}
			if !cur.IsValid() {
				break
			}
			target := pos.Get(cur)
			if target.IsEmpty() {
				moves = append(moves, board.Move{From: from, To: cur})
				continue
			}
			if target.Color != side {
				moves = append(moves, board.Move{From: from, To: cur})
			}
			break
		}
	}
	return moves
}

// castlingMoves returns the legal castling moves available to the king on
// from: king and chosen rook both unmoved, empty squares between them, king
// not currently in check and not passing through or landing on an attacked
// square.
func castlingMoves(gs *board.GameState, from board.Square) []board.Move {
	pos := &gs.Position
	king := pos.Get(from)
	if king.Kind != board.King || king.HasMoved {
		return nil
	}
	side := king.Color
	rank := from.Rank
	if from.File != 4 {
		return nil
	}
	if IsAttacked(pos, from, side.Opponent()) {
		return nil
	}

	var moves []board.Move

	// Kingside: rook on h-file, squares f/g empty, king path e-f-g unattacked.
	if rook := pos.Get(board.Square{File: 7, Rank: rank}); rook.Kind == board.Rook && !rook.HasMoved {
		f, g := board.Square{File: 5, Rank: rank}, board.Square{File: 6, Rank: rank}
		if pos.Get(f).IsEmpty() && pos.Get(g).IsEmpty() && !pathAttacked(pos, side, from, f, g) {
			moves = append(moves, board.Move{From: from, To: g})
		}
	}

	// Queenside: rook on a-file, squares b/c/d empty, king path e-d-c unattacked.
	if rook := pos.Get(board.Square{File: 0, Rank: rank}); rook.Kind == board.Rook && !rook.HasMoved {
		b, c, d := board.Square{File: 1, Rank: rank}, board.Square{File: 2, Rank: rank}, board.Square{File: 3, Rank: rank}
		if pos.Get(b).IsEmpty() && pos.Get(c).IsEmpty() && pos.Get(d).IsEmpty() && !pathAttacked(pos, side, from, d, c) {
			moves = append(moves, board.Move{From: from, To: c})
		}
	}

	return moves
}

func pathAttacked(pos *board.Position, side board.Color, squares ...board.Square) bool {
	enemy := side.Opponent()
	for _, sq := range squares {
		if IsAttacked(pos, sq, enemy) {
			return true
		}
	}
	return false
}
