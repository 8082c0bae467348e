// Package fen decodes Forsyth-Edwards Notation into a board.GameState.
//
// Only the piece-placement and side-to-move fields are consumed: castling
// rights, en-passant target, halfmove and fullmove fields are ignored. A
// piece loaded from FEN always has HasMoved = false, so the engine infers
// castling rights purely from square occupancy (a king and rook on their home
// squares may castle whatever the castling field says) -- a known limitation
// of puzzle-corpus positions, preserved rather than patched, since the
// puzzle corpus was generated against the same assumption.
package fen

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/waxwing/gambit/pkg/board"
)

// Initial is the FEN of the standard starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses fen into a fresh GameState. Only the first two
// whitespace-separated fields are required; any trailing fields are ignored.
func Decode(fen string) (board.GameState, error) {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 2 {
		return board.GameState{}, fmt.Errorf("fen: need at least placement and side-to-move fields: %q", fen)
	}

	var pos board.Position

	rank := 7
	file := 0
	for _, r := range fields[0] {
		switch {
		case r == '/':
			if file != 8 {
				return board.GameState{}, fmt.Errorf("fen: short rank before '/': %q", fen)
			}
			rank--
			file = 0

		case unicode.IsDigit(r):
			file += int(r - '0')

		case unicode.IsLetter(r):
			kind, ok := board.ParseKind(r)
			if !ok {
				return board.GameState{}, fmt.Errorf("fen: invalid piece %q: %q", r, fen)
			}
			if file > 7 || rank < 0 {
				return board.GameState{}, fmt.Errorf("fen: placement overruns board: %q", fen)
			}
			color := board.Black
			if unicode.IsUpper(r) {
				color = board.White
			}
			pos.Set(board.Square{File: file, Rank: rank}, board.Piece{Kind: kind, Color: color})
			file++

		default:
			return board.GameState{}, fmt.Errorf("fen: invalid character %q: %q", r, fen)
		}
	}
	if rank != 0 || file != 8 {
		return board.GameState{}, fmt.Errorf("fen: wrong number of ranks or files: %q", fen)
	}

	var side board.Color
	switch fields[1] {
	case "w", "W":
		side = board.White
	case "b", "B":
		side = board.Black
	default:
		return board.GameState{}, fmt.Errorf("fen: invalid side to move %q: %q", fields[1], fen)
	}

	gs := board.GameState{Position: pos, SideToMove: side}
	gs.History.Push(board.RepetitionHash(&gs.Position))
	return gs, nil
}
