// Package rules implements move generation, attack detection, and game-status
// queries (check, checkmate, stalemate) over a board.Position/board.GameState.
package rules

import "github.com/waxwing/gambit/pkg/board"

var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

// kingOffsets lists the eight adjacent squares in clockwise order starting east.
var kingOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

var bishopDirections = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDirections = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var queenDirections = [8][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}, {1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// IsAttacked reports whether square sq is attacked by any piece of color by:
// pawns via diagonal capture direction only, sliders via ray-cast with
// blocker detection, knight and king by offset.
func IsAttacked(pos *board.Position, sq board.Square, by board.Color) bool {
	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			from := board.Square{File: file, Rank: rank}
			piece := pos.Get(from)
			if piece.IsEmpty() || piece.Color != by {
				continue
			}

			switch piece.Kind {
			case board.Pawn:
				forward := 1
				if by == board.Black {
					forward = -1
				}
				for _, df := range []int{-1, 1} {
					if from.File+df == sq.File && from.Rank+forward == sq.Rank {
						return true
					}
				}
			case board.Knight:
				if isOffsetMatch(from, sq, knightOffsets[:]) {
					return true
				}
			case board.King:
				if isOffsetMatch(from, sq, kingOffsets[:]) {
					return true
				}
			case board.Bishop:
				if raySees(pos, from, sq, bishopDirections[:]) {
					return true
				}
			case board.Rook:
				if raySees(pos, from, sq, rookDirections[:]) {
					return true
				}
			case board.Queen:
				if raySees(pos, from, sq, queenDirections[:]) {
					return true
				}
			}
		}
	}
	return false
}

func isOffsetMatch(from, sq board.Square, offsets [][2]int) bool {
	for _, o := range offsets {
		if from.File+o[0] == sq.File && from.Rank+o[1] == sq.Rank {
			return true
		}
	}
	return false
}

// raySees reports whether sq lies along one of the given directions from from,
// with no piece strictly between from and sq. sq itself may be empty or
// occupied -- this lets the same routine answer both "is this piece attacked"
// and "is this (possibly empty) square attacked", the latter needed for
// castling's pass-through-check rule.
func raySees(pos *board.Position, from, sq board.Square, directions [][2]int) bool {
	for _, d := range directions {
		cur := from
		for {
			cur = board.Square{File: cur.File + d[0], Rank: cur.Rank + d[1]}
			if !cur.IsValid() {
				break
			}
			if cur == sq {
				return true
			}
			if !pos.Get(cur).IsEmpty() {
				break
			}
		}
	}
	return false
}
