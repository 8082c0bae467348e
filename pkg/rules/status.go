package rules

import "github.com/waxwing/gambit/pkg/board"

// InCheck reports whether c's king is attacked. Positions missing a king
// (puzzle edge cases) are defined as not in check.
func InCheck(gs *board.GameState, c board.Color) bool {
	kingSq, ok := gs.Position.King(c)
	if !ok {
		return false
	}
	return IsAttacked(&gs.Position, kingSq, c.Opponent())
}

// IsCheckmate reports whether gs.SideToMove is checkmated: in check with no
// legal moves.
func IsCheckmate(gs *board.GameState) bool {
	return InCheck(gs, gs.SideToMove) && len(GenerateLegal(gs)) == 0
}

// IsStalemate reports whether gs.SideToMove is stalemated: not in check but
// with no legal moves.
func IsStalemate(gs *board.GameState) bool {
	return !InCheck(gs, gs.SideToMove) && len(GenerateLegal(gs)) == 0
}
