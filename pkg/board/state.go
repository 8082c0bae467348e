package board

import "fmt"

// GameState bundles the current position, the last move played (needed for
// en-passant legality), a bounded history for threefold repetition, the
// fifty-move counter, the current search ply, and the running statistics. A
// single value owns all of this -- the trainer owns one GameState per worker,
// and the search clones it into a scratch copy before trying a move.
type GameState struct {
	Position      Position
	SideToMove    Color
	LastMove      Move
	HasLastMove   bool
	History       History
	HalfmoveClock int
	SearchDepth   int
	PlyCount      int // total half-moves played since game start; drives the evaluator's development term
	Stats         Counters
}

// NewGame returns a GameState at the standard starting position, White to
// move, with its initial hash already recorded in history.
func NewGame() GameState {
	gs := GameState{
		Position:   NewStandardPosition(),
		SideToMove: White,
	}
	gs.History.Push(RepetitionHash(&gs.Position))
	return gs
}

// Clone returns an independent copy. GameState holds only value types (arrays,
// not slices or pointers), so a plain assignment already deep-copies it; this
// method exists so call sites that hand off a scratch copy to the search read
// as intentional.
func (gs GameState) Clone() GameState {
	return gs
}

// IsThreefoldRepetition reports whether the current position has occurred at
// least three times in the retained history.
func (gs *GameState) IsThreefoldRepetition() bool {
	return gs.History.Count(RepetitionHash(&gs.Position)) >= 3
}

// IsFiftyMoveDraw reports the fifty-move rule: 100 plies since the last pawn
// move or capture.
func (gs *GameState) IsFiftyMoveDraw() bool {
	return gs.HalfmoveClock >= 100
}

func (gs *GameState) String() string {
	return fmt.Sprintf("state{pos=%v turn=%v halfmove=%v depth=%v}", &gs.Position, gs.SideToMove, gs.HalfmoveClock, gs.SearchDepth)
}
