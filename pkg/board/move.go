package board

import (
	"fmt"
	"strings"
)

// Move is a from-square/to-square pair plus an optional promotion kind. It carries
// no contextual information (capture, castle, en passant): those are determined
// when the move is made against a particular Position.
type Move struct {
	From, To  Square
	Promotion Kind // NoKind unless a pawn promotion; engine-generated moves always promote to Queen
}

// ParseMove parses a reference-move string of the form "e2e4" or "e7e8q":
// file/rank/file/rank, optional promotion letter in {q,r,b,n}, case-insensitive.
func ParseMove(s string) (Move, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	runes := []rune(s)
	if len(runes) < 4 || len(runes) > 5 {
		return Move{}, fmt.Errorf("invalid reference move %q: expected 4 or 5 characters", s)
	}

	from, err := ParseSquare(runes[0], runes[1])
	if err != nil {
		return Move{}, fmt.Errorf("invalid reference move %q: from-square: %w", s, err)
	}
	to, err := ParseSquare(runes[2], runes[3])
	if err != nil {
		return Move{}, fmt.Errorf("invalid reference move %q: to-square: %w", s, err)
	}

	m := Move{From: from, To: to}
	if len(runes) == 5 {
		promo, ok := ParseKind(runes[4])
		if !ok || promo == Pawn || promo == King {
			return Move{}, fmt.Errorf("invalid reference move %q: promotion", s)
		}
		m.Promotion = promo
	}
	return m, nil
}

func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion
}

func (m Move) String() string {
	if m.Promotion.IsValid() {
		return fmt.Sprintf("%v%v%v", m.From, m.To, m.Promotion)
	}
	return fmt.Sprintf("%v%v", m.From, m.To)
}

// PrintMoves formats a move sequence space-separated.
func PrintMoves(moves []Move) string {
	var sb strings.Builder
	for i, m := range moves {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(m.String())
	}
	return sb.String()
}
