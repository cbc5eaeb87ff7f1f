package board

import "fmt"

// Move is a source square, a destination square, and an optional promotion
// piece. It carries no other context: whether a move is a capture, a
// castle, or an en passant capture is derived from board state at apply
// time, not stored on the move itself. Two moves are equal iff all three
// fields match.
type Move struct {
	Source      Square
	Destination Square
	Promotion   Piece // NoPiece unless this move is a pawn promotion.
}

// NewMove returns a non-promoting move between two squares.
func NewMove(from, to Square) Move {
	return Move{Source: from, Destination: to}
}

// ParseMove parses a move in pure algebraic coordinate notation (LAN), such
// as "e2e4" or "a7a8q". The promotion letter, if present, must be one of
// q, r, b, n.
func ParseMove(str string) (Move, error) {
	runes := []rune(str)
	if len(runes) < 4 || len(runes) > 5 {
		return Move{}, fmt.Errorf("board: invalid move %q", str)
	}

	from, err := ParseSquare(runes[0], runes[1])
	if err != nil {
		return Move{}, fmt.Errorf("board: invalid move %q: %v", str, err)
	}
	to, err := ParseSquare(runes[2], runes[3])
	if err != nil {
		return Move{}, fmt.Errorf("board: invalid move %q: %v", str, err)
	}

	if len(runes) == 5 {
		promo, ok := ParsePromotionPiece(runes[4])
		if !ok {
			return Move{}, fmt.Errorf("board: invalid move %q: bad promotion", str)
		}
		return Move{Source: from, Destination: to, Promotion: promo}, nil
	}
	return Move{Source: from, Destination: to}, nil
}

// Equals reports whether m and o name the same source, destination and
// promotion piece.
func (m Move) Equals(o Move) bool {
	return m.Source == o.Source && m.Destination == o.Destination && m.Promotion == o.Promotion
}

// String renders m in pure algebraic coordinate notation, with uppercase
// squares and a lowercase promotion letter, e.g. "E7E8q".
func (m Move) String() string {
	if m.Promotion != NoPiece {
		return fmt.Sprintf("%v%v%v", m.Source, m.Destination, m.Promotion)
	}
	return fmt.Sprintf("%v%v", m.Source, m.Destination)
}
