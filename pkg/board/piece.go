package board

import "strings"

// Piece represents a chess piece (King, Pawn, etc) with no color. 3 bits.
type Piece uint8

const (
	NoPiece Piece = iota
	Pawn
	Bishop
	Knight
	Rook
	Queen
	King
)

func ParsePiece(r rune) (Piece, bool) {
	switch r {
	case 'p', 'P':
		return Pawn, true
	case 'b', 'B':
		return Bishop, true
	case 'n', 'N':
		return Knight, true
	case 'r', 'R':
		return Rook, true
	case 'q', 'Q':
		return Queen, true
	case 'k', 'K':
		return King, true
	default:
		return NoPiece, false
	}
}

func (p Piece) IsValid() bool {
	return Pawn <= p && p <= King
}

func (p Piece) String() string {
	switch p {
	case NoPiece:
		return " "
	case Pawn:
		return "p"
	case Bishop:
		return "b"
	case Knight:
		return "n"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return "?"
	}
}

// ParsePromotionPiece parses a LAN promotion letter (q, n, b, r) into a Piece.
// King and Pawn are never valid promotion targets.
func ParsePromotionPiece(r rune) (Piece, bool) {
	switch r {
	case 'q', 'Q':
		return Queen, true
	case 'n', 'N':
		return Knight, true
	case 'b', 'B':
		return Bishop, true
	case 'r', 'R':
		return Rook, true
	default:
		return NoPiece, false
	}
}

// SquareState is the content of a single board square: either empty or
// occupied by a piece of some color. There is no "null piece" sentinel;
// reading Color or Piece on an empty state is a programming error.
type SquareState struct {
	color    Color
	piece    Piece
	occupied bool
}

// EmptySquareState returns the state of an unoccupied square.
func EmptySquareState() SquareState {
	return SquareState{}
}

// NewSquareState returns the state of a square occupied by the given piece.
func NewSquareState(c Color, p Piece) SquareState {
	return SquareState{color: c, piece: p, occupied: true}
}

// IsOccupied reports whether the square holds a piece.
func (s SquareState) IsOccupied() bool {
	return s.occupied
}

// Color returns the occupying piece's color. Panics if the square is empty.
func (s SquareState) Color() Color {
	if !s.occupied {
		panic("board: Color of an empty square")
	}
	return s.color
}

// Piece returns the occupying piece's kind. Panics if the square is empty.
func (s SquareState) Piece() Piece {
	if !s.occupied {
		panic("board: Piece of an empty square")
	}
	return s.piece
}

func (s SquareState) String() string {
	if !s.occupied {
		return "-"
	}
	if s.color == White {
		return strings.ToUpper(s.piece.String())
	}
	return s.piece.String()
}
