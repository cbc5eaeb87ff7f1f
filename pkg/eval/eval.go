// Package eval contains the position evaluator and static scoring function
// the search uses to judge leaves and detect check.
package eval

import "github.com/herohde/chesscore/pkg/board"

// Position is a cache of the bitmask aggregates the search and the static
// evaluator both need for a given board and color, computed in one pass so
// neither has to recompute per-square attack unions repeatedly.
type Position struct {
	Color board.Color

	OwnPieces board.Bitboard
	OppPieces board.Bitboard
	AllPieces board.Bitboard
	OwnKing   board.Square

	// AttackedSquares is the union of squares the opponent threatens.
	AttackedSquares board.Bitboard
	// AttackingSquares is the union of squares our own pieces threaten.
	AttackingSquares board.Bitboard
	// OwnAvailableMoves is the union of destination squares reachable by
	// our own pieces.
	OwnAvailableMoves board.Bitboard

	InCheck bool
}

// NewPosition materializes the derived-state cache for b from color's
// perspective.
func NewPosition(b *board.Board, color board.Color) *Position {
	pos := &Position{
		Color:     color,
		OwnPieces: b.Occupancy(color),
		OppPieces: b.Occupancy(color.Opponent()),
		OwnKing:   b.King(color),
	}
	pos.AllPieces = pos.OwnPieces | pos.OppPieces

	epTarget, hasEP := b.EnPassantTarget()
	var ep board.Bitboard
	if hasEP {
		ep = board.BitMask(epTarget)
	}

	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		st := b.Square(sq)
		if !st.IsOccupied() {
			continue
		}
		switch st.Color() {
		case color:
			pos.AttackingSquares |= board.AvailableCaptures(st.Color(), st.Piece(), sq, pos.AllPieces)
			pos.OwnAvailableMoves |= board.AvailableMoves(st.Color(), st.Piece(), sq, pos.AllPieces, pos.OwnPieces, ep)
		default:
			pos.AttackedSquares |= board.AvailableCaptures(st.Color(), st.Piece(), sq, pos.AllPieces)
		}
	}

	pos.InCheck = pos.AttackedSquares&board.BitMask(pos.OwnKing) != 0
	return pos
}
