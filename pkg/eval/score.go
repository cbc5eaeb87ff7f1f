package eval

import (
	"fmt"

	"github.com/herohde/chesscore/pkg/board"
	"github.com/seekerror/stdlib/pkg/util/mathx"
)

// Score is a signed position score in raw evaluation units (not centipawns):
// a pawn is worth 1000. Positive favors the color the score is computed
// from. MinScore and MaxScore double as the search's alpha-beta sentinels
// and as the basis for depth-adjusted mate scores (MinScore+depth,
// MaxScore-depth), so they carry generous headroom above any reachable
// material/heuristic total.
type Score int32

const (
	MinScore Score = -(1 << 30)
	MaxScore Score = 1 << 30
)

func (s Score) String() string {
	return fmt.Sprintf("%d", int32(s))
}

// Max returns the larger of two scores.
func Max(a, b Score) Score {
	return mathx.Max(a, b)
}

// Min returns the smaller of two scores.
func Min(a, b Score) Score {
	return mathx.Min(a, b)
}

// Nominal piece values used by material counting, followed by the bonuses
// and penalties of the heuristic terms below.
const (
	pawnValue   Score = 1000
	knightValue Score = 3000
	bishopValue Score = 3000
	rookValue   Score = 5000
	queenValue  Score = 9000
	kingValue   Score = 0

	inCheckPenalty     Score = 500
	mobilityBonus      Score = 100
	attackBonus        Score = 100
	centerBonus        Score = 100
	doubledPawnPenalty Score = 100
	kingShelterBig     Score = 200
	kingShelterSmall   Score = 100
)

// centerSquares is the 4x4 centre of the board: files C-F, ranks 3-6.
const centerSquares = board.Bitboard(0x00003C3C3C3C0000)

func nominalValue(p board.Piece) Score {
	switch p {
	case board.Pawn:
		return pawnValue
	case board.Knight:
		return knightValue
	case board.Bishop:
		return bishopValue
	case board.Rook:
		return rookValue
	case board.Queen:
		return queenValue
	case board.King:
		return kingValue
	default:
		return 0
	}
}

// StaticScore computes the static evaluation of b from color's perspective,
// per §4.5: material, check penalty, mobility, attack pressure, centre
// control, doubled pawns, and king shelter.
func StaticScore(b *board.Board, color board.Color) Score {
	pos := NewPosition(b, color)

	var s Score
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		st := b.Square(sq)
		if st.IsOccupied() && st.Color() == color {
			s += nominalValue(st.Piece())
		}
	}

	if pos.InCheck {
		s -= inCheckPenalty
	}

	s += Score(pos.OwnAvailableMoves.PopCount()) * mobilityBonus
	s += Score((pos.OppPieces & pos.AttackingSquares).PopCount()) * attackBonus

	s += Score((centerSquares & pos.AttackingSquares).PopCount()) * centerBonus
	s += Score((centerSquares & pos.OwnPieces).PopCount()) * centerBonus

	// Doubled pawns: the source counts any own piece on a file, not just
	// pawns on that file. Preserved as-is; not a fix.
	for f := board.ZeroFile; f < board.NumFiles; f++ {
		if (pos.OwnPieces & board.BitFile(f)).PopCount() > 1 {
			s -= doubledPawnPenalty
		}
	}

	guards := (pos.OwnPieces & board.KingAttacks(pos.OwnKing)).PopCount()
	switch {
	case guards > 2:
		s += kingShelterBig
	case guards == 1:
		s += kingShelterSmall
	}

	return s
}

// NetScore is the position's net score at a search leaf: the root side's
// static score minus the opponent's, both measured from their own
// perspective.
func NetScore(b *board.Board, rootColor board.Color) Score {
	return StaticScore(b, rootColor) - StaticScore(b, rootColor.Opponent())
}
