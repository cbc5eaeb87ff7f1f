// Package search implements the recursive alpha-beta minimax that chooses a
// best move from a position.
package search

import (
	"fmt"
	"sort"

	"github.com/herohde/chesscore/pkg/board"
	"github.com/herohde/chesscore/pkg/eval"
)

// Evaluation is the result of a completed poll: the chosen move, its score
// from the root side's perspective, the full principal continuation, and
// the number of leaf/internal nodes visited.
type Evaluation struct {
	Best         board.Move
	Eval         eval.Score
	Continuation board.MoveList
	Total        uint64
}

// Search performs a fixed-depth alpha-beta minimax from a root board.
// Not safe for concurrent use; callers needing concurrent searches should
// use independent Search values.
type Search struct {
	maxDepth int
}

// New returns a Search with the given maximum ply depth. A depth of zero
// falls back to the default of 6.
func New(maxDepth int) *Search {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Search{maxDepth: maxDepth}
}

// DefaultMaxDepth is the ply limit used when none is given at construction.
const DefaultMaxDepth = 6

// node is a transient search-tree node: a board snapshot, its depth, the
// moves played from the root to reach it, and the evaluation assigned to it
// either directly (at the depth limit) or by propagation from its children.
type node struct {
	board *board.Board
	depth int

	eval         eval.Score
	continuation board.MoveList
}

// Start is a no-op in this synchronous implementation; it exists so an
// asynchronous search can later implement the same interface.
func (s *Search) Start() {}

// Stop is advisory and has no effect on a synchronous search in progress;
// poll always runs to completion.
func (s *Search) Stop() {}

// Poll runs the search from root and writes the result to out. Returns
// false iff the side to move at root has no legal moves (checkmate or
// stalemate). Panics if root holds more than one king of a color.
func (s *Search) Poll(root *board.Board, out *Evaluation) bool {
	var kings [board.NumColors]int
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		if st := root.Square(sq); st.IsOccupied() && st.Piece() == board.King {
			kings[st.Color()]++
		}
	}
	if kings[board.White] > 1 || kings[board.Black] > 1 {
		panic(fmt.Sprintf("search: more than one king per color: white=%v black=%v", kings[board.White], kings[board.Black]))
	}

	rootColor := root.SideToMove()
	var total uint64

	n := &node{board: root, depth: 0}
	s.traverse(rootColor, n, eval.MinScore, eval.MaxScore, &total)

	if len(n.continuation) == 0 {
		return false
	}

	*out = Evaluation{
		Best:         n.continuation[0],
		Eval:         n.eval,
		Continuation: n.continuation,
		Total:        total,
	}
	return true
}

// moveOrder classifies a candidate move for search ordering: captures are
// explored first, then promotions, then quiet moves. Lower sorts first.
type moveOrder int

const (
	orderCapture moveOrder = iota
	orderPromote
	orderRegular
)

type candidate struct {
	move  board.Move
	order moveOrder
}

func (s *Search) traverse(rootColor board.Color, n *node, alpha, beta eval.Score, total *uint64) {
	*total++

	if n.depth == s.maxDepth {
		n.eval = eval.NetScore(n.board, rootColor)
		return
	}

	mover := n.board.SideToMove()
	candidates := generateCandidates(n.board, mover)

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].order < candidates[j].order
	})

	maximize := mover == rootColor
	if maximize {
		n.eval = eval.MinScore
	} else {
		n.eval = eval.MaxScore
	}

	legalMoves := 0

	for _, c := range candidates {
		child := n.board.Clone()
		child.ApplyMove(c.move.Source, c.move.Destination, c.move.Promotion)

		selfCheck := eval.NewPosition(child, mover)
		if selfCheck.InCheck {
			continue // illegal: moves into check
		}

		child.SetSideToMove(mover.Opponent())

		childNode := &node{board: child, depth: n.depth + 1}
		s.traverse(rootColor, childNode, alpha, beta, total)

		legalMoves++

		if maximize {
			if childNode.eval > n.eval {
				n.eval = childNode.eval
				n.continuation = append(board.MoveList{c.move}, childNode.continuation...)
			}
			alpha = eval.Max(alpha, n.eval)
		} else {
			if childNode.eval < n.eval {
				n.eval = childNode.eval
				n.continuation = append(board.MoveList{c.move}, childNode.continuation...)
			}
			beta = eval.Min(beta, n.eval)
		}

		if alpha >= beta {
			break
		}
	}

	if legalMoves == 0 {
		pos := eval.NewPosition(n.board, mover)
		switch {
		case !pos.InCheck:
			n.eval = 0 // stalemate
		case mover == rootColor:
			n.eval = eval.MinScore + eval.Score(n.depth) // we are mated
		default:
			n.eval = eval.MaxScore - eval.Score(n.depth) // opponent is mated
		}
	}
}

// generateCandidates enumerates pseudo-legal moves for the side to move,
// expanding a pawn reaching the back rank into the four promotion choices.
func generateCandidates(b *board.Board, mover board.Color) []candidate {
	own := b.Occupancy(mover)
	all := b.AllOccupancy()
	opp := b.Occupancy(mover.Opponent())

	var ep board.Bitboard
	if sq, ok := b.EnPassantTarget(); ok {
		ep = board.BitMask(sq)
	}

	var ret []candidate
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		st := b.Square(sq)
		if !st.IsOccupied() || st.Color() != mover {
			continue
		}

		dests := board.AvailableMoves(mover, st.Piece(), sq, all, own, ep)
		for dests != 0 {
			dst := dests.FirstSquare()
			dests &^= board.BitMask(dst)

			isPromotionRank := st.Piece() == board.Pawn &&
				((mover == board.White && dst.Rank() == board.Rank8) ||
					(mover == board.Black && dst.Rank() == board.Rank1))

			if isPromotionRank {
				for _, promo := range []board.Piece{board.Rook, board.Knight, board.Bishop, board.Queen} {
					ret = append(ret, candidate{move: board.Move{Source: sq, Destination: dst, Promotion: promo}, order: orderPromote})
				}
				continue
			}

			order := orderRegular
			if opp.IsSet(dst) {
				order = orderCapture
			}
			ret = append(ret, candidate{move: board.NewMove(sq, dst), order: order})
		}
	}

	king := b.King(mover)
	var kingside, queenside board.Square
	if mover == board.White {
		kingside, queenside = board.G1, board.C1
	} else {
		kingside, queenside = board.G8, board.C8
	}
	if b.CanCastle(kingside) && castlingPathClear(b, all, mover, king, kingside) {
		ret = append(ret, candidate{move: board.NewMove(king, kingside), order: orderRegular})
	}
	if b.CanCastle(queenside) && castlingPathClear(b, all, mover, king, queenside) {
		ret = append(ret, candidate{move: board.NewMove(king, queenside), order: orderRegular})
	}
	return ret
}

// castlingPathClear enforces the FIDE conditions CanCastle leaves to the
// search: every square between king and rook is empty, and the king is
// neither currently in check, nor passing through, nor landing on a square
// the opponent attacks. The squares the rook alone must cross (e.g. B1 on
// the queenside) need only be empty, not unattacked.
func castlingPathClear(b *board.Board, all board.Bitboard, mover board.Color, king, dst board.Square) bool {
	empty, kingTransit := castlingSquares(king, dst)
	if all&empty != 0 {
		return false
	}

	pos := eval.NewPosition(b, mover)
	if pos.InCheck {
		return false
	}
	return pos.AttackedSquares&kingTransit == 0
}

// castlingSquares returns (squares that must be empty, squares the king
// itself must not be attacked on, including its origin and destination).
func castlingSquares(king, dst board.Square) (empty, kingTransit board.Bitboard) {
	rank := king.Rank()
	kingTransit = board.BitMask(king) | board.BitMask(dst)

	switch dst.File() {
	case board.FileG: // kingside: F and G must be empty; king crosses F then lands on G.
		f := board.BitMask(board.NewSquare(board.FileF, rank))
		g := board.BitMask(board.NewSquare(board.FileG, rank))
		empty = f | g
		kingTransit |= f
	default: // queenside: B, C, D must be empty; king crosses D then lands on C.
		b := board.BitMask(board.NewSquare(board.FileB, rank))
		c := board.BitMask(board.NewSquare(board.FileC, rank))
		d := board.BitMask(board.NewSquare(board.FileD, rank))
		empty = b | c | d
		kingTransit |= d
	}
	return empty, kingTransit
}
