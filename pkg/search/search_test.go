package search_test

import (
	"testing"

	"github.com/herohde/chesscore/pkg/board"
	"github.com/herohde/chesscore/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollMateInOne(t *testing.T) {
	b, err := board.NewBoard([]board.Placement{
		{board.A1, board.Black, board.King},
		{board.C3, board.White, board.King},
		{board.H2, board.White, board.Queen},
	}, board.White, 0, 0)
	require.NoError(t, err)

	s := search.New(2)
	var out search.Evaluation
	require.True(t, s.Poll(b, &out))

	assert.True(t, out.Best.Equals(board.NewMove(board.H2, board.B2)))
}

func TestPollMateInThree(t *testing.T) {
	b, err := board.NewBoard([]board.Placement{
		{board.B1, board.White, board.King},
		{board.E1, board.White, board.Rook},
		{board.E2, board.White, board.Rook},
		{board.H8, board.Black, board.King},
		{board.E8, board.Black, board.Rook},
		{board.A8, board.Black, board.Rook},
		{board.F7, board.Black, board.Pawn},
		{board.G7, board.Black, board.Pawn},
		{board.H7, board.Black, board.Pawn},
	}, board.White, 0, 0)
	require.NoError(t, err)

	s := search.New(4)
	var out search.Evaluation
	require.True(t, s.Poll(b, &out))

	want := board.MoveList{
		board.NewMove(board.E2, board.E8),
		board.NewMove(board.A8, board.E8),
		board.NewMove(board.E1, board.E8),
	}
	require.Len(t, out.Continuation, len(want))
	for i, m := range want {
		assert.True(t, out.Continuation[i].Equals(m), "move %d: got %v, want %v", i, out.Continuation[i], m)
	}
}

func TestPollOptimalPromotion(t *testing.T) {
	b, err := board.NewBoard([]board.Placement{
		{board.H7, board.White, board.Pawn},
		{board.A1, board.White, board.King},
		{board.A7, board.Black, board.King},
	}, board.White, 0, 0)
	require.NoError(t, err)

	s := search.New(2)
	var out search.Evaluation
	require.True(t, s.Poll(b, &out))

	assert.Equal(t, board.H7, out.Best.Source)
	assert.Equal(t, board.H8, out.Best.Destination)
	assert.Equal(t, board.Queen, out.Best.Promotion)
}

func TestPollStalemate(t *testing.T) {
	b, err := board.NewBoard([]board.Placement{
		{board.B1, board.White, board.King},
		{board.B2, board.Black, board.Pawn},
		{board.B3, board.Black, board.King},
	}, board.White, 0, 0)
	require.NoError(t, err)

	s := search.New(3)
	var out search.Evaluation
	assert.False(t, s.Poll(b, &out))
}

func TestPollOnCastlingPositionReturnsLegalMove(t *testing.T) {
	b, err := board.NewBoard([]board.Placement{
		{board.E1, board.White, board.King},
		{board.H1, board.White, board.Rook},
		{board.A8, board.Black, board.King},
		{board.H8, board.Black, board.Rook},
	}, board.White, board.FullCastleRights, 0)
	require.NoError(t, err)

	s := search.New(1)
	var out search.Evaluation
	require.True(t, s.Poll(b, &out))

	child := b.Clone()
	require.True(t, child.ApplyMove(out.Best.Source, out.Best.Destination, out.Best.Promotion))
}
