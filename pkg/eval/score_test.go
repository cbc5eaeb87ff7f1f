package eval_test

import (
	"testing"

	"github.com/herohde/chesscore/pkg/board"
	"github.com/herohde/chesscore/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinMax(t *testing.T) {
	assert.Equal(t, eval.Score(5), eval.Max(eval.Score(5), eval.Score(3)))
	assert.Equal(t, eval.Score(5), eval.Max(eval.Score(3), eval.Score(5)))
	assert.Equal(t, eval.Score(3), eval.Min(eval.Score(5), eval.Score(3)))
	assert.Equal(t, eval.Score(3), eval.Min(eval.Score(3), eval.Score(5)))
}

func TestStaticScoreMaterialAdvantage(t *testing.T) {
	b, err := board.NewBoard([]board.Placement{
		{board.E1, board.White, board.King},
		{board.E8, board.Black, board.King},
		{board.D1, board.White, board.Queen},
	}, board.White, 0, 0)
	require.NoError(t, err)

	white := eval.StaticScore(b, board.White)
	black := eval.StaticScore(b, board.Black)
	assert.Greater(t, white, black)
}

func TestStaticScorePenalizesCheck(t *testing.T) {
	inCheck, err := board.NewBoard([]board.Placement{
		{board.A1, board.Black, board.King},
		{board.C3, board.White, board.King},
		{board.A8, board.White, board.Rook},
	}, board.Black, 0, 0)
	require.NoError(t, err)

	notInCheck, err := board.NewBoard([]board.Placement{
		{board.A1, board.Black, board.King},
		{board.C3, board.White, board.King},
		{board.H8, board.White, board.Rook},
	}, board.Black, 0, 0)
	require.NoError(t, err)

	assert.Less(t, eval.StaticScore(inCheck, board.Black), eval.StaticScore(notInCheck, board.Black))
}

func TestNetScoreIsAntisymmetricPerSide(t *testing.T) {
	b, err := board.NewBoard([]board.Placement{
		{board.E1, board.White, board.King},
		{board.E8, board.Black, board.King},
		{board.D1, board.White, board.Queen},
	}, board.White, 0, 0)
	require.NoError(t, err)

	white := eval.NetScore(b, board.White)
	black := eval.NetScore(b, board.Black)
	assert.Equal(t, white, -black)
}
