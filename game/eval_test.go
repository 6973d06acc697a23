package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateMaterial(t *testing.T) {
	midgame := MustParseSFEN("l6nl/5+P1gk/2np1S3/p1p4Pp/3P2Sp1/1PPb2P1P/P5GS1/R8/LN4bKL w RGgsn5p 1")

	t.Run("balanced starting position", func(t *testing.T) {
		require.Equal(t, 0, EvaluateMaterial(NewPosition(), Black))
		require.Equal(t, 0, EvaluateMaterial(NewPosition(), White))
	})

	t.Run("deterministic", func(t *testing.T) {
		require.Equal(t, EvaluateMaterial(midgame, White), EvaluateMaterial(midgame, White))
	})

	t.Run("antisymmetric between sides", func(t *testing.T) {
		require.Equal(t, -EvaluateMaterial(midgame, Black), EvaluateMaterial(midgame, White))
	})

	t.Run("antisymmetric under side swap", func(t *testing.T) {
		for _, side := range []Side{Black, White} {
			require.Equal(t, -EvaluateMaterial(midgame, side), EvaluateMaterial(midgame.Flip(), side),
				"Mirroring the position should negate the score")
		}
	})

	t.Run("reserve pieces count for less", func(t *testing.T) {
		onBoard := MustParseSFEN("4k4/9/9/9/4R4/9/9/9/4K4 b - 1")
		inHand := MustParseSFEN("4k4/9/9/9/9/9/9/9/4K4 b R 1")

		require.Equal(t, 1000, EvaluateMaterial(onBoard, Black))
		require.Equal(t, 800, EvaluateMaterial(inHand, Black))
		require.Equal(t, -800, EvaluateMaterial(inHand, White))
	})
}

func TestPositionValue(t *testing.T) {
	t.Run("advanced pawns are worth more", func(t *testing.T) {
		deep := PositionValue(Pawn, Black, Square{File: 5, Rank: 3})
		home := PositionValue(Pawn, Black, Square{File: 5, Rank: 7})

		require.Greater(t, deep, home)
	})

	t.Run("ranks are read from the owner's side", func(t *testing.T) {
		for _, kind := range []PieceKind{Pawn, Silver, Bishop, Rook} {
			black := PositionValue(kind, Black, Square{File: 3, Rank: 2})
			white := PositionValue(kind, White, Square{File: 7, Rank: 8})
			require.Equal(t, black, white, "%s should score the same on mirrored squares", kind)
		}
	})

	t.Run("centre bonus", func(t *testing.T) {
		require.Equal(t, 40, PositionValue(King, Black, Square{File: 5, Rank: 5}))
		require.Equal(t, 0, PositionValue(King, Black, Square{File: 1, Rank: 1}))
	})
}
