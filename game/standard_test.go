package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStandardRulesLegalMoves(t *testing.T) {
	rules := NewStandardRules()

	t.Run("starting position", func(t *testing.T) {
		moves := rules.LegalMoves(NewPosition())

		require.Len(t, moves, 30, "Black should have 30 moves in the starting position")
		for _, m := range moves {
			require.False(t, m.IsDrop(), "No drops without pieces in hand")
			require.False(t, m.IsCapture(), "No captures in the starting position")
		}
	})

	t.Run("starting position for white", func(t *testing.T) {
		p := NewPosition()
		p.SetTurn(White)

		require.Len(t, rules.LegalMoves(p), 30, "The starting position is symmetric")
	})

	t.Run("drops avoid occupied and dead squares", func(t *testing.T) {
		p := MustParseSFEN("4k4/9/9/9/9/9/9/9/4K4 b P 1")

		var drops []Move
		for _, m := range rules.LegalMoves(p) {
			if m.IsDrop() {
				drops = append(drops, m)
			}
		}

		// 81 squares, minus 2 kings, minus the 8 free squares on rank 1
		require.Len(t, drops, 81-2-8)
		for _, m := range drops {
			require.NotEqual(t, 1, m.To.Rank, "A pawn cannot be dropped where it has no move")
			require.Equal(t, Pawn, m.Piece)
		}
	})

	t.Run("promotion is optional in the zone and forced on the last rank", func(t *testing.T) {
		p := MustParseSFEN("4k4/9/9/P8/9/9/9/9/4K4 b - 1")
		from := Square{File: 9, Rank: 4}

		require.Contains(t, rules.LegalMoves(p), Move{From: from, To: Square{File: 9, Rank: 3}, Piece: Pawn, Promote: true})
		require.Contains(t, rules.LegalMoves(p), Move{From: from, To: Square{File: 9, Rank: 3}, Piece: Pawn})

		p = MustParseSFEN("4k4/P8/9/9/9/9/9/9/4K4 b - 1")
		from = Square{File: 9, Rank: 2}
		require.Contains(t, rules.LegalMoves(p), Move{From: from, To: Square{File: 9, Rank: 1}, Piece: Pawn, Promote: true})
		require.NotContains(t, rules.LegalMoves(p), Move{From: from, To: Square{File: 9, Rank: 1}, Piece: Pawn},
			"A pawn reaching the last rank must promote")
	})

	t.Run("sliding pieces stop at the first piece", func(t *testing.T) {
		p := MustParseSFEN("4k4/9/4p4/9/4R4/9/9/9/K8 b - 1")
		rook := Square{File: 5, Rank: 5}

		var targets []Square
		for _, m := range rules.LegalMoves(p) {
			if m.From == rook && m.To.File == 5 && m.To.Rank < 5 {
				targets = append(targets, m.To)
			}
		}

		require.ElementsMatch(t, []Square{{File: 5, Rank: 4}, {File: 5, Rank: 3}}, dedupe(targets),
			"The rook should stop on the capture")
	})

	t.Run("no moves once a king is gone", func(t *testing.T) {
		p := MustParseSFEN("9/9/9/9/9/9/9/9/4K4 b - 1")

		require.Empty(t, rules.LegalMoves(p))
	})
}

func TestStandardRulesApply(t *testing.T) {
	rules := NewStandardRules()

	t.Run("board move", func(t *testing.T) {
		p := NewPosition()
		m := Move{From: Square{File: 7, Rank: 7}, To: Square{File: 7, Rank: 6}, Piece: Pawn}

		next, err := rules.Apply(p, m)

		require.NoError(t, err)
		require.Equal(t, White, next.Turn(), "Turn should pass to the opponent")
		_, ok := next.PieceAt(m.From)
		require.False(t, ok, "Origin should be empty")
		piece, ok := next.PieceAt(m.To)
		require.True(t, ok)
		require.Equal(t, Piece{Kind: Pawn, Side: Black}, piece)
		require.Equal(t, NewPosition(), p, "Input position should not change")
	})

	t.Run("capture goes to hand demoted", func(t *testing.T) {
		p := MustParseSFEN("4k4/9/4+r4/9/4B4/9/9/9/4K4 w - 1")
		m := Move{From: Square{File: 5, Rank: 3}, To: Square{File: 5, Rank: 5}, Piece: Dragon, Capture: Bishop}

		next, err := rules.Apply(p, m)

		require.NoError(t, err)
		require.Equal(t, map[PieceKind]int{Bishop: 1}, next.Reserve(White))
		piece, _ := next.PieceAt(m.To)
		require.Equal(t, Piece{Kind: Dragon, Side: White}, piece)
	})

	t.Run("promotion", func(t *testing.T) {
		p := MustParseSFEN("4k4/9/9/P8/9/9/9/9/4K4 b - 1")
		m := Move{From: Square{File: 9, Rank: 4}, To: Square{File: 9, Rank: 3}, Piece: Pawn, Promote: true}

		next, err := rules.Apply(p, m)

		require.NoError(t, err)
		piece, _ := next.PieceAt(m.To)
		require.Equal(t, ProPawn, piece.Kind)
	})

	t.Run("drop", func(t *testing.T) {
		p := MustParseSFEN("4k4/9/9/9/9/9/9/9/4K4 b 2G 1")
		m := Move{To: Square{File: 5, Rank: 5}, Piece: Gold, Drop: true}

		next, err := rules.Apply(p, m)

		require.NoError(t, err)
		require.Equal(t, 1, next.InHand(Black, Gold))
		piece, _ := next.PieceAt(m.To)
		require.Equal(t, Piece{Kind: Gold, Side: Black}, piece)
	})

	t.Run("rejects moves that were not generated", func(t *testing.T) {
		p := NewPosition()
		bad := []Move{
			{From: Square{File: 7, Rank: 7}, To: Square{File: 7, Rank: 5}, Piece: Pawn},
			{From: Square{File: 7, Rank: 3}, To: Square{File: 7, Rank: 4}, Piece: Pawn},
			{To: Square{File: 5, Rank: 5}, Piece: Pawn, Drop: true},
			{From: Square{File: 2, Rank: 8}, To: Square{File: 2, Rank: 7}, Piece: Rook},
		}

		for _, m := range bad {
			_, err := rules.Apply(p, m)
			require.ErrorIs(t, err, ErrIllegalMove, "Move %s should be rejected", m)
		}
	})

	t.Run("every generated move applies", func(t *testing.T) {
		p := MustParseSFEN("l6nl/5+P1gk/2np1S3/p1p4Pp/3P2Sp1/1PPb2P1P/P5GS1/R8/LN4bKL w RGgsn5p 1")

		for _, m := range rules.LegalMoves(p) {
			_, err := rules.Apply(p, m)
			require.NoError(t, err, "Generated move %s should apply", m)
		}
	})
}

func TestStandardRulesTerminal(t *testing.T) {
	rules := NewStandardRules()

	t.Run("game in progress", func(t *testing.T) {
		p := NewPosition()

		require.False(t, rules.IsTerminal(p))
		_, ok := rules.Winner(p)
		require.False(t, ok)
	})

	t.Run("captured king", func(t *testing.T) {
		p := MustParseSFEN("9/9/9/9/9/9/9/9/4K4 w R 1")

		require.True(t, rules.IsTerminal(p))
		winner, ok := rules.Winner(p)
		require.True(t, ok)
		require.Equal(t, Black, winner)
	})

	t.Run("side to move is stuck", func(t *testing.T) {
		// Black king boxed in by its own immobile pawns
		p := MustParseSFEN("7PK/7PP/9/9/9/9/9/9/k8 b - 1")

		require.True(t, rules.IsTerminal(p))
		winner, ok := rules.Winner(p)
		require.True(t, ok)
		require.Equal(t, White, winner)
	})
}

func dedupe(squares []Square) []Square {
	seen := make(map[Square]bool)
	var out []Square
	for _, sq := range squares {
		if !seen[sq] {
			seen[sq] = true
			out = append(out, sq)
		}
	}
	return out
}
