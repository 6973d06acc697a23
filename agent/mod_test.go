package agent

import (
	"errors"
	"shogi/experiments/metrics"
	"shogi/game"
	"shogi/searcher"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

const (
	kingCaptureSFEN = "4k4/9/9/9/4R4/9/9/9/4K4 b - 1"
	singleMoveSFEN  = "7PK/8P/9/9/9/9/9/9/k8 b - 1"
	// White king already taken, nothing can move
	noMovesSFEN = "9/9/9/9/9/9/9/9/4K4 w R 1"
)

type panicStrategy struct{}

func (panicStrategy) SelectMove([]game.Move, game.Position) (game.Move, error) {
	panic("evaluation blew up")
}

type errStrategy struct {
	err error
}

func (s errStrategy) SelectMove([]game.Move, game.Position) (game.Move, error) {
	return game.Move{}, s.err
}

// offBoardStrategy answers with a move that is never legal.
type offBoardStrategy struct{}

func (offBoardStrategy) SelectMove([]game.Move, game.Position) (game.Move, error) {
	return game.Move{From: game.Square{File: 10, Rank: 10}, To: game.Square{File: 11, Rank: 11}, Piece: game.Dragon}, nil
}

// randomPositions plays random legal moves from the start position and
// collects the positions reached.
func randomPositions(t *testing.T, seed uint64, count, plies int) []game.Position {
	t.Helper()
	rules := game.NewStandardRules()
	rng := rand.New(rand.NewSource(seed))

	var positions []game.Position
	for len(positions) < count {
		p := game.NewPosition()
		for i := 0; i < plies && !rules.IsTerminal(p); i++ {
			moves := rules.LegalMoves(p)
			next, err := rules.Apply(p, moves[rng.Intn(len(moves))])
			require.NoError(t, err)
			p = next
		}
		if !rules.IsTerminal(p) {
			positions = append(positions, p)
		}
	}
	return positions
}

func TestParseTier(t *testing.T) {
	for _, tier := range Tiers {
		parsed, err := ParseTier(string(tier))
		require.NoError(t, err)
		require.Equal(t, tier, parsed)
	}

	parsed, err := ParseTier(" Advanced ")
	require.NoError(t, err)
	require.Equal(t, Advanced, parsed)

	_, err = ParseTier("grandmaster")
	require.ErrorIs(t, err, ErrUnknownTier)
}

func TestChooseMoveIsLegal(t *testing.T) {
	rules := game.NewStandardRules()
	positions := randomPositions(t, 42, 8, 24)

	for _, tier := range Tiers {
		t.Run(string(tier), func(t *testing.T) {
			agent := New(rules, WithSeed(9), WithDepth(2))
			for _, p := range positions {
				m, ok := agent.ChooseMove(p, tier)

				require.True(t, ok, "Position %s has legal moves", p.SFEN())
				require.Contains(t, rules.LegalMoves(p), m, "Move should be legal in %s", p.SFEN())
			}
		})
	}
}

func TestChooseMoveEdgeCases(t *testing.T) {
	rules := game.NewStandardRules()

	t.Run("no legal moves", func(t *testing.T) {
		p := game.MustParseSFEN(noMovesSFEN)
		require.Empty(t, rules.LegalMoves(p))

		for _, tier := range Tiers {
			_, ok := New(rules, WithSeed(1)).ChooseMove(p, tier)
			require.False(t, ok, "Tier %s should find no move", tier)
		}
	})

	t.Run("single legal move", func(t *testing.T) {
		p := game.MustParseSFEN(singleMoveSFEN)
		only := rules.LegalMoves(p)
		require.Len(t, only, 1)

		for _, tier := range Tiers {
			m, ok := New(rules, WithSeed(1)).ChooseMove(p, tier)
			require.True(t, ok)
			require.Equal(t, only[0], m, "Tier %s should play the only move", tier)
		}
	})

	t.Run("advanced captures the king", func(t *testing.T) {
		p := game.MustParseSFEN(kingCaptureSFEN)

		for seed := uint64(0); seed < 5; seed++ {
			m, ok := New(rules, WithSeed(seed)).ChooseMove(p, Advanced)
			require.True(t, ok)
			require.Equal(t, game.King, m.Capture)
		}
	})

	t.Run("position is left unchanged", func(t *testing.T) {
		p := game.MustParseSFEN(kingCaptureSFEN)
		before := p

		for _, tier := range Tiers {
			New(rules, WithSeed(3)).ChooseMove(p, tier)
			require.True(t, before == p, "Tier %s modified the position", tier)
		}
	})

	t.Run("unknown tier plays as beginner", func(t *testing.T) {
		p := game.NewPosition()
		m, ok := New(rules, WithSeed(3)).ChooseMove(p, Tier("grandmaster"))

		require.True(t, ok)
		require.Contains(t, rules.LegalMoves(p), m)
	})
}

func TestFallback(t *testing.T) {
	rules := game.NewStandardRules()
	p := game.NewPosition()
	legal := rules.LegalMoves(p)

	strategies := map[string]searcher.Strategy{
		"panic":       panicStrategy{},
		"error":       errStrategy{err: errors.New("out of budget")},
		"rules fault": errStrategy{err: searcher.ErrRulesFault},
		"illegal":     offBoardStrategy{},
	}

	for name, strategy := range strategies {
		t.Run(name, func(t *testing.T) {
			agent := New(rules, WithSeed(5), WithStrategy(Advanced, strategy), WithMetrics(metrics.NewCollector()))

			m, ok, metric := agent.FindMove(p, Advanced)

			require.True(t, ok)
			require.Contains(t, legal, m)
			require.True(t, metric.Fallback, "Fallback should be recorded")
			require.Equal(t, string(Advanced), metric.Tier)
		})
	}
}

func TestFindMoveMetrics(t *testing.T) {
	rules := game.NewStandardRules()
	agent := New(rules, WithSeed(8), WithMetrics(metrics.NewCollector()))

	_, ok, metric := agent.FindMove(game.MustParseSFEN(kingCaptureSFEN), Advanced)

	require.True(t, ok)
	require.False(t, metric.Fallback)
	require.Positive(t, metric.Nodes)

	// A fresh search starts from zero
	_, _, metric = agent.FindMove(game.NewPosition(), Beginner)
	require.Zero(t, metric.Nodes)
	require.Equal(t, string(Beginner), metric.Tier)
}

func TestNewRejectsBadDepth(t *testing.T) {
	require.Panics(t, func() {
		New(game.NewStandardRules(), WithDepth(0))
	})
}

func TestSeededAgentsAgree(t *testing.T) {
	rules := game.NewStandardRules()
	positions := randomPositions(t, 7, 5, 16)

	for _, tier := range Tiers {
		first := New(rules, WithSeed(99), WithDepth(2))
		second := New(rules, WithSeed(99), WithDepth(2))
		for _, p := range positions {
			a, _ := first.ChooseMove(p, tier)
			b, _ := second.ChooseMove(p, tier)
			require.Equal(t, a, b, "Same seed should give the same %s move", tier)
		}
	}
}
