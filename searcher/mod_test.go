package searcher

import (
	"errors"
	"shogi/game"

	"golang.org/x/exp/rand"
)

// Positions shared by the searcher tests.
const (
	// Black rook can take the undefended white king on 5a
	kingCaptureSFEN = "4k4/9/9/9/4R4/9/9/9/4K4 b - 1"
	// Small endgame with a drop in hand and a hanging pawn
	endgameSFEN = "4k4/9/6s2/9/4p4/9/9/4R4/4K4 b G 1"
	// Busy middle game with White to move and full hands
	midgameSFEN = "l6nl/5+P1gk/2np1S3/p1p4Pp/3P2Sp1/1PPb2P1P/P5GS1/R8/LN4bKL w RGgsn5p 1"
	// Black king on 1a boxed in by its own pawns, one square free
	singleMoveSFEN = "7PK/8P/9/9/9/9/9/9/k8 b - 1"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// faultyRules generates moves normally but refuses to apply any of them.
type faultyRules struct {
	*game.StandardRules
}

func (faultyRules) Apply(p game.Position, m game.Move) (game.Position, error) {
	return p, errors.New("apply refused")
}

func contains(moves []game.Move, m game.Move) bool {
	for _, candidate := range moves {
		if candidate == m {
			return true
		}
	}
	return false
}
