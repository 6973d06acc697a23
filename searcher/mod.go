package searcher

import (
	"errors"
	"shogi/game"
)

var (
	ErrNoMoves    = errors.New("no moves to choose from")
	ErrRulesFault = errors.New("rules rejected a generated move")
)

// Strategy picks one move out of a non-empty list of legal moves for the side
// to move in p. Implementations never return a move that is not in moves.
type Strategy interface {
	SelectMove(moves []game.Move, p game.Position) (game.Move, error)
}

type ScoredMove struct {
	Move  game.Move
	Score int
}

// Random is the subset of a random number generator the strategies need.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Random interface {
	Intn(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

func captures(moves []game.Move) []game.Move {
	var out []game.Move
	for _, m := range moves {
		if m.IsCapture() {
			out = append(out, m)
		}
	}
	return out
}

func pick(rng Random, moves []game.Move) game.Move {
	return moves[rng.Intn(len(moves))]
}
