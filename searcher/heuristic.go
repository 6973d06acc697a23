package searcher

import "shogi/game"

const DefaultCaptureRate = 0.3

var center = game.Square{File: 5, Rank: 5}

// RandomCapture plays a random move, preferring a random capture with
// probability captureRate when one is available.
type RandomCapture struct {
	rng         Random
	captureRate float64
}

func NewRandomCapture(rng Random, captureRate float64) *RandomCapture {
	if captureRate < 0 || captureRate > 1 {
		panic("capture rate must be within [0, 1]")
	}
	return &RandomCapture{rng: rng, captureRate: captureRate}
}

func (r *RandomCapture) SelectMove(moves []game.Move, p game.Position) (game.Move, error) {
	if len(moves) == 0 {
		return game.Move{}, ErrNoMoves
	}
	if r.rng.Float64() < r.captureRate {
		if capturing := captures(moves); len(capturing) > 0 {
			return pick(r.rng, capturing), nil
		}
	}
	return pick(r.rng, moves), nil
}

// CenterPreference always captures when it can (choosing among captures at
// random); otherwise it plays toward the centre of the board, keeping the first
// of equally central moves.
type CenterPreference struct {
	rng Random
}

func NewCenterPreference(rng Random) *CenterPreference {
	return &CenterPreference{rng: rng}
}

func (c *CenterPreference) SelectMove(moves []game.Move, p game.Position) (game.Move, error) {
	if len(moves) == 0 {
		return game.Move{}, ErrNoMoves
	}
	if capturing := captures(moves); len(capturing) > 0 {
		return pick(c.rng, capturing), nil
	}

	best := moves[0]
	bestDistance := best.To.Distance(center)
	for _, m := range moves[1:] {
		if d := m.To.Distance(center); d < bestDistance {
			best = m
			bestDistance = d
		}
	}
	return best, nil
}
