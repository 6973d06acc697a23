package searcher

import (
	"fmt"
	"math"
	"shogi/experiments/metrics"
	"shogi/game"
	"sort"
)

const (
	DefaultDepth = 3

	infinity = math.MaxInt32
)

type Option func(ab *AlphaBeta)

func WithDepth(depth int) Option {
	return func(ab *AlphaBeta) {
		if depth > 0 {
			ab.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(ab *AlphaBeta) {
		if evaluate != nil {
			ab.evaluate = evaluate
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(ab *AlphaBeta) {
		if collector != nil {
			ab.metrics = collector
		}
	}
}

// AlphaBeta is a fixed-depth minimax search with alpha-beta pruning. It
// maximises the evaluation for the side to move at the root and minimises it
// on the opponent's turns.
type AlphaBeta struct {
	rules    game.Rules
	rng      Random
	depth    int
	evaluate game.Evaluate
	metrics  metrics.Collector
	scorer   *Scorer
}

func NewAlphaBeta(rules game.Rules, rng Random, options ...Option) *AlphaBeta {
	if rules == nil || rng == nil {
		panic("alpha-beta search needs rules and a random source")
	}
	ab := &AlphaBeta{ // Default values
		rules:    rules,
		rng:      rng,
		depth:    DefaultDepth,
		evaluate: game.EvaluateMaterial,
		metrics:  metrics.NewDummyCollector(),
		scorer:   NewScorer(rng),
	}
	for _, option := range options {
		option(ab)
	}
	return ab
}

func (ab *AlphaBeta) Depth() int {
	return ab.depth
}

func (ab *AlphaBeta) SelectMove(moves []game.Move, p game.Position) (game.Move, error) {
	best, err := ab.searchRoot(moves, p)
	return best.Move, err
}

// Search generates the root moves itself and returns the best move with its
// minimax score.
func (ab *AlphaBeta) Search(p game.Position) (game.Move, int, error) {
	best, err := ab.searchRoot(ab.rules.LegalMoves(p), p)
	return best.Move, best.Score, err
}

func (ab *AlphaBeta) searchRoot(moves []game.Move, p game.Position) (ScoredMove, error) {
	if len(moves) == 0 {
		return ScoredMove{}, ErrNoMoves
	}
	self := p.Turn()
	ab.metrics.AddNode()

	alpha := -infinity
	best := ScoredMove{Score: -infinity}
	for i, m := range ab.orderRoot(moves, p) {
		child, err := ab.rules.Apply(p, m)
		if err != nil {
			return ScoredMove{}, fmt.Errorf("%w: %s: %v", ErrRulesFault, m, err)
		}
		score, err := ab.search(child, ab.depth-1, alpha, infinity, self)
		if err != nil {
			return ScoredMove{}, err
		}
		// Later moves are only searched against the current bound, so a tie
		// is never a proven equal; keep the first.
		if i == 0 || score > best.Score {
			best = ScoredMove{Move: m, Score: score}
		}
		alpha = max(alpha, score)
	}
	return best, nil
}

func (ab *AlphaBeta) search(p game.Position, depth, alpha, beta int, self game.Side) (int, error) {
	ab.metrics.AddNode()
	if depth <= 0 || ab.rules.IsTerminal(p) {
		return ab.evaluate(p, self), nil
	}

	moves := orderCaptures(ab.rules.LegalMoves(p))
	maximizing := p.Turn() == self
	best := infinity
	if maximizing {
		best = -infinity
	}

	for _, m := range moves {
		// Apply returns a fresh position; p stays intact for the next sibling
		child, err := ab.rules.Apply(p, m)
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %v", ErrRulesFault, m, err)
		}
		score, err := ab.search(child, depth-1, alpha, beta, self)
		if err != nil {
			return 0, err
		}

		if maximizing {
			best = max(best, score)
			alpha = max(alpha, best)
		} else {
			best = min(best, score)
			beta = min(beta, best)
		}
		if beta <= alpha {
			ab.metrics.AddCutoff()
			break
		}
	}
	return best, nil
}

// orderRoot shuffles the root moves so equal moves are played with equal
// chance, then sorts them by heuristic score so strong moves raise alpha early.
func (ab *AlphaBeta) orderRoot(moves []game.Move, p game.Position) []game.Move {
	scored := make([]ScoredMove, len(moves))
	for i, m := range moves {
		scored[i] = ScoredMove{Move: m}
	}
	ab.rng.Shuffle(len(scored), func(i, j int) {
		scored[i], scored[j] = scored[j], scored[i]
	})
	for i := range scored {
		scored[i].Score = ab.scorer.Score(scored[i].Move, p)
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	ordered := make([]game.Move, len(scored))
	for i, sm := range scored {
		ordered[i] = sm.Move
	}
	return ordered
}

// orderCaptures moves captures of valuable pieces to the front, keeping the
// generation order otherwise.
func orderCaptures(moves []game.Move) []game.Move {
	ordered := append([]game.Move(nil), moves...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Capture.Value() > ordered[j].Capture.Value()
	})
	return ordered
}
