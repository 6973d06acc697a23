package agent

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"shogi/experiments/metrics"
	"shogi/game"
	"shogi/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(a *Agent)

func WithSeed(seed uint64) Option {
	return func(a *Agent) {
		a.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRand(rng searcher.Random) Option {
	return func(a *Agent) {
		a.rng = rng
	}
}

// WithDepth sets the search depth of the advanced tier.
func WithDepth(depth int) Option {
	return func(a *Agent) {
		a.depth = depth
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(a *Agent) {
		a.metrics = collector
	}
}

// WithStrategy replaces the strategy a tier dispatches to.
func WithStrategy(tier Tier, strategy searcher.Strategy) Option {
	return func(a *Agent) {
		a.strategies[tier] = strategy
	}
}

// Agent picks a move for the side to move at a given difficulty tier. It
// always answers with a legal move when one exists, falling back to a random
// legal move whenever its strategy fails. An Agent is not safe for concurrent
// use.
type Agent struct {
	rules      game.Rules
	rng        searcher.Random
	depth      int
	metrics    metrics.Collector
	strategies map[Tier]searcher.Strategy
}

func New(rules game.Rules, options ...Option) *Agent {
	if rules == nil {
		panic("agent needs a rules authority")
	}
	a := &Agent{ // Default values
		rules:      rules,
		depth:      searcher.DefaultDepth,
		metrics:    metrics.NewDummyCollector(),
		strategies: make(map[Tier]searcher.Strategy, len(Tiers)),
	}
	for _, option := range options {
		option(a)
	}
	if a.depth < 1 {
		panic(fmt.Sprintf("search depth must be positive, got %d", a.depth))
	}
	if a.rng == nil {
		a.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	if a.metrics == nil {
		a.metrics = metrics.NewDummyCollector()
	}

	defaults := map[Tier]func() searcher.Strategy{
		Beginner: func() searcher.Strategy {
			return searcher.NewRandomCapture(a.rng, searcher.DefaultCaptureRate)
		},
		Intermediate: func() searcher.Strategy {
			return searcher.NewCenterPreference(a.rng)
		},
		Advanced: func() searcher.Strategy {
			return searcher.NewAlphaBeta(a.rules, a.rng, searcher.WithDepth(a.depth), searcher.WithMetrics(a.metrics))
		},
	}
	for tier, build := range defaults {
		if a.strategies[tier] == nil {
			a.strategies[tier] = build()
		}
	}
	return a
}

// ChooseMove returns a legal move for the side to move in p, or false when
// there is none. p is never modified.
func (a *Agent) ChooseMove(p game.Position, tier Tier) (game.Move, bool) {
	m, ok, _ := a.FindMove(p, tier)
	return m, ok
}

// FindMove is ChooseMove with the metrics collected during the search.
func (a *Agent) FindMove(p game.Position, tier Tier) (game.Move, bool, metrics.SearchMetric) {
	if !tier.Valid() {
		log.Warn().Str("tier", string(tier)).Msgf("unknown tier, playing as %s", Beginner)
		tier = Beginner
	}
	a.metrics.Start(string(tier))

	moves := a.rules.LegalMoves(p)
	if len(moves) == 0 {
		return game.Move{}, false, a.metrics.Complete()
	}

	m, err := a.selectMove(a.strategies[tier], moves, p)
	if err == nil && !slices.Contains(moves, m) {
		err = fmt.Errorf("%w: strategy returned %s", game.ErrIllegalMove, m)
	}
	if err != nil {
		event := log.Warn()
		if errors.Is(err, searcher.ErrRulesFault) {
			event = log.Error().Str("sfen", p.SFEN())
		}
		event.Err(err).Str("tier", string(tier)).Msg("move selection failed, playing a random legal move")

		a.metrics.SetFallback()
		m = moves[a.rng.Intn(len(moves))]
	}
	return m, true, a.metrics.Complete()
}

func (a *Agent) selectMove(strategy searcher.Strategy, moves []game.Move, p game.Position) (m game.Move, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("strategy panicked: %v", r)
		}
	}()
	// Strategies may reorder their input; moves is reused for the fallback
	return strategy.SelectMove(slices.Clone(moves), p)
}
