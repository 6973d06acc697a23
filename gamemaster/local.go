package gamemaster

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"shogi/agent"
	"shogi/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var (
	ErrBusy     = errors.New("agent is already thinking")
	ErrGameOver = errors.New("game is over")
)

const (
	DefaultMinDelay = 300 * time.Millisecond
	DefaultMaxDelay = time.Second
)

// Update is delivered once the agent's move has been played.
type Update struct {
	Generation string
	Move       game.Move
	Position   game.Position
}

type Option func(g *Game)

// WithDelay sets the range of the cosmetic pause before an agent move is
// played. It never changes which move is chosen.
func WithDelay(lo, hi time.Duration) Option {
	return func(g *Game) {
		if lo < 0 || hi < lo {
			panic(fmt.Sprintf("invalid delay range [%s, %s]", lo, hi))
		}
		g.minDelay, g.maxDelay = lo, hi
	}
}

func WithStart(p game.Position) Option {
	return func(g *Game) {
		g.start = p
	}
}

// Game is a human-versus-agent session. The human moves with Play, the agent
// with RequestAgentMove; each game (and each Reset) gets a fresh generation so
// late agent results from an abandoned game are dropped.
type Game struct {
	rules game.Rules
	agent *agent.Agent
	tier  agent.Tier
	start game.Position

	minDelay time.Duration
	maxDelay time.Duration
	rng      *rand.Rand

	mu         sync.Mutex
	position   game.Position
	generation string
	thinking   bool
}

func New(rules game.Rules, a *agent.Agent, tier agent.Tier, options ...Option) *Game {
	if rules == nil || a == nil {
		panic("game needs rules and an agent")
	}
	g := &Game{ // Default values
		rules:    rules,
		agent:    a,
		tier:     tier,
		start:    game.NewPosition(),
		minDelay: DefaultMinDelay,
		maxDelay: DefaultMaxDelay,
		rng:      rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
	for _, option := range options {
		option(g)
	}
	g.position = g.start
	g.generation = uuid.NewString()
	log.Info().Str("game", g.generation).Str("tier", string(tier)).Msg("new game")
	return g
}

func (g *Game) Position() game.Position {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.position
}

func (g *Game) Generation() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.generation
}

func (g *Game) Thinking() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.thinking
}

// Winner reports the winning side once the game is over.
func (g *Game) Winner() (game.Side, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.rules.IsTerminal(g.position) {
		return 0, false
	}
	return g.rules.Winner(g.position)
}

// Play applies a human move after checking it against the legal moves.
func (g *Game) Play(m game.Move) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.thinking {
		return ErrBusy
	}
	if g.rules.IsTerminal(g.position) {
		return ErrGameOver
	}
	if !slices.Contains(g.rules.LegalMoves(g.position), m) {
		return fmt.Errorf("%w: %s", game.ErrIllegalMove, m)
	}

	next, err := g.rules.Apply(g.position, m)
	if err != nil {
		return fmt.Errorf("apply %s: %w", m, err)
	}
	g.position = next
	return nil
}

// RequestAgentMove starts the agent thinking on the current position. The
// returned channel yields one Update if the move is played and is closed
// without a value if the result was discarded because the game was reset or
// ctx was cancelled.
func (g *Game) RequestAgentMove(ctx context.Context) (<-chan Update, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.thinking {
		return nil, ErrBusy
	}
	if g.rules.IsTerminal(g.position) {
		return nil, ErrGameOver
	}
	g.thinking = true

	updates := make(chan Update, 1)
	go g.think(ctx, g.position, g.generation, g.tier, g.delay(), updates)
	return updates, nil
}

func (g *Game) think(ctx context.Context, p game.Position, generation string, tier agent.Tier, delay time.Duration, updates chan<- Update) {
	defer close(updates)
	start := time.Now()
	m, ok := g.agent.ChooseMove(p, tier)

	// Pad fast answers up to the cosmetic delay
	if wait := delay - time.Since(start); wait > 0 {
		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.thinking = false

	switch {
	case ctx.Err() != nil:
		log.Info().Str("game", generation).Err(ctx.Err()).Msg("agent move discarded")
		return
	case generation != g.generation:
		log.Info().Str("game", generation).Str("current", g.generation).Msg("stale agent move discarded")
		return
	case !ok:
		return
	}

	next, err := g.rules.Apply(g.position, m)
	if err != nil {
		log.Error().Err(err).Str("game", generation).Stringer("move", m).Str("sfen", g.position.SFEN()).Msg("agent move rejected")
		return
	}
	g.position = next
	log.Debug().Str("game", generation).Stringer("move", m).Msg("agent move played")
	updates <- Update{Generation: generation, Move: m, Position: next}
}

// Reset starts a new game from the starting position. An agent still thinking
// about the old game keeps the session busy until it finishes, and its result
// is dropped.
func (g *Game) Reset() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.position = g.start
	g.generation = uuid.NewString()
	log.Info().Str("game", g.generation).Msg("game reset")
	return g.generation
}

// SetTier changes the difficulty for the next agent move.
func (g *Game) SetTier(tier agent.Tier) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tier = tier
}

func (g *Game) delay() time.Duration {
	if g.maxDelay <= g.minDelay {
		return g.minDelay
	}
	return g.minDelay + time.Duration(g.rng.Int63n(int64(g.maxDelay-g.minDelay)))
}
