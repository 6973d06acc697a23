package engine

import (
	"fmt"
	"time"

	"shogi/agent"
	"shogi/experiments/metrics"
	"shogi/game"
	"shogi/meta"

	"github.com/rs/zerolog/log"
)

// Player is an agent playing one side at a fixed tier.
type Player struct {
	Agent *agent.Agent
	Tier  agent.Tier
}

type Option func(e *LocalEngine)

func WithMaxTurns(turns int) Option {
	return func(e *LocalEngine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func WithStart(p game.Position) Option {
	return func(e *LocalEngine) {
		e.Position = p
	}
}

var _ Engine = (*LocalEngine)(nil)

// LocalEngine plays two agents against each other in-process.
type LocalEngine struct {
	Position game.Position
	Players  [2]Player // Indexed by game.Side

	rules    game.Rules
	maxTurns int
}

func NewLocalEngine(rules game.Rules, black, white Player, options ...Option) *LocalEngine {
	if rules == nil || black.Agent == nil || white.Agent == nil {
		panic("engine needs rules and an agent per side")
	}
	e := &LocalEngine{
		Position: game.NewPosition(),
		Players:  [2]Player{game.Black: black, game.White: white},
		rules:    rules,
		maxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until a side wins or the turn limit is hit. The
// winner is empty for a game stopped at the limit.
func (e *LocalEngine) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.Position.Turn().String(),
		StartTime:      time.Now(),
	}
	log.Info().Msgf("%s is starting", gameMetric.StartingPlayer)

	var moveMetrics []metrics.MoveMetric
	turn := 1
	for ; turn <= e.maxTurns && !e.rules.IsTerminal(e.Position); turn++ {
		side := e.Position.Turn()
		player := e.Players[side]

		m, ok, searchMetric := player.Agent.FindMove(e.Position, player.Tier)
		if !ok {
			break
		}
		next, err := e.rules.Apply(e.Position, m)
		if err != nil {
			// A generated move that fails to apply is a rules fault
			panic(fmt.Sprintf("apply %s in %s: %v", m, e.Position.SFEN(), err))
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       side.String(),
			Move:         m.String(),
			SearchMetric: searchMetric,
		})
		log.Debug().Int("turn", turn).Str("player", side.String()).Stringer("move", m).Msg("move played")
		e.Position = next
	}

	if winner, ok := e.rules.Winner(e.Position); ok {
		gameMetric.Winner = winner.String()
	} else {
		log.Info().Msgf("stopped after %d turns (no winner yet)", e.maxTurns)
	}
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	return gameMetric.Winner, gameMetric, moveMetrics
}
