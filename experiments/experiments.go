package experiments

import (
	"context"
	"fmt"
	"shogi/agent"
	"shogi/engine"
	"shogi/experiments/metrics"
	"shogi/game"
	"shogi/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// MatchUp pairs the tier playing Black with the tier playing White.
type MatchUp struct {
	Black agent.Tier
	White agent.Tier
}

type Config struct {
	Name       string
	Games      int // Per match up
	Goroutines int // Games played at once
	Depth      int
	MaxTurns   int
	Seed       uint64
	MatchUps   []MatchUp
	OutDir     string // No CSV output if empty
}

type Result struct {
	Dir   string
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
}

// DefaultMatchUps pairs every tier against every other, with each taking both
// colours.
func DefaultMatchUps() []MatchUp {
	var matchUps []MatchUp
	for _, black := range agent.Tiers {
		for _, white := range agent.Tiers {
			if black != white {
				matchUps = append(matchUps, MatchUp{Black: black, White: white})
			}
		}
	}
	return matchUps
}

func DefaultConfig() Config {
	return Config{
		Name:       "tiers",
		Games:      meta.NUM_GAMES,
		Goroutines: meta.GO_ROUTINES,
		Depth:      meta.SEARCH_DEPTH,
		MaxTurns:   meta.MAX_TURNS,
		Seed:       1,
		MatchUps:   DefaultMatchUps(),
	}
}

type job struct {
	id      int
	matchUp MatchUp
}

type outcome struct {
	game  metrics.GameRecord
	moves []metrics.MoveRecord
}

// Run plays cfg.Games games for every match up, cfg.Goroutines at a time, and
// writes games.csv and moves.csv under cfg.OutDir.
func Run(ctx context.Context, cfg Config) (Result, error) {
	if cfg.Games < 1 || cfg.Goroutines < 1 {
		return Result{}, fmt.Errorf("experiment needs at least one game and goroutine, got %d and %d", cfg.Games, cfg.Goroutines)
	}
	if len(cfg.MatchUps) == 0 {
		cfg.MatchUps = DefaultMatchUps()
	}
	if cfg.Depth < 1 {
		cfg.Depth = meta.SEARCH_DEPTH
	}

	var jobs []job
	for _, matchUp := range cfg.MatchUps {
		for i := 0; i < cfg.Games; i++ {
			jobs = append(jobs, job{id: len(jobs) + 1, matchUp: matchUp})
		}
	}
	log.Info().Msgf("starting %s experiment with %d games...", cfg.Name, len(jobs))

	outcomes := make([]outcome, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Goroutines)
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			outcomes[i] = playGame(cfg, j)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, fmt.Errorf("%s experiment: %w", cfg.Name, err)
	}
	log.Info().Msgf("completed %s experiment", cfg.Name)

	var result Result
	for _, o := range outcomes {
		result.Games = append(result.Games, o.game)
		result.Moves = append(result.Moves, o.moves...)
	}
	if cfg.OutDir == "" {
		return result, nil
	}

	writer, err := metrics.NewWriter(cfg.OutDir)
	if err != nil {
		return result, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	result.Dir = writer.Dir()
	if err := writer.WriteGameRecords(result.Games); err != nil {
		return result, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteMoveRecords(result.Moves); err != nil {
		return result, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")
	return result, nil
}

// playGame runs a single game with fresh agents seeded from the job id.
func playGame(cfg Config, j job) outcome {
	rules := game.NewStandardRules()
	seed := cfg.Seed + uint64(j.id)*2
	black := engine.Player{
		Agent: agent.New(rules, agent.WithSeed(seed), agent.WithDepth(cfg.Depth), agent.WithMetrics(metrics.NewCollector())),
		Tier:  j.matchUp.Black,
	}
	white := engine.Player{
		Agent: agent.New(rules, agent.WithSeed(seed+1), agent.WithDepth(cfg.Depth), agent.WithMetrics(metrics.NewCollector())),
		Tier:  j.matchUp.White,
	}
	e := engine.NewLocalEngine(rules, black, white, engine.WithMaxTurns(cfg.MaxTurns))

	winner, gameMetric, moveMetrics := e.Run()
	log.Info().Msgf("completed game %d (%s vs %s) with winner: %q", j.id, j.matchUp.Black, j.matchUp.White, winner)

	o := outcome{
		game: metrics.GameRecord{
			ID:         j.id,
			Black:      string(j.matchUp.Black),
			White:      string(j.matchUp.White),
			GameMetric: gameMetric,
		},
	}
	for _, mm := range moveMetrics {
		o.moves = append(o.moves, metrics.MoveRecord{Game: j.id, MoveMetric: mm})
	}
	return o
}
