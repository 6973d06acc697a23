package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"shogi/agent"
	"shogi/experiments"
	"shogi/game"
	"shogi/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "bestmove", "bestmove or experiment")
	sfen := flag.String("sfen", game.StartSFEN, "Position to search in SFEN")
	tierName := flag.String("tier", string(agent.Advanced), "Difficulty tier: beginner, intermediate or advanced")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Random seed")
	depth := flag.Int("depth", meta.SEARCH_DEPTH, "Search depth of the advanced tier")
	games := flag.Int("games", meta.NUM_GAMES, "Games per tier matchup")
	goroutines := flag.Int("goroutines", meta.GO_ROUTINES, "Games played concurrently")
	maxTurns := flag.Int("max-turns", meta.MAX_TURNS, "Turn limit of an experiment game")
	out := flag.String("out", "results", "Directory for experiment CSV files")
	level := flag.String("log-level", "info", "Log level")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	if lvl, err := zerolog.ParseLevel(*level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	} else {
		log.Warn().Str("level", *level).Msg("unknown log level, using info")
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	var err error
	switch *mode {
	case "bestmove":
		err = bestMove(*sfen, *tierName, *seed, *depth)
	case "experiment":
		cfg := experiments.DefaultConfig()
		cfg.Games = *games
		cfg.Goroutines = *goroutines
		cfg.Depth = *depth
		cfg.MaxTurns = *maxTurns
		cfg.Seed = *seed
		cfg.OutDir = *out
		err = experiment(cfg)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("failed")
	}
}

func bestMove(sfen, tierName string, seed uint64, depth int) error {
	p, err := game.ParseSFEN(sfen)
	if err != nil {
		return err
	}
	tier, err := agent.ParseTier(tierName)
	if err != nil {
		return err
	}

	a := agent.New(game.NewStandardRules(), agent.WithSeed(seed), agent.WithDepth(depth))
	m, ok := a.ChooseMove(p, tier)
	if !ok {
		fmt.Println("resign")
		return nil
	}
	fmt.Println(m)
	return nil
}

func experiment(cfg experiments.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := experiments.Run(ctx, cfg)
	if err != nil {
		return err
	}
	log.Info().Str("dir", result.Dir).Int("games", len(result.Games)).Msg("experiment written")
	return nil
}
