package main

import (
	"context"
	"flag"
	"os"
	"time"

	"senet/engine"
	"senet/experiments"
	"senet/experiments/metrics"
	"senet/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	setupPath  = flag.String("setup", "", "YAML experiment setup; the depth experiment if empty")
	outDir     = flag.String("out", "results", "Directory for experiment records")
	goroutines = flag.Int("goroutines", 0, "Games played in parallel; overrides the setup")
	games      = flag.Int("games", 0, "Games per matchup; overrides the setup")
	seed       = flag.Uint64("seed", 0, "Seed for stick throws; 0 is unseeded")
	agentA     = flag.String("a", "", "Play a single game: config of the agent moving first")
	agentB     = flag.String("b", "", "Play a single game: config of the agent moving second")
	verbose    = flag.Bool("v", false, "Log every search iteration and move")
)

func main() {
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	if *agentA != "" || *agentB != "" {
		playGame(*agentA, *agentB)
		return
	}
	runExperiment()
}

func playGame(configA, configB string) {
	a, err := agent.New(configA)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create first agent")
	}
	b, err := agent.New(configB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create second agent")
	}

	options := []engine.Option{}
	if *seed != 0 {
		options = append(options, engine.WithSeed(*seed))
	}
	e := engine.NewLocal(a, b, options...)
	_, gameMetric, _ := e.Run()

	log.Info().
		Str("winner", gameMetric.Winner).
		Str("reason", gameMetric.Reason).
		Int("moves", gameMetric.TotalMoves).
		Str("position", e.Position().String()).
		Msg("game over")
}

func runExperiment() {
	setup := experiments.DepthSetup()
	if *setupPath != "" {
		var err error
		setup, err = experiments.LoadSetup(*setupPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load setup")
		}
	}
	overrideSetup(&setup)

	summary, err := experiments.Run(context.Background(), setup, *outDir)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	for _, a := range setup.Agents {
		log.Info().Msgf("agent %d (%s) won %d of %d games", a.ID, a.Config, summary.Wins[a.ID], summary.Games)
	}
	log.Info().Msgf("%d draws", summary.Draws)
}

func overrideSetup(setup *metrics.Setup) {
	if *goroutines > 0 {
		setup.Goroutines = *goroutines
	}
	if *games > 0 {
		setup.NumGames = *games
	}
	if *seed != 0 {
		setup.Seed = *seed
	}
}
