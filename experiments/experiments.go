package experiments

import (
	"context"
	"fmt"
	"time"

	"senet/engine"
	"senet/experiments/metrics"
	"senet/game"
	"senet/searcher/agent"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// DepthSetup pits increasingly deep searchers against a random baseline and
// against each other.
func DepthSetup() metrics.Setup {
	setup := metrics.Setup{
		Name: "depth",
		Agents: []metrics.AgentConfig{
			{ID: 0, Config: "random"},
			{ID: 1, Config: "expectimax:depth=1"},
			{ID: 2, Config: "expectimax:depth=2"},
			{ID: 3, Config: "expectimax:depth=3"},
		},
		Matchups: [][]int{{0, 1}, {0, 2}, {1, 2}, {2, 3}},
	}
	applyDefaults(&setup)
	return setup
}

type Summary struct {
	Games int
	Wins  map[int]int // By agent ID
	Draws int
}

type fixture struct {
	matchup int
	index   int
	agentA  metrics.AgentConfig
	agentB  metrics.AgentConfig
}

type gameResult struct {
	record metrics.GameRecord
	moves  []metrics.MoveRecord
}

// Run plays every matchup, alternating which agent moves first, and stores
// the records under root. Games run in parallel, each with its own agents.
func Run(ctx context.Context, setup metrics.Setup, root string) (Summary, error) {
	applyDefaults(&setup)
	if err := validate(setup); err != nil {
		return Summary{}, errors.WithMessage(err, "invalid setup")
	}
	agents := lo.SliceToMap(setup.Agents, func(a metrics.AgentConfig) (int, metrics.AgentConfig) {
		return a.ID, a
	})

	fixtures := []fixture{}
	for mi, matchup := range setup.Matchups {
		for i := 0; i < setup.NumGames; i++ {
			g := fixture{matchup: mi + 1, index: len(fixtures), agentA: agents[matchup[0]], agentB: agents[matchup[1]]}
			if i%2 == 1 {
				g.agentA, g.agentB = g.agentB, g.agentA
			}
			fixtures = append(fixtures, g)
		}
	}

	log.Info().Msgf("starting %s experiment with %d games...", setup.Name, len(fixtures))
	setup.StartTime = time.Now()

	results := make([]gameResult, len(fixtures))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(setup.Goroutines)
	for _, g := range fixtures {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := runGame(g, setup)
			if err != nil {
				return err
			}
			results[g.index] = result
			log.Info().Msgf("completed matchup %d game %d of %d: %s", g.matchup, g.index+1, len(fixtures), result.record.Reason)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return Summary{}, err
	}

	setup.EndTime = time.Now()
	setup.Duration = setup.EndTime.Sub(setup.StartTime)
	log.Info().Msgf("completed %s experiment in %s", setup.Name, setup.Duration)

	if err := store(setup, results, root); err != nil {
		return Summary{}, err
	}
	return summarize(results), nil
}

func runGame(g fixture, setup metrics.Setup) (gameResult, error) {
	agentA, err := agent.New(g.agentA.Config)
	if err != nil {
		return gameResult{}, errors.WithMessagef(err, "agent %d", g.agentA.ID)
	}
	agentB, err := agent.New(g.agentB.Config)
	if err != nil {
		return gameResult{}, errors.WithMessagef(err, "agent %d", g.agentB.ID)
	}

	options := []engine.Option{engine.WithMaxTurns(setup.MaxTurns)}
	if setup.Seed != 0 {
		options = append(options, engine.WithSeed(setup.Seed+uint64(g.index)))
	}
	_, gameMetric, moveMetrics := engine.NewLocal(agentA, agentB, options...).Run()

	id := uuid.New()
	return gameResult{
		record: metrics.GameRecord{
			ID:         id,
			Matchup:    g.matchup,
			AgentA:     g.agentA.ID,
			AgentB:     g.agentB.ID,
			GameMetric: gameMetric,
		},
		moves: lo.Map(moveMetrics, func(mm metrics.MoveMetric, _ int) metrics.MoveRecord {
			return metrics.MoveRecord{Game: id, MoveMetric: mm}
		}),
	}, nil
}

func store(setup metrics.Setup, results []gameResult, root string) error {
	writer, err := metrics.NewWriter(root, setup.Name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteSetup(setup); err != nil {
		return err
	}
	if err := writer.WriteAgentConfigs(setup.Agents); err != nil {
		return err
	}
	log.Info().Msg("stored setup and agent configs")

	if err := writer.WriteGameRecords(lo.Map(results, func(r gameResult, _ int) metrics.GameRecord { return r.record })); err != nil {
		return err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(lo.FlatMap(results, func(r gameResult, _ int) []metrics.MoveRecord { return r.moves })); err != nil {
		return err
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}

func summarize(results []gameResult) Summary {
	summary := Summary{Games: len(results), Wins: map[int]int{}}
	for _, r := range results {
		switch r.record.Winner {
		case game.SideA.String():
			summary.Wins[r.record.AgentA]++
		case game.SideB.String():
			summary.Wins[r.record.AgentB]++
		default:
			summary.Draws++
		}
	}
	return summary
}
