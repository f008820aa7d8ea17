package agent

import (
	"math"

	"senet/experiments/metrics"
	"senet/game"
	"senet/searcher"

	"github.com/samber/lo"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

// DefaultTemperature is in evaluation points: moves this far apart in value
// differ in probability by a factor of e.
const DefaultTemperature = 100.0

type trainingAgent struct {
	search      *searcher.Expectimax
	temperature float64
	rnd         *rand.Rand
}

// NewTrainingAgent returns an agent for self-play that samples moves in
// proportion to their softmax-scaled values, so games vary.
func NewTrainingAgent(search *searcher.Expectimax, temperature float64, rnd *rand.Rand) Agent {
	if temperature <= 0 {
		temperature = DefaultTemperature
	}
	return &trainingAgent{search: search, temperature: temperature, rnd: rnd}
}

func (a *trainingAgent) FindMove(p game.Position, roll game.Roll) (game.Move, bool, metrics.SearchMetric) {
	ranks, metric := a.search.RankMoves(p, roll)
	if len(ranks) == 0 {
		return game.Move{}, false, metric
	}
	// Fixed order so a seeded agent replays the same game
	moves := lo.Keys(ranks)
	slices.SortFunc(moves, func(x, y game.Move) int { return x.From - y.From })
	policy := adjustTemperature(moves, ranks, a.temperature)
	return sample(moves, policy, a.rnd.Float64()), true, metric
}

// adjustTemperature returns the softmax of the move values divided by temperature.
func adjustTemperature(moves []game.Move, ranks map[game.Move]float64, temperature float64) []float64 {
	values := lo.Map(moves, func(m game.Move, _ int) float64 { return ranks[m] / temperature })
	highest := lo.Max(values)
	probs := lo.Map(values, func(v float64, _ int) float64 { return math.Exp(v - highest) })
	sum := lo.Sum(probs)
	return lo.Map(probs, func(p float64, _ int) float64 { return p / sum })
}

func sample(moves []game.Move, policy []float64, sampled float64) game.Move {
	cumulative := 0.0
	for i, prob := range policy {
		cumulative += prob
		if sampled < cumulative {
			return moves[i]
		}
	}
	return moves[len(moves)-1] // Fallback in case of rounding errors
}
