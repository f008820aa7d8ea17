package agent

import (
	"math"
	"strings"

	"senet/experiments/metrics"
	"senet/game"
	"senet/searcher"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"lukechampine.com/frand"
)

type Agent interface {
	// FindMove returns the chosen move, false if the side has to pass, and the
	// search metrics if collected
	FindMove(p game.Position, roll game.Roll) (game.Move, bool, metrics.SearchMetric)
}

const (
	Expectimax = "expectimax"
	Training   = "training"
	Random     = "random"
)

// DefaultConfig is used for an empty agent config.
var DefaultConfig = "expectimax:depth=3"

// New builds an agent from a config string: the agent kind, optionally
// followed by a colon and comma-separated parameters, e.g.
// "expectimax:depth=4,piece_off=1500" or "training:temperature=50,seed=7".
func New(config string) (Agent, error) {
	if config == "" {
		config = DefaultConfig
	}
	kind, rest, _ := strings.Cut(config, ":")
	params := splitParams(rest)

	seed, err := PopParamOr(params, "seed", 0)
	if err != nil {
		return nil, err
	}
	rnd := newRand(uint64(seed))

	var agent Agent
	switch kind {
	case Expectimax:
		var search *searcher.Expectimax
		search, err = newSearcher(params)
		agent = NewEvaluationAgent(search)
	case Training:
		var temperature float64
		temperature, err = PopParamOr(params, "temperature", DefaultTemperature)
		if err != nil {
			return nil, err
		}
		var search *searcher.Expectimax
		search, err = newSearcher(params)
		agent = NewTrainingAgent(search, temperature, rnd)
	case Random:
		agent = NewRandomAgent(game.NewStandardRules(), rnd)
	default:
		return nil, errors.Errorf("unknown agent %q", kind)
	}
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to create agent %q", kind)
	}
	if len(params) > 0 {
		return nil, errors.Errorf("unused parameters for agent %q: %v", kind, params)
	}
	return agent, nil
}

func newSearcher(params map[string]string) (*searcher.Expectimax, error) {
	depth, err := PopParamOr(params, "depth", searcher.DefaultDepth)
	if err != nil {
		return nil, err
	}
	if depth < 1 || depth > searcher.MaxDepth {
		return nil, errors.Errorf("depth must be between 1 and %d, got %d", searcher.MaxDepth, depth)
	}
	durationMs, err := PopParamOr(params, "duration_ms", 0)
	if err != nil {
		return nil, err
	}
	cacheLimit, err := PopParamOr(params, "cache", searcher.DefaultCacheLimit)
	if err != nil {
		return nil, err
	}
	warm, err := PopParamOr(params, "warm", false)
	if err != nil {
		return nil, err
	}

	// Whatever is left must be an evaluation weight
	weights := make(map[string]float64)
	for _, name := range game.WeightNames() {
		if _, ok := params[name]; !ok {
			continue
		}
		weights[name], err = PopParamOr(params, name, 0.0)
		if err != nil {
			return nil, err
		}
	}
	config, err := game.ConfigFromMap(weights)
	if err != nil {
		return nil, err
	}

	options := []searcher.Option{
		searcher.WithDepth(depth),
		searcher.WithConfig(config),
		searcher.WithCacheLimit(cacheLimit),
		searcher.WithDuration(milliseconds(durationMs)),
		searcher.WithMetrics(),
	}
	if warm {
		options = append(options, searcher.WithWarmCache())
	}
	return searcher.NewExpectimax(options...), nil
}

// newRand seeds a generator, drawing a seed when none is given.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = frand.Uint64n(math.MaxUint64)
	}
	return rand.New(rand.NewSource(seed))
}
