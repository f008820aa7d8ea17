package searcher

import (
	"fmt"
	"math"
	"time"

	"senet/experiments/metrics"
	"senet/game"

	"github.com/rs/zerolog/log"
)

type Option func(e *Expectimax)

// Expectimax searches alternating decision and chance nodes to a fixed depth
// with Star1 pruning at chance nodes and alpha-beta at decision nodes. It is
// not safe for concurrent use.
type Expectimax struct {
	depth         int
	duration      time.Duration
	config        game.EvaluationConfig
	rules         game.Rules
	cacheLimit    int
	evictFraction float64
	warm          bool
	prune         bool
	metrics       metrics.Collector

	cache       *transpositions
	evaluate    game.Evaluate
	perspective game.Side
}

type Result struct {
	Move   game.Move
	Found  bool
	Score  float64 // From the perspective of the side to move
	Metric metrics.SearchMetric
}

func WithDepth(depth int) Option {
	return func(e *Expectimax) {
		if depth > 0 {
			e.depth = depth
		}
	}
}

// WithDuration stops deepening once the budget is spent. The check happens
// between iterations, so an iteration that has started always completes.
func WithDuration(duration time.Duration) Option {
	return func(e *Expectimax) {
		if duration > 0 {
			e.duration = duration
		}
	}
}

func WithConfig(config game.EvaluationConfig) Option {
	return func(e *Expectimax) {
		e.config = config
	}
}

func WithRules(rules game.Rules) Option {
	return func(e *Expectimax) {
		if rules != nil {
			e.rules = rules
		}
	}
}

func WithCacheLimit(limit int) Option {
	return func(e *Expectimax) {
		if limit > 0 {
			e.cacheLimit = limit
		}
	}
}

func WithEvictFraction(fraction float64) Option {
	return func(e *Expectimax) {
		if fraction > 0 && fraction <= 1 {
			e.evictFraction = fraction
		}
	}
}

// WithWarmCache keeps cached values between searches for the same side.
func WithWarmCache() Option {
	return func(e *Expectimax) {
		e.warm = true
	}
}

// WithoutPruning searches the full tree without cutoffs or caching.
func WithoutPruning() Option {
	return func(e *Expectimax) {
		e.prune = false
	}
}

func WithMetrics() Option {
	return func(e *Expectimax) {
		e.metrics = metrics.NewCollector()
	}
}

func NewExpectimax(options ...Option) *Expectimax {
	e := &Expectimax{ // Default values
		depth:         DefaultDepth,
		config:        game.DefaultConfig(),
		rules:         game.NewStandardRules(),
		cacheLimit:    DefaultCacheLimit,
		evictFraction: DefaultEvictFraction,
		prune:         true,
		metrics:       metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	if e.depth > MaxDepth {
		panic(fmt.Sprintf("search depth %d exceeds the maximum of %d", e.depth, MaxDepth))
	}
	if err := e.config.Validate(); err != nil {
		panic(fmt.Sprintf("invalid evaluation config: %v", err))
	}
	e.cache = newTranspositions(e.cacheLimit, e.evictFraction)
	e.evaluate = game.NewEvaluator(e.config)
	return e
}

func (e *Expectimax) Depth() int {
	return e.depth
}

func (e *Expectimax) FindMove(p game.Position, roll game.Roll) (game.Move, bool) {
	result := e.Search(p, roll)
	return result.Move, result.Found
}

// Search deepens iteratively up to the configured depth and returns the best
// move of the last completed iteration.
func (e *Expectimax) Search(p game.Position, roll game.Roll) Result {
	e.metrics.Start(e.depth)
	moves := e.rules.LegalMoves(p, roll)
	switch len(moves) {
	case 0:
		return Result{Metric: e.metrics.Complete()}
	case 1:
		return Result{Move: moves[0], Found: true, Metric: e.metrics.Complete()}
	}

	e.prepare(p.ToMove())
	moves = OrderMoves(p, moves)
	start := time.Now()

	var best game.Move
	var score float64
	for depth := 1; depth <= e.depth; depth++ {
		best, score = e.searchRoot(p, moves, depth)
		e.metrics.CompleteDepth(depth)
		progress := e.metrics.Complete()
		log.Debug().
			Int("depth", depth).
			Str("move", best.String()).
			Float64("score", score).
			Int("nodes", progress.Nodes).
			Int("cacheHits", progress.CacheHits).
			Int("cache", e.cache.size()).
			Msg("completed iteration")

		if e.duration > 0 && time.Since(start) >= e.duration {
			break
		}
	}

	return Result{Move: best, Found: true, Score: score, Metric: e.metrics.Complete()}
}

// RankMoves returns the exact value of every legal move at the configured
// depth, searched with a full window.
func (e *Expectimax) RankMoves(p game.Position, roll game.Roll) (map[game.Move]float64, metrics.SearchMetric) {
	e.metrics.Start(e.depth)
	moves := e.rules.LegalMoves(p, roll)
	e.prepare(p.ToMove())

	ranks := make(map[game.Move]float64, len(moves))
	for _, m := range moves {
		ranks[m] = e.chance(e.rules.Apply(p, m), e.depth-1, game.MinScore, game.MaxScore, false)
	}
	e.metrics.CompleteDepth(e.depth)
	return ranks, e.metrics.Complete()
}

func (e *Expectimax) prepare(perspective game.Side) {
	if !e.warm || perspective != e.perspective {
		e.cache.clear()
	}
	e.perspective = perspective
}

func (e *Expectimax) searchRoot(p game.Position, moves []game.Move, depth int) (game.Move, float64) {
	alpha, beta := game.MinScore, game.MaxScore
	best, bestScore := moves[0], math.Inf(-1)
	for _, m := range moves {
		score := e.chance(e.rules.Apply(p, m), depth-1, alpha, beta, false)
		if score > bestScore {
			best, bestScore = m, score
		}
		if e.prune {
			alpha = math.Max(alpha, score)
		}
	}
	return best, bestScore
}

func (e *Expectimax) leaf(p game.Position) float64 {
	e.metrics.AddEvaluation()
	return e.evaluate(p, e.perspective, 0)
}
