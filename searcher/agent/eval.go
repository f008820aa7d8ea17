package agent

import (
	"senet/experiments/metrics"
	"senet/game"
	"senet/searcher"
)

type evaluationAgent struct {
	search *searcher.Expectimax
}

// NewEvaluationAgent returns an agent that always plays the searched best move.
func NewEvaluationAgent(search *searcher.Expectimax) Agent {
	return evaluationAgent{search: search}
}

func (a evaluationAgent) FindMove(p game.Position, roll game.Roll) (game.Move, bool, metrics.SearchMetric) {
	result := a.search.Search(p, roll)
	return result.Move, result.Found, result.Metric
}
