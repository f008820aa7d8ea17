package agent

import (
	"senet/experiments/metrics"
	"senet/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rules game.Rules
	rnd   *rand.Rand
}

// NewRandomAgent returns a baseline agent that plays any legal move.
func NewRandomAgent(rules game.Rules, rnd *rand.Rand) Agent {
	return &randomAgent{rules: rules, rnd: rnd}
}

func (a *randomAgent) FindMove(p game.Position, roll game.Roll) (game.Move, bool, metrics.SearchMetric) {
	moves := a.rules.LegalMoves(p, roll)
	if len(moves) == 0 {
		return game.Move{}, false, metrics.SearchMetric{}
	}
	return moves[a.rnd.Intn(len(moves))], true, metrics.SearchMetric{}
}
