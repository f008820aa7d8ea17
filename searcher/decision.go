package searcher

import (
	"math"

	"senet/game"
)

// decide picks the best reply to a known roll. Values outside (alpha, beta)
// are bounds, not exact.
func (e *Expectimax) decide(p game.Position, depth int, alpha, beta float64, maximizing bool, roll game.Roll) float64 {
	e.metrics.AddNode()
	if depth <= 0 || p.IsTerminal() {
		return e.leaf(p)
	}

	moves := e.rules.LegalMoves(p, roll)
	if len(moves) == 0 {
		return e.chance(p.Pass(), depth-1, alpha, beta, !maximizing)
	}
	if e.prune {
		moves = OrderMoves(p, moves)
	}

	if maximizing {
		best := math.Inf(-1)
		for _, m := range moves {
			value := e.chance(e.rules.Apply(p, m), depth-1, alpha, beta, false)
			best = math.Max(best, value)
			alpha = math.Max(alpha, value)
			if e.prune && beta <= alpha {
				e.metrics.AddDecisionCutoff()
				break
			}
		}
		return best
	}

	best := math.Inf(1)
	for _, m := range moves {
		value := e.chance(e.rules.Apply(p, m), depth-1, alpha, beta, true)
		best = math.Min(best, value)
		beta = math.Min(beta, value)
		if e.prune && beta <= alpha {
			e.metrics.AddDecisionCutoff()
			break
		}
	}
	return best
}
