package searcher

import (
	"math"

	"senet/game"
)

// chance averages the decision values over every roll. With pruning on it
// gives up as soon as the remaining probability mass can no longer move the
// expectation back inside (alpha, beta), returning alpha or beta.
func (e *Expectimax) chance(p game.Position, depth int, alpha, beta float64, maximizing bool) float64 {
	e.metrics.AddNode()
	if depth <= 0 || p.IsTerminal() {
		return e.leaf(p)
	}

	key := cacheKey{hash: p.Hash(), depth: depth, kind: chanceNode, maximizing: maximizing}
	if e.prune {
		entry, result := e.cache.probe(key, p)
		switch result {
		case hit:
			e.metrics.AddCacheHit()
			switch entry.bound {
			case exact:
				return entry.value
			case lowerBound:
				if entry.value >= beta {
					return entry.value
				}
				alpha = math.Max(alpha, entry.value)
			case upperBound:
				if entry.value <= alpha {
					return entry.value
				}
				beta = math.Min(beta, entry.value)
			}
		case collision:
			e.metrics.AddCacheCollision()
			e.metrics.AddCacheMiss()
		default:
			e.metrics.AddCacheMiss()
		}
	}

	expected := 0.0
	remaining := 1.0
	for _, outcome := range outcomes {
		remaining -= outcome.Probability
		if !e.prune {
			expected += outcome.Probability * e.decide(p, depth, alpha, beta, maximizing, outcome.Roll)
			continue
		}

		// Window for this roll such that a bound on its value is also a
		// bound on the expectation
		childAlpha := math.Max(game.MinScore, (alpha-expected-remaining*game.MaxScore)/outcome.Probability)
		childBeta := math.Min(game.MaxScore, (beta-expected-remaining*game.MinScore)/outcome.Probability)

		value := e.decide(p, depth, childAlpha, childBeta, maximizing, outcome.Roll)
		expected += outcome.Probability * value

		if value <= childAlpha || expected+remaining*game.MaxScore <= alpha {
			e.metrics.AddChanceCutoff()
			e.store(key, p, alpha, upperBound)
			return alpha
		}
		if value >= childBeta || expected+remaining*game.MinScore >= beta {
			e.metrics.AddChanceCutoff()
			e.store(key, p, beta, lowerBound)
			return beta
		}
	}

	if e.prune {
		e.store(key, p, expected, exact)
	}
	return expected
}

func (e *Expectimax) store(key cacheKey, p game.Position, value float64, b bound) {
	if evicted := e.cache.store(key, p, value, b); evicted > 0 {
		e.metrics.AddEvictions(evicted)
	}
}
