package searcher

import (
	"senet/game"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Priority is a static guess at how promising a move is. It only orders
// moves and never prunes them.
func Priority(p game.Position, m game.Move) int {
	priority := 0
	if m.IsBearOff() {
		priority += 20000
	}
	if m.To >= game.HappinessSquare {
		priority += 5000 + 20*m.To
	}
	switch m.To {
	case game.HappinessSquare:
		priority += 1500
	case game.WaterSquare:
		priority -= 8000
	}
	if !m.IsBearOff() && p.Cell(m.To) == p.ToMove().Opponent() {
		priority += 800
	}
	return priority + 15*m.To
}

type scoredMove struct {
	move     game.Move
	priority int
}

// OrderMoves returns the moves sorted by descending priority. Ties keep
// their enumeration order.
func OrderMoves(p game.Position, moves []game.Move) []game.Move {
	scored := lo.Map(moves, func(m game.Move, _ int) scoredMove {
		return scoredMove{move: m, priority: Priority(p, m)}
	})
	slices.SortStableFunc(scored, func(a, b scoredMove) int {
		return b.priority - a.priority
	})
	return lo.Map(scored, func(s scoredMove, _ int) game.Move { return s.move })
}

// outcomes is the roll distribution by descending probability.
var outcomes = func() []game.RollProbability {
	rolls := game.Rolls()
	slices.SortStableFunc(rolls, func(a, b game.RollProbability) int {
		switch {
		case a.Probability > b.Probability:
			return -1
		case a.Probability < b.Probability:
			return 1
		default:
			return 0
		}
	})
	return rolls
}()
