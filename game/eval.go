package game

import "math"

// Bounds of the evaluation range. Evaluations stay strictly inside them so
// the search can use them as optimistic and pessimistic limits.
const (
	MaxScore = 50000.0
	MinScore = -50000.0
)

const (
	ZoneStart       = 20 // first square whose progress is scaled by ZoneMultiplier
	openingFrontier = 15
	endgameAverage  = 22
	endgameOff      = 3
)

// Evaluate scores a position from a fixed perspective. legalMoves is the
// number of moves available to the perspective side, or 0 if unknown.
type Evaluate func(p Position, perspective Side, legalMoves int) float64

// NewEvaluator binds an evaluation config.
func NewEvaluator(config EvaluationConfig) Evaluate {
	return func(p Position, perspective Side, legalMoves int) float64 {
		return EvaluatePosition(p, perspective, config, legalMoves)
	}
}

func EvaluatePosition(p Position, perspective Side, config EvaluationConfig, legalMoves int) float64 {
	if winner, ok := p.Winner(); ok {
		if winner == perspective {
			return clamp(config.WinBonus)
		}
		return clamp(-config.WinBonus)
	}

	c := config.ForPhase(PhaseOf(p))
	opponent := perspective.Opponent()

	score := sideScore(p, perspective, c) - sideScore(p, opponent, c)
	score += blocking(p, perspective, c) - blocking(p, opponent, c)
	if legalMoves > 0 {
		score += float64(legalMoves) * c.Flexibility
	}
	return clamp(score)
}

// PhaseOf classifies a position; terminal positions count as endgame.
func PhaseOf(p Position) Phase {
	if p.IsTerminal() {
		return Endgame
	}
	sum, highest, count := 0, 0, 0
	for i, c := range p.cells {
		if c == Empty {
			continue
		}
		sum += i
		count++
		highest = i
	}
	off := p.PiecesBorneOff(SideA) + p.PiecesBorneOff(SideB)
	if off == 0 && highest < openingFrontier {
		return Opening
	}
	if off >= endgameOff || float64(sum)/float64(count) >= endgameAverage {
		return Endgame
	}
	return Midgame
}

// sideScore sums the terms that depend only on one side's own pieces.
func sideScore(p Position, side Side, c EvaluationConfig) float64 {
	score := float64(p.PiecesBorneOff(side)) * c.PieceOff
	for _, i := range p.Pieces(side) {
		progress := float64(i+1) * c.ProgressBase
		if i >= ZoneStart {
			progress *= c.ZoneMultiplier
		}
		score += progress

		switch {
		case i == HappinessSquare:
			// One step short of the water
			score += c.HappinessBonus + c.WaterPenalty/2
		case i == WaterSquare:
			score += c.WaterPenalty
		case isExitSquare(i):
			score += c.SpecialHouse
		}

		if p.Protected(i) {
			score += c.Protection
		} else {
			score -= c.IsolatedPenalty
		}

		// Directly behind an enemy piece that can be captured
		if ahead := i + 1; p.Cell(ahead) == side.Opponent() && !p.Protected(ahead) {
			score += c.Attack
		}
	}
	return score
}

// blocking rewards side for pieces standing one to three squares ahead of
// enemy pieces, with a bonus for each neighbour forming a wall.
func blocking(p Position, side Side, c EvaluationConfig) float64 {
	score := 0.0
	for _, enemy := range p.Pieces(side.Opponent()) {
		for distance := 1; distance <= 3; distance++ {
			i := enemy + distance
			if p.Cell(i) != side {
				continue
			}
			score += c.Block / float64(distance)
			if p.Cell(i-1) == side {
				score += c.Block * 0.5
			}
			if p.Cell(i+1) == side {
				score += c.Block * 0.5
			}
		}
	}
	return score
}

func clamp(score float64) float64 {
	return math.Max(MinScore+1, math.Min(score, MaxScore-1))
}
