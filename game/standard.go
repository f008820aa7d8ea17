package game

import "fmt"

type StandardRules struct {
	RebirthSquare int
	NoSlot        RebirthPolicy
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		RebirthSquare: RebirthSquare,
		NoSlot:        RebirthLose,
	}
}

// LegalMoves enumerates moves for the side to move, pieces in ascending order.
func (r *StandardRules) LegalMoves(p Position, roll Roll) []Move {
	side := p.ToMove()
	moves := []Move{}
	for _, from := range p.Pieces(side) {
		to := from + int(roll)
		if to >= BoardSize {
			if canBearOff(from, roll, to) {
				moves = append(moves, Move{From: from, To: OffBoard})
			}
			continue
		}
		if from < HappinessSquare && to > HappinessSquare {
			continue // happiness must be landed on
		}
		if !canLandOn(p, to, side) {
			continue
		}
		if isPathBlocked(p, from, to, roll, side.Opponent()) {
			continue
		}
		moves = append(moves, Move{From: from, To: to})
	}
	return moves
}

func canBearOff(from int, roll Roll, to int) bool {
	if from < HappinessSquare {
		return false
	}
	if need, ok := exitRolls[from]; ok && roll != need {
		return false
	}
	return to == OffBoard || (from <= WaterSquare && to > OffBoard)
}

func canLandOn(p Position, to int, side Side) bool {
	switch p.Cell(to) {
	case side:
		return false
	case side.Opponent():
		return !p.Protected(to)
	default:
		return true
	}
}

// isPathBlocked reports whether a run of three or more opponent pieces
// touches any square strictly between from and to.
func isPathBlocked(p Position, from, to int, roll Roll, opponent Side) bool {
	if roll <= 1 {
		return false
	}
	for i := from + 1; i < to; i++ {
		if p.Cell(i) != opponent {
			continue
		}
		run := 1
		for j := i - 1; p.Cell(j) == opponent; j-- {
			run++
		}
		for j := i + 1; p.Cell(j) == opponent; j++ {
			run++
		}
		if run >= 3 {
			return true
		}
	}
	return false
}

// Apply plays m for the side to move and hands the turn over. It panics if
// the origin square does not hold a piece of the side to move.
func (r *StandardRules) Apply(p Position, m Move) Position {
	side := p.ToMove()
	if m.From < 0 || m.From >= BoardSize || p.Cell(m.From) != side {
		panic(fmt.Sprintf("no %s piece to move at square %d in %s", side, m.From, p))
	}

	next := p.set(m.From, Empty)
	if !m.IsBearOff() {
		if occupant := next.Cell(m.To); occupant != Empty {
			next = next.set(m.From, occupant) // swap
		}
		next = next.set(m.To, side)

		if m.To == WaterSquare {
			next = r.rebirth(next, m.To)
		}
		for _, house := range []int{ThreeTruthsSquare, ReAtumSquare, HorusSquare} {
			if house != m.To && next.Cell(house) == side {
				next = r.rebirth(next, house)
			}
		}
	}
	return next.Pass()
}

// rebirth moves the piece on square i to the first empty square at or
// before the rebirth square.
func (r *StandardRules) rebirth(p Position, i int) Position {
	side := p.Cell(i)
	cleared := p.set(i, Empty)
	for slot := r.RebirthSquare; slot >= 0; slot-- {
		if cleared.Cell(slot) == Empty {
			return cleared.set(slot, side)
		}
	}
	if r.NoSlot == RebirthStay {
		return p
	}
	return cleared
}
