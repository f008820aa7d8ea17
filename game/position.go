package game

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Position is an immutable board snapshot. Every transition returns a new
// value, so positions can be shared freely and compared with ==.
type Position struct {
	cells  [BoardSize]Cell
	toMove Side
	hash   StateHash
}

// NewPosition panics if the cells violate the piece count invariants.
func NewPosition(cells [BoardSize]Cell, toMove Side) Position {
	if toMove != SideA && toMove != SideB {
		panic(fmt.Sprintf("invalid side to move: %d", toMove))
	}
	counts := map[Cell]int{}
	for i, c := range cells {
		switch c {
		case Empty, SideA, SideB:
			counts[c]++
		default:
			panic(fmt.Sprintf("invalid cell %d at square %d", c, i))
		}
	}
	if counts[SideA] > PiecesPerSide || counts[SideB] > PiecesPerSide {
		panic(fmt.Sprintf("too many pieces: %d for A, %d for B", counts[SideA], counts[SideB]))
	}
	return Position{cells: cells, toMove: toMove, hash: computeHash(&cells, toMove)}
}

// StartingPosition alternates both sides over the first 14 squares, SideA first.
func StartingPosition() Position {
	var cells [BoardSize]Cell
	for i := 0; i < 2*PiecesPerSide; i++ {
		if i%2 == 0 {
			cells[i] = SideA
		} else {
			cells[i] = SideB
		}
	}
	return NewPosition(cells, SideA)
}

// ParsePosition reads the String form: 30 cells of 'x', 'o' or '.', a space,
// then the side to move ('A' or 'B').
func ParsePosition(s string) (Position, error) {
	board, side, found := strings.Cut(strings.TrimSpace(s), " ")
	if !found {
		return Position{}, errors.Errorf("missing side to move in %q", s)
	}
	if len(board) != BoardSize {
		return Position{}, errors.Errorf("expected %d cells, got %d", BoardSize, len(board))
	}
	var cells [BoardSize]Cell
	counts := map[Cell]int{}
	for i, r := range board {
		switch r {
		case 'x':
			cells[i] = SideA
		case 'o':
			cells[i] = SideB
		case '.':
		default:
			return Position{}, errors.Errorf("invalid cell %q at square %d", r, i)
		}
		counts[cells[i]]++
	}
	if counts[SideA] > PiecesPerSide || counts[SideB] > PiecesPerSide {
		return Position{}, errors.Errorf("too many pieces in %q", board)
	}
	var toMove Side
	switch side {
	case "A":
		toMove = SideA
	case "B":
		toMove = SideB
	default:
		return Position{}, errors.Errorf("invalid side to move %q", side)
	}
	return NewPosition(cells, toMove), nil
}

func MustParsePosition(s string) Position {
	p, err := ParsePosition(s)
	if err != nil {
		panic(err.Error())
	}
	return p
}

func (p Position) String() string {
	var b strings.Builder
	for _, c := range p.cells {
		switch c {
		case SideA:
			b.WriteByte('x')
		case SideB:
			b.WriteByte('o')
		default:
			b.WriteByte('.')
		}
	}
	b.WriteByte(' ')
	b.WriteString(p.toMove.String())
	return b.String()
}

func (p Position) Cell(i int) Cell {
	if i < 0 || i >= BoardSize {
		return Empty
	}
	return p.cells[i]
}

func (p Position) ToMove() Side {
	return p.toMove
}

func (p Position) Hash() StateHash {
	return p.hash
}

// Pieces returns the occupied squares of a side in ascending order.
func (p Position) Pieces(side Side) []int {
	return lo.Filter(lo.Range(BoardSize), func(i int, _ int) bool {
		return p.cells[i] == side
	})
}

func (p Position) PiecesOnBoard(side Side) int {
	return lo.Count(p.cells[:], side)
}

func (p Position) PiecesBorneOff(side Side) int {
	return PiecesPerSide - p.PiecesOnBoard(side)
}

// IsTerminal reports whether either side has no pieces left on the board.
func (p Position) IsTerminal() bool {
	return p.PiecesOnBoard(SideA) == 0 || p.PiecesOnBoard(SideB) == 0
}

// Winner returns the side that has borne off all its pieces.
func (p Position) Winner() (Side, bool) {
	switch {
	case p.PiecesOnBoard(SideA) == 0:
		return SideA, true
	case p.PiecesOnBoard(SideB) == 0:
		return SideB, true
	default:
		return Empty, false
	}
}

// Protected reports whether the piece on square i has a same-side neighbour.
func (p Position) Protected(i int) bool {
	side := p.Cell(i)
	if side == Empty {
		return false
	}
	return p.Cell(i-1) == side || p.Cell(i+1) == side
}

// Pass keeps the cells and hands the turn over.
func (p Position) Pass() Position {
	p.toMove = p.toMove.Opponent()
	p.hash ^= zobristToMove
	return p
}

// Swapped mirrors the ownership of every piece and the side to move.
func (p Position) Swapped() Position {
	var cells [BoardSize]Cell
	for i, c := range p.cells {
		if c != Empty {
			cells[i] = c.Opponent()
		}
	}
	return NewPosition(cells, p.toMove.Opponent())
}

// set returns a copy with square i holding c; the receiver is untouched.
func (p Position) set(i int, c Cell) Position {
	if old := p.cells[i]; old != Empty {
		p.hash ^= zobristCells[i][old]
	}
	p.cells[i] = c
	if c != Empty {
		p.hash ^= zobristCells[i][c]
	}
	return p
}
