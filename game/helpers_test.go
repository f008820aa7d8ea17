package game

import (
	"golang.org/x/exp/rand"
)

func positionWith(toMove Side, pieces map[int]Side) Position {
	var cells [BoardSize]Cell
	for i, side := range pieces {
		cells[i] = side
	}
	return NewPosition(cells, toMove)
}

// randomPosition places up to seven pieces per side on distinct squares.
func randomPosition(rnd *rand.Rand) Position {
	var cells [BoardSize]Cell
	squares := rnd.Perm(BoardSize)
	a, b := 1+rnd.Intn(PiecesPerSide), 1+rnd.Intn(PiecesPerSide)
	for _, i := range squares[:a] {
		cells[i] = SideA
	}
	for _, i := range squares[a : a+b] {
		cells[i] = SideB
	}
	toMove := SideA
	if rnd.Intn(2) == 1 {
		toMove = SideB
	}
	return NewPosition(cells, toMove)
}
