package game

import "golang.org/x/exp/rand"

// Zobrist keys for each side on each square, plus one for SideB to move
var (
	zobristCells  [BoardSize][3]StateHash
	zobristToMove StateHash
)

func init() {
	// Fixed seed so hashes are stable across runs
	rnd := rand.New(rand.NewSource(0x5E4E7))
	for i := 0; i < BoardSize; i++ {
		zobristCells[i][SideA] = StateHash(rnd.Uint64())
		zobristCells[i][SideB] = StateHash(rnd.Uint64())
	}
	zobristToMove = StateHash(rnd.Uint64())
}

func computeHash(cells *[BoardSize]Cell, toMove Side) StateHash {
	var h StateHash
	for i, c := range cells {
		if c != Empty {
			h ^= zobristCells[i][c]
		}
	}
	if toMove == SideB {
		h ^= zobristToMove
	}
	return h
}
