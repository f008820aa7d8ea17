package game

import "fmt"

const (
	BoardSize     = 30
	PiecesPerSide = 7
	OffBoard      = BoardSize // Move.To of a piece being borne off
)

// Special squares, as 0-based indices into the track
const (
	RebirthSquare     = 14
	HappinessSquare   = 25
	WaterSquare       = 26
	ThreeTruthsSquare = 27
	ReAtumSquare      = 28
	HorusSquare       = 29
)

// exitRolls maps each exit square to the only roll that bears a piece off from it
var exitRolls = map[int]Roll{
	ThreeTruthsSquare: 3,
	ReAtumSquare:      2,
	HorusSquare:       1,
}

func isExitSquare(i int) bool {
	_, ok := exitRolls[i]
	return ok
}

type StateHash uint64

type Side uint8

const (
	SideA Side = iota + 1
	SideB
)

func (s Side) Opponent() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

func (s Side) String() string {
	switch s {
	case SideA:
		return "A"
	case SideB:
		return "B"
	default:
		return "?"
	}
}

// Cell holds the side occupying a square, or Empty
type Cell = Side

const Empty Cell = 0

type Roll int

type Move struct {
	From int
	To   int // OffBoard when bearing off
}

func (m Move) IsBearOff() bool {
	return m.To >= OffBoard
}

func (m Move) String() string {
	if m.IsBearOff() {
		return fmt.Sprintf("%d->off", m.From)
	}
	return fmt.Sprintf("%d->%d", m.From, m.To)
}

type Phase int

const (
	Opening Phase = iota
	Midgame
	Endgame
)

func (p Phase) String() string {
	return [...]string{"opening", "midgame", "endgame"}[p]
}
