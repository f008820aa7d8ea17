package game

// Rules generates and applies moves for a position. Implementations must
// never mutate the position they are given.
type Rules interface {
	LegalMoves(p Position, roll Roll) []Move
	Apply(p Position, m Move) Position
}

// RebirthPolicy decides what happens to a piece sent to rebirth when no
// square at or before the rebirth square is free.
type RebirthPolicy int

const (
	RebirthLose RebirthPolicy = iota // piece leaves the board and counts as borne off
	RebirthStay                      // piece stays where it was
)

func (r RebirthPolicy) String() string {
	switch r {
	case RebirthLose:
		return "lose"
	case RebirthStay:
		return "stay"
	default:
		return "unknown"
	}
}
