package engine

import (
	"senet/experiments/metrics"
	"senet/game"
)

const (
	ReasonWin        = "win"
	ReasonTurnLimit  = "turn_limit"
	ReasonRepetition = "repetition"
)

type Engine interface {
	// Run plays a game till there's a winner, the turn limit is reached or a
	// position repeats too often. The winner is game.Empty on a draw.
	Run() (winner game.Side, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
