package engine

import (
	"testing"

	"senet/experiments/metrics"
	"senet/game"
	"senet/searcher/agent"

	"github.com/stretchr/testify/require"
)

// passingAgent never moves.
type passingAgent struct{}

func (passingAgent) FindMove(game.Position, game.Roll) (game.Move, bool, metrics.SearchMetric) {
	return game.Move{}, false, metrics.SearchMetric{}
}

// cheatingAgent always tries the same move.
type cheatingAgent struct{}

func (cheatingAgent) FindMove(game.Position, game.Roll) (game.Move, bool, metrics.SearchMetric) {
	return game.Move{From: 0, To: 29}, true, metrics.SearchMetric{}
}

func newRandomAgent(t *testing.T, seed string) agent.Agent {
	a, err := agent.New("random:seed=" + seed)
	require.NoError(t, err)
	return a
}

func TestLocalRun(t *testing.T) {
	t.Run("random agents finish a game", func(t *testing.T) {
		e := NewLocal(newRandomAgent(t, "1"), newRandomAgent(t, "2"), WithSeed(3), WithMaxTurns(2000))

		winner, gameMetric, moveMetrics := e.Run()

		require.Equal(t, len(moveMetrics), gameMetric.TotalMoves)
		require.Equal(t, "A", gameMetric.StartingPlayer)
		if winner == game.Empty {
			require.NotEqual(t, ReasonWin, gameMetric.Reason)
			return
		}
		require.Equal(t, ReasonWin, gameMetric.Reason)
		require.Equal(t, winner.String(), gameMetric.Winner)
		require.Zero(t, e.Position().PiecesOnBoard(winner))
	})

	t.Run("seeded games replay identically", func(t *testing.T) {
		play := func() []metrics.MoveMetric {
			e := NewLocal(newRandomAgent(t, "4"), newRandomAgent(t, "5"), WithSeed(6), WithMaxTurns(100))
			_, _, moveMetrics := e.Run()
			for i := range moveMetrics {
				moveMetrics[i].SearchMetric = metrics.SearchMetric{}
			}
			return moveMetrics
		}

		require.Equal(t, play(), play())
	})

	t.Run("turn limit", func(t *testing.T) {
		e := NewLocal(newRandomAgent(t, "1"), newRandomAgent(t, "2"), WithSeed(1), WithMaxTurns(3))

		winner, gameMetric, moveMetrics := e.Run()

		require.Equal(t, game.Empty, winner)
		require.Equal(t, ReasonTurnLimit, gameMetric.Reason)
		require.Len(t, moveMetrics, 3)
		require.Equal(t, []int{1, 2, 3}, []int{moveMetrics[0].Step, moveMetrics[1].Step, moveMetrics[2].Step})
	})

	t.Run("repeated positions end in a draw", func(t *testing.T) {
		e := NewLocal(passingAgent{}, passingAgent{}, WithSeed(1), WithRepetitionLimit(3))

		winner, gameMetric, moveMetrics := e.Run()

		require.Equal(t, game.Empty, winner)
		require.Equal(t, ReasonRepetition, gameMetric.Reason)
		require.Len(t, moveMetrics, 4)
		require.Equal(t, "pass", moveMetrics[0].Move)
	})

	t.Run("starting from a won position", func(t *testing.T) {
		won := game.MustParsePosition("o............................. B")
		e := NewLocal(passingAgent{}, passingAgent{}, WithPosition(won))

		winner, gameMetric, moveMetrics := e.Run()

		require.Equal(t, game.SideA, winner)
		require.Empty(t, moveMetrics)
		require.Equal(t, "A", gameMetric.Winner)
	})

	t.Run("illegal moves panic", func(t *testing.T) {
		e := NewLocal(cheatingAgent{}, passingAgent{}, WithSeed(1))

		require.Panics(t, func() { e.Run() })
	})

	t.Run("expectimax agents play a short game", func(t *testing.T) {
		a, err := agent.New("expectimax:depth=1")
		require.NoError(t, err)
		b, err := agent.New("expectimax:depth=2")
		require.NoError(t, err)
		e := NewLocal(a, b, WithSeed(8), WithMaxTurns(20))

		_, gameMetric, moveMetrics := e.Run()

		require.LessOrEqual(t, gameMetric.TotalMoves, 20)
		for _, m := range moveMetrics {
			require.NotEmpty(t, m.Move)
		}
	})

	t.Run("requires two agents", func(t *testing.T) {
		require.Panics(t, func() { NewLocal(nil, passingAgent{}) })
	})
}
