package agent

import (
	"testing"

	"senet/game"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("building each kind of agent", func(t *testing.T) {
		for _, config := range []string{
			"",
			"expectimax",
			"expectimax:depth=2,piece_off=1500,warm",
			"expectimax:depth=1,duration_ms=50,cache=1000",
			"training:depth=1,temperature=50,seed=3",
			"random:seed=9",
		} {
			a, err := New(config)
			require.NoError(t, err, config)
			require.NotNil(t, a, config)
		}
	})

	t.Run("rejecting bad configs", func(t *testing.T) {
		for _, config := range []string{
			"minimax",
			"expectimax:depth=abc",
			"expectimax:depth=0",
			"expectimax:speed=3",
			"expectimax:win_bonus=-1",
			"expectimax:depth=2,piece_off=NaN",
			"expectimax:progress_base=+Inf,zone_multiplier=0",
			"training:depth=1,block=-Inf",
			"random:depth=2",
			"training:warm=maybe",
		} {
			_, err := New(config)
			require.Error(t, err, config)
		}
	})
}

func TestPopParamOr(t *testing.T) {
	params := splitParams("depth=4,warm,temperature=0.5")

	depth, err := PopParamOr(params, "depth", 3)
	require.NoError(t, err)
	require.Equal(t, 4, depth)

	warm, err := PopParamOr(params, "warm", false)
	require.NoError(t, err)
	require.True(t, warm)

	temperature, err := PopParamOr(params, "temperature", 1.0)
	require.NoError(t, err)
	require.Equal(t, 0.5, temperature)

	missing, err := PopParamOr(params, "cache", 7)
	require.NoError(t, err)
	require.Equal(t, 7, missing)

	require.Empty(t, params, "Parsed parameters should be removed")
}

func TestAgentsPlayLegalMoves(t *testing.T) {
	rules := game.NewStandardRules()
	p := game.StartingPosition()
	legal := rules.LegalMoves(p, 1)

	for _, config := range []string{"expectimax:depth=2", "training:depth=2,seed=5", "random:seed=5"} {
		t.Run(config, func(t *testing.T) {
			a, err := New(config)
			require.NoError(t, err)

			move, ok, _ := a.FindMove(p, 1)

			require.True(t, ok)
			require.Contains(t, legal, move)
		})
	}

	t.Run("passing without a legal move", func(t *testing.T) {
		stuck := game.MustParsePosition("..o..........................x A")
		for _, config := range []string{"expectimax", "training:seed=1", "random:seed=1"} {
			a, err := New(config)
			require.NoError(t, err)

			_, ok, _ := a.FindMove(stuck, 4)
			require.False(t, ok, config)
		}
	})
}

func TestAdjustTemperature(t *testing.T) {
	moves := []game.Move{{0, 1}, {2, 3}, {4, 5}}
	ranks := map[game.Move]float64{{0, 1}: 100, {2, 3}: 0, {4, 5}: 100}

	t.Run("sums to one and favours better moves", func(t *testing.T) {
		policy := adjustTemperature(moves, ranks, 100)

		require.InDelta(t, 1.0, policy[0]+policy[1]+policy[2], 1e-9)
		require.InDelta(t, policy[0], policy[2], 1e-12)
		require.Greater(t, policy[0], policy[1])
	})

	t.Run("low temperature is nearly greedy", func(t *testing.T) {
		policy := adjustTemperature(moves, ranks, 1)

		require.Less(t, policy[1], 1e-12)
	})
}

func TestSample(t *testing.T) {
	moves := []game.Move{{0, 1}, {2, 3}}
	policy := []float64{0.25, 0.75}

	require.Equal(t, moves[0], sample(moves, policy, 0.1))
	require.Equal(t, moves[1], sample(moves, policy, 0.5))
	require.Equal(t, moves[1], sample(moves, policy, 0.99999999))
}

func TestTrainingAgentIsReproducible(t *testing.T) {
	p := game.StartingPosition()
	play := func() []game.Move {
		a, err := New("training:depth=1,seed=42,temperature=500")
		require.NoError(t, err)
		moves := []game.Move{}
		for i := 0; i < 5; i++ {
			m, _, _ := a.FindMove(p, 1)
			moves = append(moves, m)
		}
		return moves
	}

	require.Equal(t, play(), play())
}
