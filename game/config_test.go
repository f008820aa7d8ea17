package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigFromMap(t *testing.T) {
	t.Run("overrides named weights", func(t *testing.T) {
		c, err := ConfigFromMap(map[string]float64{"piece_off": 1500, "block": 0})

		require.NoError(t, err)
		require.Equal(t, 1500.0, c.PieceOff)
		require.Equal(t, 0.0, c.Block)
		require.Equal(t, DefaultConfig().WinBonus, c.WinBonus, "Other weights keep their defaults")
	})

	t.Run("rejects unknown weights", func(t *testing.T) {
		_, err := ConfigFromMap(map[string]float64{"speed": 1})
		require.ErrorContains(t, err, "speed")
	})

	t.Run("rejects a non-positive win bonus", func(t *testing.T) {
		_, err := ConfigFromMap(map[string]float64{"win_bonus": 0})
		require.Error(t, err)
	})

	t.Run("rejects non-finite weights", func(t *testing.T) {
		for _, values := range []map[string]float64{
			{"piece_off": math.NaN()},
			{"progress_base": math.Inf(1), "zone_multiplier": 0},
			{"block": math.Inf(-1)},
		} {
			_, err := ConfigFromMap(values)
			require.ErrorContains(t, err, "must be finite", values)
		}
	})

	t.Run("every weight has a name", func(t *testing.T) {
		require.Len(t, WeightNames(), 12)
	})
}

func TestForPhase(t *testing.T) {
	base := DefaultConfig()

	t.Run("scales a copy", func(t *testing.T) {
		endgame := base.ForPhase(Endgame)

		require.InDelta(t, 170.0, endgame.ProgressBase, 1e-9)
		require.InDelta(t, 1800.0, endgame.PieceOff, 1e-9)
		require.InDelta(t, 32.0, endgame.Block, 1e-9)
		require.Equal(t, 85.0, base.ProgressBase, "The base config should not change")
	})

	t.Run("opening favours defence", func(t *testing.T) {
		opening := base.ForPhase(Opening)

		require.InDelta(t, 96.0, opening.Protection, 1e-9)
		require.InDelta(t, 120.0, opening.Block, 1e-9)
		require.Equal(t, base.PieceOff, opening.PieceOff)
	})
}
