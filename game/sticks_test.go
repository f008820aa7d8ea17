package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRolls(t *testing.T) {
	t.Run("probabilities sum to one", func(t *testing.T) {
		require.Equal(t, 1.0, TotalProbability())
	})

	t.Run("copies are independent", func(t *testing.T) {
		r := Rolls()
		r[0].Probability = 1

		require.Equal(t, 0.25, Rolls()[0].Probability)
	})
}

func TestThrowSticks(t *testing.T) {
	tests := []struct {
		u    float64
		want Roll
	}{
		{0.0, 1},
		{0.2499, 1},
		{0.25, 2},
		{0.6249, 2},
		{0.625, 3},
		{0.875, 4},
		{0.9375, 5},
		{0.9999, 5},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, ThrowSticks(tt.u), "sample %v", tt.u)
	}
}
