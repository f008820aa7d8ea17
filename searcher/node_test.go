package searcher

import (
	"testing"

	"senet/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

const tolerance = 1e-6

// randomPosition places one to seven pieces per side on distinct squares.
func randomPosition(rnd *rand.Rand) game.Position {
	var cells [game.BoardSize]game.Cell
	squares := rnd.Perm(game.BoardSize)
	a, b := 1+rnd.Intn(game.PiecesPerSide), 1+rnd.Intn(game.PiecesPerSide)
	for _, i := range squares[:a] {
		cells[i] = game.SideA
	}
	for _, i := range squares[a : a+b] {
		cells[i] = game.SideB
	}
	toMove := game.SideA
	if rnd.Intn(2) == 1 {
		toMove = game.SideB
	}
	return game.NewPosition(cells, toMove)
}

func randomRoll(rnd *rand.Rand) game.Roll {
	return game.ThrowSticks(rnd.Float64())
}

// exactValue is the unpruned expectation of a chance node.
func exactValue(p game.Position, depth int, maximizing bool, perspective game.Side) float64 {
	oracle := NewExpectimax(WithoutPruning())
	oracle.prepare(perspective)
	return oracle.chance(p, depth, game.MinScore, game.MaxScore, maximizing)
}

func TestChanceBounds(t *testing.T) {
	rnd := rand.New(rand.NewSource(21))
	windows := [][2]float64{
		{game.MinScore, game.MaxScore},
		{-500, 500},
		{-100, -50},
		{200, 201},
		{-3000, 4000},
	}

	for i := 0; i < 40; i++ {
		p := randomPosition(rnd)
		if p.IsTerminal() {
			continue
		}
		perspective := p.ToMove().Opponent()
		want := exactValue(p, 2, false, perspective)

		for _, w := range windows {
			e := NewExpectimax()
			e.prepare(perspective)
			got := e.chance(p, 2, w[0], w[1], false)

			switch {
			case got <= w[0]:
				require.LessOrEqual(t, want, w[0]+tolerance, "Fail-low should bound the value from above: %s", p)
			case got >= w[1]:
				require.GreaterOrEqual(t, want, w[1]-tolerance, "Fail-high should bound the value from below: %s", p)
			default:
				require.InDelta(t, want, got, tolerance, "Values inside the window should be exact: %s", p)
			}
		}
	}
}

func TestChanceCaching(t *testing.T) {
	t.Run("exact values are reused", func(t *testing.T) {
		e := NewExpectimax(WithMetrics())
		p := game.StartingPosition().Pass()
		e.prepare(game.SideA)

		first := e.chance(p, 2, game.MinScore, game.MaxScore, false)
		second := e.chance(p, 2, game.MinScore, game.MaxScore, false)

		require.Equal(t, first, second)
		require.Positive(t, e.metrics.Complete().CacheHits, "The second call should hit the cache")
	})

	t.Run("leaves are not cached", func(t *testing.T) {
		e := NewExpectimax()
		e.prepare(game.SideA)

		e.chance(game.StartingPosition(), 0, game.MinScore, game.MaxScore, true)

		require.Zero(t, e.cache.size())
	})
}

func TestDecide(t *testing.T) {
	t.Run("passing when no move is legal", func(t *testing.T) {
		// SideA's only piece sits on Horus and the roll is not a one
		p := game.MustParsePosition("..o..........................x A")
		e := NewExpectimax()
		e.prepare(game.SideA)

		got := e.decide(p, 2, game.MinScore, game.MaxScore, true, 3)
		want := e.chance(p.Pass(), 1, game.MinScore, game.MaxScore, false)

		require.Equal(t, want, got)
	})

	t.Run("maximizing picks the best reply", func(t *testing.T) {
		rnd := rand.New(rand.NewSource(22))
		for i := 0; i < 20; i++ {
			p := randomPosition(rnd)
			roll := randomRoll(rnd)
			oracle := NewExpectimax(WithoutPruning())
			oracle.prepare(p.ToMove())
			e := NewExpectimax()
			e.prepare(p.ToMove())

			want := oracle.decide(p, 2, game.MinScore, game.MaxScore, true, roll)
			got := e.decide(p, 2, game.MinScore, game.MaxScore, true, roll)

			require.InDelta(t, want, got, tolerance, p.String())
		}
	})
}
