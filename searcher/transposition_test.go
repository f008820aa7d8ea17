package searcher

import (
	"testing"

	"senet/game"

	"github.com/stretchr/testify/require"
)

func TestTranspositions(t *testing.T) {
	p := game.StartingPosition()
	key := cacheKey{hash: p.Hash(), depth: 2, kind: chanceNode}

	t.Run("missing entry", func(t *testing.T) {
		cache := newTranspositions(10, 0.5)

		_, result := cache.probe(key, p)

		require.Equal(t, miss, result)
	})

	t.Run("stored entry", func(t *testing.T) {
		cache := newTranspositions(10, 0.5)
		cache.store(key, p, 42, lowerBound)

		entry, result := cache.probe(key, p)

		require.Equal(t, hit, result)
		require.Equal(t, 42.0, entry.value)
		require.Equal(t, lowerBound, entry.bound)
	})

	t.Run("hash collision is a miss", func(t *testing.T) {
		cache := newTranspositions(10, 0.5)
		cache.store(key, p, 42, exact)

		// Same key, different position
		_, result := cache.probe(key, p.Pass())

		require.Equal(t, collision, result)
	})

	t.Run("key includes depth and side", func(t *testing.T) {
		cache := newTranspositions(10, 0.5)
		cache.store(key, p, 42, exact)

		_, deeper := cache.probe(cacheKey{hash: p.Hash(), depth: 3, kind: chanceNode}, p)
		_, maximizing := cache.probe(cacheKey{hash: p.Hash(), depth: 2, kind: chanceNode, maximizing: true}, p)

		require.Equal(t, miss, deeper)
		require.Equal(t, miss, maximizing)
	})

	t.Run("evicts the oldest entries in bulk", func(t *testing.T) {
		cache := newTranspositions(4, 0.5)
		for depth := 1; depth <= 4; depth++ {
			require.Zero(t, cache.store(cacheKey{hash: p.Hash(), depth: depth}, p, float64(depth), exact))
		}

		evicted := cache.store(cacheKey{hash: p.Hash(), depth: 5}, p, 5, exact)

		require.Equal(t, 2, evicted)
		require.Equal(t, 3, cache.size())
		for depth, want := range map[int]probeResult{1: miss, 2: miss, 3: hit, 4: hit, 5: hit} {
			_, got := cache.probe(cacheKey{hash: p.Hash(), depth: depth}, p)
			require.Equal(t, want, got, "depth %d", depth)
		}
	})

	t.Run("overwriting does not evict", func(t *testing.T) {
		cache := newTranspositions(1, 0.5)
		cache.store(key, p, 1, exact)

		require.Zero(t, cache.store(key, p, 2, exact))
		entry, _ := cache.probe(key, p)
		require.Equal(t, 2.0, entry.value)
	})
}
