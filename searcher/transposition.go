package searcher

import (
	"math"

	"senet/game"

	"golang.org/x/exp/slices"
)

type bound uint8

const (
	exact bound = iota
	lowerBound
	upperBound
)

type cacheKey struct {
	hash       game.StateHash
	depth      int
	kind       nodeKind
	maximizing bool
}

type cacheEntry struct {
	position game.Position // Guards against hash collisions
	value    float64
	bound    bound
	age      uint64
}

type probeResult uint8

const (
	miss probeResult = iota
	hit
	collision
)

// transpositions caches node values for the lifetime of a search. It grows
// up to limit entries and then drops the oldest fraction in one go.
type transpositions struct {
	entries  map[cacheKey]cacheEntry
	limit    int
	fraction float64
	clock    uint64
}

func newTranspositions(limit int, fraction float64) *transpositions {
	return &transpositions{
		entries:  make(map[cacheKey]cacheEntry),
		limit:    limit,
		fraction: fraction,
	}
}

// probe only reports a hit for the exact same position.
func (t *transpositions) probe(key cacheKey, p game.Position) (cacheEntry, probeResult) {
	entry, ok := t.entries[key]
	switch {
	case !ok:
		return cacheEntry{}, miss
	case entry.position != p:
		return cacheEntry{}, collision
	default:
		return entry, hit
	}
}

// store returns the number of entries evicted to make room.
func (t *transpositions) store(key cacheKey, p game.Position, value float64, b bound) int {
	evicted := 0
	if _, ok := t.entries[key]; !ok && len(t.entries) >= t.limit {
		evicted = t.evict()
	}
	t.clock++
	t.entries[key] = cacheEntry{position: p, value: value, bound: b, age: t.clock}
	return evicted
}

// evict drops the oldest entries, at least one.
func (t *transpositions) evict() int {
	n := int(math.Ceil(float64(len(t.entries)) * t.fraction))
	if n < 1 {
		n = 1
	}
	keys := make([]cacheKey, 0, len(t.entries))
	for key := range t.entries {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, func(a, b cacheKey) int {
		ageA, ageB := t.entries[a].age, t.entries[b].age
		switch {
		case ageA < ageB:
			return -1
		case ageA > ageB:
			return 1
		default:
			return 0
		}
	})
	for _, key := range keys[:min(n, len(keys))] {
		delete(t.entries, key)
	}
	return min(n, len(keys))
}

func (t *transpositions) clear() {
	clear(t.entries)
	t.clock = 0
}

func (t *transpositions) size() int {
	return len(t.entries)
}
