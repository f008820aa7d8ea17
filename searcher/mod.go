package searcher

import (
	"senet/game"
	"senet/meta"
)

const (
	DefaultDepth         = meta.SEARCH_DEPTH
	DefaultCacheLimit    = 200000
	DefaultEvictFraction = 0.5
	MaxDepth             = 12
)

// Searcher picks a move for the side to move given the thrown roll.
type Searcher interface {
	FindMove(p game.Position, roll game.Roll) (game.Move, bool)
}

type nodeKind uint8

const (
	decisionNode nodeKind = iota
	chanceNode
)
