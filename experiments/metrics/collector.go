package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth           int // Target depth
	CompletedDepth  int // Deepest finished iteration
	Duration        time.Duration
	Nodes           int
	Evaluations     int
	CacheHits       int
	CacheMisses     int
	CacheCollisions int
	Evictions       int
	ChanceCutoffs   int
	DecisionCutoffs int
}

type MoveMetric struct {
	Step   int
	Player string // Side to move
	Roll   int
	Move   string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // Empty on a draw
	Reason         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(depth int)
	AddNode()
	AddEvaluation()
	AddCacheHit()
	AddCacheMiss()
	AddCacheCollision()
	AddEvictions(n int)
	AddChanceCutoff()
	AddDecisionCutoff()
	CompleteDepth(depth int)
	Complete() SearchMetric
}

type collector struct {
	depth           int
	startTime       time.Time
	completedDepth  atomic.Int32
	nodes           atomic.Int64
	evaluations     atomic.Int64
	cacheHits       atomic.Int64
	cacheMisses     atomic.Int64
	cacheCollisions atomic.Int64
	evictions       atomic.Int64
	chanceCutoffs   atomic.Int64
	decisionCutoffs atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(depth int) {
	m.depth = depth
	m.startTime = time.Now()
	m.completedDepth.Store(0)
	for _, counter := range []*atomic.Int64{
		&m.nodes, &m.evaluations, &m.cacheHits, &m.cacheMisses,
		&m.cacheCollisions, &m.evictions, &m.chanceCutoffs, &m.decisionCutoffs,
	} {
		counter.Store(0)
	}
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *collector) AddCacheHit() {
	m.cacheHits.Add(1)
}

func (m *collector) AddCacheMiss() {
	m.cacheMisses.Add(1)
}

func (m *collector) AddCacheCollision() {
	m.cacheCollisions.Add(1)
}

func (m *collector) AddEvictions(n int) {
	m.evictions.Add(int64(n))
}

func (m *collector) AddChanceCutoff() {
	m.chanceCutoffs.Add(1)
}

func (m *collector) AddDecisionCutoff() {
	m.decisionCutoffs.Add(1)
}

func (m *collector) CompleteDepth(depth int) {
	m.completedDepth.Store(int32(depth))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:           m.depth,
		CompletedDepth:  int(m.completedDepth.Load()),
		Duration:        time.Since(m.startTime),
		Nodes:           int(m.nodes.Load()),
		Evaluations:     int(m.evaluations.Load()),
		CacheHits:       int(m.cacheHits.Load()),
		CacheMisses:     int(m.cacheMisses.Load()),
		CacheCollisions: int(m.cacheCollisions.Load()),
		Evictions:       int(m.evictions.Load()),
		ChanceCutoffs:   int(m.chanceCutoffs.Load()),
		DecisionCutoffs: int(m.decisionCutoffs.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)         {}
func (m *dummyCollector) AddNode()                {}
func (m *dummyCollector) AddEvaluation()          {}
func (m *dummyCollector) AddCacheHit()            {}
func (m *dummyCollector) AddCacheMiss()           {}
func (m *dummyCollector) AddCacheCollision()      {}
func (m *dummyCollector) AddEvictions(n int)      {}
func (m *dummyCollector) AddChanceCutoff()        {}
func (m *dummyCollector) AddDecisionCutoff()      {}
func (m *dummyCollector) CompleteDepth(depth int) {}
func (m *dummyCollector) Complete() SearchMetric  { return SearchMetric{} }
