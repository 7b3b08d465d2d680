package metrics

import "time"

// SearchMetric describes a single move search.
type SearchMetric struct {
	Difficulty   string
	MaxDepth     int
	Nodes        int
	Prunes       int
	DeadlineHits int
	Duration     time.Duration
}

// MoveMetric ties a search to its place in a game.
type MoveMetric struct {
	Step   int
	Player int // seat number, 1 or 2
	SearchMetric
}

// GameMetric summarizes a finished game.
type GameMetric struct {
	Winner     int // seat number, 0 on a draw
	Reason     string
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

// Collector accumulates counters during one search. The searcher calls the
// Add methods; whoever owns the collector calls Complete to take the metric
// and reset for the next search.
type Collector interface {
	Start(difficulty string, maxDepth int)
	AddNode()
	AddPrune()
	AddDeadlineHit()
	Complete() SearchMetric
}

type collector struct {
	difficulty   string
	maxDepth     int
	startTime    time.Time
	nodes        int
	prunes       int
	deadlineHits int
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(difficulty string, maxDepth int) {
	c.difficulty = difficulty
	c.maxDepth = maxDepth
	c.nodes = 0
	c.prunes = 0
	c.deadlineHits = 0
	c.startTime = time.Now()
}

func (c *collector) AddNode() {
	c.nodes++
}

func (c *collector) AddPrune() {
	c.prunes++
}

func (c *collector) AddDeadlineHit() {
	c.deadlineHits++
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Difficulty:   c.difficulty,
		MaxDepth:     c.maxDepth,
		Nodes:        c.nodes,
		Prunes:       c.prunes,
		DeadlineHits: c.deadlineHits,
		Duration:     time.Since(c.startTime),
	}
}

// NewDummyCollector returns a collector that records nothing, for searches
// where metrics are not wanted.
func NewDummyCollector() Collector {
	return dummyCollector{}
}

type dummyCollector struct{}

func (dummyCollector) Start(string, int)      {}
func (dummyCollector) AddNode()               {}
func (dummyCollector) AddPrune()              {}
func (dummyCollector) AddDeadlineHit()        {}
func (dummyCollector) Complete() SearchMetric { return SearchMetric{} }
