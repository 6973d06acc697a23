package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Tier     string
	Duration time.Duration
	Nodes    int  // Positions visited by the search
	Cutoffs  int  // Sibling lists abandoned by alpha-beta pruning
	Fallback bool // Move came from the random fallback
}

type MoveMetric struct {
	Step   int
	Player string // Side to move
	Move   string // USI notation
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // Empty if the game hit the turn limit
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(tier string)
	AddNode()
	AddCutoff()
	SetFallback()
	Complete() SearchMetric
}

type collector struct {
	tier      string
	startTime time.Time
	nodes     atomic.Int64
	cutoffs   atomic.Int64
	fallback  atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(tier string) {
	m.tier = tier
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.cutoffs.Store(0)
	m.fallback.Store(false)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) SetFallback() {
	m.fallback.Store(true)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Tier:     m.tier,
		Duration: time.Since(m.startTime),
		Nodes:    int(m.nodes.Load()),
		Cutoffs:  int(m.cutoffs.Load()),
		Fallback: m.fallback.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(tier string)      {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddCutoff()             {}
func (m *dummyCollector) SetFallback()           {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
