package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric describes one move decision.
type SearchMetric struct {
	Iterations  int // Configured iteration budget
	Goroutines  int
	Exploration float64
	Duration    time.Duration
	Episodes    int // Iterations actually run, summed over trees
	Nodes       int // Tree nodes created by expansion
}

// MoveMetric ties a search metric to its place in a game.
type MoveMetric struct {
	Step   int
	Player int // Player ID
	SearchMetric
}

// GameMetric describes one finished game.
type GameMetric struct {
	StartingPlayer int    // Player ID
	Winner         int    // Player ID, 0 for a draw
	StartTime      time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector accumulates search statistics for one decision at a time.
// The counters are atomics: parallel trees report concurrently.
type Collector interface {
	Start(iterations, goroutines int, exploration float64)
	AddEpisode()
	AddNodes(n int)
	Complete() SearchMetric
}

type collector struct {
	iterations  int
	goroutines  int
	exploration float64
	startTime   time.Time
	episodes    atomic.Int64
	nodes       atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(iterations, goroutines int, exploration float64) {
	m.iterations = iterations
	m.goroutines = goroutines
	m.exploration = exploration
	m.startTime = time.Now()
	m.episodes.Store(0)
	m.nodes.Store(0)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) AddNodes(n int) {
	m.nodes.Add(int64(n))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Iterations:  m.iterations,
		Goroutines:  m.goroutines,
		Exploration: m.exploration,
		Duration:    time.Since(m.startTime),
		Episodes:    int(m.episodes.Load()),
		Nodes:       int(m.nodes.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(iterations, goroutines int, exploration float64) {}
func (m *dummyCollector) AddEpisode()                                           {}
func (m *dummyCollector) AddNodes(n int)                                        {}
func (m *dummyCollector) Complete() SearchMetric                                { return SearchMetric{} }
