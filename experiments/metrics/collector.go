package metrics

import (
	"checkers/meta"
	"math"
	"sync/atomic"
	"time"
)

// AgentConfig describes one computer player taking part in an experiment.
type AgentConfig struct {
	ID      int          `mapstructure:"id"`
	Seed    uint64       `mapstructure:"seed"`
	Weights meta.Weights `mapstructure:"weights"`
}

type SearchMetric struct {
	Duration   time.Duration
	Candidates int
	Ties       int
	BestWeight float64
}

type MoveMetric struct {
	Step   int
	Player string // game.Black or game.White
	Start  int
	End    int
	SearchMetric
}

type GameMetric struct {
	SessionID      string
	StartingPlayer string
	Winner         string // Empty when the turn cap was reached
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start()
	AddCandidate(weight float64)
	SetTies(ties int)
	Complete() SearchMetric
}

type collector struct {
	startTime  time.Time
	candidates atomic.Int32
	ties       atomic.Int32
	best       atomic.Uint64 // math.Float64bits of the best weight
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.candidates.Store(0)
	m.ties.Store(0)
	m.best.Store(math.Float64bits(math.Inf(-1)))
}

func (m *collector) AddCandidate(weight float64) {
	m.candidates.Add(1)
	for {
		old := m.best.Load()
		if weight <= math.Float64frombits(old) {
			return
		}
		if m.best.CompareAndSwap(old, math.Float64bits(weight)) {
			return
		}
	}
}

func (m *collector) SetTies(ties int) {
	m.ties.Store(int32(ties))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Duration:   time.Since(m.startTime),
		Candidates: int(m.candidates.Load()),
		Ties:       int(m.ties.Load()),
		BestWeight: math.Float64frombits(m.best.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                      {}
func (m *dummyCollector) AddCandidate(weight float64) {}
func (m *dummyCollector) SetTies(ties int)            {}
func (m *dummyCollector) Complete() SearchMetric      { return SearchMetric{} }
