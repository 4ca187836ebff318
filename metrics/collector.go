// Package metrics instruments the search driver: positions visited,
// cache hits, decompositions applied, and wall time, following the
// teacher's Collector/dummyCollector pair exactly.
package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes a completed search run.
type SearchMetric struct {
	Workers          int
	Duration         time.Duration
	PositionsVisited int
	CacheHits        int
	CacheMisses      int
	Decompositions   int
	Cancelled        bool
}

// Collector accumulates per-run counters during a search.Driver run.
type Collector interface {
	Start(workers int)
	AddPosition()
	AddCacheHit()
	AddCacheMiss()
	AddDecomposition()
	SetCancelled(value bool)
	Complete() SearchMetric
}

type collector struct {
	workers        int
	startTime      time.Time
	positions      atomic.Int64
	cacheHits      atomic.Int64
	cacheMisses    atomic.Int64
	decompositions atomic.Int64
	cancelled      atomic.Bool
}

// NewCollector returns a Collector backed by atomic counters, safe for
// concurrent use by the search driver's worker goroutines.
func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(workers int) {
	c.startTime = time.Now()
	c.workers = workers
}

func (c *collector) AddPosition()      { c.positions.Add(1) }
func (c *collector) AddCacheHit()      { c.cacheHits.Add(1) }
func (c *collector) AddCacheMiss()     { c.cacheMisses.Add(1) }
func (c *collector) AddDecomposition() { c.decompositions.Add(1) }
func (c *collector) SetCancelled(value bool) {
	c.cancelled.Store(value)
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Workers:          c.workers,
		Duration:         time.Since(c.startTime),
		PositionsVisited: int(c.positions.Load()),
		CacheHits:        int(c.cacheHits.Load()),
		CacheMisses:      int(c.cacheMisses.Load()),
		Decompositions:   int(c.decompositions.Load()),
		Cancelled:        c.cancelled.Load(),
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a Collector whose methods are no-ops, the
// default when a caller does not need instrumentation.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (d *dummyCollector) Start(workers int)          {}
func (d *dummyCollector) AddPosition()               {}
func (d *dummyCollector) AddCacheHit()               {}
func (d *dummyCollector) AddCacheMiss()              {}
func (d *dummyCollector) AddDecomposition()          {}
func (d *dummyCollector) SetCancelled(value bool)    {}
func (d *dummyCollector) Complete() SearchMetric     { return SearchMetric{} }
