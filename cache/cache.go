// Package cache implements the process-wide value interner: a
// sharded, thread-safe, append-only store mapping
// structural keys to stable integer handles. It also provides a small
// bounded LRU wrapper for the secondary operation caches (add/leq/neg)
// that memoize expensive recursive computations keyed on operand handles.
package cache

import (
	"hash/maphash"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Handle is a stable, append-only-assigned index into an Interner. Two
// equal keys always resolve to the same handle; handles are never
// invalidated.
type Handle int32

const defaultShardCount = 32

// Key is the constraint on Interner keys: comparable (so they can live in
// a Go map) and self-describing via String, which doubles as the byte
// representation hashed to pick a shard.
type Key interface {
	comparable
	String() string
}

// Interner is a process-wide intern table. Concurrent Intern calls on the
// same key resolve to one winner; losing callers' freshly-built values are
// discarded in favor of the winner's. There is no eviction: memory is
// traded for determinism and O(1) equality-by-handle.
type Interner[K Key, V any] struct {
	seed   maphash.Seed
	shards []*shard[K]

	valuesMu sync.RWMutex
	values   []V
}

type shard[K Key] struct {
	mu    sync.RWMutex
	index map[K]Handle
}

// Option configures an Interner.
type Option func(*config)

type config struct {
	shardCount int
}

// WithShards sets the number of shards used to partition the key space.
// More shards reduce lock contention under heavy concurrent Intern use at
// the cost of a little extra bookkeeping memory.
func WithShards(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.shardCount = n
		}
	}
}

// New creates an empty Interner.
func New[K Key, V any](opts ...Option) *Interner[K, V] {
	cfg := config{shardCount: defaultShardCount}
	for _, opt := range opts {
		opt(&cfg)
	}

	shards := make([]*shard[K], cfg.shardCount)
	for i := range shards {
		shards[i] = &shard[K]{index: make(map[K]Handle)}
	}
	return &Interner[K, V]{
		seed:   maphash.MakeSeed(),
		shards: shards,
	}
}

func (in *Interner[K, V]) shardFor(key K) *shard[K] {
	var h maphash.Hash
	h.SetSeed(in.seed)
	_, _ = h.WriteString(key.String())
	return in.shards[h.Sum64()%uint64(len(in.shards))]
}

// Intern returns the handle for key, calling build to construct the value
// only when key has not been seen before. If two goroutines race to
// intern the same key, both may call build, but only one value survives:
// the other is discarded and its caller receives the winner's handle and
// value instead.
func (in *Interner[K, V]) Intern(key K, build func() V) (Handle, V) {
	sh := in.shardFor(key)

	sh.mu.RLock()
	if h, ok := sh.index[key]; ok {
		sh.mu.RUnlock()
		return h, in.at(h)
	}
	sh.mu.RUnlock()

	candidate := build()

	sh.mu.Lock()
	if h, ok := sh.index[key]; ok {
		sh.mu.Unlock()
		return h, in.at(h)
	}
	h := in.push(candidate)
	sh.index[key] = h
	sh.mu.Unlock()
	return h, candidate
}

// Lookup returns the handle for key without constructing anything, if
// already interned.
func (in *Interner[K, V]) Lookup(key K) (Handle, bool) {
	sh := in.shardFor(key)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	h, ok := sh.index[key]
	return h, ok
}

// At returns the value for a previously issued handle.
func (in *Interner[K, V]) At(h Handle) V { return in.at(h) }

func (in *Interner[K, V]) at(h Handle) V {
	in.valuesMu.RLock()
	defer in.valuesMu.RUnlock()
	return in.values[h]
}

func (in *Interner[K, V]) push(v V) Handle {
	in.valuesMu.Lock()
	defer in.valuesMu.Unlock()
	in.values = append(in.values, v)
	return Handle(len(in.values) - 1)
}

// Stats summarizes the interner's current occupancy, used for operational
// logging (see metrics.Collector).
type Stats struct {
	Size       int
	ShardLoads []int
}

// Stats reports the current size and per-shard load.
func (in *Interner[K, V]) Stats() Stats {
	loads := make([]int, len(in.shards))
	for i, sh := range in.shards {
		sh.mu.RLock()
		loads[i] = len(sh.index)
		sh.mu.RUnlock()
	}
	in.valuesMu.RLock()
	size := len(in.values)
	in.valuesMu.RUnlock()
	return Stats{Size: size, ShardLoads: loads}
}

// PairCache is a bounded LRU memoizing a binary operation over operand
// handles (addition, order comparison, negation). Unlike Interner, it
// is allowed to evict: it is pure memoization, not identity.
type PairCache[V any] struct {
	inner *lru.Cache[[2]Handle, V]
}

// NewPairCache creates a PairCache holding at most size entries.
func NewPairCache[V any](size int) *PairCache[V] {
	c, err := lru.New[[2]Handle, V](size)
	if err != nil {
		panic(err)
	}
	return &PairCache[V]{inner: c}
}

// Get returns the memoized result for (a,b), if present.
func (c *PairCache[V]) Get(a, b Handle) (V, bool) {
	return c.inner.Get([2]Handle{a, b})
}

// Put memoizes the result for (a,b).
func (c *PairCache[V]) Put(a, b Handle, v V) {
	c.inner.Add([2]Handle{a, b}, v)
}
