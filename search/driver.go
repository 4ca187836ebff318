// Package search drives an exhaustive tabulation of a ruleset's
// positions: for each one, it computes the canonical short-game value,
// temperature, thermograph, and stops, memoizing by position
// fingerprint and sharding the outer enumeration across worker
// goroutines.
package search

import (
	"context"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"cgt/cache"
	"cgt/dyadic"
	"cgt/game"
	"cgt/metrics"
	"cgt/ruleset"
	"cgt/thermo"
)

// Record is one line of persisted search output: a position together
// with its value-theoretic invariants.
type Record struct {
	Position      string               `json:"position"`
	CanonicalForm string               `json:"canonical_form"`
	Temperature   dyadic.Number        `json:"temperature"`
	LeftStop      dyadic.Number        `json:"left_stop"`
	RightStop     dyadic.Number        `json:"right_stop"`
	Mean          dyadic.Number        `json:"mean"`
	Thermograph   []thermo.Breakpoint  `json:"thermograph,omitempty"`
}

// ProgressFunc is called periodically with the number of positions
// processed so far and the total queued for the run (0 if unknown).
type ProgressFunc func(processed, total int)

// Option configures a Driver.
type Option func(*config)

type config struct {
	workers         int
	progress        ProgressFunc
	withThermograph bool
	metrics         metrics.Collector
	shards          int
}

// WithWorkers sets how many goroutines shard the outer position
// enumeration. The default is 1 (sequential).
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithProgress registers a callback invoked after every position is
// recorded.
func WithProgress(fn ProgressFunc) Option {
	return func(c *config) {
		c.progress = fn
	}
}

// WithThermograph requests that Record.Thermograph be populated. It is
// omitted by default since most callers only need temperature/stops.
func WithThermograph() Option {
	return func(c *config) { c.withThermograph = true }
}

// WithMetrics attaches a metrics.Collector to the run. The default is
// metrics.NewDummyCollector().
func WithMetrics(m metrics.Collector) Option {
	return func(c *config) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithCacheShards sets the shard count of the position value cache.
func WithCacheShards(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.shards = n
		}
	}
}

type fingerprintKey string

func (k fingerprintKey) String() string { return string(k) }

// Driver tabulates canonical values for an enumeration of positions
// drawn from a single ruleset.
type Driver[P ruleset.Position] struct {
	rules   ruleset.Ruleset[P]
	cfg     config
	cache   *cache.Interner[fingerprintKey, game.Value]
	cancel  atomic.Bool
}

// NewDriver constructs a Driver over rules with the given options.
func NewDriver[P ruleset.Position](rules ruleset.Ruleset[P], opts ...Option) *Driver[P] {
	cfg := config{workers: 1, metrics: metrics.NewDummyCollector(), shards: 32}
	for _, opt := range opts {
		opt(&cfg)
	}
	var cacheOpts []cache.Option
	if cfg.shards > 0 {
		cacheOpts = append(cacheOpts, cache.WithShards(cfg.shards))
	}
	return &Driver[P]{
		rules: rules,
		cfg:   cfg,
		cache: cache.New[fingerprintKey, game.Value](cacheOpts...),
	}
}

// Cancel requests that a running Run stop after its in-flight position
// records complete. Safe to call from another goroutine.
func (d *Driver[P]) Cancel() { d.cancel.Store(true) }

// ValueOf computes the canonical short-game value of pos: canonicalize,
// decompose into independent components if the ruleset supports it,
// recursively resolve each component's value via the position cache,
// and sum them.
func (d *Driver[P]) ValueOf(pos P) game.Value {
	pos = d.rules.CanonicalForm(pos)

	if decomposable, ok := d.rules.(ruleset.Decomposable[P]); ok {
		if parts := decomposable.Decompose(pos); len(parts) > 0 {
			d.cfg.metrics.AddDecomposition()
			sum := game.Zero()
			for _, part := range parts {
				sum = game.Add(sum, d.ValueOf(part))
			}
			return sum
		}
	}

	key := fingerprintKey(pos.Fingerprint())
	if _, ok := d.cache.Lookup(key); ok {
		d.cfg.metrics.AddCacheHit()
	} else {
		d.cfg.metrics.AddCacheMiss()
	}
	_, value := d.cache.Intern(key, func() game.Value {
		return d.computeValue(pos)
	})
	return value
}

func (d *Driver[P]) computeValue(pos P) game.Value {
	leftMoves := d.rules.Moves(pos, ruleset.Left)
	rightMoves := d.rules.Moves(pos, ruleset.Right)

	left := make([]game.Value, len(leftMoves))
	for i, m := range leftMoves {
		left[i] = d.ValueOf(m)
	}
	right := make([]game.Value, len(rightMoves))
	for i, m := range rightMoves {
		right[i] = d.ValueOf(m)
	}
	return game.FromOptions(left, right)
}

// record builds the persisted Record for pos's already-resolved value.
func (d *Driver[P]) record(pos P, value game.Value) Record {
	rec := Record{
		Position:      pos.Fingerprint(),
		CanonicalForm: value.String(),
		Temperature:   thermo.Temperature(value),
		LeftStop:      thermo.LeftStop(value),
		RightStop:     thermo.RightStop(value),
		Mean:          thermo.Mean(value),
	}
	if d.cfg.withThermograph {
		left, right := thermo.Of(value).Breakpoints()
		rec.Thermograph = append(left, right...)
	}
	return rec
}

// Run tabulates positions, calling emit for each completed Record.
// emit may be called concurrently when WithWorkers(n) with n>1 is set;
// it must be safe for concurrent use. Run returns ctx.Err() if the
// context is cancelled, after all in-flight records complete. A run
// stopped early by Cancel returns nil, as does a clean run to
// exhaustion.
func (d *Driver[P]) Run(ctx context.Context, positions []P, emit func(Record)) error {
	total := len(positions)
	var processed atomic.Int64
	d.cfg.metrics.Start(d.cfg.workers)
	log.Info().Int("positions", total).Int("workers", d.cfg.workers).Msg("search run starting")

	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan P)

	g.Go(func() error {
		defer close(jobs)
		for _, pos := range positions {
			if d.cancel.Load() || gctx.Err() != nil {
				return nil
			}
			select {
			case jobs <- pos:
			case <-gctx.Done():
				return nil
			}
		}
		return nil
	})

	workers := d.cfg.workers
	if workers < 1 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for pos := range jobs {
				d.cfg.metrics.AddPosition()
				value := d.ValueOf(pos)
				emit(d.record(pos, value))
				n := int(processed.Add(1))
				if d.cfg.progress != nil {
					d.cfg.progress(n, total)
				}
			}
			return nil
		})
	}

	err := g.Wait()
	d.cfg.metrics.SetCancelled(d.cancel.Load() || (err == nil && ctx.Err() != nil))
	metric := d.cfg.metrics.Complete()
	log.Debug().
		Int("processed", int(processed.Load())).
		Int("cache_stats_size", d.cache.Stats().Size).
		Dur("elapsed", metric.Duration).
		Msg("search run finished")
	if d.cancel.Load() {
		return nil
	}
	if err == nil {
		err = ctx.Err()
	}
	return err
}
