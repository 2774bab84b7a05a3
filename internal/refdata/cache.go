package refdata

import (
	"context"
	"log/slog"
	"sync"

	"github.com/openmun/swissref/internal/observability"
)

// cache is the shared lazy-load core behind the postal, municipality, and
// street caches. It loads the dataset once per process on first access,
// delegates index building to the owning cache, and never surfaces a load
// failure: a failed load is logged and the cache settles into the empty
// state, observably identical to an empty dataset.
type cache[R any] struct {
	name    string
	load    func(ctx context.Context) ([]R, error)
	index   func(records []R)
	drop    func()
	logger  *slog.Logger
	metrics *observability.Metrics

	// mu guards the whole lifecycle. It is held for the duration of the
	// load, so concurrent first access blocks on a single load instead of
	// racing or seeing half-built indices.
	mu      sync.Mutex
	status  Status
	records []R
}

func newCache[R any](
	name string,
	load func(ctx context.Context) ([]R, error),
	index func(records []R),
	drop func(),
	logger *slog.Logger,
	metrics *observability.Metrics,
) *cache[R] {
	return &cache[R]{
		name:    name,
		load:    load,
		index:   index,
		drop:    drop,
		logger:  logger,
		metrics: metrics,
	}
}

// ensureLocked performs the one-time load. Callers must hold c.mu.
func (c *cache[R]) ensureLocked(ctx context.Context) {
	if c.status.State != StateUnloaded {
		return
	}

	start := clock.Now()
	records, err := c.load(ctx)
	duration := clock.Since(start)

	if err != nil {
		c.logger.Warn("dataset load failed, dependent checks disabled",
			"dataset", c.name, "error", err, "duration", duration)
		c.metrics.DatasetLoads.WithLabelValues(c.name, "error").Inc()
		records = nil
	} else {
		c.logger.Info("dataset loaded",
			"dataset", c.name, "records", len(records), "duration", duration)
		c.metrics.DatasetLoads.WithLabelValues(c.name, "success").Inc()
	}
	c.metrics.DatasetLoadDuration.WithLabelValues(c.name).Observe(duration.Seconds())
	c.metrics.DatasetRecords.WithLabelValues(c.name).Set(float64(len(records)))

	c.records = records
	c.index(c.records)

	state := StateLoaded
	if len(records) == 0 {
		state = StateEmpty
	}
	c.status = Status{
		State:    state,
		Records:  len(records),
		LoadedAt: clock.Now(),
		Err:      err,
	}
}

// data returns all records, loading the dataset on first access. The
// returned slice is shared and must not be mutated.
func (c *cache[R]) data(ctx context.Context) []R {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureLocked(ctx)
	return c.records
}

// available forces the lazy load and reports whether the cache holds records.
func (c *cache[R]) available(ctx context.Context) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureLocked(ctx)
	return c.status.State == StateLoaded
}

// currentStatus forces the lazy load and returns the load outcome.
func (c *cache[R]) currentStatus(ctx context.Context) Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureLocked(ctx)
	return c.status
}

// clear resets the cache to the unloaded state so the next access reloads
// from the source. Test-only; not safe concurrently with readers.
func (c *cache[R]) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = nil
	c.status = Status{}
	c.drop()
}
