package dataset

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/listenupapp/filmography/internal/domain"
	"github.com/listenupapp/filmography/internal/logger"
)

// LoadFunc produces a fresh Dataset.
type LoadFunc func(ctx context.Context) (*domain.Dataset, error)

// FileLoader returns a LoadFunc reading path with opts.
func FileLoader(path string, opts Options, log *slog.Logger) LoadFunc {
	return func(ctx context.Context) (*domain.Dataset, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		start := time.Now()
		ds, err := Load(path, opts)
		if err != nil {
			return nil, err
		}

		log.Info("dataset loaded", logger.Dataset(ds), logger.Since(start))
		return ds, nil
	}
}

// Cache memoizes the Dataset for the life of the process.
// The cached value is never mutated; Invalidate only marks it for reload.
type Cache struct {
	load   LoadFunc
	logger *slog.Logger
	group  singleflight.Group

	mu         sync.RWMutex
	current    *domain.Dataset
	stale      bool
	generation uint64
	lastErr    error
}

// CacheStats describes the cache for health reporting.
type CacheStats struct {
	Loaded     bool
	Source     string
	Records    int
	Genres     int
	LoadedAt   time.Time
	Generation uint64
	LastError  string
}

// NewCache creates an empty cache backed by load.
func NewCache(load LoadFunc, logger *slog.Logger) *Cache {
	return &Cache{
		load:   load,
		logger: logger,
	}
}

// Get returns the cached Dataset, loading it on first use or after Invalidate.
// Concurrent callers share a single load.
func (c *Cache) Get(ctx context.Context) (*domain.Dataset, error) {
	c.mu.RLock()
	ds, stale := c.current, c.stale
	c.mu.RUnlock()

	if ds != nil && !stale {
		return ds, nil
	}

	// The shared load outlives any single caller's cancellation.
	loadCtx := context.WithoutCancel(ctx)
	v, err, _ := c.group.Do("dataset", func() (any, error) {
		c.mu.RLock()
		ds, stale := c.current, c.stale
		c.mu.RUnlock()
		if ds != nil && !stale {
			return ds, nil
		}
		return c.reload(loadCtx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Dataset), nil
}

// Warm loads the dataset eagerly. A failure here means the dashboard cannot serve anything.
func (c *Cache) Warm(ctx context.Context) error {
	_, err := c.Get(ctx)
	return err
}

// Invalidate marks the cached Dataset stale; the next Get reloads it.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current != nil {
		c.stale = true
	}
}

// Stats reports the cache state.
func (c *Cache) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stats := CacheStats{Generation: c.generation}
	if c.lastErr != nil {
		stats.LastError = c.lastErr.Error()
	}
	if c.current != nil {
		stats.Loaded = true
		stats.Source = c.current.Source
		stats.Records = len(c.current.Records)
		stats.Genres = len(c.current.Genres)
		stats.LoadedAt = c.current.LoadedAt
	}
	return stats
}

func (c *Cache) reload(ctx context.Context) (*domain.Dataset, error) {
	ds, err := c.load(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.lastErr = err
		if c.current == nil {
			return nil, err
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			// Interrupted, not failed; the next Get retries.
			return c.current, nil
		}
		// Keep the last good dataset until the file changes again.
		c.stale = false
		c.logger.Error("dataset reload failed, keeping previous version",
			logger.Dataset(c.current),
			logger.Err(err),
			"generation", c.generation,
		)
		return c.current, nil
	}

	c.current = ds
	c.stale = false
	c.lastErr = nil
	c.generation++

	return ds, nil
}
