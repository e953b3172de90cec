package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/listenupapp/filmography/internal/config"
	"github.com/listenupapp/filmography/internal/dataset"
	"github.com/listenupapp/filmography/internal/logger"
	"github.com/listenupapp/filmography/internal/ratelimit"
	"github.com/listenupapp/filmography/internal/watcher"
)

// DataWatcherHandle wraps the data file watcher with shutdown capability.
// Watcher is nil when watching is disabled.
type DataWatcherHandle struct {
	*watcher.Watcher
	cancel context.CancelFunc
}

// Enabled reports whether the data file is being watched.
func (h *DataWatcherHandle) Enabled() bool {
	return h.Watcher != nil
}

// Shutdown implements do.Shutdownable.
func (h *DataWatcherHandle) Shutdown() error {
	if h.Watcher == nil {
		return nil
	}
	h.cancel()
	return h.Watcher.Stop()
}

// ProvideDataWatcher watches the data file and invalidates the dataset cache when it changes.
func ProvideDataWatcher(i do.Injector) (*DataWatcherHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	cache := do.MustInvoke[*dataset.Cache](i)

	if !cfg.Data.Watch {
		log.Info("Data file watching disabled by configuration")
		return &DataWatcherHandle{}, nil
	}

	w, err := watcher.New(log.Component("watcher"), watcher.Options{})
	if err != nil {
		return nil, err
	}

	if err := w.WatchFile(cfg.Data.Path); err != nil {
		w.Stop() //nolint:errcheck // already failing
		return nil, err
	}
	log.Info("Watching data file", "path", cfg.Data.Path)

	// Start in background
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		if err := w.Start(ctx); err != nil {
			log.Error("File watcher error", logger.Err(err))
		}
	}()

	go cache.Follow(ctx, w.Events())

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-w.Errors():
				if !ok {
					return
				}
				log.Warn("file watcher error", logger.Err(err))
			}
		}
	}()

	return &DataWatcherHandle{
		Watcher: w,
		cancel:  cancel,
	}, nil
}

// RateLimiterHandle wraps the chart and export rate limiter with shutdown capability.
type RateLimiterHandle struct {
	*ratelimit.KeyedRateLimiter
}

// Shutdown implements do.Shutdownable.
func (h *RateLimiterHandle) Shutdown() error {
	h.Stop()
	return nil
}

// ProvideRateLimiter provides the per-client limiter for chart and export routes.
func ProvideRateLimiter(i do.Injector) (*RateLimiterHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)

	rps, burst := ratelimit.PerMinute(cfg.Server.ChartRatePerMinute)
	return &RateLimiterHandle{KeyedRateLimiter: ratelimit.New(rps, burst)}, nil
}
