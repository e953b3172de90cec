// Package di provides dependency injection configuration for the dashboard server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/listenupapp/filmography/internal/config"
	"github.com/listenupapp/filmography/internal/dataset"
	"github.com/listenupapp/filmography/internal/di/providers"
	"github.com/listenupapp/filmography/internal/logger"
	"github.com/listenupapp/filmography/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
// args are the command-line flags, without the program name.
func NewContainer(args []string) *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig(args))
	do.Provide(injector, providers.ProvideLogger)

	// Data layer
	do.Provide(injector, providers.ProvideDatasetCache)
	do.Provide(injector, providers.ProvideDashboardService)

	// Workers
	do.Provide(injector, providers.ProvideDataWatcher)
	do.Provide(injector, providers.ProvideRateLimiter)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns the first error.
// A dataset that cannot be loaded stops the bootstrap here.
func Bootstrap(injector *do.RootScope) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	_ = do.MustInvoke[*logger.Logger](injector)

	if _, err := do.Invoke[*dataset.Cache](injector); err != nil {
		return err
	}
	_ = do.MustInvoke[*service.DashboardService](injector)

	// Workers
	if _, err := do.Invoke[*providers.DataWatcherHandle](injector); err != nil {
		return err
	}
	_ = do.MustInvoke[*providers.RateLimiterHandle](injector)

	// Server
	if _, err := do.Invoke[*providers.HTTPServerHandle](injector); err != nil {
		return err
	}

	return nil
}
