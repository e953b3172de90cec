package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/listenupapp/filmography/internal/config"
	"github.com/listenupapp/filmography/internal/dataset"
	"github.com/listenupapp/filmography/internal/logger"
	"github.com/listenupapp/filmography/internal/service"
)

// ProvideDatasetCache provides the dataset cache, loaded eagerly.
// A file that cannot be read or parsed fails the provider.
func ProvideDatasetCache(i do.Injector) (*dataset.Cache, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	dsLog := log.Component("dataset")
	load := dataset.FileLoader(cfg.Data.Path, dataset.Options{Delimiter: cfg.Data.Delimiter}, dsLog)
	cache := dataset.NewCache(load, dsLog)

	if err := cache.Warm(context.Background()); err != nil {
		log.Error("Failed to load dataset", "path", cfg.Data.Path, logger.Err(err))
		return nil, err
	}

	return cache, nil
}

// ProvideDashboardService provides the dashboard use cases.
func ProvideDashboardService(i do.Injector) (*service.DashboardService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	cache := do.MustInvoke[*dataset.Cache](i)

	return service.NewDashboardService(cache, service.Defaults{
		Genres: cfg.Dashboard.DefaultGenres,
		Years:  cfg.Dashboard.DefaultYears,
	}, log.Component("dashboard")), nil
}
