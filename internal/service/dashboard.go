// Package service holds the dashboard's use cases on top of the cached dataset.
package service

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/listenupapp/filmography/internal/dataset"
	"github.com/listenupapp/filmography/internal/domain"
	"github.com/listenupapp/filmography/internal/genre"
	"github.com/listenupapp/filmography/internal/logger"
	"github.com/listenupapp/filmography/internal/reshape"
	"github.com/listenupapp/filmography/internal/validation"
)

// DatasetSource provides the current dataset.
type DatasetSource interface {
	Get(ctx context.Context) (*domain.Dataset, error)
}

// Defaults is the selection shown before the user changes any control.
type Defaults struct {
	Genres []string
	Years  domain.YearRange
}

// DashboardQuery is a selection as it arrives from a client.
type DashboardQuery struct {
	Genres []string `query:"genre" validate:"dive,max=100"`
	// GenresSet distinguishes "no genre parameter" (use the defaults) from an empty selection.
	GenresSet bool `query:"-"`
	From      int  `query:"from" validate:"gte=1986,lte=2016"`
	To        int  `query:"to" validate:"gte=1986,lte=2016"`
}

// DashboardService builds dashboards for selections.
type DashboardService struct {
	source    DatasetSource
	defaults  Defaults
	logger    *slog.Logger
	validator *validation.Validator
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(source DatasetSource, defaults Defaults, logger *slog.Logger) *DashboardService {
	return &DashboardService{
		source:    source,
		defaults:  defaults,
		logger:    logger,
		validator: validation.New(),
	}
}

// GenreList describes the genre control.
type GenreList struct {
	Genres   []string         `json:"genres"`
	Defaults []string         `json:"defaults"`
	Bounds   domain.YearRange `json:"bounds"`
	Years    domain.YearRange `json:"default_years"`
}

// Genres lists the distinct genres of the dataset alongside the default selection.
func (s *DashboardService) Genres(ctx context.Context) (*GenreList, error) {
	ds, err := s.source.Get(ctx)
	if err != nil {
		return nil, err
	}

	sorted := slices.Clone(ds.Genres)
	slices.Sort(sorted)

	return &GenreList{
		Genres:   sorted,
		Defaults: s.defaultGenres(ds),
		Bounds:   domain.YearRange{From: domain.MinYear, To: domain.MaxYear},
		Years:    s.defaults.Years,
	}, nil
}

// DefaultSelection returns the configured default genres present in the dataset and the default years.
func (s *DashboardService) DefaultSelection(ctx context.Context) (domain.Selection, error) {
	ds, err := s.source.Get(ctx)
	if err != nil {
		return domain.Selection{}, err
	}
	return domain.NewSelection(s.defaultGenres(ds), s.defaults.Years), nil
}

// DefaultYears returns the preselected year range.
func (s *DashboardService) DefaultYears() domain.YearRange {
	return s.defaults.Years
}

// Selection validates q and turns it into a Selection. Genre names are matched
// to dataset labels loosely, so "sci-fi" selects "Science Fiction".
func (s *DashboardService) Selection(ctx context.Context, q DashboardQuery) (domain.Selection, error) {
	if err := s.validator.Validate(q); err != nil {
		return domain.Selection{}, err
	}

	ds, err := s.source.Get(ctx)
	if err != nil {
		return domain.Selection{}, err
	}

	years := domain.YearRange{From: q.From, To: q.To}
	if !q.GenresSet {
		return domain.NewSelection(s.defaultGenres(ds), years), nil
	}
	return domain.NewSelection(genre.ResolveAll(q.Genres, ds.Genres), years), nil
}

// Build runs the reshape pipeline for sel over the current dataset.
func (s *DashboardService) Build(ctx context.Context, sel domain.Selection) (*domain.Dashboard, error) {
	ds, err := s.source.Get(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	dash, err := reshape.Run(ds.Records, sel)
	if err != nil {
		s.logger.Error("dashboard build failed", logger.Selection(sel), logger.Err(err))
		return nil, err
	}

	s.logger.Debug("dashboard built",
		logger.Selection(sel),
		"rows", len(dash.Filtered),
		"cells", len(dash.Long),
		logger.Since(start),
	)
	return dash, nil
}

func (s *DashboardService) defaultGenres(ds *domain.Dataset) []string {
	out := make([]string, 0, len(s.defaults.Genres))
	for _, g := range s.defaults.Genres {
		if ds.HasGenre(g) {
			out = append(out, g)
		}
	}
	return out
}

var _ DatasetSource = (*dataset.Cache)(nil)
