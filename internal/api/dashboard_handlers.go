package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/listenupapp/filmography/internal/domain"
	"github.com/listenupapp/filmography/internal/service"
)

func (s *Server) registerDashboardRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getDashboard",
		Method:      http.MethodGet,
		Path:        "/api/v1/dashboard",
		Summary:     "Get dashboard",
		Description: "Filters the dataset by genre and year range and returns the filtered rows, the pivot table, its long form and summary statistics",
		Tags:        []string{"Dashboard"},
	}, s.handleGetDashboard)

	huma.Register(s.api, huma.Operation{
		OperationID: "getPivot",
		Method:      http.MethodGet,
		Path:        "/api/v1/dashboard/pivot",
		Summary:     "Get pivot table",
		Description: "Returns the year by genre table of summed gross, newest year first",
		Tags:        []string{"Dashboard"},
	}, s.handleGetPivot)

	huma.Register(s.api, huma.Operation{
		OperationID: "getSummary",
		Method:      http.MethodGet,
		Path:        "/api/v1/dashboard/summary",
		Summary:     "Get summary statistics",
		Description: "Returns count, mean, standard deviation, quartiles and extremes of the filtered rows",
		Tags:        []string{"Dashboard"},
	}, s.handleGetSummary)
}

// DashboardInput is the selection as query parameters.
type DashboardInput struct {
	Genres []string `query:"genre,explode" doc:"Genre to include, repeatable. Omit for the default genres, send empty for none"`
	From   int      `query:"from" minimum:"1986" maximum:"2016" default:"2000" doc:"First year, inclusive"`
	To     int      `query:"to" minimum:"1986" maximum:"2016" default:"2016" doc:"Last year, inclusive"`

	genresSet bool
}

// Resolve records whether the genre parameter was sent at all.
func (i *DashboardInput) Resolve(ctx huma.Context) []error {
	u := ctx.URL()
	_, i.genresSet = u.Query()["genre"]
	return nil
}

func (i *DashboardInput) query() service.DashboardQuery {
	return service.DashboardQuery{
		Genres:    i.Genres,
		GenresSet: i.genresSet,
		From:      i.From,
		To:        i.To,
	}
}

// DashboardOutput contains every table derived from one selection.
type DashboardOutput struct {
	Body *domain.Dashboard
}

// PivotOutput contains the wide table.
type PivotOutput struct {
	Body domain.WideTable
}

// SummaryOutput contains the describe table.
type SummaryOutput struct {
	Body domain.Summary
}

func (s *Server) handleGetDashboard(ctx context.Context, input *DashboardInput) (*DashboardOutput, error) {
	dash, err := s.buildDashboard(ctx, input.query())
	if err != nil {
		return nil, err
	}
	return &DashboardOutput{Body: dash}, nil
}

func (s *Server) handleGetPivot(ctx context.Context, input *DashboardInput) (*PivotOutput, error) {
	dash, err := s.buildDashboard(ctx, input.query())
	if err != nil {
		return nil, err
	}
	return &PivotOutput{Body: dash.Wide}, nil
}

func (s *Server) handleGetSummary(ctx context.Context, input *DashboardInput) (*SummaryOutput, error) {
	dash, err := s.buildDashboard(ctx, input.query())
	if err != nil {
		return nil, err
	}
	return &SummaryOutput{Body: dash.Summary}, nil
}

// buildDashboard turns a query into a selection and runs the pipeline for it.
func (s *Server) buildDashboard(ctx context.Context, q service.DashboardQuery) (*domain.Dashboard, error) {
	sel, err := s.services.Dashboard.Selection(ctx, q)
	if err != nil {
		return nil, err
	}
	return s.services.Dashboard.Build(ctx, sel)
}
