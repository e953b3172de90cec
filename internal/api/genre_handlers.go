package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/listenupapp/filmography/internal/service"
)

func (s *Server) registerGenreRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listGenres",
		Method:      http.MethodGet,
		Path:        "/api/v1/genres",
		Summary:     "List genres",
		Description: "Returns the distinct genres of the dataset, the default selection and the year bounds",
		Tags:        []string{"Genres"},
	}, s.handleListGenres)
}

// ListGenresOutput contains the genre control state.
type ListGenresOutput struct {
	Body *service.GenreList
}

func (s *Server) handleListGenres(ctx context.Context, _ *struct{}) (*ListGenresOutput, error) {
	genres, err := s.services.Dashboard.Genres(ctx)
	if err != nil {
		return nil, err
	}
	return &ListGenresOutput{Body: genres}, nil
}
