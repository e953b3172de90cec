package api

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/listenupapp/filmography/internal/chart"
	"github.com/listenupapp/filmography/internal/http/response"
	"github.com/listenupapp/filmography/internal/logger"
)

// handleChart renders one of the dashboard charts for the requested selection.
// GET /charts/{kind}.svg
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	kind, err := chart.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	dash, err := s.dashboardFromRequest(r)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	var buf bytes.Buffer
	opts := chart.Options{Palette: chart.NewPalette(dash.Selection.Genres)}
	if err := chart.Render(&buf, kind, dash.Long, opts); err != nil {
		s.logger.Error("Failed to render chart", "chart", kind, logger.Selection(dash.Selection), logger.Err(err))
		response.HandleError(w, err, s.logger)
		return
	}

	w.Header().Set("Content-Type", chart.ContentType)
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes()) //nolint:errcheck // client went away
}
