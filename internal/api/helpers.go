package api

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/listenupapp/filmography/internal/domain"
	domainerrors "github.com/listenupapp/filmography/internal/errors"
	"github.com/listenupapp/filmography/internal/service"
)

// parseDashboardQuery reads the selection from the query string of page, chart and export requests.
// Absent years fall back to defaults; range checks are left to the service validator.
func parseDashboardQuery(r *http.Request, defaults domain.YearRange) (service.DashboardQuery, error) {
	values := r.URL.Query()

	genres, set := values["genre"]
	q := service.DashboardQuery{
		Genres:    genres,
		GenresSet: set,
		From:      defaults.From,
		To:        defaults.To,
	}

	details := make(map[string]string)
	for _, p := range []struct {
		name string
		dst  *int
	}{
		{"from", &q.From},
		{"to", &q.To},
	} {
		raw := strings.TrimSpace(values.Get(p.name))
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			details[p.name] = "must be a whole number"
			continue
		}
		*p.dst = n
	}

	if len(details) > 0 {
		return q, domainerrors.ValidationWithDetails("validation failed", details)
	}
	return q, nil
}

// selectionQuery encodes sel so that it parses back to the same selection.
// An empty genre list is sent as a single blank value to keep it apart from "use the defaults".
func selectionQuery(sel domain.Selection) string {
	values := url.Values{}
	if len(sel.Genres) == 0 {
		values.Set("genre", "")
	} else {
		values["genre"] = sel.Genres
	}
	values.Set("from", strconv.Itoa(sel.Years.From))
	values.Set("to", strconv.Itoa(sel.Years.To))
	return values.Encode()
}

// dashboardFromRequest parses, validates and builds the dashboard for a chi route.
func (s *Server) dashboardFromRequest(r *http.Request) (*domain.Dashboard, error) {
	q, err := parseDashboardQuery(r, s.services.Dashboard.DefaultYears())
	if err != nil {
		return nil, err
	}
	return s.buildDashboard(r.Context(), q)
}
