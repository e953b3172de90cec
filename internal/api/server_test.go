package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listenupapp/filmography/internal/dataset"
	"github.com/listenupapp/filmography/internal/domain"
	"github.com/listenupapp/filmography/internal/logger"
	"github.com/listenupapp/filmography/internal/ratelimit"
	"github.com/listenupapp/filmography/internal/service"
)

// testRecords covers four of the default genres, one year outside the default range and one extra genre.
var testRecords = []domain.MovieGenreRecord{
	{Year: 2000, Genre: "Drama", Gross: 100},
	{Year: 2000, Genre: "Comedy", Gross: 50},
	{Year: 2001, Genre: "Drama", Gross: 200},
	{Year: 1999, Genre: "Action", Gross: 70},
	{Year: 2010, Genre: "Horror", Gross: 30},
	{Year: 2010, Genre: "Western", Gross: 5},
}

// testEnvelope is the generic envelope for decoding responses in tests.
type testEnvelope[T any] struct {
	V       int               `json:"v"`
	Success bool              `json:"success"`
	Data    T                 `json:"data"`
	Error   string            `json:"error"`
	Code    string            `json:"code"`
	Details map[string]string `json:"details"`
}

func decodeEnvelope[T any](t *testing.T, body []byte) testEnvelope[T] {
	t.Helper()
	var env testEnvelope[T]
	require.NoError(t, json.Unmarshal(body, &env), "body: %s", body)
	return env
}

// newTestServer builds a server over testRecords with a warmed cache.
func newTestServer(t *testing.T, limiter *ratelimit.KeyedRateLimiter) *Server {
	t.Helper()

	log := logger.Discard().Logger
	cache := dataset.NewCache(func(context.Context) (*domain.Dataset, error) {
		return domain.NewDataset(testRecords, "test.csv", time.Now()), nil
	}, log)
	require.NoError(t, cache.Warm(context.Background()))

	dashboard := service.NewDashboardService(cache, service.Defaults{
		Genres: domain.DefaultGenres,
		Years:  domain.DefaultYearRange(),
	}, log)

	return NewServer(&Services{Dashboard: dashboard, Dataset: cache, Watching: true}, limiter, log)
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t, nil)
	api := humatest.Wrap(t, s.API())

	resp := api.Get("/health")
	require.Equal(t, http.StatusOK, resp.Code)

	env := decodeEnvelope[HealthResponse](t, resp.Body.Bytes())
	assert.Equal(t, 1, env.V)
	assert.True(t, env.Success)
	assert.Equal(t, "healthy", env.Data.Status)
	assert.Equal(t, "healthy", env.Data.Components["dataset"].Status)
	assert.Contains(t, env.Data.Components["dataset"].Message, "6 records, 5 genres")
	assert.Equal(t, "watching data file", env.Data.Components["watcher"].Message)
}

func TestHealthCheck_NoDataset(t *testing.T) {
	s := &Server{}

	out, err := s.handleHealthCheck(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, "degraded", out.Body.Status)
	assert.Equal(t, "dataset not configured", out.Body.Components["dataset"].Message)
}

type stubStats dataset.CacheStats

func (s stubStats) Stats() dataset.CacheStats { return dataset.CacheStats(s) }

func TestCheckDataset(t *testing.T) {
	tests := []struct {
		name       string
		stats      dataset.CacheStats
		wantStatus string
		wantMsg    string
	}{
		{
			name:       "never loaded",
			stats:      dataset.CacheStats{LastError: "missing column(s): gross"},
			wantStatus: "unhealthy",
			wantMsg:    "missing column(s): gross",
		},
		{
			name:       "reload failed",
			stats:      dataset.CacheStats{Loaded: true, Records: 10, LastError: "line 4: bad gross"},
			wantStatus: "degraded",
			wantMsg:    "serving previous version: line 4: bad gross",
		},
		{
			name:       "loaded",
			stats:      dataset.CacheStats{Loaded: true, Records: 10, Genres: 2},
			wantStatus: "healthy",
			wantMsg:    "10 records, 2 genres",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Server{services: &Services{Dataset: stubStats(tt.stats)}}

			got := s.checkDataset()

			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Contains(t, got.Message, tt.wantMsg)
		})
	}
}

func TestCORS_Preflight(t *testing.T) {
	s := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/genres", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
