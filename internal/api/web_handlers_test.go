package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listenupapp/filmography/internal/domain"
	"github.com/listenupapp/filmography/internal/ratelimit"
)

func TestDashboardPage_DefaultSelection(t *testing.T) {
	s := newTestServer(t, nil)

	rec := get(t, s, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "<title>Filmography Dataset</title>")
	assert.Contains(t, body, "The Movie Database (TMDB)")
	assert.Contains(t, body, `id="pivot"`)
	assert.Contains(t, body, `id="genre-drama" name="genre" value="Drama" checked`)
	assert.Contains(t, body, `id="genre-western" name="genre" value="Western">`)
	assert.Contains(t, body, "<td>200</td>")
	for _, kind := range []string{"line", "bar", "bubble"} {
		assert.Contains(t, body, `id="chart-`+kind+`" src="/charts/`+kind+`.svg?`)
	}
	assert.Contains(t, body, "/export/dashboard.xlsx?")
}

func TestDashboardPage_EmptySelection(t *testing.T) {
	s := newTestServer(t, nil)

	rec := get(t, s, "/?genre=&from=2000&to=2016")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "No data for the current selection.")
	assert.NotContains(t, body, `id="pivot"`)
	assert.NotContains(t, body, " checked")
}

func TestDashboardPage_ValidationError(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		wantMsg string
	}{
		{"not a number", "/?from=soon", "must be a whole number"},
		{"before bounds", "/?from=1900", "must be greater than or equal to 1986"},
		{"after bounds", "/?to=2017", "must be less than or equal to 2016"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, newTestServer(t, nil), tt.target)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
			assert.Contains(t, rec.Body.String(), tt.wantMsg)
		})
	}
}

func TestChart_ContentType(t *testing.T) {
	s := newTestServer(t, nil)

	for _, kind := range []string{"line", "bar", "bubble"} {
		t.Run(kind, func(t *testing.T) {
			rec := get(t, s, "/charts/"+kind+".svg?genre=Drama&genre=Comedy&from=2000&to=2001")

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), "<svg")
		})
	}
}

func TestChart_SingleYear(t *testing.T) {
	s := newTestServer(t, nil)

	for _, kind := range []string{"line", "bar", "bubble"} {
		t.Run(kind, func(t *testing.T) {
			rec := get(t, s, "/charts/"+kind+".svg?genre=Horror&genre=Western&from=2010&to=2010")

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.NotContains(t, rec.Body.String(), "No data for the current selection")
		})
	}
}

func TestChart_EmptySelectionIsPlaceholder(t *testing.T) {
	rec := get(t, newTestServer(t, nil), "/charts/line.svg?genre=")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No data for the current selection")
}

func TestChart_Errors(t *testing.T) {
	s := newTestServer(t, nil)

	rec := get(t, s, "/charts/pie.svg")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeEnvelope[any](t, rec.Body.Bytes()).Code)

	rec = get(t, s, "/charts/bar.svg?to=1985")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope[any](t, rec.Body.Bytes())
	assert.Equal(t, "VALIDATION", env.Code)
	assert.Contains(t, env.Details, "to")
}

func TestExportCSV(t *testing.T) {
	rec := get(t, newTestServer(t, nil), "/export/data.csv?genre=Drama&from=2000&to=2001")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="movies_genres_long.csv"`, rec.Header().Get("Content-Disposition"))

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "year,genre,gross", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "2001,Drama,200"))
	assert.True(t, strings.HasPrefix(lines[2], "2000,Drama,100"))
}

func TestExportXLSX(t *testing.T) {
	rec := get(t, newTestServer(t, nil), "/export/dashboard.xlsx")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "PK"), "xlsx is a zip archive")
}

func TestRateLimit_ChartsAndExports(t *testing.T) {
	limiter := ratelimit.New(0.001, 1)
	t.Cleanup(limiter.Stop)
	s := newTestServer(t, limiter)

	first := get(t, s, "/charts/line.svg")
	require.Equal(t, http.StatusOK, first.Code)

	second := get(t, s, "/export/data.csv")
	require.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "RATE_LIMITED", decodeEnvelope[any](t, second.Body.Bytes()).Code)

	// The page itself is not limited.
	assert.Equal(t, http.StatusOK, get(t, s, "/").Code)
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"remote addr", nil, "10.0.0.1:5000", "10.0.0.1"},
		{"ipv6 remote addr", nil, "[::1]:5000", "::1"},
		{"forwarded for chain", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}, "10.0.0.1:5000", "203.0.113.7"},
		{"real ip", map[string]string{"X-Real-IP": "198.51.100.2"}, "10.0.0.1:5000", "198.51.100.2"},
		{"no port", nil, "10.0.0.9", "10.0.0.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			assert.Equal(t, tt.want, getClientIP(req))
		})
	}
}

func TestSelectionQuery_RoundTrip(t *testing.T) {
	defaults := domain.DefaultYearRange()

	tests := []struct {
		name string
		sel  domain.Selection
		want string
	}{
		{
			name: "genres",
			sel:  domain.NewSelection([]string{"Drama", "Science Fiction"}, domain.YearRange{From: 1990, To: 1995}),
			want: "from=1990&genre=Drama&genre=Science+Fiction&to=1995",
		},
		{
			name: "empty selection",
			sel:  domain.NewSelection(nil, defaults),
			want: "from=2000&genre=&to=2016",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := selectionQuery(tt.sel)
			assert.Equal(t, tt.want, encoded)

			req := httptest.NewRequest(http.MethodGet, "/?"+encoded, nil)
			q, err := parseDashboardQuery(req, defaults)
			require.NoError(t, err)

			assert.True(t, q.GenresSet)
			assert.Equal(t, tt.sel.Years.From, q.From)
			assert.Equal(t, tt.sel.Years.To, q.To)
			assert.Equal(t, tt.sel.Genres, domain.NewSelection(q.Genres, defaults).Genres)
		})
	}
}

func TestParseDashboardQuery_Defaults(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	q, err := parseDashboardQuery(req, domain.DefaultYearRange())
	require.NoError(t, err)

	assert.False(t, q.GenresSet)
	assert.Equal(t, 2000, q.From)
	assert.Equal(t, 2016, q.To)
}
