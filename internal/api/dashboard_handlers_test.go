package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listenupapp/filmography/internal/domain"
	"github.com/listenupapp/filmography/internal/service"
)

func TestListGenres(t *testing.T) {
	api := humatest.Wrap(t, newTestServer(t, nil).API())

	resp := api.Get("/api/v1/genres")
	require.Equal(t, http.StatusOK, resp.Code)

	env := decodeEnvelope[service.GenreList](t, resp.Body.Bytes())
	assert.True(t, env.Success)
	assert.Equal(t, []string{"Action", "Comedy", "Drama", "Horror", "Western"}, env.Data.Genres)
	assert.Equal(t, []string{"Action", "Comedy", "Drama", "Horror"}, env.Data.Defaults)
	assert.Equal(t, domain.YearRange{From: 1986, To: 2016}, env.Data.Bounds)
	assert.Equal(t, domain.YearRange{From: 2000, To: 2016}, env.Data.Years)
}

func TestGetDashboard_DefaultSelection(t *testing.T) {
	api := humatest.Wrap(t, newTestServer(t, nil).API())

	resp := api.Get("/api/v1/dashboard")
	require.Equal(t, http.StatusOK, resp.Code)

	env := decodeEnvelope[domain.Dashboard](t, resp.Body.Bytes())
	dash := env.Data
	assert.Equal(t, []string{"Action", "Comedy", "Drama", "Horror"}, dash.Selection.Genres)
	assert.Equal(t, domain.YearRange{From: 2000, To: 2016}, dash.Selection.Years)

	// Action only has a 1999 row, outside the default years.
	assert.Len(t, dash.Filtered, 4)
	assert.Equal(t, []int{2010, 2001, 2000}, dash.Wide.Years)
	assert.Equal(t, []string{"Comedy", "Drama", "Horror"}, dash.Wide.Genres)
	assert.Equal(t, [][]float64{{0, 0, 30}, {0, 200, 0}, {50, 100, 0}}, dash.Wide.Cells)
	assert.Len(t, dash.Long, 9)

	gross, ok := dash.Summary.Column("gross")
	require.True(t, ok)
	assert.Equal(t, 4, gross.Count)
	assert.InDelta(t, 95.0, float64(gross.Mean), 1e-9)
}

func TestGetDashboard_ExplicitEmptySelection(t *testing.T) {
	api := humatest.Wrap(t, newTestServer(t, nil).API())

	resp := api.Get("/api/v1/dashboard?genre=")
	require.Equal(t, http.StatusOK, resp.Code)

	dash := decodeEnvelope[domain.Dashboard](t, resp.Body.Bytes()).Data
	assert.Empty(t, dash.Selection.Genres)
	assert.Empty(t, dash.Filtered)
	assert.Empty(t, dash.Wide.Genres)
	assert.Empty(t, dash.Wide.Years)
	assert.Empty(t, dash.Long)
}

func TestGetDashboard_GenreNamesResolveLoosely(t *testing.T) {
	api := humatest.Wrap(t, newTestServer(t, nil).API())

	resp := api.Get("/api/v1/dashboard?genre=drama&genre=HORROR&from=2000&to=2010")
	require.Equal(t, http.StatusOK, resp.Code)

	dash := decodeEnvelope[domain.Dashboard](t, resp.Body.Bytes()).Data
	assert.Equal(t, []string{"Drama", "Horror"}, dash.Selection.Genres)
	assert.Equal(t, []string{"Drama", "Horror"}, dash.Wide.Genres)
}

func TestGetDashboard_FromAfterToIsEmpty(t *testing.T) {
	api := humatest.Wrap(t, newTestServer(t, nil).API())

	resp := api.Get("/api/v1/dashboard?from=2010&to=2000")
	require.Equal(t, http.StatusOK, resp.Code)

	dash := decodeEnvelope[domain.Dashboard](t, resp.Body.Bytes()).Data
	assert.Empty(t, dash.Filtered)
	assert.Empty(t, dash.Long)
}

func TestGetDashboard_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		field string
	}{
		{"year before bounds", "/api/v1/dashboard?from=1900", "from"},
		{"year after bounds", "/api/v1/dashboard?to=2030", "to"},
		{"not a number", "/api/v1/dashboard/pivot?from=soon", "from"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := humatest.Wrap(t, newTestServer(t, nil).API())

			resp := api.Get(tt.path)
			require.Equal(t, http.StatusBadRequest, resp.Code)

			env := decodeEnvelope[any](t, resp.Body.Bytes())
			assert.False(t, env.Success)
			assert.Equal(t, "VALIDATION", env.Code)
			assert.Contains(t, env.Details, tt.field)
		})
	}
}

func TestGetPivot(t *testing.T) {
	api := humatest.Wrap(t, newTestServer(t, nil).API())

	resp := api.Get("/api/v1/dashboard/pivot?genre=Drama&from=2000&to=2001")
	require.Equal(t, http.StatusOK, resp.Code)

	wide := decodeEnvelope[domain.WideTable](t, resp.Body.Bytes()).Data
	assert.Equal(t, []int{2001, 2000}, wide.Years)
	assert.Equal(t, []string{"Drama"}, wide.Genres)
	assert.Equal(t, [][]float64{{200}, {100}}, wide.Cells)
}

func TestGetSummary(t *testing.T) {
	api := humatest.Wrap(t, newTestServer(t, nil).API())

	resp := api.Get("/api/v1/dashboard/summary?genre=Drama&genre=Comedy&from=2000&to=2001")
	require.Equal(t, http.StatusOK, resp.Code)

	var env struct {
		Data []struct {
			Column string   `json:"column"`
			Count  int      `json:"count"`
			Mean   *float64 `json:"mean"`
			Std    *float64 `json:"std"`
			Min    *float64 `json:"min"`
			Max    *float64 `json:"max"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &env))
	require.Len(t, env.Data, 2)

	gross := env.Data[1]
	assert.Equal(t, "gross", gross.Column)
	assert.Equal(t, 3, gross.Count)
	require.NotNil(t, gross.Min)
	require.NotNil(t, gross.Max)
	assert.Equal(t, 50.0, *gross.Min)
	assert.Equal(t, 200.0, *gross.Max)
}

func TestGetSummary_EmptySelectionHasNullStats(t *testing.T) {
	api := humatest.Wrap(t, newTestServer(t, nil).API())

	resp := api.Get("/api/v1/dashboard/summary?genre=")
	require.Equal(t, http.StatusOK, resp.Code)

	assert.Contains(t, resp.Body.String(), `"count":0`)
	assert.Contains(t, resp.Body.String(), `"mean":null`)
}
