package validation_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/listenupapp/filmography/internal/errors"
	"github.com/listenupapp/filmography/internal/validation"
)

type rangeQuery struct {
	Genres []string `query:"genre" validate:"dive,min=1,max=64"`
	From   int      `query:"from" validate:"gte=1986,lte=2016"`
	To     int      `json:"to" validate:"gte=1986,lte=2016"`
	Seen   bool     `query:"-"`
}

func TestValidator_ValidateSuccess(t *testing.T) {
	v := validation.New()

	err := v.Validate(rangeQuery{Genres: []string{"Drama"}, From: 2000, To: 2016})
	assert.NoError(t, err)
}

func TestValidator_ValidateErrors(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name      string
		req       rangeQuery
		wantField string
		wantMsg   string
	}{
		{
			name:      "year below range",
			req:       rangeQuery{From: 1950, To: 2000},
			wantField: "from",
			wantMsg:   "must be greater than or equal to 1986",
		},
		{
			name:      "year above range",
			req:       rangeQuery{From: 2000, To: 2030},
			wantField: "to",
			wantMsg:   "must be less than or equal to 2016",
		},
		{
			name:      "empty genre label",
			req:       rangeQuery{Genres: []string{""}, From: 2000, To: 2000},
			wantField: "genre[0]",
			wantMsg:   "must be at least 1 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			require.Error(t, err)

			var domainErr *domainerrors.Error
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus())

			details, ok := domainErr.Details.(map[string]string)
			require.True(t, ok)
			assert.Equal(t, tt.wantMsg, details[tt.wantField])
		})
	}
}

func TestValidator_ReportsAllFields(t *testing.T) {
	v := validation.New()

	err := v.Validate(rangeQuery{From: 1900, To: 3000})
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)

	details := domainErr.Details.(map[string]string)
	assert.Len(t, details, 2)
	assert.Contains(t, details, "from")
	assert.Contains(t, details, "to")
	assert.NotContains(t, details, "From")
}
