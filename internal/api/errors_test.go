package api

import (
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/listenupapp/filmography/internal/errors"
	"github.com/listenupapp/filmography/internal/http/response"
)

func TestRegisterErrorHandler(t *testing.T) {
	RegisterErrorHandler()

	tests := []struct {
		name       string
		err        huma.StatusError
		wantStatus int
		wantCode   string
	}{
		{
			name:       "domain error keeps its code",
			err:        huma.NewError(http.StatusInternalServerError, "unexpected error occurred", domainerrors.NotFound("no such chart")),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "unprocessable becomes bad request",
			err:        huma.NewError(http.StatusUnprocessableEntity, "validation failed", &huma.ErrorDetail{Location: "query.from", Message: "expected number >= 1986"}),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION",
		},
		{
			name:       "plain error is internal",
			err:        huma.NewError(http.StatusInternalServerError, "unexpected error occurred"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr, ok := tt.err.(*APIError)
			require.True(t, ok)
			assert.Equal(t, tt.wantStatus, apiErr.GetStatus())
			assert.Equal(t, tt.wantCode, apiErr.Code)
		})
	}
}

func TestFieldDetails(t *testing.T) {
	details := fieldDetails([]error{
		&huma.ErrorDetail{Location: "query.from", Message: "expected number >= 1986"},
		&huma.ErrorDetail{Location: "query.to", Message: "invalid integer"},
		domainerrors.Internal("ignored"),
	})

	assert.Equal(t, map[string]string{
		"from": "expected number >= 1986",
		"to":   "invalid integer",
	}, details)
	assert.Nil(t, fieldDetails(nil))
}

func TestEnvelopeTransformer(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		out, err := EnvelopeTransformer(nil, "200", map[string]int{"years": 3})
		require.NoError(t, err)

		env, ok := out.(response.Envelope)
		require.True(t, ok)
		assert.Equal(t, 1, env.V)
		assert.True(t, env.Success)
		assert.Equal(t, map[string]int{"years": 3}, env.Data)
	})

	t.Run("error", func(t *testing.T) {
		out, err := EnvelopeTransformer(nil, "400", &APIError{status: 400, Code: "VALIDATION", Message: "validation failed"})
		require.NoError(t, err)

		env, ok := out.(response.Envelope)
		require.True(t, ok)
		assert.False(t, env.Success)
		assert.Equal(t, "VALIDATION", env.Code)
		assert.Equal(t, "validation failed", env.Error)
		assert.Nil(t, env.Data)
	})
}
