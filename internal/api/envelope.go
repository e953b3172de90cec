package api

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/listenupapp/filmography/internal/http/response"
)

// EnvelopeTransformer wraps every huma response body in the standard envelope,
// so JSON operations answer in the same shape as the hand-written handlers.
func EnvelopeTransformer(_ huma.Context, _ string, v any) (any, error) {
	switch body := v.(type) {
	case response.Envelope, *response.Envelope:
		return v, nil
	case *APIError:
		return response.Envelope{
			V:       response.Version,
			Success: false,
			Error:   body.Message,
			Code:    body.Code,
			Details: body.Details,
		}, nil
	default:
		return response.Envelope{
			V:       response.Version,
			Success: true,
			Data:    v,
		}, nil
	}
}
