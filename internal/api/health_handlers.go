package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

// Component statuses.
const (
	statusHealthy   = "healthy"
	statusDegraded  = "degraded"
	statusUnhealthy = "unhealthy"
)

func (s *Server) registerHealthRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "healthCheck",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Returns server health status with component checks",
		Tags:        []string{"Health"},
	}, s.handleHealthCheck)
}

// ComponentHealth describes the health of a single component.
type ComponentHealth struct {
	Status  string `json:"status" doc:"Component status: healthy, degraded, or unhealthy"`
	Message string `json:"message,omitempty" doc:"Additional status information"`
}

// HealthResponse contains health check data in API responses.
type HealthResponse struct {
	Status     string                     `json:"status" doc:"Overall status: healthy, degraded, or unhealthy"`
	Components map[string]ComponentHealth `json:"components" doc:"Individual component statuses"`
}

// HealthOutput wraps the health response for Huma.
type HealthOutput struct {
	Body HealthResponse
}

func (s *Server) handleHealthCheck(_ context.Context, _ *struct{}) (*HealthOutput, error) {
	components := map[string]ComponentHealth{
		"dataset": s.checkDataset(),
		"watcher": s.checkWatcher(),
	}

	overall := statusHealthy
	for _, c := range components {
		switch {
		case c.Status == statusUnhealthy:
			overall = statusUnhealthy
		case c.Status == statusDegraded && overall == statusHealthy:
			overall = statusDegraded
		}
	}

	return &HealthOutput{
		Body: HealthResponse{
			Status:     overall,
			Components: components,
		},
	}, nil
}

// checkDataset reports whether a dataset is being served and whether the last reload worked.
func (s *Server) checkDataset() ComponentHealth {
	// Handle missing cache (e.g., in tests)
	if s.services == nil || s.services.Dataset == nil {
		return ComponentHealth{
			Status:  statusDegraded,
			Message: "dataset not configured",
		}
	}

	stats := s.services.Dataset.Stats()
	if !stats.Loaded {
		msg := "dataset not loaded"
		if stats.LastError != "" {
			msg = stats.LastError
		}
		return ComponentHealth{Status: statusUnhealthy, Message: msg}
	}

	summary := fmt.Sprintf("%d records, %d genres, loaded %s", stats.Records, stats.Genres, stats.LoadedAt.Format(time.RFC3339))
	if stats.LastError != "" {
		return ComponentHealth{
			Status:  statusDegraded,
			Message: "serving previous version: " + stats.LastError,
		}
	}

	return ComponentHealth{Status: statusHealthy, Message: summary}
}

func (s *Server) checkWatcher() ComponentHealth {
	if s.services == nil || !s.services.Watching {
		return ComponentHealth{Status: statusHealthy, Message: "disabled"}
	}
	return ComponentHealth{Status: statusHealthy, Message: "watching data file"}
}
