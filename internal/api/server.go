// Package api provides the HTTP server and handlers for the filmography dashboard.
package api

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/listenupapp/filmography/internal/dataset"
	"github.com/listenupapp/filmography/internal/ratelimit"
	"github.com/listenupapp/filmography/internal/service"
)

// DatasetStats reports the state of the dataset cache.
type DatasetStats interface {
	Stats() dataset.CacheStats
}

// Services groups the dependencies the handlers need.
type Services struct {
	Dashboard *service.DashboardService
	Dataset   DatasetStats
	Watching  bool
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	router   *chi.Mux
	api      huma.API
	services *Services
	limiter  *ratelimit.KeyedRateLimiter
	pages    *template.Template
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
// A nil limiter disables rate limiting on chart and export routes.
func NewServer(services *Services, limiter *ratelimit.KeyedRateLimiter, logger *slog.Logger) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		services: services,
		limiter:  limiter,
		pages:    parseTemplates(),
		logger:   logger,
	}

	s.setupMiddleware()

	RegisterErrorHandler()
	humaConfig := huma.DefaultConfig("Filmography API", "1.0.0")
	humaConfig.Info.Description = "Box-office gross by genre and year, filtered and reshaped."
	humaConfig.Transformers = append(humaConfig.Transformers, EnvelopeTransformer)
	s.api = humachi.New(s.router, humaConfig)

	s.registerRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// API exposes the huma API, mainly for tests.
func (s *Server) API() huma.API {
	return s.api
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))
}

// registerRoutes wires the page, image and download routes on chi and the JSON operations on huma.
func (s *Server) registerRoutes() {
	s.router.Get("/", s.handleDashboardPage)

	s.router.Group(func(r chi.Router) {
		if s.limiter != nil {
			r.Use(RateLimitMiddleware(s.limiter, s.logger))
		}
		r.Get("/charts/{kind}.svg", s.handleChart)
		r.Get("/export/data.csv", s.handleExportCSV)
		r.Get("/export/dashboard.xlsx", s.handleExportXLSX)
	})

	s.registerHealthRoutes()
	s.registerGenreRoutes()
	s.registerDashboardRoutes()
}
