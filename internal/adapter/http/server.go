package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/climate-pulse/internal/domain"
	"github.com/couchcryptid/climate-pulse/internal/insight"
	"github.com/couchcryptid/climate-pulse/internal/observability"
)

// Analytics is the query surface served under /api/v1.
type Analytics interface {
	sharedobs.ReadinessChecker

	Temperature() (insight.TemperatureView, error)
	SeaLevel() (insight.SeaLevelView, error)
	Countries() (insight.CountriesView, error)
	Emissions(country string) (insight.EmissionsView, error)
	Compare(countries []string) (insight.ComparisonView, error)
	Project(ctx context.Context, scenario domain.Scenario, targetYear int) (insight.ProjectionView, error)
	Vulnerability(level domain.ImpactLevel) (insight.VulnerabilityView, error)
	Profile(country string) insight.ProfileView
	Footprint(in domain.FootprintInput, country string) (insight.FootprintView, error)
}

// Server exposes the JSON API plus health, readiness, and metrics endpoints.
type Server struct {
	httpServer *http.Server
	analytics  Analytics
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewServer creates an HTTP server with the API, /healthz, /readyz, and /metrics routes.
func NewServer(addr string, analytics Analytics, metrics *observability.Metrics, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		analytics: analytics,
		metrics:   metrics,
		logger:    logger,
	}

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(analytics))
	mux.Handle("GET /metrics", promhttp.Handler())

	s.route(mux, "GET /api/v1/temperature", s.handleTemperature)
	s.route(mux, "GET /api/v1/sea-level", s.handleSeaLevel)
	s.route(mux, "GET /api/v1/emissions/countries", s.handleCountries)
	s.route(mux, "GET /api/v1/emissions/compare", s.handleCompare)
	s.route(mux, "GET /api/v1/emissions/{country}", s.handleEmissions)
	s.route(mux, "GET /api/v1/projections", s.handleProjection)
	s.route(mux, "GET /api/v1/regions/vulnerability", s.handleVulnerability)
	s.route(mux, "GET /api/v1/countries/{country}/profile", s.handleProfile)
	s.route(mux, "POST /api/v1/footprint", s.handleFootprint)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// route registers h under pattern, recording request count and latency
// labelled by the pattern rather than the raw path.
func (s *Server) route(mux *http.ServeMux, pattern string, h http.HandlerFunc) {
	mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		h(rec, r)

		s.metrics.HTTPRequests.WithLabelValues(pattern, strconv.Itoa(rec.status)).Inc()
		s.metrics.HTTPRequestDuration.WithLabelValues(pattern).Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
