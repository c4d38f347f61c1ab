package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/couchcryptid/climate-pulse/internal/domain"
	"github.com/couchcryptid/climate-pulse/internal/insight"
)

const maxBodyBytes = 1 << 16

func (s *Server) handleTemperature(w http.ResponseWriter, r *http.Request) {
	view, err := s.analytics.Temperature()
	s.respond(w, r, view, err)
}

func (s *Server) handleSeaLevel(w http.ResponseWriter, r *http.Request) {
	view, err := s.analytics.SeaLevel()
	s.respond(w, r, view, err)
}

func (s *Server) handleCountries(w http.ResponseWriter, r *http.Request) {
	view, err := s.analytics.Countries()
	s.respond(w, r, view, err)
}

func (s *Server) handleEmissions(w http.ResponseWriter, r *http.Request) {
	view, err := s.analytics.Emissions(r.PathValue("country"))
	s.respond(w, r, view, err)
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	view, err := s.analytics.Compare(r.URL.Query()["country"])
	s.respond(w, r, view, err)
}

func (s *Server) handleProjection(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	scenario, err := domain.ParseScenario(q.Get("scenario"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	targetYear, err := strconv.Atoi(q.Get("target_year"))
	if err != nil {
		s.writeError(w, r, fmt.Errorf("target_year %q: %w", q.Get("target_year"), insight.ErrInvalidRequest))
		return
	}

	view, err := s.analytics.Project(r.Context(), scenario, targetYear)
	s.respond(w, r, view, err)
}

func (s *Server) handleVulnerability(w http.ResponseWriter, r *http.Request) {
	level, err := domain.ParseImpactLevel(r.URL.Query().Get("impact"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	view, err := s.analytics.Vulnerability(level)
	s.respond(w, r, view, err)
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.analytics.Profile(r.PathValue("country")))
}

// footprintRequest is the calculator form. Country is optional.
type footprintRequest struct {
	domain.FootprintInput
	Country string `json:"country"`
}

func (s *Server) handleFootprint(w http.ResponseWriter, r *http.Request) {
	var req footprintRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, r, fmt.Errorf("decode footprint request: %w: %w", insight.ErrInvalidRequest, err))
		return
	}

	view, err := s.analytics.Footprint(req.FootprintInput, req.Country)
	s.respond(w, r, view, err)
}

func (s *Server) respond(w http.ResponseWriter, r *http.Request, v any, err error) {
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// statusFor maps service and domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, insight.ErrInvalidRequest),
		errors.Is(err, domain.ErrInvalidScenario),
		errors.Is(err, domain.ErrInvalidImpactLevel),
		errors.Is(err, domain.ErrInvalidRange):
		return http.StatusBadRequest
	case errors.Is(err, insight.ErrUnknownCountry):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInsufficientData),
		errors.Is(err, domain.ErrEmptyHistory),
		errors.Is(err, domain.ErrZeroBaseline):
		return http.StatusUnprocessableEntity
	case errors.Is(err, insight.ErrNotReady):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err, "method", r.Method, "path", r.URL.Path)
		msg = http.StatusText(status)
	} else {
		s.logger.Debug("request rejected", "error", err, "status", status, "path", r.URL.Path)
	}
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // client may have gone away
}
