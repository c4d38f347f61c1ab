// Package insight serves the dashboard analytics over the loaded datasets:
// trends, emissions comparisons, scenario projections, footprints and
// country profiles.
package insight

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/storm-data-shared/retry"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/couchcryptid/climate-pulse/internal/dataset"
	"github.com/couchcryptid/climate-pulse/internal/domain"
	"github.com/couchcryptid/climate-pulse/internal/observability"
)

// Target year bounds accepted for projections.
const (
	MinTargetYear = 2025
	MaxTargetYear = 2100
)

var (
	// ErrNotReady is returned by every query until the datasets are loaded.
	ErrNotReady = errors.New("datasets not loaded yet")

	// ErrUnknownCountry is returned for a country absent from the emissions dataset.
	ErrUnknownCountry = errors.New("unknown country")

	// ErrInvalidRequest is returned for malformed query parameters.
	ErrInvalidRequest = errors.New("invalid request")
)

// CatalogLoader reads the datasets.
type CatalogLoader interface {
	Load(ctx context.Context) (*dataset.Catalog, error)
}

// Publisher receives an event for every newly computed projection.
type Publisher interface {
	Publish(ctx context.Context, event domain.ProjectionEvent) error
}

// Service answers analytics queries against the current catalog.
type Service struct {
	loader    CatalogLoader
	publisher Publisher
	logger    *slog.Logger
	metrics   *observability.Metrics
	printer   *message.Printer

	catalog     atomic.Pointer[dataset.Catalog]
	projections *lruCache[domain.ProjectionResult]

	publishTimeout time.Duration
}

// New creates a Service. publisher may be nil to disable projection events.
func New(loader CatalogLoader, publisher Publisher, cacheSize int, logger *slog.Logger, metrics *observability.Metrics) *Service {
	return &Service{
		loader:         loader,
		publisher:      publisher,
		logger:         logger,
		metrics:        metrics,
		printer:        message.NewPrinter(language.English),
		projections:    newLRUCache[domain.ProjectionResult](cacheSize),
		publishTimeout: 2 * time.Second,
	}
}

// WithPublishTimeout sets how long a projection event may take to publish.
// Call before serving.
func (s *Service) WithPublishTimeout(d time.Duration) *Service {
	s.publishTimeout = d
	return s
}

// CheckReadiness returns nil once the datasets are loaded.
func (s *Service) CheckReadiness(_ context.Context) error {
	if s.catalog.Load() == nil {
		return ErrNotReady
	}
	return nil
}

// Run loads the datasets, retrying with exponential backoff until a load
// succeeds or ctx is cancelled.
func (s *Service) Run(ctx context.Context) error {
	// Start at 200ms, double each retry, cap at 5s.
	backoff := 200 * time.Millisecond
	maxBackoff := 5 * time.Second

	for {
		err := s.Reload(ctx)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			s.logger.Info("dataset loading stopped", "reason", ctx.Err())
			return nil
		}
		s.logger.Error("dataset load failed", "error", err, "retry_in", backoff)
		if !retry.SleepWithContext(ctx, backoff) {
			return nil
		}
		backoff = retry.NextBackoff(backoff, maxBackoff)
	}
}

// Reload performs one load attempt and, on success, swaps in the new
// catalog and drops cached projections.
func (s *Service) Reload(ctx context.Context) error {
	start := time.Now()

	catalog, err := s.loader.Load(ctx)
	if err != nil {
		s.metrics.DatasetLoadErrors.Inc()
		return err
	}

	s.catalog.Store(catalog)
	s.projections.purge()

	rows := catalog.Rows()
	s.metrics.DatasetRows.WithLabelValues("temperature").Set(float64(rows.Temperature))
	s.metrics.DatasetRows.WithLabelValues("emissions").Set(float64(rows.Emissions))
	s.metrics.DatasetRows.WithLabelValues("sea_level").Set(float64(rows.SeaLevel))
	s.metrics.DatasetLoadDuration.Observe(time.Since(start).Seconds())
	s.metrics.DatasetsLoaded.Set(1)
	return nil
}

func (s *Service) current() (*dataset.Catalog, error) {
	c := s.catalog.Load()
	if c == nil {
		return nil, ErrNotReady
	}
	return c, nil
}

// Project computes scenario's projection of aggregate emissions to
// targetYear. Results are cached per catalog; each fresh computation is
// published when a publisher is configured.
func (s *Service) Project(ctx context.Context, scenario domain.Scenario, targetYear int) (ProjectionView, error) {
	if targetYear < MinTargetYear || targetYear > MaxTargetYear {
		return ProjectionView{}, fmt.Errorf("target_year %d not in [%d,%d]: %w", targetYear, MinTargetYear, MaxTargetYear, ErrInvalidRequest)
	}
	params, ok := scenario.Params()
	if !ok {
		return ProjectionView{}, fmt.Errorf("scenario %d: %w", int(scenario), domain.ErrInvalidScenario)
	}
	c, err := s.current()
	if err != nil {
		return ProjectionView{}, err
	}

	key := fmt.Sprintf("%s|%d|%d", params.Key, targetYear, c.LoadedAt().UnixNano())
	result, hit := s.projections.get(key)
	if hit {
		s.metrics.ProjectionCache.WithLabelValues("hit").Inc()
	} else {
		s.metrics.ProjectionCache.WithLabelValues("miss").Inc()
		result, err = domain.Project(c.AggregateEmissions(), scenario, targetYear)
		if err != nil {
			return ProjectionView{}, err
		}
		s.projections.put(key, result)
		s.publish(ctx, result)
	}
	s.metrics.ProjectionsComputed.WithLabelValues(params.Key).Inc()
	// The cached result is shared; callers get their own regions.
	result.Regions = slices.Clone(result.Regions)

	return ProjectionView{
		ProjectionResult: result,
		Label:            params.Label,
		Description:      params.Description,
		Color:            params.Color,
		Summary:          s.projectionSummary(params, result),
	}, nil
}

// publish sends the event without letting a slow or failed broker affect
// the caller.
func (s *Service) publish(ctx context.Context, result domain.ProjectionResult) {
	if s.publisher == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.publishTimeout)
	defer cancel()

	event := domain.NewProjectionEvent(result)
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.metrics.ProjectionEventsPublished.WithLabelValues("error").Inc()
		s.logger.Warn("publish projection event failed",
			"error", err,
			"event_id", event.ID,
			"scenario", result.Scenario.String(),
			"target_year", result.TargetYear,
		)
		return
	}
	s.metrics.ProjectionEventsPublished.WithLabelValues("success").Inc()
}

// Vulnerability returns the regional scores for an impact level.
func (s *Service) Vulnerability(level domain.ImpactLevel) (VulnerabilityView, error) {
	regions := domain.RegionalVulnerability(level)
	if regions == nil {
		return VulnerabilityView{}, fmt.Errorf("impact level %d: %w", int(level), domain.ErrInvalidImpactLevel)
	}
	return VulnerabilityView{
		Impact:       level,
		CoastalIndex: domain.CoastalVulnerabilityIndex(level),
		Regions:      regions,
	}, nil
}

// Profile returns the personalized-action profile for country, along with
// its emissions insight text. It does not need the datasets.
func (s *Service) Profile(country string) ProfileView {
	return ProfileView{
		CountryProfile: domain.ProfileFor(country),
		Insight:        domain.EmissionsInsight(country),
	}
}

// Footprint estimates an individual footprint and compares it with the
// average for country (the global average when country is empty or unknown).
func (s *Service) Footprint(in domain.FootprintInput, country string) (FootprintView, error) {
	breakdown, err := domain.Breakdown(in)
	if err != nil {
		return FootprintView{}, err
	}
	s.metrics.FootprintEstimates.Inc()

	total := breakdown.Total()
	profile := domain.ProfileFor(country)
	diff := domain.CompareToCountryAverage(total, country)

	return FootprintView{
		Country:           country,
		Footprint:         total,
		Breakdown:         breakdown,
		CountryAverage:    profile.AverageFootprint,
		GlobalAverage:     domain.GlobalAverageFootprint,
		PercentDifference: diff,
		Summary:           s.footprintSummary(profile, total, diff),
	}, nil
}
