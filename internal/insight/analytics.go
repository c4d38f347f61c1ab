package insight

import (
	"errors"
	"fmt"

	"github.com/couchcryptid/climate-pulse/internal/domain"
)

// Temperature returns the global temperature anomaly series, its trend and
// the warming milestones.
func (s *Service) Temperature() (TemperatureView, error) {
	c, err := s.current()
	if err != nil {
		return TemperatureView{}, err
	}
	view, err := summarize(c.Temperature())
	if err != nil {
		return TemperatureView{}, fmt.Errorf("temperature: %w", err)
	}
	view.Summary = s.temperatureSummary(c.Temperature(), view)
	return TemperatureView{SeriesView: view, Milestones: domain.TemperatureMilestones()}, nil
}

// SeaLevel returns the global sea-level series and its trend.
func (s *Service) SeaLevel() (SeaLevelView, error) {
	c, err := s.current()
	if err != nil {
		return SeaLevelView{}, err
	}
	view, err := summarize(c.SeaLevel())
	if err != nil {
		return SeaLevelView{}, fmt.Errorf("sea level: %w", err)
	}
	view.Summary = s.seaLevelSummary(c.SeaLevel(), view)
	return SeaLevelView{SeriesView: view}, nil
}

// Countries returns the sorted country names of the emissions dataset.
func (s *Service) Countries() (CountriesView, error) {
	c, err := s.current()
	if err != nil {
		return CountriesView{}, err
	}
	return CountriesView{Countries: c.Countries(), LoadedAt: c.LoadedAt()}, nil
}

// Emissions returns one country's emissions series with its trend, growth
// and outlook.
func (s *Service) Emissions(country string) (EmissionsView, error) {
	c, err := s.current()
	if err != nil {
		return EmissionsView{}, err
	}
	series, ok := c.Emissions(country)
	if !ok {
		return EmissionsView{}, fmt.Errorf("emissions for %q: %w", country, ErrUnknownCountry)
	}

	// A single-point series is still shown, without trend or growth.
	view := SeriesView{Series: series}
	var (
		growth *float64
		rating domain.GrowthRating
	)
	if series.Len() >= 2 {
		if view, err = summarize(series); err != nil {
			return EmissionsView{}, fmt.Errorf("emissions for %q: %w", country, err)
		}
		if growth, rating, err = growthOf(series); err != nil {
			return EmissionsView{}, fmt.Errorf("emissions for %q: %w", country, err)
		}
	}
	view.Summary = s.emissionsSummary(country, series, view)

	return EmissionsView{
		Country:       country,
		SeriesView:    view,
		Total:         series.Sum(),
		GrowthPercent: growth,
		GrowthRating:  rating,
		Insight:       domain.EmissionsInsight(country),
	}, nil
}

// Compare returns per-country totals, shares of the combined total, and
// growth. Repeated countries are compared once.
func (s *Service) Compare(countries []string) (ComparisonView, error) {
	if len(countries) == 0 {
		return ComparisonView{}, fmt.Errorf("compare: at least one country required: %w", ErrInvalidRequest)
	}
	c, err := s.current()
	if err != nil {
		return ComparisonView{}, err
	}

	seen := make(map[string]bool, len(countries))
	rows := make([]CountryComparison, 0, len(countries))
	var total float64
	for _, country := range countries {
		if seen[country] {
			continue
		}
		seen[country] = true

		series, ok := c.Emissions(country)
		if !ok {
			return ComparisonView{}, fmt.Errorf("compare %q: %w", country, ErrUnknownCountry)
		}
		latest, _ := series.Last()
		row := CountryComparison{
			Country: country,
			Latest:  latest,
			Total:   series.Sum(),
		}
		// A single-point series has no growth; the row is still comparable.
		growth, rating, err := growthOf(series)
		if err != nil && !errors.Is(err, domain.ErrInsufficientData) {
			return ComparisonView{}, fmt.Errorf("compare %q: %w", country, err)
		}
		row.GrowthPercent, row.GrowthRating = growth, rating

		total += row.Total
		rows = append(rows, row)
	}

	if total != 0 {
		for i := range rows {
			rows[i].Share = rows[i].Total / total * 100
		}
	}

	view := ComparisonView{Countries: rows, Total: total}
	view.Summary = s.comparisonSummary(view)
	return view, nil
}

// summarize fits the trend and endpoint rate of series.
func summarize(series domain.TimeSeries) (SeriesView, error) {
	trend, err := domain.Fit(series)
	if err != nil {
		return SeriesView{}, err
	}
	avg, err := domain.AverageAnnualChange(series)
	if err != nil {
		return SeriesView{}, err
	}
	outlook := domain.DecadeOutlook(avg)
	return SeriesView{
		Series:              series,
		Trend:               &trend,
		TrendLine:           trend.Line(series),
		AverageAnnualChange: avg,
		Outlook:             &outlook,
	}, nil
}

// growthOf returns the growth percent and rating, or nil for a zero
// starting value.
func growthOf(series domain.TimeSeries) (*float64, domain.GrowthRating, error) {
	pct, err := domain.GrowthPercent(series)
	if errors.Is(err, domain.ErrZeroBaseline) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", err
	}
	return &pct, domain.RateGrowth(pct), nil
}
