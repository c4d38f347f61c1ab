package insight

import (
	"math"
	"strconv"
	"strings"

	"github.com/couchcryptid/climate-pulse/internal/domain"
)

// Narrative sentences shown beside each chart. Numbers go through the
// message printer for thousands separators.

func (s *Service) temperatureSummary(series domain.TimeSeries, v SeriesView) string {
	first, _ := series.First()
	last, _ := series.Last()
	return s.printer.Sprintf(
		"Global temperatures have changed by %.2f°C between %s and %s, an average of %.4f°C per year. At this rate the next decade adds %.2f°C.",
		last.Value-first.Value, yearText(first.Year), yearText(last.Year), v.AverageAnnualChange, v.Outlook.DecadeChange)
}

func (s *Service) seaLevelSummary(series domain.TimeSeries, v SeriesView) string {
	first, _ := series.First()
	last, _ := series.Last()
	return s.printer.Sprintf(
		"Sea levels have changed by %.1f mm between %s and %s, about %.2f mm per year. At this rate the next decade adds %.1f mm.",
		last.Value-first.Value, yearText(first.Year), yearText(last.Year), v.AverageAnnualChange, v.Outlook.DecadeChange)
}

func (s *Service) emissionsSummary(country string, series domain.TimeSeries, v SeriesView) string {
	last, _ := series.Last()
	if v.Outlook == nil {
		return s.printer.Sprintf("%s emitted %.0f MtCO₂ in %s. More years of data are needed to show a trend.",
			country, last.Value, yearText(last.Year))
	}
	direction := "rising"
	switch {
	case v.AverageAnnualChange == 0:
		return s.printer.Sprintf("%s emitted %.0f MtCO₂ in %s. Emissions are unchanged on average.",
			country, last.Value, yearText(last.Year))
	case v.AverageAnnualChange < 0:
		direction = "falling"
	}
	return s.printer.Sprintf(
		"%s emitted %.0f MtCO₂ in %s. Emissions are %s by %.1f MtCO₂ per year on average.",
		country, last.Value, yearText(last.Year), direction, math.Abs(v.AverageAnnualChange))
}

func (s *Service) comparisonSummary(v ComparisonView) string {
	if len(v.Countries) == 0 {
		return ""
	}
	top := v.Countries[0]
	for _, row := range v.Countries[1:] {
		if row.Total > top.Total {
			top = row
		}
	}
	return s.printer.Sprintf(
		"Across %d countries, cumulative emissions total %.0f MtCO₂. %s accounts for the largest share at %.1f%%.",
		len(v.Countries), v.Total, top.Country, top.Share)
}

func (s *Service) projectionSummary(params domain.ScenarioParams, r domain.ProjectionResult) string {
	return s.printer.Sprintf(
		"Under %s, by %s global temperatures rise by %.1f°C and sea levels by %.0f mm, a %s impact.",
		strings.ToLower(params.Label), yearText(r.TargetYear), r.TemperatureIncrease, r.SeaLevelIncrease, strings.ToLower(r.Impact.String()))
}

func (s *Service) footprintSummary(profile domain.CountryProfile, total, diff float64) string {
	where := "the global"
	if !profile.Default {
		where = profile.Country + "'s"
	}
	relation := "above"
	if diff < 0 {
		relation = "below"
	}
	return s.printer.Sprintf(
		"Your estimated footprint is %.2f t CO₂e per year, %.1f%% %s %s average of %.1f t.",
		total, math.Abs(diff), relation, where, profile.AverageFootprint)
}

// yearText keeps years out of the printer's digit grouping.
func yearText(year int) string {
	return strconv.Itoa(year)
}
