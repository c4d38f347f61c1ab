package insight

import (
	"time"

	"github.com/couchcryptid/climate-pulse/internal/domain"
)

// SeriesView is a historical series with its fitted trend. Trend and
// Outlook are nil, and TrendLine empty, for a series of fewer than 2 points.
type SeriesView struct {
	Series              domain.TimeSeries `json:"series"`
	Trend               *domain.Trend     `json:"trend,omitempty"`
	TrendLine           domain.TimeSeries `json:"trend_line"`
	AverageAnnualChange float64           `json:"average_annual_change"`
	Outlook             *domain.Outlook   `json:"outlook,omitempty"`
	Summary             string            `json:"summary"`
}

// TemperatureView is the global temperature anomaly page.
type TemperatureView struct {
	SeriesView
	Milestones []domain.Milestone `json:"milestones"`
}

// SeaLevelView is the global sea-level page.
type SeaLevelView struct {
	SeriesView
}

// CountriesView lists the countries with emissions data.
type CountriesView struct {
	Countries []string  `json:"countries"`
	LoadedAt  time.Time `json:"loaded_at"`
}

// EmissionsView is one country's emissions page.
type EmissionsView struct {
	Country string `json:"country"`
	SeriesView
	Total         float64             `json:"total"`
	GrowthPercent *float64            `json:"growth_percent,omitempty"` // nil when the first value is zero
	GrowthRating  domain.GrowthRating `json:"growth_rating,omitempty"`
	Insight       string              `json:"insight"`
}

// CountryComparison is one row of an emissions comparison.
type CountryComparison struct {
	Country       string              `json:"country"`
	Latest        domain.Point        `json:"latest"`
	Total         float64             `json:"total"`
	Share         float64             `json:"share"` // percent of the compared total
	GrowthPercent *float64            `json:"growth_percent,omitempty"`
	GrowthRating  domain.GrowthRating `json:"growth_rating,omitempty"`
}

// ComparisonView compares emissions across several countries.
type ComparisonView struct {
	Countries []CountryComparison `json:"countries"`
	Total     float64             `json:"total"`
	Summary   string              `json:"summary"`
}

// ProjectionView is a projection with its scenario's display metadata.
type ProjectionView struct {
	domain.ProjectionResult
	Label       string `json:"label"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Summary     string `json:"summary"`
}

// VulnerabilityView is the regional vulnerability for one impact level.
type VulnerabilityView struct {
	Impact       domain.ImpactLevel   `json:"impact_level"`
	CoastalIndex int                  `json:"coastal_vulnerability"`
	Regions      []domain.RegionScore `json:"regions"`
}

// ProfileView is a country profile plus its emissions narrative.
type ProfileView struct {
	domain.CountryProfile
	Insight string `json:"insight"`
}

// FootprintView is an individual footprint estimate.
type FootprintView struct {
	Country           string                    `json:"country,omitempty"`
	Footprint         float64                   `json:"footprint"` // t CO2e per year
	Breakdown         domain.FootprintBreakdown `json:"breakdown"`
	CountryAverage    float64                   `json:"country_average"`
	GlobalAverage     float64                   `json:"global_average"`
	PercentDifference float64                   `json:"percent_difference"`
	Summary           string                    `json:"summary"`
}
