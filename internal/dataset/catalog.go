package dataset

import (
	"fmt"
	"sort"
	"time"

	"github.com/couchcryptid/climate-pulse/internal/domain"
)

// Catalog is the loaded, validated datasets. It is never mutated after
// NewCatalog returns, so concurrent readers need no locking.
type Catalog struct {
	temperature domain.TimeSeries
	seaLevel    domain.TimeSeries
	emissions   map[string]domain.TimeSeries
	countries   []string
	aggregate   domain.TimeSeries
	rows        RowCounts
	loadedAt    time.Time
}

// NewCatalog validates the three tables and builds their series. Every table
// must be non-empty and hold at most one row per year (per country for
// emissions).
func NewCatalog(temps []TemperatureRecord, emissions []EmissionRecord, sea []SeaLevelRecord, loadedAt time.Time) (*Catalog, error) {
	if len(temps) == 0 {
		return nil, fmt.Errorf("%s: empty: %w", TemperatureFile, ErrInvalidDataset)
	}
	if len(emissions) == 0 {
		return nil, fmt.Errorf("%s: empty: %w", EmissionsFile, ErrInvalidDataset)
	}
	if len(sea) == 0 {
		return nil, fmt.Errorf("%s: empty: %w", SeaLevelFile, ErrInvalidDataset)
	}

	tempPoints := make([]domain.Point, len(temps))
	for i, r := range temps {
		tempPoints[i] = domain.Point{Year: r.Year, Value: r.TempAnomaly}
	}
	temperature, err := domain.NewTimeSeries(tempPoints)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", TemperatureFile, ErrInvalidDataset, err)
	}

	seaPoints := make([]domain.Point, len(sea))
	for i, r := range sea {
		seaPoints[i] = domain.Point{Year: r.Year, Value: r.SeaLevelChange}
	}
	seaLevel, err := domain.NewTimeSeries(seaPoints)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", SeaLevelFile, ErrInvalidDataset, err)
	}

	byCountry := make(map[string][]domain.Point)
	byYear := make(map[int]float64)
	for _, r := range emissions {
		byCountry[r.Country] = append(byCountry[r.Country], domain.Point{Year: r.Year, Value: r.Emissions})
		byYear[r.Year] += r.Emissions
	}

	series := make(map[string]domain.TimeSeries, len(byCountry))
	countries := make([]string, 0, len(byCountry))
	for country, points := range byCountry {
		s, err := domain.NewTimeSeries(points)
		if err != nil {
			return nil, fmt.Errorf("%s: country %s: %w: %w", EmissionsFile, country, ErrInvalidDataset, err)
		}
		series[country] = s
		countries = append(countries, country)
	}
	sort.Strings(countries)

	aggPoints := make([]domain.Point, 0, len(byYear))
	for year, total := range byYear {
		aggPoints = append(aggPoints, domain.Point{Year: year, Value: total})
	}
	aggregate, err := domain.NewTimeSeries(aggPoints)
	if err != nil {
		return nil, fmt.Errorf("%s: aggregate: %w", EmissionsFile, err)
	}

	return &Catalog{
		temperature: temperature,
		seaLevel:    seaLevel,
		emissions:   series,
		countries:   countries,
		aggregate:   aggregate,
		rows: RowCounts{
			Temperature: len(temps),
			Emissions:   len(emissions),
			SeaLevel:    len(sea),
		},
		loadedAt: loadedAt,
	}, nil
}

// Temperature returns the global temperature anomaly series.
func (c *Catalog) Temperature() domain.TimeSeries { return c.temperature }

// SeaLevel returns the global sea-level change series.
func (c *Catalog) SeaLevel() domain.TimeSeries { return c.seaLevel }

// Emissions returns the emissions series for country. ok is false if the
// country does not appear in the dataset.
func (c *Catalog) Emissions(country string) (domain.TimeSeries, bool) {
	s, ok := c.emissions[country]
	return s, ok
}

// AggregateEmissions returns total emissions per year across all countries,
// the baseline for scenario projections.
func (c *Catalog) AggregateEmissions() domain.TimeSeries { return c.aggregate }

// Countries returns the sorted country names.
func (c *Catalog) Countries() []string {
	out := make([]string, len(c.countries))
	copy(out, c.countries)
	return out
}

// Rows returns the per-table row counts.
func (c *Catalog) Rows() RowCounts { return c.rows }

// LoadedAt returns when the catalog was built.
func (c *Catalog) LoadedAt() time.Time { return c.loadedAt }
