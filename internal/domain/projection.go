package domain

import (
	"fmt"
	"math"
)

// projectionStep is the spacing of projected years.
const projectionStep = 5

// ProjectionResult is the outcome of projecting one scenario to a target year.
type ProjectionResult struct {
	Scenario    Scenario   `json:"scenario"`
	TargetYear  int        `json:"target_year"`
	LatestYear  int        `json:"latest_year"`
	LatestValue float64    `json:"latest_value"`
	Projected   TimeSeries `json:"projected"` // may be empty

	TemperatureIncrease  float64       `json:"temperature_increase"` // °C
	SeaLevelIncrease     float64       `json:"sea_level_increase"`   // mm
	Impact               ImpactLevel   `json:"impact_level"`
	CoastalVulnerability int           `json:"coastal_vulnerability"` // 0-100
	Regions              []RegionScore `json:"regions"`
}

// Project extends history under scenario up to targetYear.
//
// The projected years are latestYear+5, latestYear+10, ... strictly below
// targetYear+5. A targetYear at or before the latest historical year yields
// an empty projection, which is a valid result.
func Project(history TimeSeries, scenario Scenario, targetYear int) (ProjectionResult, error) {
	params, ok := scenario.Params()
	if !ok {
		return ProjectionResult{}, fmt.Errorf("project: %w", ErrInvalidScenario)
	}
	latest, ok := history.Last()
	if !ok {
		return ProjectionResult{}, fmt.Errorf("project %s: %w", params.Key, ErrEmptyHistory)
	}

	baseline := latest.Value * (1 - params.InitialReduction)
	factor := 1 + params.AnnualRate

	var points []Point
	for year := latest.Year + projectionStep; year < targetYear+projectionStep; year += projectionStep {
		step := float64(year-latest.Year) / projectionStep
		points = append(points, Point{Year: year, Value: baseline * math.Pow(factor, step)})
	}

	yearsAhead := float64(targetYear - latest.Year)

	return ProjectionResult{
		Scenario:             scenario,
		TargetYear:           targetYear,
		LatestYear:           latest.Year,
		LatestValue:          latest.Value,
		Projected:            TimeSeries{points: points},
		TemperatureIncrease:  baseTempIncrease + params.TempSensitivity*yearsAhead,
		SeaLevelIncrease:     baseSeaIncrease + params.SeaSensitivity*yearsAhead,
		Impact:               params.Impact,
		CoastalVulnerability: CoastalVulnerabilityIndex(params.Impact),
		Regions:              RegionalVulnerability(params.Impact),
	}, nil
}

// Region is one of the five regions scored for vulnerability.
type Region string

const (
	NorthAmerica       Region = "North America"
	Europe             Region = "Europe"
	Asia               Region = "Asia"
	Africa             Region = "Africa"
	SmallIslandNations Region = "Small Island Nations"
)

// Regions lists the scored regions in display order.
func Regions() []Region {
	return []Region{NorthAmerica, Europe, Asia, Africa, SmallIslandNations}
}

// RegionScore is a region's vulnerability under an impact level, 0-100.
type RegionScore struct {
	Region Region `json:"region"`
	Score  int    `json:"score"`
}

// RegionalVulnerability returns the fixed per-region vulnerability scores for
// level, in Regions order. An unknown level yields nil. Each call returns a
// fresh slice.
func RegionalVulnerability(level ImpactLevel) []RegionScore {
	var scores [5]int
	switch level {
	case Severe:
		scores = [5]int{70, 65, 85, 90, 95}
	case Moderate:
		scores = [5]int{50, 45, 65, 75, 85}
	case Manageable:
		scores = [5]int{20, 15, 40, 60, 70}
	default:
		return nil
	}

	regions := Regions()
	out := make([]RegionScore, len(regions))
	for i, r := range regions {
		out[i] = RegionScore{Region: r, Score: scores[i]}
	}
	return out
}

// CoastalVulnerabilityIndex returns the headline coastal index for level, or
// 0 for an unknown level.
func CoastalVulnerabilityIndex(level ImpactLevel) int {
	switch level {
	case Severe:
		return 85
	case Moderate:
		return 60
	case Manageable:
		return 30
	default:
		return 0
	}
}
