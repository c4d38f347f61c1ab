package domain

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Trend is a fitted line Value = Slope*Year + Intercept.
type Trend struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	RSquared  float64 `json:"r_squared"` // goodness of fit, 0-1
}

// At evaluates the fitted line at year.
func (t Trend) At(year int) float64 {
	return t.Slope*float64(year) + t.Intercept
}

// Line evaluates the fitted line at every year of series, producing the
// dashed trend overlay drawn next to the raw data.
func (t Trend) Line(series TimeSeries) TimeSeries {
	points := make([]Point, series.Len())
	for i := range points {
		year := series.At(i).Year
		points[i] = Point{Year: year, Value: t.At(year)}
	}
	// Years are copied from a valid series, so they stay sorted and unique.
	return TimeSeries{points: points}
}

// Fit computes the ordinary least-squares regression of Value on Year:
//
//	slope     = cov(Year, Value) / var(Year)
//	intercept = mean(Value) - slope*mean(Year)
//
// It fails with ErrInsufficientData for fewer than two points.
func Fit(series TimeSeries) (Trend, error) {
	if series.Len() < 2 {
		return Trend{}, fmt.Errorf("fit trend over %d points: %w", series.Len(), ErrInsufficientData)
	}

	xs := series.Years()
	ys := series.Values()

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	return Trend{
		Slope:     slope,
		Intercept: intercept,
		RSquared:  stat.RSquared(xs, ys, nil, intercept, slope),
	}, nil
}

// AverageAnnualChange returns the endpoint rate
// (lastValue - firstValue) / (lastYear - firstYear).
// It is not the regression slope; see Fit.
func AverageAnnualChange(series TimeSeries) (float64, error) {
	if series.Len() < 2 {
		return 0, fmt.Errorf("average annual change over %d points: %w", series.Len(), ErrInsufficientData)
	}
	first, _ := series.First()
	last, _ := series.Last()
	return (last.Value - first.Value) / float64(last.Year-first.Year), nil
}

// GrowthRating buckets a percentage growth figure.
type GrowthRating string

const (
	GrowthLow      GrowthRating = "low"
	GrowthElevated GrowthRating = "elevated"
	GrowthHigh     GrowthRating = "high"
)

// RateGrowth maps a growth percentage to a rating: above 50% is high, above
// 20% is elevated, anything else is low.
func RateGrowth(percent float64) GrowthRating {
	switch {
	case percent > 50:
		return GrowthHigh
	case percent > 20:
		return GrowthElevated
	default:
		return GrowthLow
	}
}

// GrowthPercent returns the percentage change from the first to the last
// point of series.
func GrowthPercent(series TimeSeries) (float64, error) {
	if series.Len() < 2 {
		return 0, fmt.Errorf("growth percent over %d points: %w", series.Len(), ErrInsufficientData)
	}
	first, _ := series.First()
	last, _ := series.Last()
	if first.Value == 0 {
		return 0, fmt.Errorf("growth percent from year %d: %w", first.Year, ErrZeroBaseline)
	}
	return (last.Value - first.Value) / first.Value * 100, nil
}

// Outlook extrapolates an average annual change over the next decade.
type Outlook struct {
	AnnualChange float64 `json:"annual_change"`
	DecadeChange float64 `json:"decade_change"`
	Increasing   bool    `json:"increasing"`
}

// DecadeOutlook projects avgAnnualChange ten years forward.
func DecadeOutlook(avgAnnualChange float64) Outlook {
	return Outlook{
		AnnualChange: avgAnnualChange,
		DecadeChange: avgAnnualChange * 10,
		Increasing:   avgAnnualChange > 0,
	}
}
