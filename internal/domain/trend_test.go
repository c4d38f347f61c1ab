package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-6

func TestFit(t *testing.T) {
	t.Run("exact line", func(t *testing.T) {
		series := MustTimeSeries(
			Point{Year: 2000, Value: 10},
			Point{Year: 2005, Value: 20},
			Point{Year: 2010, Value: 30},
		)

		trend, err := Fit(series)
		require.NoError(t, err)
		assert.InDelta(t, 2.0, trend.Slope, tolerance)
		assert.InDelta(t, -3990.0, trend.Intercept, 1e-6)
		assert.InDelta(t, 1.0, trend.RSquared, tolerance)
		assert.InDelta(t, 40.0, trend.At(2015), 1e-6)
	})

	t.Run("covariance over variance", func(t *testing.T) {
		series := MustTimeSeries(
			Point{Year: 1, Value: 1},
			Point{Year: 2, Value: 3},
			Point{Year: 3, Value: 2},
			Point{Year: 4, Value: 5},
		)

		// mean x 2.5, mean y 2.75, cov 1.1667 (n-1), var 1.6667 (n-1)
		trend, err := Fit(series)
		require.NoError(t, err)
		assert.InDelta(t, 1.1, trend.Slope, tolerance)
		assert.InDelta(t, 2.75-1.1*2.5, trend.Intercept, tolerance)
	})

	t.Run("two points", func(t *testing.T) {
		series := MustTimeSeries(Point{Year: 1880, Value: -0.2}, Point{Year: 2020, Value: 1.0})
		trend, err := Fit(series)
		require.NoError(t, err)
		assert.InDelta(t, 1.2/140, trend.Slope, tolerance)
	})

	t.Run("input order does not matter", func(t *testing.T) {
		a := MustTimeSeries(Point{Year: 1990, Value: 5}, Point{Year: 2000, Value: 7}, Point{Year: 2010, Value: 6})
		b := MustTimeSeries(Point{Year: 2010, Value: 6}, Point{Year: 1990, Value: 5}, Point{Year: 2000, Value: 7})

		ta, err := Fit(a)
		require.NoError(t, err)
		tb, err := Fit(b)
		require.NoError(t, err)
		assert.Equal(t, ta, tb)
	})
}

func TestFit_InsufficientData(t *testing.T) {
	cases := map[string]TimeSeries{
		"empty":        {},
		"single point": MustTimeSeries(Point{Year: 2020, Value: 1}),
	}
	for name, series := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Fit(series)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInsufficientData))
		})
	}
}

func TestFit_SlopeSignMatchesMonotonicDelta(t *testing.T) {
	increasing := MustTimeSeries(
		Point{Year: 1990, Value: 1}, Point{Year: 1995, Value: 1.5},
		Point{Year: 2000, Value: 4}, Point{Year: 2005, Value: 9},
	)
	decreasing := MustTimeSeries(
		Point{Year: 1990, Value: 9}, Point{Year: 1991, Value: 8.9},
		Point{Year: 2000, Value: 3}, Point{Year: 2020, Value: -2},
	)

	up, err := Fit(increasing)
	require.NoError(t, err)
	assert.Positive(t, up.Slope)

	down, err := Fit(decreasing)
	require.NoError(t, err)
	assert.Negative(t, down.Slope)
}

func TestFit_Idempotent(t *testing.T) {
	series := MustTimeSeries(
		Point{Year: 1880, Value: -0.2}, Point{Year: 1950, Value: 0.0}, Point{Year: 2020, Value: 1.0},
	)
	first, err := Fit(series)
	require.NoError(t, err)
	second, err := Fit(series)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestTrend_Line(t *testing.T) {
	series := MustTimeSeries(Point{Year: 2000, Value: 1}, Point{Year: 2010, Value: 3}, Point{Year: 2020, Value: 2})
	trend := Trend{Slope: 0.05, Intercept: -98}

	line := trend.Line(series)
	require.Equal(t, 3, line.Len())
	assert.Equal(t, 2000, line.At(0).Year)
	assert.InDelta(t, 2.0, line.At(0).Value, tolerance)
	assert.InDelta(t, 3.0, line.At(2).Value, tolerance)
}

func TestAverageAnnualChange(t *testing.T) {
	series := MustTimeSeries(Point{Year: 1880, Value: -0.2}, Point{Year: 2020, Value: 1.0})

	got, err := AverageAnnualChange(series)
	require.NoError(t, err)
	assert.InDelta(t, 0.008571428, got, tolerance)
}

func TestAverageAnnualChange_DiffersFromRegressionSlope(t *testing.T) {
	// A centered spike leaves both rates equal; an off-center one only moves the fit.
	series := MustTimeSeries(
		Point{Year: 2000, Value: 0},
		Point{Year: 2010, Value: 100},
		Point{Year: 2020, Value: 20},
	)

	endpoint, err := AverageAnnualChange(series)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, endpoint, tolerance)

	trend, err := Fit(series)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, trend.Slope, tolerance)

	skewed := MustTimeSeries(
		Point{Year: 2000, Value: 0},
		Point{Year: 2001, Value: 100},
		Point{Year: 2020, Value: 20},
	)
	endpoint, err = AverageAnnualChange(skewed)
	require.NoError(t, err)
	trend, err = Fit(skewed)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, endpoint, tolerance)
	assert.NotEqual(t, endpoint, trend.Slope)
}

func TestAverageAnnualChange_UsesChronologicalEndpoints(t *testing.T) {
	series := MustTimeSeries(
		Point{Year: 2020, Value: 50},
		Point{Year: 2000, Value: 10},
		Point{Year: 2010, Value: 99},
	)
	got, err := AverageAnnualChange(series)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got, tolerance)
}

func TestAverageAnnualChange_InsufficientData(t *testing.T) {
	_, err := AverageAnnualChange(MustTimeSeries(Point{Year: 2020, Value: 1}))
	require.ErrorIs(t, err, ErrInsufficientData)
}

func TestGrowthPercent(t *testing.T) {
	series := MustTimeSeries(Point{Year: 1990, Value: 200}, Point{Year: 2020, Value: 350})
	got, err := GrowthPercent(series)
	require.NoError(t, err)
	assert.InDelta(t, 75.0, got, tolerance)
	assert.Equal(t, GrowthHigh, RateGrowth(got))
}

func TestGrowthPercent_ZeroBaseline(t *testing.T) {
	series := MustTimeSeries(Point{Year: 1990, Value: 0}, Point{Year: 2020, Value: 5})
	_, err := GrowthPercent(series)
	require.ErrorIs(t, err, ErrZeroBaseline)
}

func TestRateGrowth(t *testing.T) {
	tests := []struct {
		percent float64
		want    GrowthRating
	}{
		{-10, GrowthLow},
		{20, GrowthLow},
		{20.1, GrowthElevated},
		{50, GrowthElevated},
		{50.1, GrowthHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RateGrowth(tt.percent), "percent %v", tt.percent)
	}
}

func TestDecadeOutlook(t *testing.T) {
	up := DecadeOutlook(12.5)
	assert.InDelta(t, 125.0, up.DecadeChange, tolerance)
	assert.True(t, up.Increasing)

	down := DecadeOutlook(-3)
	assert.InDelta(t, -30.0, down.DecadeChange, tolerance)
	assert.False(t, down.Increasing)
}
