package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimate(t *testing.T) {
	tests := []struct {
		name  string
		input FootprintInput
		want  float64
	}{
		{
			name:  "dashboard defaults",
			input: FootprintInput{FlightsPerYear: 2, MeatDaysPerWeek: 3, CarKmPerWeek: 100},
			want:  5.34,
		},
		{
			name:  "renewable home energy",
			input: FootprintInput{FlightsPerYear: 2, MeatDaysPerWeek: 3, CarKmPerWeek: 100, UsesRenewableEnergy: true},
			want:  1.4 + 0.9 + 1.04 + 0.8,
		},
		{
			name:  "all zero",
			input: FootprintInput{},
			want:  2.0,
		},
		{
			name:  "upper bounds",
			input: FootprintInput{FlightsPerYear: 50, MeatDaysPerWeek: 7, CarKmPerWeek: 500},
			want:  35 + 2.1 + 5.2 + 2.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Estimate(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, tolerance)
		})
	}
}

func TestEstimate_OutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		input FootprintInput
		field string
	}{
		{"negative flights", FootprintInput{FlightsPerYear: -1}, "flights_per_year"},
		{"too many flights", FootprintInput{FlightsPerYear: 51}, "flights_per_year"},
		{"negative meat days", FootprintInput{MeatDaysPerWeek: -1}, "meat_days_per_week"},
		{"eight meat days", FootprintInput{MeatDaysPerWeek: 8}, "meat_days_per_week"},
		{"negative km", FootprintInput{CarKmPerWeek: -0.5}, "car_km_per_week"},
		{"too many km", FootprintInput{CarKmPerWeek: 500.1}, "car_km_per_week"},
		{"NaN km", FootprintInput{CarKmPerWeek: math.NaN()}, "car_km_per_week"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Estimate(tt.input)
			require.ErrorIs(t, err, ErrInvalidRange)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestBreakdown(t *testing.T) {
	b, err := Breakdown(FootprintInput{FlightsPerYear: 2, MeatDaysPerWeek: 3, CarKmPerWeek: 100})
	require.NoError(t, err)
	assert.InDelta(t, 1.4, b.Flights, tolerance)
	assert.InDelta(t, 0.9, b.Diet, tolerance)
	assert.InDelta(t, 1.04, b.Car, tolerance)
	assert.InDelta(t, 2.0, b.HomeEnergy, tolerance)
	assert.InDelta(t, 5.34, b.Total(), tolerance)
}

func TestCompareToCountryAverage(t *testing.T) {
	assert.InDelta(t, -65.548387, CompareToCountryAverage(5.34, "USA"), 1e-5)
	assert.InDelta(t, 0.0, CompareToCountryAverage(7.4, "China"), tolerance)
	assert.InDelta(t, 100.0, CompareToCountryAverage(3.8, "India"), tolerance)
	assert.InDelta(t, 25.0, CompareToCountryAverage(6.0, "Atlantis"), tolerance)
}

func TestCountryAverageFootprint(t *testing.T) {
	assert.Equal(t, 15.5, CountryAverageFootprint("USA"))
	assert.Equal(t, 7.4, CountryAverageFootprint("China"))
	assert.Equal(t, 1.9, CountryAverageFootprint("India"))
	assert.Equal(t, GlobalAverageFootprint, CountryAverageFootprint("Brazil"))
	assert.Equal(t, GlobalAverageFootprint, CountryAverageFootprint("usa"), "lookup is exact-match")
}

func TestEstimate_Idempotent(t *testing.T) {
	in := FootprintInput{FlightsPerYear: 7, MeatDaysPerWeek: 5, CarKmPerWeek: 321.5, UsesRenewableEnergy: true}
	a, err := Estimate(in)
	require.NoError(t, err)
	b, err := Estimate(in)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
