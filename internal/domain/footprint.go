package domain

import "fmt"

// Footprint input bounds, matching the calculator's widgets.
const (
	MaxFlightsPerYear  = 50
	MaxMeatDaysPerWeek = 7
	MaxCarKmPerWeek    = 500.0
)

// Emission factors in tonnes CO2e.
const (
	perFlight          = 0.7
	perMeatDayWeekly   = 0.3
	perCarKm           = 0.0002
	weeksPerYear       = 52
	homeEnergyBaseline = 2.0
	renewableFactor    = 0.4
)

// FootprintInput describes an individual's habits.
type FootprintInput struct {
	FlightsPerYear      int     `json:"flights_per_year"`
	MeatDaysPerWeek     int     `json:"meat_days_per_week"`
	CarKmPerWeek        float64 `json:"car_km_per_week"`
	UsesRenewableEnergy bool    `json:"uses_renewable_energy"`
}

// Validate checks every field against its bounds.
func (in FootprintInput) Validate() error {
	if in.FlightsPerYear < 0 || in.FlightsPerYear > MaxFlightsPerYear {
		return fmt.Errorf("flights_per_year %d not in [0,%d]: %w", in.FlightsPerYear, MaxFlightsPerYear, ErrInvalidRange)
	}
	if in.MeatDaysPerWeek < 0 || in.MeatDaysPerWeek > MaxMeatDaysPerWeek {
		return fmt.Errorf("meat_days_per_week %d not in [0,%d]: %w", in.MeatDaysPerWeek, MaxMeatDaysPerWeek, ErrInvalidRange)
	}
	// The negated form also rejects NaN.
	if !(in.CarKmPerWeek >= 0 && in.CarKmPerWeek <= MaxCarKmPerWeek) {
		return fmt.Errorf("car_km_per_week %g not in [0,%g]: %w", in.CarKmPerWeek, MaxCarKmPerWeek, ErrInvalidRange)
	}
	return nil
}

// FootprintBreakdown splits an annual footprint into its components.
type FootprintBreakdown struct {
	Flights    float64 `json:"flights"`
	Diet       float64 `json:"diet"`
	Car        float64 `json:"car"`
	HomeEnergy float64 `json:"home_energy"`
}

// Total sums the components.
func (b FootprintBreakdown) Total() float64 {
	return b.Flights + b.Diet + b.Car + b.HomeEnergy
}

// Breakdown computes each footprint component for in.
func Breakdown(in FootprintInput) (FootprintBreakdown, error) {
	if err := in.Validate(); err != nil {
		return FootprintBreakdown{}, err
	}

	home := homeEnergyBaseline
	if in.UsesRenewableEnergy {
		home *= renewableFactor
	}

	return FootprintBreakdown{
		Flights:    float64(in.FlightsPerYear) * perFlight,
		Diet:       float64(in.MeatDaysPerWeek) * perMeatDayWeekly,
		Car:        in.CarKmPerWeek * perCarKm * weeksPerYear,
		HomeEnergy: home,
	}, nil
}

// Estimate returns the annual footprint for in, in tonnes CO2e:
//
//	flights*0.7 + meatDays*0.3 + carKm*0.0002*52 + 2.0*(0.4 if renewable else 1.0)
func Estimate(in FootprintInput) (float64, error) {
	b, err := Breakdown(in)
	if err != nil {
		return 0, err
	}
	return b.Total(), nil
}

// CompareToCountryAverage returns how far footprint sits from the country's
// average, in percent: (footprint/average - 1) * 100. Negative means below
// average. Unknown countries compare against the global average.
func CompareToCountryAverage(footprint float64, country string) float64 {
	return (footprint/CountryAverageFootprint(country) - 1) * 100
}

// CountryAverageFootprint returns the average annual footprint for country in
// tonnes CO2e, falling back to GlobalAverageFootprint.
func CountryAverageFootprint(country string) float64 {
	return ProfileFor(country).AverageFootprint
}
