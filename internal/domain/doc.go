// Package domain models the climate computations behind the Climate Pulse
// dashboard: trend fitting over yearly series, the what-if scenario
// projection model, and the personal carbon-footprint calculator.
//
// # Series
//
// Every dataset reduces to a [TimeSeries]: (Year, Value) points sorted
// ascending by year, one point per year. Series are immutable; constructors
// copy their input and accessors hand out copies.
//
// # Trend statistics
//
// Two rates are reported for a series and they are deliberately different:
//
//	Fit                  ordinary least squares of Value on Year (best-fit slope)
//	AverageAnnualChange  (last - first) / (lastYear - firstYear) (endpoint delta)
//
// The dashboard draws the dashed trend line from Fit and prints the
// "average annual change" from AverageAnnualChange.
//
// # Scenario projection
//
// Projections start from the latest year of the aggregate emissions series
// and step forward in five-year increments. The year axis is the half-open
// range [latestYear+5, targetYear+5) with step 5, so a target year that is
// not a multiple of five past the latest year is not itself a projected
// point, and the last point may lie up to four years past the target:
//
//	latest 2020, target 2030  ->  2025, 2030
//	latest 2020, target 2032  ->  2025, 2030, 2035
//	latest 2020, target 2020  ->  (empty)
//
// Values compound once per five-year step k = (year - latestYear) / 5:
//
//	BusinessAsUsual      latest        * 1.02^k
//	ModerateReduction    latest * 0.70 * 0.97^k
//	AggressiveReduction  latest * 0.40 * 0.95^k
//
// Temperature and sea-level estimates are linear in yearsAhead =
// targetYear - latestYear:
//
//	BusinessAsUsual      0.3 + 0.015y °C   40 + 3y mm   Severe
//	ModerateReduction    0.3 + 0.008y °C   40 + 2y mm   Moderate
//	AggressiveReduction  0.3 + 0.004y °C   40 + 1y mm   Manageable
//
// # Footprint
//
// Annual footprint in tonnes CO2e:
//
//	flights*0.7 + meatDays*0.3 + carKm*0.0002*52 + 2.0*(0.4 if renewable else 1.0)
//
// # Lookup tables
//
// Scenario parameters, country profiles, regional vulnerability scores and
// temperature milestones are resolved through exhaustive switches with an
// explicit default branch. Nothing in this package is mutable after init,
// and nothing in it performs I/O or logs.
package domain
