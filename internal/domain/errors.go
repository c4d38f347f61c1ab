package domain

import "errors"

// Input validation failures. Computations over valid input cannot fail, so
// every error returned by this package wraps one of these.
var (
	// ErrInsufficientData is returned when a statistic needs at least two points.
	ErrInsufficientData = errors.New("insufficient data: at least 2 points required")

	// ErrEmptyHistory is returned when a projection is requested on an empty series.
	ErrEmptyHistory = errors.New("empty history: projection requires at least 1 point")

	// ErrInvalidScenario is returned for an unrecognized scenario key or value.
	ErrInvalidScenario = errors.New("invalid scenario")

	// ErrInvalidImpactLevel is returned for an unrecognized impact level key.
	ErrInvalidImpactLevel = errors.New("invalid impact level")

	// ErrInvalidRange is returned when a footprint input falls outside its bounds.
	ErrInvalidRange = errors.New("value out of range")

	// ErrDuplicateYear is returned when a series would hold two points for one year.
	ErrDuplicateYear = errors.New("duplicate year in series")

	// ErrZeroBaseline is returned when a percentage change is taken from a zero value.
	ErrZeroBaseline = errors.New("zero baseline: percentage change undefined")
)
