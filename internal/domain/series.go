package domain

import (
	"fmt"
	"sort"

	"github.com/goccy/go-json"
)

// Point is one yearly observation.
type Point struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// TimeSeries is an immutable sequence of points sorted ascending by year,
// with at most one point per year. The zero value is an empty series.
type TimeSeries struct {
	points []Point
}

// NewTimeSeries copies and sorts points by year. It fails with
// ErrDuplicateYear if two points share a year.
func NewTimeSeries(points []Point) (TimeSeries, error) {
	if len(points) == 0 {
		return TimeSeries{}, nil
	}

	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Year < sorted[j].Year
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Year == sorted[i-1].Year {
			return TimeSeries{}, fmt.Errorf("year %d: %w", sorted[i].Year, ErrDuplicateYear)
		}
	}
	return TimeSeries{points: sorted}, nil
}

// MustTimeSeries is NewTimeSeries for static or already-validated input.
// It panics on duplicate years.
func MustTimeSeries(points ...Point) TimeSeries {
	s, err := NewTimeSeries(points)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of points.
func (s TimeSeries) Len() int { return len(s.points) }

// IsEmpty reports whether the series has no points.
func (s TimeSeries) IsEmpty() bool { return len(s.points) == 0 }

// Points returns a copy of the series' points.
func (s TimeSeries) Points() []Point {
	out := make([]Point, len(s.points))
	copy(out, s.points)
	return out
}

// At returns the i-th point in year order.
func (s TimeSeries) At(i int) Point { return s.points[i] }

// First returns the earliest point. ok is false for an empty series.
func (s TimeSeries) First() (p Point, ok bool) {
	if len(s.points) == 0 {
		return Point{}, false
	}
	return s.points[0], true
}

// Last returns the latest point. ok is false for an empty series.
func (s TimeSeries) Last() (p Point, ok bool) {
	if len(s.points) == 0 {
		return Point{}, false
	}
	return s.points[len(s.points)-1], true
}

// Years returns the year axis as float64, ready for regression.
func (s TimeSeries) Years() []float64 {
	out := make([]float64, len(s.points))
	for i, p := range s.points {
		out[i] = float64(p.Year)
	}
	return out
}

// Values returns the value axis.
func (s TimeSeries) Values() []float64 {
	out := make([]float64, len(s.points))
	for i, p := range s.points {
		out[i] = p.Value
	}
	return out
}

// Sum returns the total of all values.
func (s TimeSeries) Sum() float64 {
	var total float64
	for _, p := range s.points {
		total += p.Value
	}
	return total
}

// MarshalJSON encodes the series as an array of points; an empty series
// encodes as [] rather than null.
func (s TimeSeries) MarshalJSON() ([]byte, error) {
	if s.points == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.points)
}

// UnmarshalJSON decodes an array of points, enforcing the series invariants.
func (s *TimeSeries) UnmarshalJSON(data []byte) error {
	var points []Point
	if err := json.Unmarshal(data, &points); err != nil {
		return err
	}
	ts, err := NewTimeSeries(points)
	if err != nil {
		return err
	}
	*s = ts
	return nil
}
