package model

import "time"

// TimestampLayout is the naive (zoneless) layout used everywhere:
// config start dates, CSV Timestamp cells, API payloads.
const TimestampLayout = "2006-01-02 15:04:05"

// GridSpec describes the sampling grid of a generation run.
type GridSpec struct {
	Start           time.Time
	NumDays         int
	TimeStepMinutes int
}

// Points is the number of grid points the spec produces:
// num_days * 1440 / step with integer division. When the step does not
// evenly divide the span, the grid truncates before the nominal end.
func (g GridSpec) Points() int {
	return g.NumDays * minutesPerDay / g.TimeStepMinutes
}

// Step returns the sampling interval as a duration.
func (g GridSpec) Step() time.Duration {
	return time.Duration(g.TimeStepMinutes) * time.Minute
}

const minutesPerDay = 24 * 60

// PriceRecord is one row of the price table.
type PriceRecord struct {
	Timestamp time.Time `json:"timestamp"`
	Price     float64   `json:"price_sen_per_kwh"`
	DayOfWeek int       `json:"day_of_week"` // Monday=0 .. Sunday=6
	Hour      int       `json:"hour"`        // 0-23
}

// Series is the full price table: records sorted ascending by timestamp,
// one per grid point, no gaps or duplicates. Built once, never mutated.
type Series struct {
	Tariff  Tariff        `json:"tariff"`
	Spec    GridSpec      `json:"-"`
	Records []PriceRecord `json:"records"`
}

// DayOfWeek maps time.Weekday (Sunday=0) onto the Monday=0..Sunday=6
// convention used by the tariff and the output table.
func DayOfWeek(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
