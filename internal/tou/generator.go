package tou

import (
	"errors"
	"fmt"
	"time"

	"tou-pricegen/internal/model"
)

// ErrInvalidInput marks rejected generation parameters. Callers can match
// it with errors.Is to distinguish bad input from I/O failures.
var ErrInvalidInput = errors.New("invalid input")

// ParseStart parses a naive "YYYY-MM-DD HH:MM:SS" start timestamp.
// No timezone conversion is applied; the wall-clock value is taken as-is.
func ParseStart(s string) (time.Time, error) {
	t, err := time.Parse(model.TimestampLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: start date %q: expected %q", ErrInvalidInput, s, model.TimestampLayout)
	}
	return t, nil
}

// Generate builds the full price table for a grid spec under a tariff.
// It is a pure computation: deterministic for identical inputs and free
// of side effects.
func Generate(spec model.GridSpec, tariff model.Tariff) (*model.Series, error) {
	if err := Validate(spec, tariff); err != nil {
		return nil, err
	}

	n := spec.Points()
	step := spec.Step()
	records := make([]model.PriceRecord, 0, n)

	ts := spec.Start
	for i := 0; i < n; i++ {
		dow := model.DayOfWeek(ts)
		hour := ts.Hour()
		records = append(records, model.PriceRecord{
			Timestamp: ts,
			Price:     tariff.Rate(dow, hour),
			DayOfWeek: dow,
			Hour:      hour,
		})
		ts = ts.Add(step)
	}

	return &model.Series{
		Tariff:  tariff,
		Spec:    spec,
		Records: records,
	}, nil
}

// Validate checks generation parameters without building the table.
func Validate(spec model.GridSpec, tariff model.Tariff) error {
	if spec.Start.IsZero() {
		return fmt.Errorf("%w: start date is required", ErrInvalidInput)
	}
	if spec.NumDays <= 0 {
		return fmt.Errorf("%w: num_days must be positive, got %d", ErrInvalidInput, spec.NumDays)
	}
	if spec.TimeStepMinutes <= 0 {
		return fmt.Errorf("%w: time_step_minutes must be positive, got %d", ErrInvalidInput, spec.TimeStepMinutes)
	}
	if tariff.PeakStartHour < 0 || tariff.PeakStartHour > 23 ||
		tariff.PeakEndHour < 0 || tariff.PeakEndHour > 24 {
		return fmt.Errorf("%w: peak window %d..%d out of range", ErrInvalidInput, tariff.PeakStartHour, tariff.PeakEndHour)
	}
	if tariff.PeakEndHour < tariff.PeakStartHour {
		return fmt.Errorf("%w: peak window ends (%d) before it starts (%d)", ErrInvalidInput, tariff.PeakEndHour, tariff.PeakStartHour)
	}
	if tariff.OffPeakSenPerKWh < 0 || tariff.PeakSenPerKWh < 0 {
		return fmt.Errorf("%w: negative tariff rate", ErrInvalidInput)
	}
	return nil
}
