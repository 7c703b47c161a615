package models

import "tou-pricegen/internal/model"

// GenerateRequest is the body of POST /api/v1/series. Zero-valued fields
// fall back to the server's configured defaults; tariff fields overlay the
// configured tariff.
type GenerateRequest struct {
	StartDate       string        `json:"start_date"`
	NumDays         int           `json:"num_days"`
	TimeStepMinutes int           `json:"time_step_minutes"`
	Tariff          *model.Tariff `json:"tariff,omitempty"`
}
