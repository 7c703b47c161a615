package models

import (
	"tou-pricegen/internal/analysis"
	"tou-pricegen/internal/model"
)

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// SeriesResponse carries the generated price table.
type SeriesResponse struct {
	Tariff  model.Tariff   `json:"tariff"`
	Rows    int            `json:"rows"`
	Records []SeriesRecord `json:"records"`
}

// SeriesRecord is one table row with the timestamp pre-formatted in the
// naive layout the CSV uses.
type SeriesRecord struct {
	Timestamp string  `json:"timestamp"`
	Price     float64 `json:"price_sen_per_kwh"`
	DayOfWeek int     `json:"day_of_week"`
	Hour      int     `json:"hour"`
}

// StatsResponse wraps series statistics together with the tariff they were
// computed against.
type StatsResponse struct {
	Tariff model.Tariff         `json:"tariff"`
	Stats  analysis.SeriesStats `json:"stats"`
}

func NewSeriesResponse(s *model.Series) SeriesResponse {
	out := SeriesResponse{
		Tariff:  s.Tariff,
		Rows:    len(s.Records),
		Records: make([]SeriesRecord, len(s.Records)),
	}
	for i, r := range s.Records {
		out.Records[i] = SeriesRecord{
			Timestamp: r.Timestamp.Format(model.TimestampLayout),
			Price:     r.Price,
			DayOfWeek: r.DayOfWeek,
			Hour:      r.Hour,
		}
	}
	return out
}
